package compress

// NoOpCodec passes payloads through unchanged.
//
// Useful when the payload is already compressed, or when the braille text
// must decode byte-for-byte to the original input without a compression
// layer in between.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice unchanged, without copying.
// Callers must not modify the input while using the returned slice.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged, without copying.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

package compress

// ZstdCodec compresses payloads with Zstandard. The best ratio of the
// built-in codecs; use it when the braille text travels over a channel
// where size matters (chat messages, terminal paste buffers).
//
// The pure-Go implementation is the default; build with the gozstd tag to
// use the cgo bindings instead.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

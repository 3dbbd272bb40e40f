package compress

import "fmt"

// Type identifies a payload compression algorithm by name. The names match
// the values accepted on the command line.
type Type string

const (
	TypeNone Type = "none"
	TypeZstd Type = "zstd"
	TypeS2   Type = "s2"
	TypeLZ4  Type = "lz4"
)

// Compressor compresses a payload before it is braille-encoded.
//
// Braille text occupies 3 UTF-8 bytes per input byte, so compressing the
// payload first usually more than pays for the encoding overhead on
// anything but already-compressed data.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The returned slice is owned by the caller and the input slice is not
	// modified. Internal buffers may be reused between calls.
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers a payload after braille decoding.
type Decompressor interface {
	// Decompress decompresses data previously compressed with the same
	// algorithm. Returns an error if the data is corrupted or was produced
	// by an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All implementations in this package are
// stateless values safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// Get returns the built-in Codec for the given type.
func Get(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

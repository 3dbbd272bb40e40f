// Package compress provides payload codecs for the braille transport path.
//
// The braille codec itself carries no compression, checksums, or framing;
// it maps bytes to cells one-to-one. But the resulting text spends 3 UTF-8
// bytes per input byte, so when braille output travels over a size-limited
// text channel it is worth compressing the payload first and decompressing
// after decoding:
//
//	codec, _ := compress.Get(compress.TypeZstd)
//	payload, _ := codec.Compress(data)
//	text := braillify.Encode(payload)
//
//	payload, _ = braillify.Decode(text)
//	data, _ = codec.Decompress(payload)
//
// Available codecs: none (pass-through), zstd (best ratio), s2 (fastest),
// lz4 (block format). All are stateless and safe for concurrent use.
package compress

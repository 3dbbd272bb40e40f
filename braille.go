// Package braillify converts arbitrary binary data into a visual Braille
// representation and back.
//
// Each input byte maps to exactly one character in the Unicode Braille
// patterns block (U+2800..U+28FF), so a byte sequence becomes a string of
// the same number of cells and decodes back to the identical sequence.
//
// A Braille cell's dots are numbered:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// These numbers correspond with the low byte of the cell's code point when
// the bits are read as 87654321. To make a byte of arbitrary data readable
// at a glance, the dots should instead trace the bits as a bar graph:
//
//	8 4
//	7 3
//	6 2
//	5 1
//
// Rearranging the bits from 87654321 to 15234678 and adding the block
// offset produces exactly that cell. The low nibble of a byte fills the
// right column bottom-up and the high nibble fills the left column, so
// 0x0F renders as ⢸ and 0xF0 as ⡇.
//
// # Basic Usage
//
//	text := braillify.Encode([]byte{0x88, 0x11, 0xF0, 0x0F}) // "⠉⣀⡇⢸"
//
//	data, err := braillify.Decode(text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// All four operations are pure and stateless. Encode and Decode preserve
// input order and are safe for concurrent use.
package braillify

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/braillify/internal/pool"
)

const (
	// BlockStart is the first code point of the Unicode Braille patterns block.
	BlockStart = 0x2800
	// BlockEnd is the last code point of the Unicode Braille patterns block.
	BlockEnd = 0x28FF
)

// ErrNotBraille reports a Decode input character whose code point lies
// outside the Braille patterns block. Use errors.Is to match it.
var ErrNotBraille = errors.New("character outside braille pattern block")

// BitPermute relocates the eight bits of b so that the resulting Braille
// cell reads as a bar graph of the original bits.
//
// The mapping is a fixed bijection over all 256 byte values (source bit →
// destination bit, 0 = least significant):
//
//	0→7  1→5  2→4  3→3  4→6  5→2  6→1  7→0
//
// BitUnpermute is its exact inverse.
func BitPermute(b byte) byte {
	return (b&0b00000001)<<7 |
		(b&0b00000010)<<4 |
		(b&0b00010100)<<2 |
		(b&0b00100000)>>3 |
		(b&0b01000000)>>5 |
		(b&0b10000000)>>7 |
		(b & 0b00001000) // bit 3 stays put
}

// BitUnpermute is the exact inverse of BitPermute: for every byte b,
// BitUnpermute(BitPermute(b)) == b and BitPermute(BitUnpermute(b)) == b.
func BitUnpermute(b byte) byte {
	return (b&0b10000000)>>7 |
		(b&0b00100000)>>4 |
		(b&0b01010000)>>2 |
		(b&0b00000100)<<3 |
		(b&0b00000010)<<5 |
		(b&0b00000001)<<7 |
		(b & 0b00001000)
}

// Encode maps data to a string of Braille cells, one cell per byte, in
// input order. For each byte b the output character has code point
// BlockStart + BitPermute(b), so every output character lies in
// [BlockStart, BlockEnd].
//
// Encode is total: any byte sequence succeeds, and empty input produces
// an empty string.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	// Every cell in the block occupies exactly 3 bytes in UTF-8.
	buf.Grow(3 * len(data))
	for _, b := range data {
		buf.B = utf8.AppendRune(buf.B, BlockStart+rune(BitPermute(b)))
	}

	return string(buf.Bytes())
}

// Decode maps a string of Braille cells back to the byte sequence that
// produced it, one byte per character, in input order.
//
// If any character's code point lies outside [BlockStart, BlockEnd] the
// whole call fails with an error matching ErrNotBraille; no partial result
// is returned. Malformed UTF-8 decodes to the replacement character, which
// is outside the block and fails the same way. All 256 code points inside
// the block are valid.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	out := make([]byte, 0, len(s)/3)
	for _, r := range s {
		if r < BlockStart || r > BlockEnd {
			return nil, fmt.Errorf("character %q: %w", r, ErrNotBraille)
		}
		out = append(out, BitUnpermute(byte(r-BlockStart)))
	}

	return out, nil
}

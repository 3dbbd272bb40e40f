package braillify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitPermute_KnownValues(t *testing.T) {
	// Single-bit inputs exercise every row of the permutation.
	cases := []struct {
		input    byte
		expected byte
	}{
		{0b00000001, 0b10000000},
		{0b00000010, 0b00100000},
		{0b00000100, 0b00010000},
		{0b00001000, 0b00001000},
		{0b00010000, 0b01000000},
		{0b00100000, 0b00000100},
		{0b01000000, 0b00000010},
		{0b10000000, 0b00000001},
		// Multi-bit values from the nibble-to-column layout.
		{0b00001111, 0b10111000},
		{0b11110000, 0b01000111},
		{0b00000000, 0b00000000},
		{0b11111111, 0b11111111},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, BitPermute(tc.input), "input %#08b", tc.input)
	}
}

func TestBitPermute_Bijection(t *testing.T) {
	seen := make(map[byte]bool, 256)
	for i := 0; i < 256; i++ {
		b := byte(i)
		p := BitPermute(b)

		require.False(t, seen[p], "duplicate output %#02x for input %#02x", p, b)
		seen[p] = true

		require.Equal(t, b, BitUnpermute(p), "unpermute(permute(%#02x))", b)
		require.Equal(t, b, BitPermute(BitUnpermute(b)), "permute(unpermute(%#02x))", b)
	}
	require.Len(t, seen, 256)
}

func TestEncode_Vectors(t *testing.T) {
	cases := []struct {
		input    []byte
		expected string
	}{
		{[]byte{0b10001000, 0b00010001, 0b11110000, 0b00001111}, "⠉⣀⡇⢸"},
		{[]byte{0b10101010, 0b01010101, 0b11110110, 0b01101111}, "⠭⣒⡷⢾"},
		{[]byte{0b11001001, 0b10011100, 0b10010011, 0b00111001}, "⢋⡙⣡⣌"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, Encode(tc.input))
	}
}

func TestEncode_OutputRange(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	encoded := Encode(data)
	count := 0
	for _, r := range encoded {
		require.GreaterOrEqual(t, r, rune(BlockStart))
		require.LessOrEqual(t, r, rune(BlockEnd))
		count++
	}
	require.Equal(t, len(data), count)
}

func TestEncode_Empty(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	require.Equal(t, "", Encode([]byte{}))
}

func TestDecode_Vector(t *testing.T) {
	decoded, err := Decode("⠉⣀⡇⢸")
	require.NoError(t, err)
	require.Equal(t, []byte{0b10001000, 0b00010001, 0b11110000, 0b00001111}, decoded)
}

func TestDecode_Empty(t *testing.T) {
	decoded, err := Decode("")
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecode_AllBlockValues(t *testing.T) {
	// Every code point in the block is valid, including cells that no
	// "reasonable" glyph would use.
	for cp := BlockStart; cp <= BlockEnd; cp++ {
		decoded, err := Decode(string(rune(cp)))
		require.NoError(t, err)
		require.Len(t, decoded, 1)
		require.Equal(t, byte(cp-BlockStart), BitPermute(decoded[0]))
	}
}

func TestDecode_OutsideBlock(t *testing.T) {
	cases := []string{
		"A",
		"⠉A⠉",     // in-block neighbors must not rescue the call
		"⟿",  // one below the block
		"⤀",  // one above the block
		"\xff\xfe", // malformed UTF-8 decodes to the replacement rune
	}

	for _, input := range cases {
		decoded, err := Decode(input)
		require.ErrorIs(t, err, ErrNotBraille, "input %q", input)
		require.Nil(t, decoded)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{0, 1, 2, 16, 255, 256, 4096} {
		data := make([]byte, size)
		_, err := rng.Read(data)
		require.NoError(t, err)

		decoded, err := Decode(Encode(data))
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

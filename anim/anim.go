// Package anim builds braille frames for terminal animations and bar
// graphs.
//
// The bit layout chosen by the codec makes a byte's low bits fill the right
// column of its cell bottom-up and the high bits fill the left column, so
// bytes with N low bits set read as a meter filled to level N. Everything
// here is pure frame construction; timing and terminal control belong to
// the caller.
package anim

import (
	"fmt"

	"github.com/arloliu/braillify"
)

// MaxLevel is the number of dots in one cell and therefore the highest
// meter level.
const MaxLevel = 8

// Meter returns the byte whose braille cell renders as a bar filled to the
// given level. Levels below 0 clamp to an empty cell and levels above
// MaxLevel clamp to a full cell.
func Meter(level int) byte {
	if level <= 0 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}

	return byte(0xFF) >> (MaxLevel - level)
}

// Bars renders one braille cell per level, producing a bar graph string.
//
// Example:
//
//	anim.Bars([]int{0, 2, 4, 6, 8}) // "⠀⢠⢸⣼⣿"
func Bars(levels []int) string {
	cells := make([]byte, len(levels))
	for i, level := range levels {
		cells[i] = Meter(level)
	}

	return braillify.Encode(cells)
}

// Blend overlays two frames of equal cell count by taking the dot union of
// each cell pair. Displaying Blend(prev, cur) between frames gives a cheap
// motion-blur effect.
//
// The union is computed on the decoded bytes; the bit permutation
// distributes over bitwise OR, so the result equals the dot union of the
// rendered cells. Returns an error if either frame contains a character
// outside the braille block or the frames differ in cell count.
func Blend(a, b string) (string, error) {
	cellsA, err := braillify.Decode(a)
	if err != nil {
		return "", err
	}
	cellsB, err := braillify.Decode(b)
	if err != nil {
		return "", err
	}
	if len(cellsA) != len(cellsB) {
		return "", fmt.Errorf("frame size mismatch: %d vs %d cells", len(cellsA), len(cellsB))
	}

	merged := make([]byte, len(cellsA))
	for i := range cellsA {
		merged[i] = cellsA[i] | cellsB[i]
	}

	return braillify.Encode(merged), nil
}

// Spinner returns a cyclic sequence of single-cell frames in which one dot
// walks through the cell in meter order: up the right column, then up the
// left. Loop over the frames repeatedly for a spinner.
func Spinner() []string {
	frames := make([]string, MaxLevel)
	for i := range frames {
		frames[i] = braillify.Encode([]byte{1 << i})
	}

	return frames
}

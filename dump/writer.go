// Package dump renders binary data as a braille hex dump.
//
// Each output row shows an offset column, one braille cell per input byte,
// and a printable-ASCII column, in the spirit of hexdump -C. Because every
// cell encodes a full byte as a bar graph of its bits, a dump row packs
// twice as many bytes per column as a hex dump while staying readable.
//
//	00000000  ⠊⢖⠞⠞⢾⠜⠄⣶⢾⡦⠞⠖⢄⢄⢄⢄  |Hello, world!!!!|
//	00000010
//
// Runs of identical rows collapse to a single "*" line; the final line is
// the total input length, so collapsed runs never hide the end offset.
package dump

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/braillify"
	"github.com/arloliu/braillify/internal/pool"
)

// DefaultWidth is the number of input bytes rendered per row.
const DefaultWidth = 16

// Option configures a Writer.
type Option func(*Writer) error

// WithWidth sets the number of bytes rendered per row.
// Returns an error from New if n is not positive.
func WithWidth(n int) Option {
	return func(d *Writer) error {
		if n <= 0 {
			return fmt.Errorf("dump: width must be positive, got %d", n)
		}
		d.width = n

		return nil
	}
}

// WithASCII enables or disables the printable-ASCII column (default on).
func WithASCII(enabled bool) Option {
	return func(d *Writer) error {
		d.ascii = enabled
		return nil
	}
}

// WithOffsets enables or disables the offset column and the trailing
// total-length line (default on).
func WithOffsets(enabled bool) Option {
	return func(d *Writer) error {
		d.offsets = enabled
		return nil
	}
}

// WithCollapseRepeats enables or disables collapsing runs of identical rows
// into a single "*" line (default on).
func WithCollapseRepeats(enabled bool) Option {
	return func(d *Writer) error {
		d.collapse = enabled
		return nil
	}
}

// Writer is a streaming braille dump formatter.
//
// It implements io.Writer: bytes written to it are buffered into rows and
// each completed row is formatted and forwarded to the underlying writer.
// Call Flush after the last Write to emit any partial row and the trailing
// total-length line.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w        io.Writer
	width    int
	ascii    bool
	offsets  bool
	collapse bool

	row       []byte
	offset    int64
	lastHash  uint64
	haveHash  bool
	repeating bool
}

// New creates a Writer that formats rows onto w.
func New(w io.Writer, opts ...Option) (*Writer, error) {
	d := &Writer{
		w:        w,
		width:    DefaultWidth,
		ascii:    true,
		offsets:  true,
		collapse: true,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	d.row = make([]byte, 0, d.width)

	return d, nil
}

// Write buffers p into rows, emitting each row as it completes.
// It never returns a short count without an error.
func (d *Writer) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		n := d.width - len(d.row)
		if n > len(p) {
			n = len(p)
		}
		d.row = append(d.row, p[:n]...)
		p = p[n:]

		if len(d.row) == d.width {
			if err := d.emitRow(); err != nil {
				return written - len(p), err
			}
		}
	}

	return written, nil
}

// Flush emits any buffered partial row, followed by the total-length line
// when offsets are enabled. It must be called after the final Write.
func (d *Writer) Flush() error {
	if len(d.row) > 0 {
		if err := d.emitRow(); err != nil {
			return err
		}
	}

	if d.offsets && d.offset > 0 {
		if _, err := fmt.Fprintf(d.w, "%08x\n", d.offset); err != nil {
			return err
		}
	}

	return nil
}

// emitRow formats and writes the buffered row, then resets it.
//
// Full rows identical to the previous full row are collapsed: the first
// repeat writes a "*" line and subsequent repeats write nothing. Rows are
// compared by 64-bit xxHash fingerprint rather than byte-wise; a collision
// is possible in principle but negligible in practice.
func (d *Writer) emitRow() error {
	if d.collapse && len(d.row) == d.width {
		h := xxhash.Sum64(d.row)
		if d.haveHash && h == d.lastHash {
			d.offset += int64(len(d.row))
			d.row = d.row[:0]
			if d.repeating {
				return nil
			}
			d.repeating = true
			_, err := io.WriteString(d.w, "*\n")

			return err
		}
		d.lastHash = h
		d.haveHash = true
	}
	d.repeating = false

	line := pool.GetRowBuffer()
	defer pool.PutRowBuffer(line)

	if d.offsets {
		line.B = fmt.Appendf(line.B, "%08x  ", d.offset)
	}

	for _, b := range d.row {
		line.B = utf8.AppendRune(line.B, braillify.BlockStart+rune(braillify.BitPermute(b)))
	}

	if d.ascii {
		// Pad partial rows so the ASCII column stays aligned.
		for i := len(d.row); i < d.width; i++ {
			line.B = append(line.B, ' ')
		}
		line.B = append(line.B, ' ', ' ', '|')
		for _, b := range d.row {
			if b < 0x20 || b > 0x7e {
				b = '.'
			}
			line.B = append(line.B, b)
		}
		line.B = append(line.B, '|')
	}
	line.B = append(line.B, '\n')

	d.offset += int64(len(d.row))
	d.row = d.row[:0]

	_, err := d.w.Write(line.B)

	return err
}

// Dump formats data as a braille dump with default options and returns it
// as a string.
func Dump(data []byte) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail and the options are valid.
	_ = Fdump(&sb, data)

	return sb.String()
}

// Fdump formats data as a braille dump onto w.
func Fdump(w io.Writer, data []byte, opts ...Option) error {
	d, err := New(w, opts...)
	if err != nil {
		return err
	}
	if _, err := d.Write(data); err != nil {
		return err
	}

	return d.Flush()
}

// Package pager implements the line-buffering core of spg: an append-only
// buffer of display lines wrapped to a fixed width, a lazily-filled viewport
// over it, literal substring search, and the search prompt editor. Terminal
// setup, key decoding and drawing live elsewhere; this package only consumes
// a rune stream and yields lines and printable segments.
package pager

const initialLineCap = 128

// Buffer is an append-only store of display lines. Lines hold their content
// runes, including any terminating newline; wrap points are implicit in the
// line boundaries. A Buffer is never truncated: a width change replaces it
// wholesale via Reflow.
type Buffer struct {
	lines [][]rune
	width int
	tab   int
}

// NewBuffer returns an empty buffer wrapping at width columns with the given
// tab stop width.
func NewBuffer(width, tabWidth int) *Buffer {
	if width < 1 {
		width = 1
	}
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Buffer{
		lines: make([][]rune, 0, initialLineCap),
		width: width,
		tab:   tabWidth,
	}
}

// Len reports the number of committed lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Cap reports the backing storage size; it doubles when full.
func (b *Buffer) Cap() int { return cap(b.lines) }

// Width reports the wrap width in columns.
func (b *Buffer) Width() int { return b.width }

// TabWidth reports the configured tab stop width.
func (b *Buffer) TabWidth() int { return b.tab }

// Line returns the content of line i. The slice is owned by the buffer.
func (b *Buffer) Line(i int) []rune { return b.lines[i] }

// NewLine appends an empty line and returns its index.
func (b *Buffer) NewLine() int {
	if len(b.lines) == cap(b.lines) {
		grown := make([][]rune, len(b.lines), 2*cap(b.lines))
		copy(grown, b.lines)
		b.lines = grown
	}
	b.lines = append(b.lines, make([]rune, 0, b.width))
	return len(b.lines) - 1
}

// PushRune appends r to the newest line. Wrap decisions are the caller's;
// lines only ever grow.
func (b *Buffer) PushRune(r rune) {
	i := len(b.lines) - 1
	b.lines[i] = append(b.lines[i], r)
}

// IsControl reports whether r renders as a two-column caret escape.
func IsControl(r rune) bool {
	return (r < 0x20 && r != '\n' && r != '\t') || r == 0x7F
}

// Advance returns the column after placing r at column col: tabs move to
// the next tab stop, control characters take two columns, newlines none,
// and everything else exactly one.
func (b *Buffer) Advance(col int, r rune) int {
	switch {
	case r == '\n':
		return col
	case r == '\t':
		return col + b.tab - col%b.tab
	case IsControl(r):
		return col + 2
	default:
		return col + 1
	}
}

// Reflow rebuilds the buffer at newWidth by re-wrapping the concatenated
// rune content of every line with the same policy used during ingestion,
// and maps anchorRow (an exclusive upper bound into the old buffer) to the
// corresponding boundary in the new one. The receiver is left untouched;
// callers adopt the returned buffer and discard the old one.
func (b *Buffer) Reflow(newWidth, anchorRow int) (*Buffer, int) {
	nb := NewBuffer(newWidth, b.tab)
	col, n := 0, 0
	open := false

	put := func(r rune) {
		if !open {
			nb.NewLine()
			open, col, n = true, 0, 0
		}
		adv := nb.Advance(col, r)
		if n > 0 && (adv > nb.width || n >= nb.width) {
			nb.NewLine()
			col, n = 0, 0
			adv = nb.Advance(0, r)
		}
		if r == '\n' {
			nb.PushRune(r)
			open = false
			return
		}
		nb.PushRune(r)
		col, n = adv, n+1
	}

	newAnchor := 0
	for i, line := range b.lines {
		for _, r := range line {
			put(r)
		}
		if i+1 == anchorRow {
			newAnchor = nb.Len()
		}
	}
	if anchorRow >= len(b.lines) {
		newAnchor = nb.Len()
	}
	return nb, newAnchor
}

package pager

import "strings"

// Segment is one printable token of a display line together with the column
// it starts at. Tabs contribute no token, only a column gap; the
// presentation layer fills the gap with blanks.
type Segment struct {
	Text string
	Col  int
}

// Segments lays out one buffered line as printable tokens. Control
// characters become two-column caret escapes (^A, ^?), tabs skip to the
// next tab stop, and a terminating newline produces nothing. The layout
// matches the column arithmetic used when the line was wrapped.
func Segments(line []rune, tabWidth int) []Segment {
	if tabWidth < 1 {
		tabWidth = 1
	}

	var segs []Segment
	var run strings.Builder
	col, start := 0, 0
	flush := func() {
		if run.Len() > 0 {
			segs = append(segs, Segment{Text: run.String(), Col: start})
			run.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == '\n':
			flush()
			return segs
		case r == '\t':
			flush()
			col += tabWidth - col%tabWidth
			start = col
		case IsControl(r):
			run.WriteByte('^')
			run.WriteRune(r ^ 0x40)
			col += 2
		default:
			run.WriteRune(r)
			col++
		}
	}
	flush()
	return segs
}

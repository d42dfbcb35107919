package pager

// Searcher scans a window's buffer for literal substring matches. Matches
// are computed over the logical rune stream, so a match may continue across
// a wrap break; explicit newline runes are ordinary content.
type Searcher struct {
	win *Window
}

// NewSearcher returns a searcher over win's buffer and input.
func NewSearcher(win *Window) *Searcher {
	return &Searcher{win: win}
}

// Forward looks for the first match starting in a line after fromRow,
// ingesting more input whenever the buffered lines run out. It reports the
// matching row, or false once the input is exhausted without a match. An
// empty query never matches.
func (s *Searcher) Forward(query []rune, fromRow int) (int, bool) {
	if len(query) == 0 {
		return 0, false
	}
	for row := fromRow + 1; ; row++ {
		if !s.ensure(row) {
			return 0, false
		}
		for start := range s.win.buf.Line(row) {
			if s.matchAt(row, start, query, true) {
				return row, true
			}
		}
	}
}

// Backward looks for the nearest match starting in a line before fromRow.
// Only buffered lines are scanned; nothing that could precede them can
// still arrive from the input. No wraparound.
func (s *Searcher) Backward(query []rune, fromRow int) (int, bool) {
	if len(query) == 0 {
		return 0, false
	}
	if fromRow > s.win.buf.Len() {
		fromRow = s.win.buf.Len()
	}
	for row := fromRow - 1; row >= 0; row-- {
		for start := range s.win.buf.Line(row) {
			if s.matchAt(row, start, query, false) {
				return row, true
			}
		}
	}
	return 0, false
}

// ensure makes line row available, pulling from the input as needed.
func (s *Searcher) ensure(row int) bool {
	for s.win.buf.Len() <= row {
		if !s.win.getLine() {
			return false
		}
	}
	return true
}

// matchAt reports whether query occurs starting at rune idx of line row,
// continuing into following lines as needed. With pull set, lines past the
// buffered end are ingested to finish the comparison.
func (s *Searcher) matchAt(row, idx int, query []rune, pull bool) bool {
	line := s.win.buf.Line(row)
	for _, q := range query {
		for idx >= len(line) {
			row++
			if row >= s.win.buf.Len() {
				if !pull || !s.win.getLine() {
					return false
				}
			}
			line = s.win.buf.Line(row)
			idx = 0
		}
		if line[idx] != q {
			return false
		}
		idx++
	}
	return true
}

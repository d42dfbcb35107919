package pager

import (
	"github.com/ianprime0509/spg/internal/textio"
)

// Window is a viewport over a Buffer that pulls lines from an Input on
// demand. row is the exclusive upper bound of the visible slice, so the
// screen shows buffer lines [max(row-rows,0), row).
type Window struct {
	buf  *Buffer
	in   *textio.Input
	rows int
	row  int
}

// NewWindow creates a window of the given geometry over in. The window owns
// its buffer; call Fill to load the first screenful.
func NewWindow(in *textio.Input, rows, cols, tabWidth int) *Window {
	if rows < 1 {
		rows = 1
	}
	return &Window{
		buf:  NewBuffer(cols, tabWidth),
		in:   in,
		rows: rows,
	}
}

// Buffer returns the window's current buffer.
func (w *Window) Buffer() *Buffer { return w.buf }

// Rows reports the viewport height.
func (w *Window) Rows() int { return w.rows }

// Cols reports the viewport width.
func (w *Window) Cols() int { return w.buf.Width() }

// TabWidth reports the tab stop width lines were wrapped with.
func (w *Window) TabWidth() int { return w.buf.TabWidth() }

// Row reports the exclusive bottom of the visible slice.
func (w *Window) Row() int { return w.row }

// Top reports the first visible line.
func (w *Window) Top() int {
	if w.row > w.rows {
		return w.row - w.rows
	}
	return 0
}

// VisibleLines returns the buffered lines currently on screen, topmost
// first. The slices are owned by the buffer.
func (w *Window) VisibleLines() [][]rune {
	return w.buf.lines[w.Top():w.row]
}

// AtEnd reports whether the input behind the window is exhausted.
func (w *Window) AtEnd() bool { return w.in.AtEnd() }

// InputErr returns the error that ended the input, if it ended on one
// rather than a clean EOF.
func (w *Window) InputErr() error { return w.in.Err() }

// Fill pulls lines until the buffer holds a full screen or the input is
// exhausted, advancing row past whatever was added.
func (w *Window) Fill() {
	added := 0
	for w.buf.Len() < w.rows {
		if !w.getLine() {
			break
		}
		added++
	}
	w.row += added
	if w.row > w.buf.Len() {
		w.row = w.buf.Len()
	}
}

// getLine ingests one display line from the input. A rune that would
// overflow the width budget is pushed back so it begins the next line,
// which also guarantees a multi-byte rune is never split across lines. It
// reports false when the input was already exhausted.
func (w *Window) getLine() bool {
	if w.in.AtEnd() {
		return false
	}
	w.buf.NewLine()
	col, n := 0, 0
	for {
		r, ok := w.in.GetRune()
		if !ok {
			break
		}
		adv := w.buf.Advance(col, r)
		if n > 0 && (adv > w.buf.Width() || n >= w.buf.Width()) {
			w.in.UngetRune(r)
			break
		}
		if r == '\n' {
			w.buf.PushRune(r)
			break
		}
		w.buf.PushRune(r)
		col, n = adv, n+1
	}
	return true
}

// Resize adopts a new geometry: the buffer is rebuilt at the new width with
// the scroll position carried across, then the viewport is refilled.
func (w *Window) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	w.rows = rows
	w.buf, w.row = w.buf.Reflow(cols, w.row)
	w.Fill()
}

// ScrollDown advances the viewport by n lines, ingesting as needed and
// clamping to the end of available content.
func (w *Window) ScrollDown(n int) {
	for w.buf.Len() < w.row+n {
		if !w.getLine() {
			break
		}
	}
	w.row += n
	if w.row > w.buf.Len() {
		w.row = w.buf.Len()
	}
}

// ScrollUp moves the viewport up by n lines. Once enough content exists you
// cannot scroll above a full first screen, so a position short of one
// screenful snaps back down.
func (w *Window) ScrollUp(n int) {
	if n > w.row {
		w.row = 0
	} else {
		w.row -= n
	}
	if w.row < w.rows {
		w.row = w.rows
		if w.row > w.buf.Len() {
			w.row = w.buf.Len()
		}
	}
}

// ScrollToTop shows the first screenful.
func (w *Window) ScrollToTop() {
	w.row = w.rows
	if w.row > w.buf.Len() {
		w.row = w.buf.Len()
	}
}

// ScrollToBottom ingests the rest of the input and shows the last
// screenful.
func (w *Window) ScrollToBottom() {
	for w.getLine() {
	}
	w.row = w.buf.Len()
}

// ScrollToMatch places the viewport so that line matchRow is at the top of
// the screen, ingesting as needed and clamping to available content.
func (w *Window) ScrollToMatch(matchRow int) {
	target := matchRow + w.rows
	for w.buf.Len() < target {
		if !w.getLine() {
			break
		}
	}
	w.row = target
	if w.row > w.buf.Len() {
		w.row = w.buf.Len()
	}
}

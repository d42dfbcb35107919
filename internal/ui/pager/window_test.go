package pager

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ianprime0509/spg/internal/textio"
)

func numberedLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %02d of %02d\n", i, n)
	}
	return b.String()
}

func newTestWindow(content string, rows, cols int) *Window {
	return NewWindow(textio.NewInput(strings.NewReader(content)), rows, cols, 8)
}

func TestFillLoadsOneScreen(t *testing.T) {
	w := newTestWindow(numberedLines(50), 10, 20)
	w.Fill()
	if w.Buffer().Len() != 10 {
		t.Fatalf("buffer has %d lines after fill, want 10", w.Buffer().Len())
	}
	if w.Row() != 10 {
		t.Fatalf("row = %d after fill, want 10", w.Row())
	}
	if vis := w.VisibleLines(); len(vis) != 10 || string(vis[0]) != "line 00 of 50\n" {
		t.Fatalf("unexpected visible slice: %d lines, first %q", len(vis), string(vis[0]))
	}
}

func TestFillShortContent(t *testing.T) {
	w := newTestWindow("only\ntwo\n", 10, 20)
	w.Fill()
	if w.Buffer().Len() != 2 || w.Row() != 2 {
		t.Fatalf("len=%d row=%d, want 2 and 2", w.Buffer().Len(), w.Row())
	}
	if !w.AtEnd() {
		t.Fatal("input should be exhausted")
	}
}

func TestScrollDownClampsAtEnd(t *testing.T) {
	w := newTestWindow(numberedLines(30), 10, 20)
	w.Fill()
	w.ScrollDown(1 << 20)
	if w.Row() != 30 {
		t.Fatalf("row = %d after huge scroll, want 30", w.Row())
	}
	if !w.AtEnd() {
		t.Fatal("scrolling past the end must exhaust the input")
	}
}

func TestScrollUpSnapsToFirstScreen(t *testing.T) {
	w := newTestWindow(numberedLines(30), 10, 20)
	w.Fill()
	w.ScrollDown(15) // row 25
	w.ScrollUp(1 << 20)
	if w.Row() != 10 {
		t.Fatalf("row = %d after huge scroll up, want 10 (one full screen)", w.Row())
	}
}

func TestScrollUpShortContentClampsToLength(t *testing.T) {
	w := newTestWindow("a\nb\nc\n", 10, 20)
	w.Fill()
	w.ScrollUp(5)
	if w.Row() != 3 {
		t.Fatalf("row = %d, want buffer length 3", w.Row())
	}
}

func TestScrollToTopAndBottom(t *testing.T) {
	w := newTestWindow(numberedLines(40), 10, 20)
	w.Fill()
	w.ScrollToBottom()
	if w.Row() != 40 {
		t.Fatalf("row = %d at bottom, want 40", w.Row())
	}
	w.ScrollToTop()
	if w.Row() != 10 {
		t.Fatalf("row = %d at top, want 10", w.Row())
	}
}

func TestScrollDownIngestsLazily(t *testing.T) {
	w := newTestWindow(numberedLines(100), 10, 20)
	w.Fill()
	if w.Buffer().Len() != 10 {
		t.Fatalf("premature ingestion: %d lines", w.Buffer().Len())
	}
	w.ScrollDown(5)
	if w.Buffer().Len() != 15 {
		t.Fatalf("buffer has %d lines, want exactly 15", w.Buffer().Len())
	}
	if w.Row() != 15 {
		t.Fatalf("row = %d, want 15", w.Row())
	}
}

func TestResizeKeepsAnchorRow(t *testing.T) {
	// 50 numbered lines, 10x20 viewport scrolled to row 25; widening to 40
	// columns and back to 20 restores the anchor (within one row of
	// boundary rounding).
	w := newTestWindow(numberedLines(50), 10, 20)
	w.Fill()
	w.ScrollDown(15)
	if w.Row() != 25 {
		t.Fatalf("setup: row = %d, want 25", w.Row())
	}

	w.Resize(10, 40)
	w.Resize(10, 20)
	if w.Row() < 24 || w.Row() > 26 {
		t.Fatalf("row = %d after round-trip resize, want 25 +-1", w.Row())
	}
	if w.Cols() != 20 {
		t.Fatalf("cols = %d, want 20", w.Cols())
	}
}

func TestResizeRewrapsContent(t *testing.T) {
	w := newTestWindow(strings.Repeat("x", 30)+"\n", 5, 10)
	w.Fill()
	if w.Buffer().Len() != 3 {
		t.Fatalf("expected 3 wrapped lines at width 10, got %d", w.Buffer().Len())
	}
	w.Resize(5, 30)
	if w.Buffer().Len() != 2 {
		t.Fatalf("expected 2 lines at width 30 (30 x's then newline), got %d", w.Buffer().Len())
	}
	if got := string(w.Buffer().Line(0)); got != strings.Repeat("x", 30) {
		t.Fatalf("line 0 = %q", got)
	}
}

func TestResizeTallerRefills(t *testing.T) {
	w := newTestWindow(numberedLines(50), 5, 20)
	w.Fill()
	w.Resize(20, 20)
	if w.Buffer().Len() != 20 {
		t.Fatalf("buffer has %d lines after growing viewport, want 20", w.Buffer().Len())
	}
	if w.Row() != 20 {
		t.Fatalf("row = %d, want 20", w.Row())
	}
}

func TestScrollToMatchClamps(t *testing.T) {
	w := newTestWindow(numberedLines(12), 10, 20)
	w.Fill()
	w.ScrollToBottom()
	w.ScrollToMatch(11)
	if w.Row() != 12 {
		t.Fatalf("row = %d, want clamp to 12", w.Row())
	}
	w.ScrollToMatch(0)
	if w.Row() != 10 {
		t.Fatalf("row = %d, want 10 (match on top of full screen)", w.Row())
	}
}

func TestGetLineNeverSplitsMultibyteRune(t *testing.T) {
	// Five single-width multi-byte runes at width 3 wrap 3+2 with whole
	// runes on each line; the overflow rune is pushed back, never split.
	w := newTestWindow("ééééé\n", 5, 3)
	w.Fill()
	b := w.Buffer()
	if b.Len() != 2 {
		t.Fatalf("got %d lines, want 2", b.Len())
	}
	if string(b.Line(0)) != "ééé" || string(b.Line(1)) != "éé\n" {
		t.Fatalf("lines = %q / %q", string(b.Line(0)), string(b.Line(1)))
	}
}

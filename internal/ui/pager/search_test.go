package pager

import (
	"strings"
	"testing"
)

func TestSearchForward(t *testing.T) {
	w := newTestWindow("alpha\nbeta\ngamma\n", 10, 20)
	w.Fill()
	s := NewSearcher(w)

	tests := []struct {
		name    string
		query   string
		fromRow int
		wantRow int
		found   bool
	}{
		{"match below", "gamma", 0, 2, true},
		{"no match", "delta", 0, 0, false},
		{"match on next row only", "beta", 0, 1, true},
		{"own row excluded", "alpha", 0, 0, false},
		{"no wraparound", "alpha", 1, 0, false},
		{"empty query never matches", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, found := s.Forward([]rune(tt.query), tt.fromRow)
			if found != tt.found || (found && row != tt.wantRow) {
				t.Fatalf("Forward(%q,%d)=(%d,%v), want (%d,%v)",
					tt.query, tt.fromRow, row, found, tt.wantRow, tt.found)
			}
		})
	}
}

func TestSearchBackward(t *testing.T) {
	w := newTestWindow("alpha\nbeta\ngamma\n", 10, 20)
	w.Fill()
	s := NewSearcher(w)

	tests := []struct {
		name    string
		query   string
		fromRow int
		wantRow int
		found   bool
	}{
		{"match above", "alpha", 2, 0, true},
		{"nearest match first", "a", 2, 1, true},
		{"no wraparound", "alpha", 0, 0, false},
		{"no match", "delta", 2, 0, false},
		{"empty query never matches", "", 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, found := s.Backward([]rune(tt.query), tt.fromRow)
			if found != tt.found || (found && row != tt.wantRow) {
				t.Fatalf("Backward(%q,%d)=(%d,%v), want (%d,%v)",
					tt.query, tt.fromRow, row, found, tt.wantRow, tt.found)
			}
		})
	}
}

func TestSearchForwardPullsMoreInput(t *testing.T) {
	w := newTestWindow(numberedLines(100), 10, 20)
	w.Fill()
	if w.Buffer().Len() != 10 {
		t.Fatalf("setup: buffer holds %d lines", w.Buffer().Len())
	}

	s := NewSearcher(w)
	row, found := s.Forward([]rune("line 73"), 0)
	if !found || row != 73 {
		t.Fatalf("Forward = (%d,%v), want (73,true)", row, found)
	}
	if w.Buffer().Len() < 74 {
		t.Fatalf("search did not ingest through the match: %d lines", w.Buffer().Len())
	}
}

func TestSearchSpansWrapBreak(t *testing.T) {
	// "abcdef" wrapped at width 3 gives rows "abc"/"def"; a match crossing
	// the layout break starts on the first row.
	w := newTestWindow("xxx\nabcdef\n", 10, 3)
	w.Fill()
	s := NewSearcher(w)

	row, found := s.Forward([]rune("cde"), 0)
	if !found || row != 1 {
		t.Fatalf("Forward(cde) = (%d,%v), want (1,true)", row, found)
	}
}

func TestSearchNewlineIsContent(t *testing.T) {
	// The newline rune is part of the stream, so "a\nb" does not match
	// "ab" but the explicit line break does separate candidate rows.
	w := newTestWindow("ab\ncd\n", 10, 20)
	w.Fill()
	s := NewSearcher(w)

	if _, found := s.Forward([]rune("bc"), -1); found {
		t.Fatal("match must not jump the newline rune")
	}
	if row, found := s.Forward([]rune("b\nc"), -1); !found || row != 0 {
		t.Fatalf("Forward(b\\nc) = (%d,%v), want (0,true)", row, found)
	}
}

func TestSearchBackwardOnlyBufferedLines(t *testing.T) {
	w := newTestWindow(numberedLines(100), 10, 20)
	w.Fill()
	s := NewSearcher(w)

	if _, found := s.Backward([]rune("line 50"), w.Row()); found {
		t.Fatal("backward search must not ingest new input")
	}
	if w.Buffer().Len() != 10 {
		t.Fatalf("backward search grew the buffer to %d lines", w.Buffer().Len())
	}
}

func TestSearchLongContent(t *testing.T) {
	content := strings.Repeat("filler\n", 40) + "needle here\n" + strings.Repeat("filler\n", 40)
	w := newTestWindow(content, 10, 20)
	w.Fill()
	s := NewSearcher(w)

	row, found := s.Forward([]rune("needle"), 0)
	if !found || row != 40 {
		t.Fatalf("Forward(needle) = (%d,%v), want (40,true)", row, found)
	}
	w.ScrollToMatch(row)
	if back, ok := s.Backward([]rune("filler"), row); !ok || back != 39 {
		t.Fatalf("Backward(filler) = (%d,%v), want (39,true)", back, ok)
	}
}

// Package render draws the pager core onto a tcell screen. The core hands
// over printable segments with target columns; this package owns cell
// placement, the inverse-video footer, and nothing else.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ianprime0509/spg/internal/ui/pager"
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render redraws the whole screen: the window's visible lines on top and
// the footer text on the bottom row.
func (r *Renderer) Render(win *pager.Window, footer string) {
	r.screen.Clear()
	for y, line := range win.VisibleLines() {
		for _, seg := range pager.Segments(line, win.TabWidth()) {
			col := seg.Col
			for _, ru := range seg.Text {
				r.screen.SetContent(col, y, ru, nil, tcell.StyleDefault)
				col++
			}
		}
	}
	r.drawFooter(footer)
	r.screen.Show()
}

func (r *Renderer) drawFooter(text string) {
	width, height := r.screen.Size()
	if height < 1 || width < 1 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	text = truncateToWidth(text, width)

	col := 0
	for _, ru := range text {
		r.screen.SetContent(col, height-1, ru, nil, style)
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		col += w
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, height-1, ' ', nil, style)
	}
}

func truncateToWidth(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

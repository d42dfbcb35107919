// Package app wires the pager core to the terminal: screen setup, the main
// event loop, command dispatch, and suspend/resume.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/ianprime0509/spg/internal/textio"
	"github.com/ianprime0509/spg/internal/ui/pager"
	"github.com/ianprime0509/spg/internal/ui/render"
)

// Application owns the window, the searcher, the prompt and the screen for
// the lifetime of the process. There is exactly one control goroutine; every
// component is touched only from the event loop.
type Application struct {
	screen   tcell.Screen
	renderer *render.Renderer
	win      *pager.Window
	searcher *pager.Searcher
	prompt   *pager.Prompt

	name           string
	lastQuery      []rune
	lastBackward   bool
	promptBackward bool
	notice         string
	shouldQuit     bool
}

// NewApplication sets up the terminal and loads the first screenful from
// src. name labels the content in the footer.
func NewApplication(src io.Reader, name string, tabWidth int) (*Application, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize screen: %w", err)
	}

	cols, rows := screen.Size()
	if cols < 1 || rows < 1 {
		screen.Fini()
		return nil, errors.New("cannot determine terminal size")
	}

	// The bottom row belongs to the footer.
	win := pager.NewWindow(textio.NewInput(src), rows-1, cols, tabWidth)
	win.Fill()

	return &Application{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		win:      win,
		searcher: pager.NewSearcher(win),
		prompt:   pager.NewPrompt(),
		name:     name,
	}, nil
}

// Close releases the terminal.
func (app *Application) Close() {
	app.screen.Fini()
}

func (app *Application) render() {
	app.renderer.Render(app.win, app.footer())
}

func (app *Application) footer() string {
	if app.prompt.Active() {
		prefix := "/"
		if app.promptBackward {
			prefix = "?"
		}
		return prefix + string(app.prompt.Query())
	}
	if app.notice != "" {
		return app.notice
	}

	top := app.win.Top()
	total := app.win.Buffer().Len()
	shown := fmt.Sprintf("%d-%d/%d", top+1, app.win.Row(), total)
	if total == 0 {
		shown = "empty"
	}
	more := ""
	if !app.win.AtEnd() {
		more = "+"
	}
	return fmt.Sprintf(" %s  %s%s ", app.name, shown, more)
}

package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/ianprime0509/spg/internal/textio"
	inputui "github.com/ianprime0509/spg/internal/ui/input"
)

// Run drives the pager until quit. The screen's event stream is the single
// wait point: keys and resize notifications arrive as tagged events, so a
// resize can interrupt a pending key read without any global flag.
func (app *Application) Run() error {
	app.render()

	events := make(chan tcell.Event)
	go func() {
		for {
			events <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		select {
		case ev := <-events:
			app.handleEvent(ev)
		case <-sigContCh:
			app.resumeAfterStop()
		}
		if !app.shouldQuit {
			app.render()
		}
	}
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		app.win.Resize(h-1, w)
		app.screen.Sync()
	case *tcell.EventKey:
		if app.prompt.Active() {
			app.handlePromptKey(ev)
			return
		}
		if cmd, ok := inputui.Translate(ev); ok {
			app.execute(cmd)
		}
	}
}

// handlePromptKey routes a key to the active prompt, which exclusively
// consumes input until commit or cancel.
func (app *Application) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		app.prompt.Commit()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.prompt.Cancel()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		app.prompt.Backspace()
	case tcell.KeyRune:
		// The prompt assembles runes byte by byte; feed it the
		// encoding of what the terminal already decoded.
		for _, b := range textio.EncodeRune(nil, ev.Rune()) {
			app.prompt.Feed(b)
		}
	}
}

func (app *Application) execute(cmd inputui.Command) {
	app.notice = ""
	switch cmd.Op {
	case inputui.OpQuit:
		app.shouldQuit = true
	case inputui.OpScrollDown:
		app.win.ScrollDown(cmd.Lines)
	case inputui.OpScrollUp:
		app.win.ScrollUp(cmd.Lines)
	case inputui.OpPageDown:
		app.win.ScrollDown(app.pageLines(cmd.Frac))
	case inputui.OpPageUp:
		app.win.ScrollUp(app.pageLines(cmd.Frac))
	case inputui.OpTop:
		app.win.ScrollToTop()
	case inputui.OpBottom:
		app.win.ScrollToBottom()
	case inputui.OpSearchForward:
		app.promptSearch(false)
	case inputui.OpSearchBackward:
		app.promptSearch(true)
	case inputui.OpSearchNext:
		app.repeatSearch(app.lastBackward)
	case inputui.OpSearchPrev:
		app.repeatSearch(!app.lastBackward)
	case inputui.OpSuspend:
		app.suspendToShell()
	case inputui.OpRedraw:
		app.screen.Sync()
	}
	if err := app.win.InputErr(); err != nil && app.notice == "" {
		app.notice = "read error: " + err.Error()
	}
}

func (app *Application) pageLines(frac float64) int {
	n := int(frac * float64(app.win.Rows()))
	if n < 1 {
		n = 1
	}
	return n
}

func (app *Application) promptSearch(backward bool) {
	app.promptBackward = backward
	app.prompt.Activate(func(query []rune) {
		app.lastQuery = append(app.lastQuery[:0], query...)
		app.lastBackward = backward
		app.runSearch(query, backward)
	})
}

func (app *Application) repeatSearch(backward bool) {
	if len(app.lastQuery) == 0 {
		app.notice = "no previous search"
		return
	}
	app.runSearch(app.lastQuery, backward)
}

func (app *Application) runSearch(query []rune, backward bool) {
	var row int
	var found bool
	if backward {
		row, found = app.searcher.Backward(query, app.win.Top())
	} else {
		row, found = app.searcher.Forward(query, app.win.Top())
	}
	if !found {
		app.notice = "pattern not found: " + string(query)
		return
	}
	app.win.ScrollToMatch(row)
}

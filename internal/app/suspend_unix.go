//go:build !windows && !plan9 && !js && !wasip1

package app

import (
	"os"
	"syscall"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell returns terminal control to the shell and stops only this
// process, so job control in the launching shell keeps working.
func (app *Application) suspendToShell() {
	_ = app.screen.Suspend()
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() {
	if err := app.screen.Resume(); err != nil {
		return
	}
	app.screen.Sync()
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.win.Resize(h-1, w)
	}
}

//go:build windows || plan9 || js || wasip1

package app

import "os"

func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() {}

//go:build !windows && !plan9 && !js && !wasip1

package app

import (
	"github.com/gdamore/tcell/v2"
)

// newScreen opens the controlling terminal directly so stdin stays free for
// the content being paged.
func newScreen() (tcell.Screen, error) {
	tty, err := tcell.NewDevTtyFromDev("/dev/tty")
	if err != nil {
		return nil, err
	}
	return tcell.NewTerminfoScreenFromTty(tty)
}

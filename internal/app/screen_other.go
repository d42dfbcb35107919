//go:build windows || plan9 || js || wasip1

package app

import (
	"github.com/gdamore/tcell/v2"
)

func newScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

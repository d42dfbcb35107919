// Package input translates terminal key events into pager commands through
// a data-driven keybinding table.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Op identifies a pager operation.
type Op int

const (
	OpNone Op = iota
	OpQuit
	OpScrollDown
	OpScrollUp
	OpPageDown
	OpPageUp
	OpTop
	OpBottom
	OpSearchForward
	OpSearchBackward
	OpSearchNext
	OpSearchPrev
	OpSuspend
	OpRedraw
)

// Command is one keybinding target: an operation plus its numeric argument.
// Lines applies to the scroll operations, Frac to the page operations as a
// fraction of a screen.
type Command struct {
	Op    Op
	Lines int
	Frac  float64
}

var runeCommands = map[rune]Command{
	'j': {Op: OpScrollDown, Lines: 1},
	'k': {Op: OpScrollUp, Lines: 1},
	'g': {Op: OpTop},
	'G': {Op: OpBottom},
	'd': {Op: OpPageDown, Frac: 0.5},
	'u': {Op: OpPageUp, Frac: 0.5},
	'f': {Op: OpPageDown, Frac: 1},
	'b': {Op: OpPageUp, Frac: 1},
	' ': {Op: OpPageDown, Frac: 1},
	'/': {Op: OpSearchForward},
	'?': {Op: OpSearchBackward},
	'n': {Op: OpSearchNext},
	'N': {Op: OpSearchPrev},
	'q': {Op: OpQuit},
}

var keyCommands = map[tcell.Key]Command{
	tcell.KeyDown:  {Op: OpScrollDown, Lines: 1},
	tcell.KeyUp:    {Op: OpScrollUp, Lines: 1},
	tcell.KeyEnter: {Op: OpScrollDown, Lines: 1},
	tcell.KeyPgDn:  {Op: OpPageDown, Frac: 1},
	tcell.KeyPgUp:  {Op: OpPageUp, Frac: 1},
	tcell.KeyHome:  {Op: OpTop},
	tcell.KeyEnd:   {Op: OpBottom},
	tcell.KeyCtrlC: {Op: OpQuit},
	tcell.KeyCtrlZ: {Op: OpSuspend},
	tcell.KeyCtrlL: {Op: OpRedraw},
}

// Translate maps a key event to its bound command. The second result is
// false for unbound keys.
func Translate(ev *tcell.EventKey) (Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeCommands[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key()]
	return cmd, ok
}

package pager

import (
	"github.com/ianprime0509/spg/internal/textio"
)

// Prompt assembles a search query one input byte at a time. While active it
// owns all key input; the main loop routes everything here until the query
// is committed or cancelled.
type Prompt struct {
	query   []rune
	partial []byte
	active  bool
	action  func(query []rune)
}

// NewPrompt returns an inactive prompt.
func NewPrompt() *Prompt {
	return &Prompt{}
}

// Activate clears the prompt and arms it with the action to invoke on
// commit.
func (p *Prompt) Activate(action func(query []rune)) {
	p.query = p.query[:0]
	p.partial = p.partial[:0]
	p.action = action
	p.active = true
}

// Active reports whether the prompt is capturing input.
func (p *Prompt) Active() bool { return p.active }

// Query returns the runes accumulated so far.
func (p *Prompt) Query() []rune { return p.query }

// Column reports the display column after the accumulated query.
func (p *Prompt) Column() int { return len(p.query) }

// Feed consumes one byte of input. Once the byte completes a rune the rune
// is appended to the query and returned; until then the second result is
// false.
func (p *Prompt) Feed(b byte) (rune, bool) {
	p.partial = append(p.partial, b)
	if len(p.partial) < textio.SequenceLen(p.partial[0]) {
		return 0, false
	}
	r, _ := textio.DecodeRune(p.partial)
	p.partial = p.partial[:0]
	p.query = append(p.query, r)
	return r, true
}

// Backspace removes the last completed rune, dropping any partial bytes
// first.
func (p *Prompt) Backspace() {
	if len(p.partial) > 0 {
		p.partial = p.partial[:0]
		return
	}
	if len(p.query) > 0 {
		p.query = p.query[:len(p.query)-1]
	}
}

// Commit deactivates the prompt and invokes the armed action with the
// accumulated query.
func (p *Prompt) Commit() {
	p.active = false
	p.partial = p.partial[:0]
	if p.action != nil {
		p.action(p.query)
	}
}

// Cancel clears the query and deactivates without invoking the action.
func (p *Prompt) Cancel() {
	p.query = p.query[:0]
	p.partial = p.partial[:0]
	p.active = false
}

package textio

import (
	"io"
)

const pendingMax = 4 // longest UTF-8 sequence

// Input turns a byte source into a stream of runes. It buffers at most one
// partial multi-byte sequence across reads and supports a single rune of
// pushback. The zero value is not usable; call NewInput.
type Input struct {
	src     io.Reader
	pending [pendingMax]byte
	npend   int
	push    rune
	hasPush bool
	done    bool
	err     error
}

// NewInput wraps src. The reader is read in small top-up increments; it is
// never read past the bytes needed for the next rune plus a partial
// sequence.
func NewInput(src io.Reader) *Input {
	return &Input{src: src}
}

// GetRune returns the next rune from the stream. The second result is false
// once the stream is exhausted. Malformed bytes decode as Replacement, one
// byte at a time.
func (in *Input) GetRune() (rune, bool) {
	if in.hasPush {
		in.hasPush = false
		return in.push, true
	}

	in.topUp()
	if in.npend == 0 {
		return 0, false
	}

	r, size := DecodeRune(in.pending[:in.npend])
	copy(in.pending[:], in.pending[size:in.npend])
	in.npend -= size
	return r, true
}

// UngetRune stores r so the next GetRune returns it. Only one rune may be
// pushed back between calls to GetRune.
func (in *Input) UngetRune(r rune) {
	in.push = r
	in.hasPush = true
}

// AtEnd reports whether the stream is exhausted: no pushback, no pending
// bytes, and the source has signaled end-of-stream or failed.
func (in *Input) AtEnd() bool {
	if in.hasPush || in.npend > 0 {
		return false
	}
	in.topUp()
	return in.npend == 0 && in.done
}

// Err returns the source error that ended the stream, if any. A clean EOF
// returns nil.
func (in *Input) Err() error {
	return in.err
}

// topUp reads from the source until the pending queue holds a complete
// UTF-8 sequence or the source ends. It never reads past what the next rune
// needs, so a source that delivers few bytes at a time is only waited on
// when the queued bytes cannot decode on their own. A sequence truncated by
// the end of the source decodes as Replacement per the codec contract.
func (in *Input) topUp() {
	for !in.done {
		if in.npend > 0 && in.npend >= SequenceLen(in.pending[0]) {
			return
		}
		n, err := in.src.Read(in.pending[in.npend:])
		in.npend += n
		if err != nil {
			in.done = true
			if err != io.EOF {
				in.err = err
			}
			return
		}
		if n == 0 {
			// Nothing more right now; let the decoder work with what
			// is queued.
			return
		}
	}
}

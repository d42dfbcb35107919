// Package textio provides the streaming text layer of the pager: a
// resumable UTF-8 codec, a rune-oriented input wrapper with pushback, and
// an encoding-detecting byte source.
package textio

// Replacement is substituted for every byte sequence that fails to decode.
const Replacement rune = 0xFFFD

const (
	maxRune      = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// DecodeRune decodes the first UTF-8 encoded rune in data and reports how
// many bytes it consumed. Decoding never stalls: any failure, including a
// multi-byte sequence truncated by the end of data, consumes exactly one
// byte and yields Replacement so the caller can resynchronize on the next
// byte. Surrogate code points and overlong encodings are failures.
func DecodeRune(data []byte) (r rune, size int) {
	if len(data) == 0 {
		return Replacement, 0
	}

	b0 := data[0]
	var need int
	var min rune
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 < 0xC0: // stray continuation byte
		return Replacement, 1
	case b0 < 0xE0:
		r, need, min = rune(b0&0x1F), 2, 0x80
	case b0 < 0xF0:
		r, need, min = rune(b0&0x0F), 3, 0x800
	case b0 < 0xF8:
		r, need, min = rune(b0&0x07), 4, 0x10000
	default:
		return Replacement, 1
	}

	if len(data) < need {
		return Replacement, 1
	}
	for _, b := range data[1:need] {
		if b&0xC0 != 0x80 {
			return Replacement, 1
		}
		r = r<<6 | rune(b&0x3F)
	}
	if r < min || r > maxRune {
		return Replacement, 1
	}
	if r >= surrogateMin && r <= surrogateMax {
		return Replacement, 1
	}
	return r, need
}

// SequenceLen reports the length of the UTF-8 sequence introduced by the
// lead byte b, or 1 when b cannot start one (so malformed input still makes
// byte-by-byte progress).
func SequenceLen(b byte) int {
	switch {
	case b < 0xC0:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	default:
		return 1
	}
}

// EncodeRune appends the UTF-8 encoding of r to dst. Runes outside the
// Unicode scalar range (including surrogates) encode to nothing.
func EncodeRune(dst []byte, r rune) []byte {
	switch {
	case r < 0:
		return dst
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
	case r >= surrogateMin && r <= surrogateMax:
		return dst
	case r < 0x10000:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
	case r <= maxRune:
		return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12&0x3F), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
	default:
		return dst
	}
}

// EncodedLen reports the number of bytes EncodeRune would append for r,
// which is zero for values outside the scalar range.
func EncodedLen(r rune) int {
	switch {
	case r < 0:
		return 0
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r >= surrogateMin && r <= surrogateMax:
		return 0
	case r < 0x10000:
		return 3
	case r <= maxRune:
		return 4
	default:
		return 0
	}
}

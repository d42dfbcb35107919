package textio

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies the byte encoding detected at the head of a source.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8 bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// NewSource sniffs the byte-order mark at the head of r and returns a reader
// delivering plain UTF-8: a UTF-8 BOM is dropped, and UTF-16 content is
// transcoded. Sources without a BOM pass through untouched.
func NewSource(r io.Reader) (io.Reader, Encoding, error) {
	head := make([]byte, 3)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, EncodingUTF8, err
	}
	head = head[:n]

	switch enc := sniffBOM(head); enc {
	case EncodingUTF8BOM:
		return r, enc, nil
	case EncodingUTF16LE:
		rest := io.MultiReader(bytes.NewReader(head[2:]), r)
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(rest, dec), enc, nil
	case EncodingUTF16BE:
		rest := io.MultiReader(bytes.NewReader(head[2:]), r)
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(rest, dec), enc, nil
	default:
		return io.MultiReader(bytes.NewReader(head), r), EncodingUTF8, nil
	}
}

func sniffBOM(head []byte) Encoding {
	switch {
	case len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF:
		return EncodingUTF8BOM
	case len(head) >= 2 && head[0] == 0xFF && head[1] == 0xFE:
		return EncodingUTF16LE
	case len(head) >= 2 && head[0] == 0xFE && head[1] == 0xFF:
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

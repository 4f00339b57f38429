// This file contains length-prefixed string decoding: ASCII strings are
// copied out of a null-terminated sub-slice of the input (and marked
// Borrowed); UTF-16LE strings are decoded with
// golang.org/x/text/encoding/unicode, the same
// library family the teacher reaches for to decode Blizzard's EUC-KR
// strings in repparser.cString, just a different sibling subpackage for a
// different non-ASCII encoding.

package repparser

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/icza/rlrep/rep"
)

var utf16LEDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// text reads a length-prefixed string per the format's encoding rules: a
// positive prefix is an ASCII byte count (including the trailing NUL);
// a negative prefix is a UTF-16LE character count (including the
// trailing NUL character), stored as two bytes per character.
func (r *byteReader) text() (rep.Text, error) {
	n, err := r.takeI32LE()
	if err != nil {
		return rep.Text{}, err
	}
	if n == 0 {
		return rep.Text{Value: "", Borrowed: true}, nil
	}

	abs := int64(n)
	if abs < 0 {
		abs = -abs
	}
	if abs > maxStringChars {
		return rep.Text{}, &rep.ParseError{Kind: rep.ErrKindUnexpectedStringSize, Offset: r.pos, N: abs}
	}

	if n > 0 {
		raw, err := r.takeBytes(int(n))
		if err != nil {
			return rep.Text{}, err
		}
		// Trailing NUL is part of the byte count; strip it.
		s := raw
		if len(s) > 0 && s[len(s)-1] == 0 {
			s = s[:len(s)-1]
		}
		return rep.Text{Value: string(s), Borrowed: true}, nil
	}

	charCount := int(-n)
	byteLen := charCount * 2
	raw, err := r.takeBytes(byteLen)
	if err != nil {
		return rep.Text{}, err
	}
	decoded, err := utf16LEDecoder.Bytes(raw)
	if err != nil {
		return rep.Text{}, &rep.ParseError{Kind: rep.ErrKindUnexpectedStringSize, Offset: r.pos, N: abs, Cause: err}
	}
	s := string(decoded)
	// Trailing NUL character decodes to a single U+0000 rune; strip it.
	if len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return rep.Text{Value: s, Borrowed: false}, nil
}

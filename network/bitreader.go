// This file contains the bit-level reader the network stream is decoded
// through: little-endian, LSB-first, grounded in the bit-packing idiom
// other_examples/60a0465d_icza-s2prot__protocol.go's bitPackedBuff shows
// (readBits accumulating into a uint64 from the low end), adapted to this
// format's read_u32_max (a ceil-log2-width read capped at a maximum) and
// its aligned-byte read.

package network

import (
	"math"
	"math/bits"

	"golang.org/x/text/encoding/unicode"

	"github.com/icza/rlrep/rep"
)

var utf16LEDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// utf16LEDecode decodes raw UTF-16LE bytes into a Go string, reusing the
// same golang.org/x/text/encoding/unicode decoder repparser/text.go uses
// for header property strings, since the network stream's string encoding
// is byte-for-byte identical.
func utf16LEDecode(raw []byte) (string, error) {
	decoded, err := utf16LEDecoder.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// bitReader is a forward-only LSB-first bit cursor over a byte slice.
type bitReader struct {
	b      []byte
	bitPos int
}

func newBitReader(b []byte) *bitReader {
	return &bitReader{b: b}
}

func (r *bitReader) bitsRemaining() int {
	return len(r.b)*8 - r.bitPos
}

// atEnd reports whether the cursor has consumed every bit of the slice.
func (r *bitReader) atEnd() bool {
	return r.bitsRemaining() <= 0
}

func (r *bitReader) insufficient(needed int) error {
	return &rep.ParseError{
		Kind:   rep.ErrKindInsufficient,
		Offset: r.bitPos / 8,
		Needed: needed,
		Have:   r.bitsRemaining(),
	}
}

// readBit reads a single bit, LSB-first within each byte.
func (r *bitReader) readBit() (bool, error) {
	if r.bitsRemaining() < 1 {
		return false, r.insufficient(1)
	}
	byteIdx := r.bitPos / 8
	bitIdx := uint(r.bitPos % 8)
	v := (r.b[byteIdx] >> bitIdx) & 1
	r.bitPos++
	return v != 0, nil
}

// readU32 reads nbits (0..32) into a uint32, LSB-first.
func (r *bitReader) readU32(nbits int) (uint32, error) {
	if nbits < 0 || nbits > 32 {
		panic("network: readU32: nbits out of range")
	}
	if r.bitsRemaining() < nbits {
		return 0, r.insufficient(nbits)
	}
	var v uint32
	for i := 0; i < nbits; i++ {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v, nil
}

// readU32Max reads ceil(log2(max+1)) bits but caps the decoded value at
// max: a partial final value greater than max is clamped rather than
// rejected, matching the wire format's variable-width encoding of a value
// known to be bounded by max.
func (r *bitReader) readU32Max(max uint32) (uint32, error) {
	if max == 0 {
		return 0, nil
	}
	nbits := bits.Len32(max)
	v, err := r.readU32(nbits)
	if err != nil {
		return 0, err
	}
	if v > max {
		v = max
	}
	return v, nil
}

// readF32 reads 32 bits as an IEEE-754 binary32 float.
func (r *bitReader) readF32() (float32, error) {
	v, err := r.readU32(32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// readAlignedByte discards any bits remaining in the current byte, then
// reads the next whole byte.
func (r *bitReader) readAlignedByte() (byte, error) {
	if r.bitPos%8 != 0 {
		r.bitPos += 8 - r.bitPos%8
	}
	v, err := r.readU32(8)
	return byte(v), err
}

// readBytes reads n whole bytes assembled bit by bit, like readU32(8)
// repeated n times: it makes no assumption about the cursor's alignment,
// the same as every other read in this file (spec.md §4.6 documents only
// readAlignedByte as forcing byte alignment).
func (r *bitReader) readBytes(n int) ([]byte, error) {
	if n < 0 {
		panic("network: readBytes: negative length")
	}
	if r.bitsRemaining() < n*8 {
		return nil, r.insufficient(n * 8)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		v, err := r.readU32(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

// readString reads a length-prefixed string using the same ASCII/UTF-16LE
// encoding rules as the byte-oriented reader (spec.md §3). Like readU32, it
// makes no assumption about the cursor's bit alignment: the length prefix
// and string reads used inside the frame loop almost never land on a byte
// boundary (a stream id read via readU32Max rarely consumes a multiple of
// 8 bits), so this must work at any bit position.
func (r *bitReader) readString() (rep.Text, error) {
	nRaw, err := r.readU32(32)
	if err != nil {
		return rep.Text{}, err
	}
	n := int32(nRaw)
	if n == 0 {
		return rep.Text{Value: "", Borrowed: true}, nil
	}
	abs := int64(n)
	if abs < 0 {
		abs = -abs
	}
	if abs > 10<<20 {
		return rep.Text{}, &rep.ParseError{Kind: rep.ErrKindUnexpectedStringSize, Offset: r.bitPos / 8, N: abs}
	}
	if n > 0 {
		raw, err := r.readBytes(int(n))
		if err != nil {
			return rep.Text{}, err
		}
		s := raw
		if len(s) > 0 && s[len(s)-1] == 0 {
			s = s[:len(s)-1]
		}
		return rep.Text{Value: string(s), Borrowed: true}, nil
	}
	raw, err := r.readBytes(int(-n) * 2)
	if err != nil {
		return rep.Text{}, err
	}
	decoded, err := utf16LEDecode(raw)
	if err != nil {
		return rep.Text{}, &rep.ParseError{Kind: rep.ErrKindUnexpectedStringSize, Offset: r.bitPos / 8, N: abs, Cause: err}
	}
	if len(decoded) > 0 && decoded[len(decoded)-1] == 0 {
		decoded = decoded[:len(decoded)-1]
	}
	return rep.Text{Value: decoded, Borrowed: false}, nil
}

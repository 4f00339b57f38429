// This file contains the bounds-checked byte reader every decoder in this
// package reads through: a forward-only cursor over an immutable input
// buffer, grounded in the shape of the teacher's repparser/slicereader.go
// (a struct wrapping a slice with a position field and small fixed-width
// getters) but bounds-checked instead of panicking, since a replay buffer
// is untrusted input rather than the teacher's trusted game-client output.

package repparser

import (
	"encoding/binary"
	"math"

	"github.com/icza/rlrep/rep"
)

const (
	maxStringChars = 10 << 20
	maxListCount   = 1 << 20
)

// byteReader is a forward-only cursor over an immutable byte slice.
type byteReader struct {
	b   []byte
	pos int
}

func newByteReader(b []byte) *byteReader {
	return &byteReader{b: b}
}

// bytesRead returns the number of bytes consumed so far, for error location
// reporting.
func (r *byteReader) bytesRead() int {
	return r.pos
}

// remaining returns the number of unread bytes.
func (r *byteReader) remaining() int {
	return len(r.b) - r.pos
}

func (r *byteReader) need(n int) error {
	if n < 0 || n > r.remaining() {
		return &rep.ParseError{Kind: rep.ErrKindInsufficient, Offset: r.pos, Needed: n, Have: r.remaining()}
	}
	return nil
}

// takeBytes borrows the next n bytes and advances the cursor.
func (r *byteReader) takeBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	s := r.b[r.pos : r.pos+n]
	r.pos += n
	return s, nil
}

// viewBytes borrows the next n bytes without advancing the cursor, used for
// CRC windows.
func (r *byteReader) viewBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	return r.b[r.pos : r.pos+n], nil
}

func (r *byteReader) takeU32LE() (uint32, error) {
	s, err := r.takeBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s), nil
}

func (r *byteReader) takeI32LE() (int32, error) {
	v, err := r.takeU32LE()
	return int32(v), err
}

func (r *byteReader) takeU64LE() (uint64, error) {
	s, err := r.takeBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(s), nil
}

func (r *byteReader) takeI64LE() (int64, error) {
	v, err := r.takeU64LE()
	return int64(v), err
}

func (r *byteReader) takeF32LE() (float32, error) {
	v, err := r.takeU32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// listOf reads a u32 count, rejects counts exceeding maxListCount without
// allocating, then invokes f that many times, collecting results in order.
func listOf[T any](r *byteReader, f func(*byteReader) (T, error)) ([]T, error) {
	count, err := r.takeU32LE()
	if err != nil {
		return nil, err
	}
	if count > maxListCount {
		return nil, &rep.ParseError{Kind: rep.ErrKindListTooLarge, Offset: r.pos, N: int64(count)}
	}
	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := f(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

package repparser

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putI32(buf *bytes.Buffer, v int32) { putU32(buf, uint32(v)) }

func putF32(buf *bytes.Buffer, v float32) { putU32(buf, math.Float32bits(v)) }

// putASCII writes a length-prefixed ASCII string the way the format encodes
// one: a positive byte count including the trailing NUL, then the bytes,
// then the NUL itself.
func putASCII(buf *bytes.Buffer, s string) {
	putI32(buf, int32(len(s)+1))
	buf.WriteString(s)
	buf.WriteByte(0)
}

// TestKeyframeSliceScenario covers spec.md §8 Scenario 1: a 508-byte slice
// whose leading u32 is 42 followed by 42 (f32,i32,i32) records decodes to
// exactly 42 entries, consuming every byte.
func TestKeyframeSliceScenario(t *testing.T) {
	var buf bytes.Buffer
	const n = 42
	putU32(&buf, n)
	for i := 0; i < n; i++ {
		putF32(&buf, float32(i)*0.5)
		putI32(&buf, int32(i))
		putI32(&buf, int32(i*100))
	}
	if buf.Len() != 508 {
		t.Fatalf("test fixture itself is wrong: built %d bytes, want 508", buf.Len())
	}

	r := newByteReader(buf.Bytes())
	frames, err := listOf(r, decodeKeyFrame)
	if err != nil {
		t.Fatalf("decodeKeyFrame list: %v", err)
	}
	if len(frames) != n {
		t.Fatalf("got %d keyframes, want %d", len(frames), n)
	}
	if r.remaining() != 0 {
		t.Fatalf("%d bytes left unconsumed, want 0", r.remaining())
	}
	if frames[1].Frame != 1 || frames[1].FilePosition != 100 {
		t.Errorf("frame[1] = %+v, want Frame=1 FilePosition=100", frames[1])
	}
}

// TestTickMarksScenario covers spec.md §8 Scenario 2: a slice whose leading
// u32 is 7 followed by 7 (string,i32) pairs decodes to 7 entries, the first
// being ("Team1Goal", 396).
func TestTickMarksScenario(t *testing.T) {
	var buf bytes.Buffer
	putU32(&buf, 7)
	descs := []string{"Team1Goal", "Team0Goal", "Team1Goal", "Team0Goal", "Team1Goal", "Team0Goal", "Team1Goal"}
	frameNums := []int32{396, 512, 890, 1200, 1500, 1800, 2100}
	for i := range descs {
		putASCII(&buf, descs[i])
		putI32(&buf, frameNums[i])
	}

	r := newByteReader(buf.Bytes())
	marks, err := listOf(r, decodeTickMark)
	if err != nil {
		t.Fatalf("decodeTickMark list: %v", err)
	}
	if len(marks) != 7 {
		t.Fatalf("got %d tick marks, want 7", len(marks))
	}
	if marks[0].Description.Value != "Team1Goal" || marks[0].Frame != 396 {
		t.Errorf("marks[0] = %+v, want (\"Team1Goal\", 396)", marks[0])
	}
}

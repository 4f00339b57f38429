package network

import (
	"math"
	"testing"
)

func TestBitReaderU32Roundtrip(t *testing.T) {
	var w bitWriter
	w.writeU32(0b10110, 5)
	w.writeU32(0xDEADBEEF, 32)
	w.writeBit(true)
	w.writeBit(false)

	r := newBitReader(w.Bytes())
	v, err := r.readU32(5)
	if err != nil || v != 0b10110 {
		t.Fatalf("readU32(5) = %d, %v, want 0b10110, nil", v, err)
	}
	v, err = r.readU32(32)
	if err != nil || v != 0xDEADBEEF {
		t.Fatalf("readU32(32) = %#x, %v, want 0xDEADBEEF, nil", v, err)
	}
	b, err := r.readBit()
	if err != nil || !b {
		t.Fatalf("readBit() = %v, %v, want true, nil", b, err)
	}
	b, err = r.readBit()
	if err != nil || b {
		t.Fatalf("readBit() = %v, %v, want false, nil", b, err)
	}
}

func TestBitReaderU32MaxClampsWidth(t *testing.T) {
	var w bitWriter
	w.writeU32(1023, 10) // bits.Len32(1023) == 10
	r := newBitReader(w.Bytes())
	v, err := r.readU32Max(1023)
	if err != nil {
		t.Fatalf("readU32Max: %v", err)
	}
	if v != 1023 {
		t.Errorf("readU32Max(1023) = %d, want 1023", v)
	}
}

func TestBitReaderF32Roundtrip(t *testing.T) {
	var w bitWriter
	want := float32(3.5)
	w.writeU32(math.Float32bits(want), 32)
	r := newBitReader(w.Bytes())
	got, err := r.readF32()
	if err != nil || got != want {
		t.Fatalf("readF32() = %v, %v, want %v, nil", got, err, want)
	}
}

func TestBitReaderInsufficientData(t *testing.T) {
	r := newBitReader(nil)
	if _, err := r.readBit(); err == nil {
		t.Fatal("expected an insufficient-data error reading from an empty buffer")
	}
}

func TestReadQuantizedVectorRoundtrip(t *testing.T) {
	var w bitWriter
	numBitsRaw := uint32(10) // numBits = 10+2 = 12
	w.writeU32(numBitsRaw, 5)
	bias := uint32(1) << 11
	w.writeU32(bias+100, 12) // x = 100
	w.writeU32(bias-50, 12)  // y = -50
	w.writeU32(bias, 12)     // z = 0

	r := newBitReader(w.Bytes())
	vec, err := r.readQuantizedVector()
	if err != nil {
		t.Fatalf("readQuantizedVector: %v", err)
	}
	if vec.X != 100 || vec.Y != -50 || vec.Z != 0 {
		t.Errorf("vec = %+v, want {100 -50 0}", vec)
	}
}

// TestReadBytesUnaligned regresses the bug where readBytes required the
// cursor to already be byte-aligned: a stream-id read via readU32Max almost
// never consumes a multiple of 8 bits, so readBytes must assemble its
// output bit by bit starting from any position.
func TestReadBytesUnaligned(t *testing.T) {
	var w bitWriter
	w.writeU32(0b101, 3) // misalign the cursor by 3 bits
	w.writeU32(0xAB, 8)
	w.writeU32(0xCD, 8)

	r := newBitReader(w.Bytes())
	if _, err := r.readU32(3); err != nil {
		t.Fatalf("readU32(3): %v", err)
	}
	got, err := r.readBytes(2)
	if err != nil {
		t.Fatalf("readBytes: %v", err)
	}
	if len(got) != 2 || got[0] != 0xAB || got[1] != 0xCD {
		t.Errorf("readBytes(2) = %#v, want [0xAB 0xCD]", got)
	}
}

func TestReadBytesInsufficientData(t *testing.T) {
	r := newBitReader([]byte{0x01})
	if _, err := r.readBytes(4); err == nil {
		t.Fatal("expected an insufficient-data error")
	}
}

// TestReadStringUnalignedASCII regresses the same bug for readString's
// length-prefixed ASCII path, the one decodeString (used for
// "Engine.PlayerReplicationInfo:PlayerName") and decodePrivateMatchSettings
// rely on.
func TestReadStringUnalignedASCII(t *testing.T) {
	var w bitWriter
	w.writeU32(0b11, 2) // misalign the cursor by 2 bits
	w.writeU32(4, 32)   // ASCII length prefix: 4 bytes including trailing NUL
	for _, c := range []byte("abc\x00") {
		w.writeU32(uint32(c), 8)
	}

	r := newBitReader(w.Bytes())
	if _, err := r.readU32(2); err != nil {
		t.Fatalf("readU32(2): %v", err)
	}
	text, err := r.readString()
	if err != nil {
		t.Fatalf("readString: %v", err)
	}
	if text.Value != "abc" {
		t.Errorf("readString() = %q, want %q", text.Value, "abc")
	}
}

// TestReadStringUnalignedUTF16 covers the negative-length UTF-16LE branch
// from the same unaligned starting position.
func TestReadStringUnalignedUTF16(t *testing.T) {
	var w bitWriter
	w.writeU32(0b1, 1) // misalign the cursor by 1 bit
	w.writeU32(^uint32(1), 32) // UTF-16LE length prefix: int32 -2, i.e. 2 chars
	utf16Bytes := []byte{'h', 0, 0, 0}
	for _, b := range utf16Bytes {
		w.writeU32(uint32(b), 8)
	}

	r := newBitReader(w.Bytes())
	if _, err := r.readU32(1); err != nil {
		t.Fatalf("readU32(1): %v", err)
	}
	text, err := r.readString()
	if err != nil {
		t.Fatalf("readString: %v", err)
	}
	if text.Value != "h" {
		t.Errorf("readString() = %q, want %q", text.Value, "h")
	}
}

func TestReadAlignedByteSkipsPartialByte(t *testing.T) {
	var w bitWriter
	w.writeU32(0b101, 3) // partial byte, discarded by readAlignedByte
	w.writeAlignedByte(0x7F)

	r := newBitReader(w.Bytes())
	if _, err := r.readU32(3); err != nil {
		t.Fatalf("readU32(3): %v", err)
	}
	got, err := r.readAlignedByte()
	if err != nil {
		t.Fatalf("readAlignedByte: %v", err)
	}
	if got != 0x7F {
		t.Errorf("readAlignedByte() = %#x, want 0x7F", got)
	}
}

func TestReadRotatorPartialAxes(t *testing.T) {
	var w bitWriter
	w.writeBit(true)     // yaw present
	w.writeU32(128, 8)   // yaw raw: int8 -128
	w.writeBit(false)    // pitch absent
	w.writeBit(true)     // roll present
	w.writeU32(64, 8)    // roll raw

	r := newBitReader(w.Bytes())
	rot, err := r.readRotator()
	if err != nil {
		t.Fatalf("readRotator: %v", err)
	}
	if rot.Pitch != nil {
		t.Errorf("pitch = %v, want nil (absent)", *rot.Pitch)
	}
	if rot.Yaw == nil || *rot.Yaw != -128*rotatorScale {
		t.Errorf("yaw = %v, want %v", rot.Yaw, -128*rotatorScale)
	}
	if rot.Roll == nil || *rot.Roll != 64*rotatorScale {
		t.Errorf("roll = %v, want %v", rot.Roll, 64*rotatorScale)
	}
}

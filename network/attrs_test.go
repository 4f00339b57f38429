package network

import (
	"testing"

	"github.com/icza/rlrep/rep"
	"github.com/icza/rlrep/rep/attr"
)

func TestDecodeAttributeKnownName(t *testing.T) {
	var w bitWriter
	w.writeU32(42, 32)
	r := newBitReader(w.Bytes())

	got, err := decodeAttribute("Engine.TeamInfo:Score", r)
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	intAttr, ok := got.(attr.IntAttribute)
	if !ok {
		t.Fatalf("got %T, want attr.IntAttribute", got)
	}
	if intAttr.Value != 42 {
		t.Errorf("Value = %d, want 42", intAttr.Value)
	}
}

func TestDecodeAttributeUnknownName(t *testing.T) {
	r := newBitReader(nil)
	_, err := decodeAttribute("Some.Unregistered:Property", r)
	if err == nil {
		t.Fatal("expected an unknown-attribute error, got nil")
	}
	pe, ok := err.(*rep.ParseError)
	if !ok {
		t.Fatalf("error is %T, want *rep.ParseError", err)
	}
	if pe.Kind != rep.ErrKindUnknownAttribute {
		t.Errorf("error kind = %v, want ErrKindUnknownAttribute", pe.Kind)
	}
	if pe.Name != "Some.Unregistered:Property" {
		t.Errorf("Name = %q, want %q", pe.Name, "Some.Unregistered:Property")
	}
}

// TestDecodeStringAttributeUnaligned regresses the bug where decodeString
// (dispatched for "Engine.PlayerReplicationInfo:PlayerName", one of the
// most common attributes in any real replay) panicked unless the cursor
// happened to already be byte-aligned when it ran.
func TestDecodeStringAttributeUnaligned(t *testing.T) {
	var w bitWriter
	w.writeU32(0b101, 3) // a stream id read via readU32Max rarely lands byte-aligned
	w.writeU32(5, 32)    // ASCII length prefix: 5 bytes including trailing NUL
	for _, c := range []byte("Bob\x00\x00") {
		w.writeU32(uint32(c), 8)
	}

	r := newBitReader(w.Bytes())
	if _, err := r.readU32(3); err != nil {
		t.Fatalf("readU32(3): %v", err)
	}

	got, err := decodeAttribute("Engine.PlayerReplicationInfo:PlayerName", r)
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	strAttr, ok := got.(attr.StringAttribute)
	if !ok {
		t.Fatalf("got %T, want attr.StringAttribute", got)
	}
	if strAttr.Value != "Bob\x00" {
		t.Errorf("Value = %q, want %q", strAttr.Value, "Bob\x00")
	}
}

// TestDecodeUniqueIDAttributeUnaligned regresses the same bug for the
// raw-byte path: decodeUniqueID's r.readBytes call must work regardless of
// the cursor's alignment when the attribute dispatch runs.
func TestDecodeUniqueIDAttributeUnaligned(t *testing.T) {
	var w bitWriter
	w.writeU32(0b11, 2) // misalign the cursor before dispatch, as a real stream id would
	w.writeAlignedByte(0)    // platform id 0: Unknown, remote id length 8
	for i := 0; i < 8; i++ {
		w.writeU32(uint32(0x10+i), 8)
	}
	w.writeAlignedByte(3) // local player id

	r := newBitReader(w.Bytes())
	if _, err := r.readU32(2); err != nil {
		t.Fatalf("readU32(2): %v", err)
	}

	got, err := decodeAttribute("Engine.PlayerReplicationInfo:UniqueId", r)
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	uidAttr, ok := got.(attr.UniqueIDAttribute)
	if !ok {
		t.Fatalf("got %T, want attr.UniqueIDAttribute", got)
	}
	if len(uidAttr.RemoteID) != 8 || uidAttr.RemoteID[0] != 0x10 {
		t.Errorf("RemoteID = %#v, want 8 bytes starting 0x10", uidAttr.RemoteID)
	}
	if uidAttr.LocalPlayerID != 3 {
		t.Errorf("LocalPlayerID = %d, want 3", uidAttr.LocalPlayerID)
	}
}

func TestRemoteIDLengthByPlatform(t *testing.T) {
	cases := []struct {
		id   byte
		want int
	}{
		{2, 32}, // PlayStation
		{6, 32}, // NintendoSwitch
		{0, 8},  // Unknown
		{1, 8},  // Steam
	}
	for _, c := range cases {
		p := attr.PlatformByID(c.id)
		if got := remoteIDLength(p); got != c.want {
			t.Errorf("remoteIDLength(platform id %d) = %d, want %d", c.id, got, c.want)
		}
	}
}

package network

import (
	"math/bits"
	"testing"

	"github.com/icza/rlrep/rep"
	"github.com/icza/rlrep/rep/attr"
)

func replayWithNumFrames(n int32) *rep.Replay {
	return &rep.Replay{
		Properties: rep.Properties{{Name: "NumFrames", Kind: rep.PropertyKindInt, IntVal: n}},
	}
}

// TestTooManyFramesScenario covers spec.md §8 Scenario 6: a header frame
// count of 738,197,735 yields TooManyFrames(738197735) without allocating
// the frames slice.
func TestTooManyFramesScenario(t *testing.T) {
	replay := replayWithNumFrames(738197735)
	replay.NetworkData = []byte{}

	_, err := Decode(replay)
	if err == nil {
		t.Fatal("expected a too-many-frames error, got nil")
	}
	pe, ok := err.(*rep.ParseError)
	if !ok {
		t.Fatalf("error is %T, want *rep.ParseError", err)
	}
	if pe.Kind != rep.ErrKindTooManyFrames {
		t.Fatalf("error kind = %v, want ErrKindTooManyFrames", pe.Kind)
	}
	if pe.N != 738197735 {
		t.Errorf("N = %d, want 738197735", pe.N)
	}
}

// TestUnknownObjectIDScenario covers spec.md §8 Scenario 5: a network
// stream whose new-actor spawn references object id 1547 against a
// shorter objects table yields ObjectIdOutOfRange(1547).
func TestUnknownObjectIDScenario(t *testing.T) {
	replay := replayWithNumFrames(1)
	replay.Objects = make([]rep.Text, 3) // far shorter than object id 1547
	replay.NetCache = nil

	var w bitWriter
	w.writeU32(0, 32) // time
	w.writeU32(0, 32) // delta
	w.writeBit(true)  // an actor is present this frame

	maxChannels := uint32(replay.MaxChannels())
	w.writeU32(5, bits.Len32(maxChannels)) // actor id
	w.writeBit(true)                       // channel open
	w.writeBit(true)                       // new actor
	// NetVersion is nil, so no name id is read.
	w.writeBit(false)     // "unknown" bit, discarded
	w.writeU32(1547, 32) // class id, out of range against a 3-entry Objects table

	replay.NetworkData = w.Bytes()

	_, err := Decode(replay)
	if err == nil {
		t.Fatal("expected an object-id-out-of-range error, got nil")
	}
	pe, ok := err.(*rep.ParseError)
	if !ok {
		t.Fatalf("error is %T, want *rep.ParseError", err)
	}
	if pe.Kind != rep.ErrKindObjectIDOutOfRange {
		t.Fatalf("error kind = %v, want ErrKindObjectIDOutOfRange", pe.Kind)
	}
	if pe.ID != 1547 {
		t.Errorf("ID = %d, want 1547", pe.ID)
	}
}

// TestExistingActorAttributeUpdateScenario drives the frame loop's
// "existing actor" branch end to end: a spawn frame followed, within the
// same frame, by an attribute update on that actor via a stream-id-keyed
// dispatch. This is the path that almost never leaves the bit cursor
// byte-aligned before decodeAttribute runs, since the stream id immediately
// before it is read with readU32Max.
func TestExistingActorAttributeUpdateScenario(t *testing.T) {
	replay := replayWithNumFrames(1)
	replay.Objects = []rep.Text{
		{Value: "TAGame.GameEvent_Soccar_TA"}, // class name, not rotatable
		{Value: "Engine.TeamInfo:Score"},      // replicated property name
	}
	replay.NetCache = []rep.ClassNetCache{
		{
			ObjectID: 0, ParentID: 0, CacheID: 1,
			Properties: []rep.CacheProp{{ObjectID: 1, StreamID: 1}},
		},
	}

	maxChannels := uint32(replay.MaxChannels())
	actorIDBits := bits.Len32(maxChannels)

	var w bitWriter
	w.writeU32(0, 32) // time
	w.writeU32(0, 32) // delta

	// Spawn actor id 5 as class 0.
	w.writeBit(true)                 // an actor is present
	w.writeU32(5, actorIDBits)       // actor id
	w.writeBit(true)                 // channel open
	w.writeBit(true)                 // new actor
	// NetVersion is nil, so no name id is read.
	w.writeBit(false) // "unknown" bit, discarded
	w.writeU32(0, 32) // class id 0
	w.writeU32(0, 5)  // quantized vector: read_u32_max(19) raw -> num_bits = 2
	w.writeU32(2, 2)  // x = 0 (bias 2, value 2)
	w.writeU32(2, 2)  // y = 0
	w.writeU32(2, 2)  // z = 0
	// class 0 is not rotatable, so no rotator follows.

	// Update actor id 5's "Engine.TeamInfo:Score" attribute to 7.
	w.writeBit(true)           // the same actor is present again
	w.writeU32(5, actorIDBits) // actor id
	w.writeBit(true)           // channel open
	w.writeBit(false)          // not new: an existing-actor attribute update
	w.writeBit(true)           // an attribute follows
	w.writeU32(1, 1)           // stream id 1 (maxStreamID is 1, so 1 bit)
	w.writeU32(7, 32)          // Engine.TeamInfo:Score value
	w.writeBit(false)          // no more attributes this actor

	w.writeBit(false) // no more actors this frame

	replay.NetworkData = w.Bytes()

	frames, err := Decode(replay)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(frames.Frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames.Frames))
	}

	actors := frames.Frames[0].Actors
	if len(actors) != 2 {
		t.Fatalf("got %d actor events, want 2 (spawn + update)", len(actors))
	}
	if actors[0].Kind != rep.ActorStateSpawned {
		t.Errorf("actors[0].Kind = %v, want ActorStateSpawned", actors[0].Kind)
	}

	update := actors[1]
	if update.Kind != rep.ActorStateUpdated {
		t.Fatalf("actors[1].Kind = %v, want ActorStateUpdated", update.Kind)
	}
	if update.ActorID != 5 {
		t.Errorf("update.ActorID = %d, want 5", update.ActorID)
	}
	if update.StreamID != 1 {
		t.Errorf("update.StreamID = %d, want 1", update.StreamID)
	}
	intAttr, ok := update.Attribute.(attr.IntAttribute)
	if !ok {
		t.Fatalf("update.Attribute = %T, want attr.IntAttribute", update.Attribute)
	}
	if intAttr.Value != 7 {
		t.Errorf("update.Attribute.Value = %d, want 7", intAttr.Value)
	}
}

func TestIsRotatableClass(t *testing.T) {
	cases := map[string]bool{
		"TAGame.Ball_TA":             true,
		"TAGame.Car_TA":              true,
		"Archetypes.Ball.Ball_TA":    true,
		"TAGame.GameEvent_Soccar_TA": false,
		"TAGame.CrowdActor_TA":       false,
	}
	for name, want := range cases {
		if got := isRotatableClass(name); got != want {
			t.Errorf("isRotatableClass(%q) = %v, want %v", name, got, want)
		}
	}
}

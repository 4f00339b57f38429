// This file contains the types describing the replay body's footer tables:
// seek points, debug/tick annotations, and the asset and class-cache tables
// the network decoder needs to resolve actors to attribute decoders.

package rep

// KeyFrame is a seek point into the network stream.
type KeyFrame struct {
	// Time is the seconds-since-match-start this keyframe was recorded at.
	Time float32

	// Frame is the frame number of this keyframe.
	Frame int32

	// FilePosition is the byte offset into the network stream.
	FilePosition int32
}

// DebugInfo is a single engine-internal debug log entry.
type DebugInfo struct {
	// Frame the debug entry was recorded at.
	Frame int32

	// User is the name of the actor/system that emitted the entry.
	User Text

	// Text is the debug message itself.
	Text Text
}

// TickMark annotates a frame with a named game event (e.g. a goal).
type TickMark struct {
	// Description names the kind of event, e.g. "Team1Goal".
	Description Text

	// Frame the tick mark refers to.
	Frame int32
}

// ClassIndex maps a class name to the integer id used to reference it
// elsewhere in the body and in the network stream.
type ClassIndex struct {
	// ClassName is the fully qualified engine class name.
	ClassName Text

	// Index is the integer id, also a pointer into the Objects table.
	Index int32
}

// CacheProp maps one property of a class to the stream id the network
// stream uses to reference it.
type CacheProp struct {
	// ObjectID is an index into the Objects table naming the property.
	ObjectID int32

	// StreamID is the small integer the network stream uses for this
	// property within its owning class.
	StreamID int32
}

// ClassNetCache is one node of the class net-cache forest: the properties
// directly declared by a class, before inheriting its parent's.
type ClassNetCache struct {
	// ObjectID is an index into the Objects table naming the class.
	ObjectID int32

	// ParentID is the CacheID of this class's parent in the forest, or a
	// value absent from the forest if this is a root.
	ParentID int32

	// CacheID identifies this node for children's ParentID links.
	CacheID int32

	// Properties are the properties this class declares directly (not
	// including inherited ones - see ClassNetCache's effective set, which
	// is materialized by the network decoder's net-cache forest traversal).
	Properties []CacheProp
}

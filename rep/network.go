// This file contains the types describing the decoded network stream: an
// ordered sequence of frames, each a list of actor lifecycle events.

package rep

import "github.com/icza/rlrep/rep/attr"

// ActorStateKind discriminates the three things that can happen to an actor
// in a frame.
type ActorStateKind byte

const (
	// ActorStateSpawned means the actor was newly created this frame.
	ActorStateSpawned ActorStateKind = iota
	// ActorStateUpdated means an existing actor had an attribute replicated.
	ActorStateUpdated
	// ActorStateDeleted means the actor's channel was closed this frame.
	ActorStateDeleted
)

// ActorUpdate is one actor lifecycle event within a Frame.
type ActorUpdate struct {
	// Kind discriminates which of Spawned/Updated/Deleted this event is.
	Kind ActorStateKind

	// ActorID is the channel id, in [0, MaxChannels).
	ActorID int32

	// The following fields are only valid when Kind == ActorStateSpawned.

	// NameID is the index into Names for the actor's archetype name, when
	// the replay version carries it (-1 otherwise).
	NameID int32

	// ClassID is the index into Objects for the actor's class.
	ClassID int32

	// InitialLocation is the actor's spawn position.
	InitialLocation attr.Vector3f

	// InitialRotation is the actor's spawn rotation, for actor classes the
	// network stream flags as rotatable. Nil for non-rotatable classes.
	InitialRotation *attr.Rotator

	// Attribute is only valid when Kind == ActorStateUpdated: the decoded
	// value of the replicated property named by StreamID.
	Attribute attr.Attribute

	// StreamID is only valid when Kind == ActorStateUpdated: the class-
	// relative stream id the attribute was replicated under.
	StreamID int32
}

// Frame is one simulated tick's worth of actor create/update/delete events.
type Frame struct {
	// Time is the seconds elapsed since the match started.
	Time float32

	// Delta is the seconds elapsed since the previous frame.
	Delta float32

	// Actors are the lifecycle events that happened this frame, in
	// replication order.
	Actors []ActorUpdate
}

// NetworkFrames is the decoded network stream.
type NetworkFrames struct {
	// Frames is the ordered sequence of decoded frames.
	Frames []Frame
}

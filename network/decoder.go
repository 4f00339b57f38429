// This file contains the network stream's frame loop: the state machine
// that walks the bit-packed actor lifecycle events per spec.md §4.6,
// producing an ordered []rep.Frame. Grounded in the teacher's big
// switch-based repparser.parseCommands loop in shape (a sequential decode
// loop dispatching on a tag read from the stream), generalized from a
// command tag to the three-way spawn/update/delete actor state machine
// this format needs.

package network

import (
	"strings"

	"github.com/icza/rlrep/rep"
	"github.com/icza/rlrep/rep/attr"
)

const maxSaneFrameCount = 1 << 20

// liveActor tracks one currently-spawned actor's class resolution for the
// duration of the network stream.
type liveActor struct {
	classObjectID int32
	cache         *classCache
}

// Decode decodes replay's network-data window into an ordered sequence of
// frames. It is the network package's sole entry point, called from
// repparser's façade once the container, header and body have been
// decoded.
func Decode(replay *rep.Replay) (*rep.NetworkFrames, error) {
	numFrames := replay.NumFrames()
	if numFrames < 0 || int64(numFrames) > maxSaneFrameCount {
		return nil, &rep.ParseError{Kind: rep.ErrKindTooManyFrames, N: int64(numFrames)}
	}

	classCaches, err := buildClassCaches(replay.NetCache)
	if err != nil {
		return nil, err
	}

	r := newBitReader(replay.NetworkData)
	maxChannels := uint32(replay.MaxChannels())
	readNameID := replay.NetVersion != nil

	frames := make([]rep.Frame, 0, numFrames)
	live := make(map[int32]*liveActor)

	// numFrames == 0 means the header carried no "NumFrames" property;
	// decode until the buffer is exhausted rather than stopping at zero.
	for (numFrames == 0 || int32(len(frames)) < numFrames) && !r.atEnd() {
		frame, err := decodeFrame(r, replay, classCaches, live, maxChannels, readNameID)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return &rep.NetworkFrames{Frames: frames}, nil
}

func decodeFrame(r *bitReader, replay *rep.Replay, classCaches map[int32]*classCache, live map[int32]*liveActor, maxChannels uint32, readNameID bool) (rep.Frame, error) {
	time, err := r.readF32()
	if err != nil {
		return rep.Frame{}, err
	}
	delta, err := r.readF32()
	if err != nil {
		return rep.Frame{}, err
	}
	if time < 0 || delta < 0 || time >= 1e9 || delta >= 1e9 {
		return rep.Frame{}, &rep.ParseError{Kind: rep.ErrKindFrameCorrupt}
	}

	frame := rep.Frame{Time: time, Delta: delta}

	for {
		present, err := r.readBit()
		if err != nil {
			return rep.Frame{}, err
		}
		if !present {
			break
		}

		actorID, err := r.readU32Max(maxChannels)
		if err != nil {
			return rep.Frame{}, err
		}

		open, err := r.readBit()
		if err != nil {
			return rep.Frame{}, err
		}
		if !open {
			delete(live, int32(actorID))
			frame.Actors = append(frame.Actors, rep.ActorUpdate{Kind: rep.ActorStateDeleted, ActorID: int32(actorID)})
			continue
		}

		isNew, err := r.readBit()
		if err != nil {
			return rep.Frame{}, err
		}
		if isNew {
			update, actor, err := decodeNewActor(r, replay, classCaches, int32(actorID), readNameID)
			if err != nil {
				return rep.Frame{}, err
			}
			live[int32(actorID)] = actor
			frame.Actors = append(frame.Actors, update)
			continue
		}

		actor, ok := live[int32(actorID)]
		if !ok {
			return rep.Frame{}, &rep.ParseError{Kind: rep.ErrKindFrameCorrupt}
		}
		for {
			hasAttr, err := r.readBit()
			if err != nil {
				return rep.Frame{}, err
			}
			if !hasAttr {
				break
			}
			streamID, err := r.readU32Max(uint32(actor.cache.maxStreamID))
			if err != nil {
				return rep.Frame{}, err
			}
			objID, ok := actor.cache.streamToObjectID[int32(streamID)]
			if !ok {
				return rep.Frame{}, &rep.ParseError{Kind: rep.ErrKindUnknownAttribute, Name: "stream id has no property mapping"}
			}
			name, err := objectName(replay.Objects, objID)
			if err != nil {
				return rep.Frame{}, err
			}
			val, err := decodeAttribute(name, r)
			if err != nil {
				return rep.Frame{}, err
			}
			frame.Actors = append(frame.Actors, rep.ActorUpdate{
				Kind: rep.ActorStateUpdated, ActorID: int32(actorID),
				Attribute: val, StreamID: int32(streamID),
			})
		}
	}

	return frame, nil
}

func decodeNewActor(r *bitReader, replay *rep.Replay, classCaches map[int32]*classCache, actorID int32, readNameID bool) (rep.ActorUpdate, *liveActor, error) {
	var nameID int32 = -1
	if readNameID {
		v, err := r.readU32(32)
		if err != nil {
			return rep.ActorUpdate{}, nil, err
		}
		nameID = int32(v)
	}
	if _, err := r.readBit(); err != nil { // unknown flag bit, discarded
		return rep.ActorUpdate{}, nil, err
	}
	classIDRaw, err := r.readU32(32)
	if err != nil {
		return rep.ActorUpdate{}, nil, err
	}
	classID := int32(classIDRaw)

	if int(classID) < 0 || int(classID) >= len(replay.Objects) {
		return rep.ActorUpdate{}, nil, &rep.ParseError{Kind: rep.ErrKindObjectIDOutOfRange, ID: classID}
	}
	className := replay.Objects[classID].Value

	loc, err := r.readQuantizedVector()
	if err != nil {
		return rep.ActorUpdate{}, nil, err
	}

	var rot *attr.Rotator
	if isRotatableClass(className) {
		v, err := r.readRotator()
		if err != nil {
			return rep.ActorUpdate{}, nil, err
		}
		rot = &v
	}

	cache, ok := classCaches[classID]
	if !ok {
		return rep.ActorUpdate{}, nil, &rep.ParseError{Kind: rep.ErrKindObjectIDOutOfRange, ID: classID}
	}

	update := rep.ActorUpdate{
		Kind: rep.ActorStateSpawned, ActorID: actorID,
		NameID: nameID, ClassID: classID,
		InitialLocation: loc, InitialRotation: rot,
	}
	return update, &liveActor{classObjectID: classID, cache: cache}, nil
}

// isRotatableClass reports whether a spawned actor of this class carries
// an initial rotation on the wire. The physically simulated actors (the
// ball and cars) are rotatable; everything else (goals, boost pads, the
// game info actor, etc.) is not.
func isRotatableClass(className string) bool {
	return strings.Contains(className, "Ball_TA") || strings.Contains(className, "Car_TA")
}

func objectName(objects []rep.Text, id int32) (string, error) {
	if id < 0 || int(id) >= len(objects) {
		return "", &rep.ParseError{Kind: rep.ErrKindObjectIDOutOfRange, ID: id}
	}
	return objects[id].Value, nil
}

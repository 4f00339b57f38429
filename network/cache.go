// This file contains the class net-cache forest traversal: each class's
// effective stream-id→property-name table is the transitive union of its
// own declared properties and every ancestor's, preferring the child on a
// collision, per spec.md §4.6 and design note "Net-cache forest". Grounded
// in the teacher's ByID lookup-table pattern (rep/repcore/enums.go), but a
// tree walk instead of a flat slice scan since the net cache is a forest,
// not a flat enumeration.

package network

import "github.com/icza/rlrep/rep"

// classCache is one class's resolved dispatch table: the property name for
// every stream id reachable from this class (its own plus every ancestor's,
// child-preferred on collision).
type classCache struct {
	// objectID is the Objects-table index naming this class.
	objectID int32
	// streamToObjectID maps a stream id to the Objects-table index naming
	// the replicated property.
	streamToObjectID map[int32]int32
	// maxStreamID is the largest stream id this class's table knows about,
	// used to bound read_u32_max when decoding an existing actor's
	// updated-attribute stream ids.
	maxStreamID int32
}

// buildClassCaches resolves the net-cache forest into one classCache per
// node, keyed by the class's ObjectID (matching how class_id on the wire
// names a class: as a pointer into the same Objects table ClassNetCache and
// ClassIndex both reference).
func buildClassCaches(netCache []rep.ClassNetCache) (map[int32]*classCache, error) {
	byCacheID := make(map[int32]*rep.ClassNetCache, len(netCache))
	for i := range netCache {
		byCacheID[netCache[i].CacheID] = &netCache[i]
	}

	resolved := make(map[int32]*classCache, len(netCache))
	resolving := make(map[int32]bool, len(netCache))

	var resolve func(node *rep.ClassNetCache) (*classCache, error)
	resolve = func(node *rep.ClassNetCache) (*classCache, error) {
		if cc, ok := resolved[node.CacheID]; ok {
			return cc, nil
		}
		if resolving[node.CacheID] {
			return nil, &rep.ParseError{Kind: rep.ErrKindMalformedCache}
		}
		resolving[node.CacheID] = true
		defer delete(resolving, node.CacheID)

		merged := make(map[int32]int32)
		var maxStreamID int32
		if parent, ok := byCacheID[node.ParentID]; ok && node.ParentID != node.CacheID {
			parentCC, err := resolve(parent)
			if err != nil {
				return nil, err
			}
			for streamID, objID := range parentCC.streamToObjectID {
				merged[streamID] = objID
			}
			maxStreamID = parentCC.maxStreamID
		}
		for _, p := range node.Properties {
			merged[p.StreamID] = p.ObjectID
			if p.StreamID > maxStreamID {
				maxStreamID = p.StreamID
			}
		}

		cc := &classCache{objectID: node.ObjectID, streamToObjectID: merged, maxStreamID: maxStreamID}
		resolved[node.CacheID] = cc
		return cc, nil
	}

	byObjectID := make(map[int32]*classCache, len(netCache))
	for i := range netCache {
		cc, err := resolve(&netCache[i])
		if err != nil {
			return nil, err
		}
		byObjectID[cc.objectID] = cc
	}
	return byObjectID, nil
}

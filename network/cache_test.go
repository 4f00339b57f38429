package network

import (
	"testing"

	"github.com/icza/rlrep/rep"
)

func TestBuildClassCachesMergesAndPrefersChild(t *testing.T) {
	netCache := []rep.ClassNetCache{
		{
			ObjectID: 10, ParentID: 0, CacheID: 1,
			Properties: []rep.CacheProp{
				{ObjectID: 100, StreamID: 1},
				{ObjectID: 101, StreamID: 2},
			},
		},
		{
			ObjectID: 20, ParentID: 1, CacheID: 2,
			Properties: []rep.CacheProp{
				{ObjectID: 200, StreamID: 2}, // collides with parent's stream id 2
				{ObjectID: 201, StreamID: 3},
			},
		},
	}

	caches, err := buildClassCaches(netCache)
	if err != nil {
		t.Fatalf("buildClassCaches: %v", err)
	}

	child, ok := caches[20]
	if !ok {
		t.Fatal("expected a cache entry for ObjectID 20")
	}
	if child.streamToObjectID[1] != 100 {
		t.Errorf("stream 1 should inherit the parent's mapping (100), got %d", child.streamToObjectID[1])
	}
	if child.streamToObjectID[2] != 200 {
		t.Errorf("stream 2 should be overridden by the child's own mapping (200), got %d", child.streamToObjectID[2])
	}
	if child.streamToObjectID[3] != 201 {
		t.Errorf("stream 3 should carry the child's own mapping (201), got %d", child.streamToObjectID[3])
	}
	if child.maxStreamID != 3 {
		t.Errorf("maxStreamID = %d, want 3", child.maxStreamID)
	}
}

func TestBuildClassCachesDetectsCycle(t *testing.T) {
	netCache := []rep.ClassNetCache{
		{ObjectID: 1, ParentID: 2, CacheID: 1},
		{ObjectID: 2, ParentID: 1, CacheID: 2},
	}

	_, err := buildClassCaches(netCache)
	if err == nil {
		t.Fatal("expected a malformed-cache error for a cyclic parent chain, got nil")
	}
	pe, ok := err.(*rep.ParseError)
	if !ok {
		t.Fatalf("error is %T, want *rep.ParseError", err)
	}
	if pe.Kind != rep.ErrKindMalformedCache {
		t.Errorf("error kind = %v, want ErrKindMalformedCache", pe.Kind)
	}
}

// This file contains the body section decoder: level names, keyframe
// index, the raw network payload slice, debug log, tick marks, the
// package/object/name tables, the class-index map, and the class net-cache
// forest.

package repparser

import "github.com/icza/rlrep/rep"

type decodedBody struct {
	levels       []rep.Text
	keyFrames    []rep.KeyFrame
	networkData  []byte
	debugInfo    []rep.DebugInfo
	tickMarks    []rep.TickMark
	packages     []rep.Text
	objects      []rep.Text
	names        []rep.Text
	classIndices []rep.ClassIndex
	netCache     []rep.ClassNetCache
}

// decodeBody consumes the body window in the fixed sequence spec.md §4.4
// names.
func decodeBody(r *byteReader) (decodedBody, error) {
	var b decodedBody

	levels, err := listOf(r, func(r *byteReader) (rep.Text, error) { return r.text() })
	if err != nil {
		return b, rep.WithContext(err, "levels", r.bytesRead())
	}
	b.levels = levels

	keyFrames, err := listOf(r, decodeKeyFrame)
	if err != nil {
		return b, rep.WithContext(err, "key frame list", r.bytesRead())
	}
	b.keyFrames = keyFrames

	networkSize, err := r.takeU32LE()
	if err != nil {
		return b, rep.WithContext(err, "network size", r.bytesRead())
	}
	networkData, err := r.takeBytes(int(networkSize))
	if err != nil {
		return b, rep.WithContext(err, "network data", r.bytesRead())
	}
	b.networkData = networkData

	debugInfo, err := listOf(r, decodeDebugInfo)
	if err != nil {
		return b, rep.WithContext(err, "debug info", r.bytesRead())
	}
	b.debugInfo = debugInfo

	tickMarks, err := listOf(r, decodeTickMark)
	if err != nil {
		return b, rep.WithContext(err, "tick mark list", r.bytesRead())
	}
	b.tickMarks = tickMarks

	packages, err := listOf(r, func(r *byteReader) (rep.Text, error) { return r.text() })
	if err != nil {
		return b, rep.WithContext(err, "packages", r.bytesRead())
	}
	b.packages = packages

	objects, err := listOf(r, func(r *byteReader) (rep.Text, error) { return r.text() })
	if err != nil {
		return b, rep.WithContext(err, "objects", r.bytesRead())
	}
	b.objects = objects

	names, err := listOf(r, func(r *byteReader) (rep.Text, error) { return r.text() })
	if err != nil {
		return b, rep.WithContext(err, "names", r.bytesRead())
	}
	b.names = names

	classIndices, err := listOf(r, decodeClassIndex)
	if err != nil {
		return b, rep.WithContext(err, "class index list", r.bytesRead())
	}
	b.classIndices = classIndices

	netCache, err := listOf(r, decodeClassNetCache)
	if err != nil {
		return b, rep.WithContext(err, "class net cache", r.bytesRead())
	}
	b.netCache = netCache

	return b, nil
}

func decodeKeyFrame(r *byteReader) (rep.KeyFrame, error) {
	var kf rep.KeyFrame
	t, err := r.takeF32LE()
	if err != nil {
		return kf, err
	}
	f, err := r.takeI32LE()
	if err != nil {
		return kf, err
	}
	pos, err := r.takeI32LE()
	if err != nil {
		return kf, err
	}
	kf.Time, kf.Frame, kf.FilePosition = t, f, pos
	return kf, nil
}

func decodeDebugInfo(r *byteReader) (rep.DebugInfo, error) {
	var d rep.DebugInfo
	frame, err := r.takeI32LE()
	if err != nil {
		return d, err
	}
	user, err := r.text()
	if err != nil {
		return d, err
	}
	text, err := r.text()
	if err != nil {
		return d, err
	}
	d.Frame, d.User, d.Text = frame, user, text
	return d, nil
}

func decodeTickMark(r *byteReader) (rep.TickMark, error) {
	var tm rep.TickMark
	desc, err := r.text()
	if err != nil {
		return tm, err
	}
	frame, err := r.takeI32LE()
	if err != nil {
		return tm, err
	}
	tm.Description, tm.Frame = desc, frame
	return tm, nil
}

func decodeClassIndex(r *byteReader) (rep.ClassIndex, error) {
	var ci rep.ClassIndex
	name, err := r.text()
	if err != nil {
		return ci, err
	}
	idx, err := r.takeI32LE()
	if err != nil {
		return ci, err
	}
	ci.ClassName, ci.Index = name, idx
	return ci, nil
}

func decodeCacheProp(r *byteReader) (rep.CacheProp, error) {
	var cp rep.CacheProp
	objID, err := r.takeI32LE()
	if err != nil {
		return cp, err
	}
	streamID, err := r.takeI32LE()
	if err != nil {
		return cp, err
	}
	cp.ObjectID, cp.StreamID = objID, streamID
	return cp, nil
}

func decodeClassNetCache(r *byteReader) (rep.ClassNetCache, error) {
	var cnc rep.ClassNetCache
	objID, err := r.takeI32LE()
	if err != nil {
		return cnc, err
	}
	parentID, err := r.takeI32LE()
	if err != nil {
		return cnc, err
	}
	cacheID, err := r.takeI32LE()
	if err != nil {
		return cnc, err
	}
	props, err := listOf(r, decodeCacheProp)
	if err != nil {
		return cnc, err
	}
	cnc.ObjectID, cnc.ParentID, cnc.CacheID, cnc.Properties = objID, parentID, cacheID, props
	return cnc, nil
}

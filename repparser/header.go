// This file contains the header section decoder: versions, optional net
// version, game type, and the property tree.

package repparser

import "github.com/icza/rlrep/rep"

type decodedHeader struct {
	majorVersion int32
	minorVersion int32
	netVersion   *int32
	gameType     rep.Text
	properties   rep.Properties
}

// decodeHeader consumes the header window in order: major/minor version,
// an optional net version gated by the version-present predicate, the
// game type string, then a "None"-terminated property tree.
func decodeHeader(r *byteReader) (decodedHeader, error) {
	var h decodedHeader

	major, err := r.takeI32LE()
	if err != nil {
		return h, err
	}
	minor, err := r.takeI32LE()
	if err != nil {
		return h, err
	}
	h.majorVersion, h.minorVersion = major, minor

	if netVersionPresent(major, minor) {
		nv, err := r.takeI32LE()
		if err != nil {
			return h, err
		}
		h.netVersion = &nv
	}

	gameType, err := r.text()
	if err != nil {
		return h, err
	}
	h.gameType = gameType

	props, err := r.readProperties()
	if err != nil {
		return h, err
	}
	h.properties = props

	return h, nil
}

// netVersionPresent mirrors rep.netVersionPresent; kept here, not
// re-exported from rep, so repparser.decodeHeader and rep.Replay each
// read the predicate from the package that owns the shape it gates
// (rep's field, repparser's wire decode) without an import just for this
// one boolean.
func netVersionPresent(major, minor int32) bool {
	return major >= 868 && minor >= 18
}

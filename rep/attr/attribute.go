/*

Package attr implements the network stream's attribute value variants:
Rocket League replicates roughly a hundred distinct property shapes (booleans,
quantized vectors, pickups, demolitions, ...); this package models a subset
of them, the shapes the dispatch table in network/attrs.go decodes plus a
few generic scalar ones, each as its own Go type behind a single Attribute
interface, the way the teacher's
rep/repcmd package models SC:BW's command variants behind repcmd.Cmd.

The dispatch table mapping a replicated object name to the decoder that
produces one of these types lives in package network (network/attrs.go);
this package only holds the value shapes and their human-readable
formatting, with no knowledge of the bit-level wire format.

*/
package attr

import (
	"bytes"
	"fmt"
)

// Attribute is the common interface implemented by every decoded network
// attribute value.
type Attribute interface {
	// String returns a human-readable representation of the value.
	String() string
}

// Bytes is a []byte that JSON-marshals itself as a number array, the way
// the teacher's repcmd.Bytes does for unit tag lists.
type Bytes []byte

// MarshalJSON marshals the byte slice as a number array.
func (bs Bytes) MarshalJSON() ([]byte, error) {
	if bs == nil {
		return []byte("null"), nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(bs)*3))
	buf.WriteByte('[')
	for i, v := range bs {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprint(buf, v)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

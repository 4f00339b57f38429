// This file contains the geometry types produced by the network stream's
// quantized vector/rotator wire format: actor spawn locations/rotations and
// several attribute variants (rigid body state, pickups, demolitions) all
// share these shapes.

package attr

import "fmt"

// Vector3f is a 3-component vector decoded from a quantized network stream
// entry. Units are the game's raw network units, not meters.
type Vector3f struct {
	X, Y, Z float32
}

// String returns a string representation of the vector in the format:
//
//	"x=X, y=Y, z=Z"
func (v Vector3f) String() string {
	return fmt.Sprint("x=", v.X, ", y=", v.Y, ", z=", v.Z)
}

// Rotator is a 3-component rotation. Each component is independently
// optional: the network stream carries one presence bit per axis and omits
// components that didn't change.
type Rotator struct {
	Yaw, Pitch, Roll *float32
}

// String returns a string representation, omitting absent components.
func (r Rotator) String() string {
	f := func(v *float32) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	}
	return fmt.Sprint("yaw=", f(r.Yaw), ", pitch=", f(r.Pitch), ", roll=", f(r.Roll))
}

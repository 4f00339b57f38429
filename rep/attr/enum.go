// This file contains the small fixed vocabularies used by a few attribute
// variants, in the teacher's repcore.Enum style: a named value plus a wire
// id, with an UnknownEnum fallback so an unrecognized id never fails decode,
// only loses its friendly name.

package attr

import "fmt"

// Enum is the base / common part of the fixed-vocabulary types below.
type Enum struct {
	// Name of the entity.
	Name string
}

// String returns the string representation of the enum (the name).
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unrecognized entity with a name
// of the form "Unknown 0xID".
func UnknownEnum(id any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", id)}
}

// Platform identifies the storefront/platform an online unique id belongs
// to, carried by UniqueIDAttribute.
type Platform struct {
	Enum
	// ID as it appears on the wire.
	ID byte
}

// Platforms is an enumeration of the known platforms.
var Platforms = []*Platform{
	{Enum{"Unknown"}, 0},
	{Enum{"Steam"}, 1},
	{Enum{"PlayStation"}, 2},
	{Enum{"Xbox"}, 4},
	{Enum{"NintendoSwitch"}, 6},
	{Enum{"Epic"}, 7},
}

// PlatformByID returns the Platform for a given wire id, falling back to an
// Unknown-named Platform that preserves the id.
func PlatformByID(id byte) *Platform {
	for _, p := range Platforms {
		if p.ID == id {
			return p
		}
	}
	return &Platform{UnknownEnum(id), id}
}

// StatEventType names a match stat-event kind carried by StatEventAttribute
// (e.g. a save, an epic save, a goal assist).
type StatEventType struct {
	Enum
	// ID as it appears on the wire.
	ID int32
}

// StatEventTypes is an enumeration of the known stat event kinds.
var StatEventTypes = []*StatEventType{
	{Enum{"Goal"}, 0},
	{Enum{"Assist"}, 1},
	{Enum{"Save"}, 2},
	{Enum{"Shot"}, 3},
	{Enum{"Demolition"}, 4},
	{Enum{"EpicSave"}, 5},
	{Enum{"AerialGoal"}, 6},
	{Enum{"BicycleGoal"}, 7},
}

// StatEventTypeByID returns the StatEventType for a given wire id, falling
// back to an Unknown-named type that preserves the id.
func StatEventTypeByID(id int32) *StatEventType {
	if int(id) >= 0 && int(id) < len(StatEventTypes) {
		return StatEventTypes[id]
	}
	return &StatEventType{UnknownEnum(id), id}
}

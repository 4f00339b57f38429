// This file contains the string abstraction used throughout the replay
// value: replay strings are either ASCII (a null-terminated run of input
// bytes) or UTF-16LE (which decoding converts to UTF-8). Text hides the
// split behind a single type, the way the teacher hides engine/speed/race
// lookups behind a single Enum type.

package rep

import "encoding/json"

// Text is a replay string. Borrowed is true for strings stored in the ASCII
// form (the common case) and false for decoded UTF-16LE strings. In both
// cases Value is a Go string copied out of the input during decoding; it
// does not share storage with the input buffer.
type Text struct {
	// Value is the decoded string content.
	Value string

	// Borrowed tells whether the string was stored in the ASCII form,
	// whose bytes are taken over unchanged.
	Borrowed bool `json:"-"`
}

// String returns the decoded string content.
func (t Text) String() string {
	return t.Value
}

// MarshalJSON marshals a Text as its plain string value.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value)
}

// This file contains the property tree data model: an ordered, typed,
// terminator-delimited key/value map, recursive via Array and Struct values.

package rep

// PropertyKind identifies which of the property value variants a Property
// holds, the way repcore.Enum-based types identify a fixed vocabulary entry
// in the teacher.
type PropertyKind byte

// Possible values of PropertyKind.
const (
	// PropertyKindInt is a signed 32-bit integer value.
	PropertyKindInt PropertyKind = iota
	// PropertyKindQWord is a 64-bit integer value.
	PropertyKindQWord
	// PropertyKindFloat is a 32-bit floating point value.
	PropertyKindFloat
	// PropertyKindBool is a boolean value, stored on the wire as one byte.
	PropertyKindBool
	// PropertyKindStr is a string value.
	PropertyKindStr
	// PropertyKindName is a name-table reference stored as a string value.
	PropertyKindName
	// PropertyKindEnum is an (enum type, enum value) string pair.
	PropertyKindEnum
	// PropertyKindByte is a (type, value) string pair, or a single "None"
	// type string in its legacy single-string form.
	PropertyKindByte
	// PropertyKindArray is an array of nested property trees.
	PropertyKindArray
	// PropertyKindStruct is a single nested property tree.
	PropertyKindStruct
)

var propertyKindNames = [...]string{
	PropertyKindInt:    "IntProperty",
	PropertyKindQWord:  "QWordProperty",
	PropertyKindFloat:  "FloatProperty",
	PropertyKindBool:   "BoolProperty",
	PropertyKindStr:    "StrProperty",
	PropertyKindName:   "NameProperty",
	PropertyKindEnum:   "EnumProperty",
	PropertyKindByte:   "ByteProperty",
	PropertyKindArray:  "ArrayProperty",
	PropertyKindStruct: "StructProperty",
}

// String returns the replay wire name of the property kind.
func (k PropertyKind) String() string {
	if int(k) < len(propertyKindNames) {
		return propertyKindNames[k]
	}
	return "Unknown"
}

// Property is a single entry of a property tree: a key paired with one of
// the typed value variants. Only the field matching Kind is populated; the
// others are zero. This mirrors a tagged union using Go's nearest idiomatic
// equivalent - a kind discriminant plus one field per arm - rather than an
// interface{}, since every consumer needs to switch on Kind anyway and a
// flat struct keeps that a field read instead of a type assertion.
type Property struct {
	// Name is the property's key.
	Name string

	// Kind discriminates which of the fields below is valid.
	Kind PropertyKind

	// IntVal holds the value for PropertyKindInt.
	IntVal int32

	// QWordVal holds the value for PropertyKindQWord.
	QWordVal int64

	// FloatVal holds the value for PropertyKindFloat.
	FloatVal float32

	// BoolVal holds the value for PropertyKindBool.
	BoolVal bool

	// StrVal holds the value for PropertyKindStr and PropertyKindName.
	StrVal Text

	// EnumType and EnumValue hold the pair for PropertyKindEnum and
	// PropertyKindByte (for the legacy single-string Byte form, EnumType
	// holds that one string, "None", and EnumValue is empty).
	EnumType  Text
	EnumValue Text

	// Array holds the nested property trees for PropertyKindArray; each
	// element is itself an ordered property list (a "None"-terminated
	// scope).
	Array []Properties

	// Struct holds the nested property tree for PropertyKindStruct.
	Struct Properties
}

// Properties is an ordered list of Property values, in the order they
// appeared in the replay, up to (excluding) the terminating "None" key.
type Properties []Property

// Find returns the first property with the given name and whether it was
// found. Property trees may repeat a key (the "index" field on the wire
// exists for exactly this reason); Find always returns the first match,
// matching how every known replay producer only repeats a key when the
// first occurrence is the canonical one.
func (ps Properties) Find(name string) (Property, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Int returns the int32 value of the named property and whether it was
// found and of the right kind.
func (ps Properties) Int(name string) (int32, bool) {
	p, ok := ps.Find(name)
	if !ok || p.Kind != PropertyKindInt {
		return 0, false
	}
	return p.IntVal, true
}

// Float returns the float32 value of the named property and whether it was
// found and of the right kind.
func (ps Properties) Float(name string) (float32, bool) {
	p, ok := ps.Find(name)
	if !ok || p.Kind != PropertyKindFloat {
		return 0, false
	}
	return p.FloatVal, true
}

// Bool returns the bool value of the named property and whether it was
// found and of the right kind.
func (ps Properties) Bool(name string) (bool, bool) {
	p, ok := ps.Find(name)
	if !ok || p.Kind != PropertyKindBool {
		return false, false
	}
	return p.BoolVal, true
}

// Str returns the string value of the named Str/Name property and whether
// it was found and of the right kind.
func (ps Properties) Str(name string) (string, bool) {
	p, ok := ps.Find(name)
	if !ok || (p.Kind != PropertyKindStr && p.Kind != PropertyKindName) {
		return "", false
	}
	return p.StrVal.Value, true
}

// Arr returns the array value of the named Array property and whether it
// was found and of the right kind.
func (ps Properties) Arr(name string) ([]Properties, bool) {
	p, ok := ps.Find(name)
	if !ok || p.Kind != PropertyKindArray {
		return nil, false
	}
	return p.Array, true
}

// This file contains the recursive property-tree decoder: a "None"-
// terminated ordered map whose values dispatch on a type-tag string, the
// way the teacher dispatches repcmd decoding on repcmd.TypeByID but keyed
// by a string tag read off the wire instead of a byte constant.

package repparser

import "github.com/icza/rlrep/rep"

// readProperties decodes one property scope: repeatedly read a key, stop
// at the sentinel "None" key, otherwise decode one typed value and append
// it, continuing until "None" closes the scope.
func (r *byteReader) readProperties() (rep.Properties, error) {
	var props rep.Properties
	for {
		key, err := r.text()
		if err != nil {
			return nil, err
		}
		if key.Value == "None" {
			return props, nil
		}

		tag, err := r.text()
		if err != nil {
			return nil, err
		}

		// The size field is advisory only (spec design note (c)): it is
		// read and discarded, never used to skip.
		if _, err := r.takeU64LE(); err != nil {
			return nil, err
		}
		if _, err := r.takeU32LE(); err != nil {
			return nil, err
		}

		p := rep.Property{Name: key.Value}
		if err := r.readPropertyValue(tag.Value, &p); err != nil {
			return nil, err
		}
		props = append(props, p)
	}
}

func (r *byteReader) readPropertyValue(tag string, p *rep.Property) error {
	switch tag {
	case "IntProperty":
		p.Kind = rep.PropertyKindInt
		v, err := r.takeI32LE()
		p.IntVal = v
		return err
	case "QWordProperty":
		p.Kind = rep.PropertyKindQWord
		v, err := r.takeI64LE()
		p.QWordVal = v
		return err
	case "FloatProperty":
		p.Kind = rep.PropertyKindFloat
		v, err := r.takeF32LE()
		p.FloatVal = v
		return err
	case "BoolProperty":
		p.Kind = rep.PropertyKindBool
		b, err := r.takeBytes(1)
		if err != nil {
			return err
		}
		p.BoolVal = b[0] != 0
		return nil
	case "StrProperty":
		p.Kind = rep.PropertyKindStr
		v, err := r.text()
		p.StrVal = v
		return err
	case "NameProperty":
		p.Kind = rep.PropertyKindName
		v, err := r.text()
		p.StrVal = v
		return err
	case "ByteProperty":
		p.Kind = rep.PropertyKindByte
		enumType, err := r.text()
		if err != nil {
			return err
		}
		// The legacy single-string form has no paired value string; a
		// byte property whose enum type is itself "None" carries no
		// second string, matching original_source/parser.rs's handling
		// of the legacy Byte encoding.
		if enumType.Value == "None" {
			p.EnumType = enumType
			return nil
		}
		value, err := r.text()
		if err != nil {
			return err
		}
		p.EnumType = enumType
		p.EnumValue = value
		return nil
	case "EnumProperty":
		p.Kind = rep.PropertyKindEnum
		enumType, err := r.text()
		if err != nil {
			return err
		}
		value, err := r.text()
		if err != nil {
			return err
		}
		p.EnumType = enumType
		p.EnumValue = value
		return nil
	case "ArrayProperty":
		p.Kind = rep.PropertyKindArray
		count, err := r.takeU32LE()
		if err != nil {
			return err
		}
		if count > maxListCount {
			return &rep.ParseError{Kind: rep.ErrKindListTooLarge, Offset: r.pos, N: int64(count)}
		}
		arr := make([]rep.Properties, 0, count)
		for i := uint32(0); i < count; i++ {
			scope, err := r.readProperties()
			if err != nil {
				return err
			}
			arr = append(arr, scope)
		}
		p.Array = arr
		return nil
	case "StructProperty":
		p.Kind = rep.PropertyKindStruct
		// A StructProperty value is itself named by a type string before
		// its nested property scope; the type name is not part of the
		// data model (spec.md §3 only models the nested tree), so it is
		// read and discarded here, mirroring how the size/index fields
		// above are read and discarded.
		if _, err := r.text(); err != nil {
			return err
		}
		scope, err := r.readProperties()
		if err != nil {
			return err
		}
		p.Struct = scope
		return nil
	default:
		return &rep.ParseError{Kind: rep.ErrKindUnknownProperty, Offset: r.pos, Name: tag}
	}
}

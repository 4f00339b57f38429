// This file contains quantized vector and rotator decoding, the network
// stream's two fixed geometry encodings, grounded in spec.md §4.6's
// variable-bit-width scheme.

package network

import "github.com/icza/rlrep/rep/attr"

// readQuantizedVector reads a vector whose component bit width is itself
// encoded on the wire: num_bits = read_u32_max(19) + 2, then three signed
// components of num_bits bits each, decoded as value - (1 << (num_bits-1)).
func (r *bitReader) readQuantizedVector() (attr.Vector3f, error) {
	raw, err := r.readU32Max(19)
	if err != nil {
		return attr.Vector3f{}, err
	}
	numBits := int(raw) + 2

	bias := uint32(1) << uint(numBits-1)
	readComponent := func() (float32, error) {
		v, err := r.readU32(numBits)
		if err != nil {
			return 0, err
		}
		return float32(int64(v) - int64(bias)), nil
	}

	x, err := readComponent()
	if err != nil {
		return attr.Vector3f{}, err
	}
	y, err := readComponent()
	if err != nil {
		return attr.Vector3f{}, err
	}
	z, err := readComponent()
	if err != nil {
		return attr.Vector3f{}, err
	}
	return attr.Vector3f{X: x, Y: y, Z: z}, nil
}

// rotatorScale converts an 8-bit signed rotation component to degrees: the
// wire format scales a full 256-step turn to 360 degrees.
const rotatorScale = 360.0 / 256.0

// readRotator reads a rotator: one presence bit per axis (yaw, pitch,
// roll), each present component a signed 8-bit value scaled by
// rotatorScale. Absent components are left nil.
func (r *bitReader) readRotator() (attr.Rotator, error) {
	var rot attr.Rotator
	readAxis := func() (*float32, error) {
		present, err := r.readBit()
		if err != nil {
			return nil, err
		}
		if !present {
			return nil, nil
		}
		raw, err := r.readU32(8)
		if err != nil {
			return nil, err
		}
		deg := float32(int8(raw)) * rotatorScale
		return &deg, nil
	}

	yaw, err := readAxis()
	if err != nil {
		return rot, err
	}
	pitch, err := readAxis()
	if err != nil {
		return rot, err
	}
	roll, err := readAxis()
	if err != nil {
		return rot, err
	}
	rot.Yaw, rot.Pitch, rot.Roll = yaw, pitch, roll
	return rot, nil
}

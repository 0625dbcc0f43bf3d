// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canon converts raw oracle bytes into the comparison domain used
// by the emitted assertions: decoded semantic values for integer, bool,
// enum, bytes and string kinds (zig-zag unwrapped where applicable), and
// raw IEEE 754 bit patterns for the float kinds. Bit patterns sidestep both
// NaN inequality and cross-platform rounding divergence.
package canon

import (
	"encoding/binary"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/wiregolden/wiregolden/internal/scalar"
)

// ErrMalformedOutput is returned when oracle bytes cannot be decoded as a
// single occurrence of the expected field.
var ErrMalformedOutput = errors.New("canon: malformed oracle output")

// FloatBits extracts the raw 32-bit pattern of a float payload. It skips
// exactly one leading tag byte, which is valid because the corpus only uses
// single-digit field numbers, and fails if fewer than 5 bytes are present.
func FloatBits(raw []byte) (uint32, error) {
	if len(raw) < 5 {
		return 0, fmt.Errorf("%w: float encoding is %d bytes, need 5", ErrMalformedOutput, len(raw))
	}
	return binary.LittleEndian.Uint32(raw[1:5]), nil
}

// DoubleBits extracts the raw 64-bit pattern of a double payload, skipping
// one leading tag byte and failing if fewer than 9 bytes are present.
func DoubleBits(raw []byte) (uint64, error) {
	if len(raw) < 9 {
		return 0, fmt.Errorf("%w: double encoding is %d bytes, need 9", ErrMalformedOutput, len(raw))
	}
	return binary.LittleEndian.Uint64(raw[1:9]), nil
}

// Scalar decodes raw oracle bytes holding exactly one occurrence of field
// number 1 of the given kind and returns its canonical value: the semantic
// value for most kinds, or the bit pattern for Float and Double.
func Scalar(kind scalar.Kind, raw []byte) (any, error) {
	if kind.Bits() {
		if kind == scalar.Float {
			v, err := FloatBits(raw)
			return v, err
		}
		v, err := DoubleBits(raw)
		return v, err
	}

	num, typ, n := protowire.ConsumeTag(raw)
	if n < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, protowire.ParseError(n))
	}
	if num != 1 || typ != protowire.Type(kind.WireType()) {
		return nil, fmt.Errorf("%w: got tag (%v, %v), want (1, %v)", ErrMalformedOutput, num, typ, kind.WireType())
	}
	raw = raw[n:]

	var v any
	switch kind {
	case scalar.Int32:
		u, m := protowire.ConsumeVarint(raw)
		v, n = int32(u), m
	case scalar.Int64:
		u, m := protowire.ConsumeVarint(raw)
		v, n = int64(u), m
	case scalar.Uint32:
		u, m := protowire.ConsumeVarint(raw)
		v, n = uint32(u), m
	case scalar.Uint64:
		u, m := protowire.ConsumeVarint(raw)
		v, n = u, m
	case scalar.Sint32:
		u, m := protowire.ConsumeVarint(raw)
		v, n = int32(protowire.DecodeZigZag(u&0xffffffff)), m
	case scalar.Sint64:
		u, m := protowire.ConsumeVarint(raw)
		v, n = protowire.DecodeZigZag(u), m
	case scalar.Bool:
		u, m := protowire.ConsumeVarint(raw)
		v, n = u != 0, m
	case scalar.Enum:
		u, m := protowire.ConsumeVarint(raw)
		v, n = uint32(u), m
	case scalar.Fixed32:
		u, m := protowire.ConsumeFixed32(raw)
		v, n = u, m
	case scalar.Fixed64:
		u, m := protowire.ConsumeFixed64(raw)
		v, n = u, m
	case scalar.Sfixed32:
		u, m := protowire.ConsumeFixed32(raw)
		v, n = int32(u), m
	case scalar.Sfixed64:
		u, m := protowire.ConsumeFixed64(raw)
		v, n = int64(u), m
	case scalar.Bytes:
		u, m := protowire.ConsumeBytes(raw)
		v, n = append([]byte(nil), u...), m
	case scalar.String:
		u, m := protowire.ConsumeBytes(raw)
		v, n = string(u), m
	default:
		return nil, fmt.Errorf("%w: kind %v", scalar.ErrUnsupportedKind, int(kind))
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, protowire.ParseError(n))
	}
	if len(raw) != n {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedOutput, len(raw)-n)
	}
	return v, nil
}

// PackedSint32 decodes a packed sint32 region (the payload of one
// length-delimited field, framing already removed) into its ordered
// element sequence.
func PackedSint32(payload []byte) ([]int32, error) {
	var out []int32
	for len(payload) > 0 {
		u, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, protowire.ParseError(n))
		}
		out = append(out, int32(protowire.DecodeZigZag(u&0xffffffff)))
		payload = payload[n:]
	}
	return out, nil
}

// PackedDouble decodes a packed double region into its ordered bit-pattern
// sequence.
func PackedDouble(payload []byte) ([]uint64, error) {
	var out []uint64
	for len(payload) > 0 {
		u, n := protowire.ConsumeFixed64(payload)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, protowire.ParseError(n))
		}
		out = append(out, u)
		payload = payload[n:]
	}
	return out, nil
}

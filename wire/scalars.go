// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"math"
	"unicode/utf8"
)

// Sint32 is an int32 that travels zig-zag encoded on the wire.
// The distinct type keeps the zig-zag domain from mixing with plain varints.
type Sint32 int32

// Sint64 is an int64 that travels zig-zag encoded on the wire.
type Sint64 int64

// Enum is an open enum value. Enums decode through this wrapper rather than
// a bare integer so that a caller must deliberately convert to its own
// closed enum type.
type Enum uint32

// AppendInt32 appends v to b as a varint-encoded int32.
// Negative values are sign-extended to ten bytes.
func AppendInt32(b []byte, v int32) []byte {
	return AppendVarint(b, uint64(int64(v)))
}

// ConsumeInt32 parses b as a varint-encoded int32, reporting its length.
func ConsumeInt32(b []byte) (int32, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, n
	}
	return int32(v), n
}

// AppendInt64 appends v to b as a varint-encoded int64.
func AppendInt64(b []byte, v int64) []byte {
	return AppendVarint(b, uint64(v))
}

// ConsumeInt64 parses b as a varint-encoded int64, reporting its length.
func ConsumeInt64(b []byte) (int64, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, n
	}
	return int64(v), n
}

// AppendUint32 appends v to b as a varint-encoded uint32.
func AppendUint32(b []byte, v uint32) []byte {
	return AppendVarint(b, uint64(v))
}

// ConsumeUint32 parses b as a varint-encoded uint32, reporting its length.
func ConsumeUint32(b []byte) (uint32, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, n
	}
	return uint32(v), n
}

// AppendUint64 appends v to b as a varint-encoded uint64.
func AppendUint64(b []byte, v uint64) []byte {
	return AppendVarint(b, v)
}

// ConsumeUint64 parses b as a varint-encoded uint64, reporting its length.
func ConsumeUint64(b []byte) (uint64, int) {
	return ConsumeVarint(b)
}

// AppendSint32 appends v to b as a zig-zag varint-encoded int32.
func AppendSint32(b []byte, v Sint32) []byte {
	return AppendVarint(b, uint64(uint32(v)<<1^uint32(v>>31)))
}

// ConsumeSint32 parses b as a zig-zag varint-encoded int32, reporting its length.
func ConsumeSint32(b []byte) (Sint32, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, n
	}
	return Sint32(DecodeZigZag(v & math.MaxUint32)), n
}

// AppendSint64 appends v to b as a zig-zag varint-encoded int64.
func AppendSint64(b []byte, v Sint64) []byte {
	return AppendVarint(b, EncodeZigZag(int64(v)))
}

// ConsumeSint64 parses b as a zig-zag varint-encoded int64, reporting its length.
func ConsumeSint64(b []byte) (Sint64, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, n
	}
	return Sint64(DecodeZigZag(v)), n
}

// AppendBool appends v to b as a varint-encoded bool.
func AppendBool(b []byte, v bool) []byte {
	if v {
		return AppendVarint(b, 1)
	}
	return AppendVarint(b, 0)
}

// ConsumeBool parses b as a varint-encoded bool, reporting its length.
// Any non-zero varint is true.
func ConsumeBool(b []byte) (bool, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return false, n
	}
	return v != 0, n
}

// AppendEnum appends v to b as a varint-encoded enum.
func AppendEnum(b []byte, v Enum) []byte {
	return AppendVarint(b, uint64(v))
}

// ConsumeEnum parses b as a varint-encoded enum, reporting its length.
func ConsumeEnum(b []byte) (Enum, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, n
	}
	return Enum(v), n
}

// AppendSfixed32 appends v to b as a little-endian int32.
func AppendSfixed32(b []byte, v int32) []byte {
	return AppendFixed32(b, uint32(v))
}

// ConsumeSfixed32 parses b as a little-endian int32, reporting its length.
func ConsumeSfixed32(b []byte) (int32, int) {
	v, n := ConsumeFixed32(b)
	return int32(v), n
}

// AppendSfixed64 appends v to b as a little-endian int64.
func AppendSfixed64(b []byte, v int64) []byte {
	return AppendFixed64(b, uint64(v))
}

// ConsumeSfixed64 parses b as a little-endian int64, reporting its length.
func ConsumeSfixed64(b []byte) (int64, int) {
	v, n := ConsumeFixed64(b)
	return int64(v), n
}

// AppendFloat appends v to b as a little-endian IEEE 754 single.
func AppendFloat(b []byte, v float32) []byte {
	return AppendFixed32(b, math.Float32bits(v))
}

// ConsumeFloat parses b as a little-endian IEEE 754 single, reporting its length.
// The exact bit pattern is preserved, including NaN payloads.
func ConsumeFloat(b []byte) (float32, int) {
	v, n := ConsumeFixed32(b)
	return math.Float32frombits(v), n
}

// AppendDouble appends v to b as a little-endian IEEE 754 double.
func AppendDouble(b []byte, v float64) []byte {
	return AppendFixed64(b, math.Float64bits(v))
}

// ConsumeDouble parses b as a little-endian IEEE 754 double, reporting its length.
func ConsumeDouble(b []byte) (float64, int) {
	v, n := ConsumeFixed64(b)
	return math.Float64frombits(v), n
}

// AppendString appends v to b as a length-prefixed string.
func AppendString(b []byte, v string) []byte {
	return append(AppendVarint(b, uint64(len(v))), v...)
}

// ConsumeString parses b as a length-prefixed string, reporting its length.
// This returns errCodeInvalidUTF8 if the payload is not valid UTF-8.
func ConsumeString(b []byte) (string, int) {
	v, n := ConsumeBytes(b)
	if n < 0 {
		return "", n
	}
	if !utf8.Valid(v) {
		return "", errCodeInvalidUTF8
	}
	return string(v), n
}

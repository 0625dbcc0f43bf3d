// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements the low-level protobuf wire format.
//
// The package follows an append/consume convention: Append functions
// append an encoded value to a byte slice, while Consume functions parse
// a value from the front of a byte slice and report the number of bytes
// consumed. A negative length from a Consume function indicates an error,
// which can be converted to a concrete error with ParseError.
package wire

import (
	"errors"
	"math/bits"
)

// Number represents the field number.
type Number int32

// MinValidNumber and MaxValidNumber bound the range of valid field numbers.
const (
	MinValidNumber Number = 1
	MaxValidNumber Number = 1<<29 - 1
)

// IsValid reports whether the field number is semantically valid.
func (n Number) IsValid() bool {
	return MinValidNumber <= n && n <= MaxValidNumber
}

// Type represents the wire type.
type Type int8

const (
	VarintType  Type = 0
	Fixed64Type Type = 1
	BytesType   Type = 2
	Fixed32Type Type = 5
)

// Error values distinguishable with errors.Is.
var (
	// ErrTruncated means the input ended before a complete value was read.
	ErrTruncated = errors.New("wire: truncated stream")
	// ErrReservedWireType means a tag carried a wire type with no defined
	// encoding (3, 4, 6, or 7).
	ErrReservedWireType = errors.New("wire: reserved wire type")
	// ErrFieldNumber means a tag carried a field number outside the valid range.
	ErrFieldNumber = errors.New("wire: invalid field number")
	// ErrOverflow means a varint did not terminate within ten bytes.
	ErrOverflow = errors.New("wire: variable length integer overflow")
	// ErrInvalidUTF8 means a string payload was not valid UTF-8.
	ErrInvalidUTF8 = errors.New("wire: invalid UTF-8")
)

const (
	errCodeTruncated = -(iota + 1)
	errCodeReservedWireType
	errCodeFieldNumber
	errCodeOverflow
	errCodeInvalidUTF8
)

// ParseError converts an error code into an error value.
// The input must be negative.
func ParseError(n int) error {
	if n >= 0 {
		panic("wire: invalid error code")
	}
	switch n {
	case errCodeReservedWireType:
		return ErrReservedWireType
	case errCodeFieldNumber:
		return ErrFieldNumber
	case errCodeOverflow:
		return ErrOverflow
	case errCodeInvalidUTF8:
		return ErrInvalidUTF8
	default:
		return ErrTruncated
	}
}

// AppendTag appends a varint-encoded field number and wire type to b.
func AppendTag(b []byte, num Number, typ Type) []byte {
	return AppendVarint(b, EncodeTag(num, typ))
}

// ConsumeTag parses b as a varint-encoded tag, reporting its length.
// This returns a negative length upon an error (see ParseError).
func ConsumeTag(b []byte) (Number, Type, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, 0, n
	}
	num, typ := DecodeTag(v)
	if num < MinValidNumber {
		return 0, 0, errCodeFieldNumber
	}
	switch typ {
	case VarintType, Fixed64Type, BytesType, Fixed32Type:
	default:
		return 0, 0, errCodeReservedWireType
	}
	return num, typ, n
}

// EncodeTag encodes the field number and wire type into its unified form.
func EncodeTag(num Number, typ Type) uint64 {
	return uint64(num)<<3 | uint64(typ&7)
}

// DecodeTag decodes the field number and wire type from its unified form.
func DecodeTag(x uint64) (Number, Type) {
	return Number(x >> 3), Type(x & 7)
}

// AppendVarint appends v to b as a varint-encoded uint64.
func AppendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// ConsumeVarint parses b as a varint-encoded uint64, reporting its length.
// This returns a negative length upon an error (see ParseError).
func ConsumeVarint(b []byte) (uint64, int) {
	var v uint64
	for i := 0; i < len(b); i++ {
		if i == 10 {
			return 0, errCodeOverflow
		}
		c := b[i]
		if i == 9 && c > 1 {
			return 0, errCodeOverflow
		}
		v |= uint64(c&0x7f) << uint(7*i)
		if c < 0x80 {
			return v, i + 1
		}
	}
	return 0, errCodeTruncated
}

// SizeVarint returns the encoded size of a varint.
// The size is guaranteed to be within 1 and 10, inclusive.
func SizeVarint(v uint64) int {
	return 1 + (bits.Len64(v|1)-1)/7
}

// AppendFixed32 appends v to b as a little-endian uint32.
func AppendFixed32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// ConsumeFixed32 parses b as a little-endian uint32, reporting its length.
// This returns a negative length upon an error (see ParseError).
func ConsumeFixed32(b []byte) (uint32, int) {
	if len(b) < 4 {
		return 0, errCodeTruncated
	}
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return v, 4
}

// AppendFixed64 appends v to b as a little-endian uint64.
func AppendFixed64(b []byte, v uint64) []byte {
	return append(b,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// ConsumeFixed64 parses b as a little-endian uint64, reporting its length.
// This returns a negative length upon an error (see ParseError).
func ConsumeFixed64(b []byte) (uint64, int) {
	if len(b) < 8 {
		return 0, errCodeTruncated
	}
	v := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
	return v, 8
}

// AppendBytes appends v to b as a length-prefixed bytes value.
func AppendBytes(b, v []byte) []byte {
	return append(AppendVarint(b, uint64(len(v))), v...)
}

// ConsumeBytes parses b as a length-prefixed bytes value, reporting its length.
// This returns a negative length upon an error (see ParseError).
func ConsumeBytes(b []byte) ([]byte, int) {
	m, n := ConsumeVarint(b)
	if n < 0 {
		return nil, n
	}
	if m > uint64(len(b[n:])) {
		return nil, errCodeTruncated
	}
	return b[n:][:m], n + int(m)
}

// EncodeZigZag encodes an int64 as a zig-zag-encoded uint64.
//
//	Input:  {…, -3, -2, -1,  0, +1, +2, +3, …}
//	Output: {…,  5,  3,  1,  0,  2,  4,  6, …}
func EncodeZigZag(x int64) uint64 {
	return uint64(x<<1) ^ uint64(x>>63)
}

// DecodeZigZag decodes a zig-zag-encoded uint64 as an int64.
func DecodeZigZag(x uint64) int64 {
	return int64(x>>1) ^ int64(x)<<63>>63
}

// ConsumeFieldValue parses a field value of the given wire type and reports
// its length, skipping over the content without interpreting it. This is how
// a decoder tolerates field numbers absent from its schema.
// This returns a negative length upon an error (see ParseError).
func ConsumeFieldValue(typ Type, b []byte) int {
	switch typ {
	case VarintType:
		_, n := ConsumeVarint(b)
		return n
	case Fixed32Type:
		_, n := ConsumeFixed32(b)
		return n
	case Fixed64Type:
		_, n := ConsumeFixed64(b)
		return n
	case BytesType:
		_, n := ConsumeBytes(b)
		return n
	default:
		return errCodeReservedWireType
	}
}

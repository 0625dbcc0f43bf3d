// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus builds the deterministic test-case corpora the generator
// feeds through the reference encoder. Value pools and the synthetic case
// selection algorithm are frozen: regenerating with an unchanged corpus
// must reproduce every fixture byte for byte.
package corpus

import (
	"github.com/wiregolden/wiregolden/internal/scalar"
)

// FieldSpec describes a single-field message exercised by the scalar corpus.
// Every scalar message declares its field with number 1 and explicit
// presence, so even a zero value frames a tag byte on the wire.
type FieldSpec struct {
	Name    string      // generated identifier stem, e.g. "int32"
	Kind    scalar.Kind //
	Proto   string      // schema file holding the message
	Message string      // fully-qualified message type for the oracle
}

// ScalarCorpus pairs a FieldSpec with its ordered value set.
type ScalarCorpus struct {
	Spec   FieldSpec
	Values []any
}

// TextProto renders one corpus value as the oracle input for the spec's
// single-field message.
func (f FieldSpec) TextProto(v any) (string, error) {
	lit, err := f.Kind.TextLiteral(v)
	if err != nil {
		return "", err
	}
	return "value: " + lit + "\n", nil
}

// Scalar returns the scalar corpora in emission order.
//
// The integer pools pin every varint continuation boundary (127/128,
// 16383/16384, 2^21±1, 2^28±1 and the 64-bit analogues) plus the min/max
// extremes of each width; the float pools pin the three IEEE 754 specials.
func Scalar() []ScalarCorpus {
	return []ScalarCorpus{
		{spec("int32", scalar.Int32, "Int32Value"), int32Values()},
		{spec("int64", scalar.Int64, "Int64Value"), int64Values()},
		{spec("uint32", scalar.Uint32, "UInt32Value"), uint32Values()},
		{spec("uint64", scalar.Uint64, "UInt64Value"), uint64Values()},
		{spec("sint32", scalar.Sint32, "SInt32Value"), sint32Values()},
		{spec("sint64", scalar.Sint64, "SInt64Value"), sint64Values()},
		{spec("bool", scalar.Bool, "BoolValue"), []any{false, true}},
		{spec("enum", scalar.Enum, "EnumValue"), enumValues()},
		{spec("fixed32", scalar.Fixed32, "Fixed32Value"), fixed32Values()},
		{spec("fixed64", scalar.Fixed64, "Fixed64Value"), fixed64Values()},
		{spec("sfixed32", scalar.Sfixed32, "SFixed32Value"), sfixed32Values()},
		{spec("sfixed64", scalar.Sfixed64, "SFixed64Value"), sfixed64Values()},
		{spec("float", scalar.Float, "FloatValue"), floatValues()},
		{spec("double", scalar.Double, "DoubleValue"), doubleValues()},
		{spec("bytes", scalar.Bytes, "BytesValue"), bytesValues()},
		{spec("string", scalar.String, "StringValue"), stringValues()},
	}
}

func spec(name string, kind scalar.Kind, message string) FieldSpec {
	return FieldSpec{
		Name:    name,
		Kind:    kind,
		Proto:   "simple.proto",
		Message: "codec.simple." + message,
	}
}

// EnumNumber maps the simple-schema enum symbols to their numeric values.
func EnumNumber(symbol string) uint32 {
	switch symbol {
	case "SIMPLE_ENUM_ZERO":
		return 0
	case "SIMPLE_ENUM_ONE":
		return 1
	case "SIMPLE_ENUM_TWO":
		return 2
	case "SIMPLE_ENUM_MAX":
		return 2147483647
	}
	panic("corpus: unknown enum symbol " + symbol)
}

func int32Values() []any {
	vs := []int32{
		0, 1, -1, 2, -2, 42, -42, 1000, -1000, 12345, -12345,
		127, 128, 255, 256, 16383, 16384, 2097151, 2097152,
		268435455, 268435456,
		1000000000, -1000000000, 123456789, -123456789,
		2147483647, -2147483648, -128, -129, -16384,
	}
	return anySlice(vs)
}

func int64Values() []any {
	vs := []int64{
		0, 1, -1, 2, -2, 42, -42, 1000, -1000, 12345, -12345,
		127, 128, 255, 256, 16383, 16384, 2097151, 2097152,
		268435455, 268435456,
		34359738367, 34359738368,
		4398046511103, 4398046511104,
		562949953421311, 562949953421312,
		72057594037927935, 72057594037927936,
		9007199254740991, -9007199254740991,
		987654321012345, -987654321012345,
		9223372036854775807, -9223372036854775808,
	}
	return anySlice(vs)
}

func uint32Values() []any {
	vs := []uint32{
		0, 1, 42, 127, 128, 255, 256, 1024, 65535, 65536,
		16383, 16384, 2097151, 2097152, 268435455, 268435456,
		3000000000, 4000000000, 4294967295,
	}
	return anySlice(vs)
}

func uint64Values() []any {
	vs := []uint64{
		0, 1, 42, 127, 128, 255, 256, 16383, 16384,
		2097151, 2097152, 268435455, 268435456,
		34359738367, 34359738368,
		4398046511103, 4398046511104,
		562949953421311, 562949953421312,
		72057594037927935, 72057594037927936,
		9007199254740992, 10000000000000000000, 18446744073709551615,
	}
	return anySlice(vs)
}

func sint32Values() []any {
	vs := []int32{
		0, -1, 1, -2, 2, 63, -63, 64, -64, 1024, -1024,
		8191, -8191, 8192, -8192, 123456, -123456,
		2147483647, -2147483648,
	}
	return anySlice(vs)
}

func sint64Values() []any {
	vs := []int64{
		0, -1, 1, -2, 2, 63, -63, 64, -64, 1024, -1024,
		8191, -8191, 8192, -8192, 123456789, -123456789,
		987654321012345, -987654321012345,
		9223372036854775807, -9223372036854775808,
	}
	return anySlice(vs)
}

func enumValues() []any {
	return []any{
		"SIMPLE_ENUM_ZERO",
		"SIMPLE_ENUM_ONE",
		"SIMPLE_ENUM_TWO",
		"SIMPLE_ENUM_MAX",
	}
}

func fixed32Values() []any {
	vs := []uint32{
		0, 1, 305419896, 2147483647, 2147483648, 4294967295,
		3735928559, 3405691582,
	}
	return anySlice(vs)
}

func fixed64Values() []any {
	vs := []uint64{
		0, 1, 81985529216486895, 9223372036854775807,
		9223372036854775808, 18446744073709551615,
		1311768467750121217, 16045690984833335023,
	}
	return anySlice(vs)
}

func sfixed32Values() []any {
	vs := []int32{
		0, 1, -1, 123456789, -123456789, 2147483647, -2147483648,
		-1000000000,
	}
	return anySlice(vs)
}

func sfixed64Values() []any {
	vs := []int64{
		0, 1, -1, 987654321012345, -987654321012345,
		9223372036854775807, -9223372036854775808,
		-1000000000000000000,
	}
	return anySlice(vs)
}

// Float and double pools carry pre-rendered literals rather than values:
// the corpus pins the exact text fed to the reference encoder, and the
// expected side is recovered from the encoded bit pattern.
func floatValues() []any {
	return []any{
		"0.0", "-1.0", "1.5", "-2.25", "3.1415927",
		"1e-20", "1e20", "nan", "inf", "-inf",
	}
}

func doubleValues() []any {
	return []any{
		"0.0", "-1.0", "1.5", "-2.25", "3.141592653589793",
		"1e-300", "1e300", "nan", "inf", "-inf",
	}
}

func bytesValues() []any {
	return []any{
		[]byte{},
		[]byte{0x00},
		[]byte{0x01, 0x02},
		[]byte{0x00, 0xff},
		[]byte{0x00, 0xff, 0x10, 0x20},
		byteRange(5),
		byteRange(16),
		[]byte{0xde, 0xad, 0xbe, 0xef},
		repeatByte(0x00, 8),
		repeatByte(0xab, 12),
	}
}

func stringValues() []any {
	return []any{
		"",
		"a",
		"hello",
		"with spaces",
		"symbols !@#$%^&*()_+{}|:<>?[]\\;',./",
		"line\nbreak",
		"tab\tindent",
		"unicode 中文",
		"mixed 123",
		"slashes \\\\ path",
	}
}

func anySlice[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func byteRange(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func repeatByte(c byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return b
}

// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar is the value domain model: it maps every scalar kind the
// generator exercises to its wire type, its two literal grammars (the
// reference encoder's text format and the emitted Go assertion tables),
// and its canonical comparison rule.
package scalar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wiregolden/wiregolden/wire"
)

// ErrUnsupportedKind is returned when a Kind has no registered entry.
var ErrUnsupportedKind = errors.New("scalar: unsupported field kind")

// Kind identifies a protobuf scalar kind. The set is closed: every switch
// over Kind in this module is exhaustive, so adding a kind requires exactly
// one constant here and one arm per dispatch site.
type Kind int

const (
	Int32 Kind = iota + 1
	Int64
	Uint32
	Uint64
	Sint32
	Sint64
	Bool
	Enum
	Fixed32
	Fixed64
	Sfixed32
	Sfixed64
	Float
	Double
	Bytes
	String
)

var kindNames = map[Kind]string{
	Int32:    "Int32",
	Int64:    "Int64",
	Uint32:   "Uint32",
	Uint64:   "Uint64",
	Sint32:   "Sint32",
	Sint64:   "Sint64",
	Bool:     "Bool",
	Enum:     "Enum",
	Fixed32:  "Fixed32",
	Fixed64:  "Fixed64",
	Sfixed32: "Sfixed32",
	Sfixed64: "Sfixed64",
	Float:    "Float",
	Double:   "Double",
	Bytes:    "Bytes",
	String:   "String",
}

// Name returns the CamelCase kind name used to derive generated identifiers.
func (k Kind) Name() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) String() string {
	return strings.ToLower(k.Name())
}

// WireType returns the physical encoding family of the kind.
func (k Kind) WireType() wire.Type {
	switch k {
	case Int32, Int64, Uint32, Uint64, Sint32, Sint64, Bool, Enum:
		return wire.VarintType
	case Fixed32, Sfixed32, Float:
		return wire.Fixed32Type
	case Fixed64, Sfixed64, Double:
		return wire.Fixed64Type
	case Bytes, String:
		return wire.BytesType
	default:
		panic(ErrUnsupportedKind)
	}
}

// GoType returns the Go type of the kind's canonical comparison value.
// Float and Double compare as raw bit patterns, never as floating point.
func (k Kind) GoType() string {
	switch k {
	case Int32, Sint32, Sfixed32:
		return "int32"
	case Int64, Sint64, Sfixed64:
		return "int64"
	case Uint32, Enum, Fixed32, Float:
		return "uint32"
	case Uint64, Fixed64, Double:
		return "uint64"
	case Bool:
		return "bool"
	case Bytes:
		return "[]byte"
	case String:
		return "string"
	default:
		panic(ErrUnsupportedKind)
	}
}

// Unwrap reports whether the codec decodes this kind through a distinct
// wrapper type (wire.Sint32, wire.Sint64, wire.Enum) that the emitted
// decode helper must convert back to the bare scalar.
func (k Kind) Unwrap() bool {
	switch k {
	case Sint32, Sint64, Enum:
		return true
	}
	return false
}

// Bits reports whether the kind's canonical form is a raw IEEE 754 bit
// pattern rather than the decoded value.
func (k Kind) Bits() bool {
	return k == Float || k == Double
}

// TextLiteral renders v in the reference encoder's text-format grammar.
// Float and Double values arrive as pre-rendered literal strings, since the
// corpus pins literals (including nan, inf and -inf) rather than values.
func (k Kind) TextLiteral(v any) (string, error) {
	switch k {
	case Int32, Int64, Sint32, Sint64, Sfixed32, Sfixed64:
		switch v := v.(type) {
		case int32:
			return strconv.FormatInt(int64(v), 10), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		}
	case Uint32, Uint64, Fixed32, Fixed64:
		switch v := v.(type) {
		case uint32:
			return strconv.FormatUint(uint64(v), 10), nil
		case uint64:
			return strconv.FormatUint(v, 10), nil
		}
	case Bool:
		if v, ok := v.(bool); ok {
			return strconv.FormatBool(v), nil
		}
	case Enum:
		// Enums travel by symbolic constant name.
		if v, ok := v.(string); ok {
			return v, nil
		}
	case Float, Double:
		if v, ok := v.(string); ok {
			return v, nil
		}
	case Bytes:
		if v, ok := v.([]byte); ok {
			return TextBytes(v), nil
		}
	case String:
		if v, ok := v.(string); ok {
			return TextString(v), nil
		}
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedKind, int(k))
	}
	return "", fmt.Errorf("scalar: %v value has unexpected type %T", k, v)
}

// GoLiteral renders a canonical value in the emitted assertion-table grammar.
// For Float and Double the canonical value is the extracted bit pattern.
func (k Kind) GoLiteral(v any) (string, error) {
	switch k {
	case Int32, Int64, Sint32, Sint64, Sfixed32, Sfixed64:
		switch v := v.(type) {
		case int32:
			return strconv.FormatInt(int64(v), 10), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		}
	case Uint32, Uint64, Enum, Fixed32, Fixed64, Float, Double:
		switch v := v.(type) {
		case uint32:
			return strconv.FormatUint(uint64(v), 10), nil
		case uint64:
			return strconv.FormatUint(v, 10), nil
		}
	case Bool:
		if v, ok := v.(bool); ok {
			return strconv.FormatBool(v), nil
		}
	case Bytes:
		if v, ok := v.([]byte); ok {
			return GoBytes(v), nil
		}
	case String:
		if v, ok := v.(string); ok {
			return strconv.Quote(v), nil
		}
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedKind, int(k))
	}
	return "", fmt.Errorf("scalar: %v value has unexpected type %T", k, v)
}

// TextString renders s as a text-format string literal. Printable ASCII and
// multi-byte UTF-8 pass through; control characters and the quote and
// backslash characters are escaped.
func TextString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// TextBytes renders v as a text-format bytes literal, one escaped hex run
// per byte.
func TextBytes(v []byte) string {
	var b strings.Builder
	b.Grow(4*len(v) + 2)
	b.WriteByte('"')
	for _, c := range v {
		fmt.Fprintf(&b, `\x%02x`, c)
	}
	b.WriteByte('"')
	return b.String()
}

// GoBytes renders v as a Go []byte composite literal, or nil when empty so
// that round-trip comparisons treat absent and empty alike.
func GoBytes(v []byte) string {
	if len(v) == 0 {
		return "nil"
	}
	var b strings.Builder
	b.WriteString("[]byte{")
	for i, c := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", c)
	}
	b.WriteByte('}')
	return b.String()
}

// FormatFloat renders a float64 the way the reference encoder's text grammar
// expects: the shortest form that round-trips exactly, with the exponent
// normalized (no leading zeros, no redundant plus sign). The three IEEE 754
// special categories map to the reserved literals nan, inf and -inf, never
// to numeric approximations.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, +1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return NormalizeExponent(strconv.FormatFloat(v, 'g', -1, 64))
}

// NormalizeExponent strips leading zeros and a redundant plus sign from the
// exponent of a scientific-notation literal. Literals without an exponent
// pass through unchanged.
func NormalizeExponent(text string) string {
	i := strings.IndexAny(text, "eE")
	if i < 0 {
		return text
	}
	head, exp := text[:i], text[i+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		if exp[0] == '-' {
			sign = "-"
		}
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return head + "e" + sign + exp
}

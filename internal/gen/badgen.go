// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"encoding/base64"
	"strconv"
)

// badCase is one deliberately malformed input and the error category its
// rejection must report.
type badCase struct {
	name string
	raw  []byte
	err  string // wire sentinel name
}

// badCases are fixed: they exercise the reader's three rejection paths
// without involving the oracle, which cannot produce malformed output.
func badCases() []badCase {
	return []badCase{
		{"reserved wire type", []byte{0x0e}, "ErrReservedWireType"},
		{"truncated length-delimited", []byte{0x0a, 0x02, 0x61}, "ErrTruncated"},
		{"invalid utf-8 string", []byte{0x0a, 0x01, 0xc2}, "ErrInvalidUTF8"},
	}
}

// badArtifact builds golden_bad_test.go: a field-walking helper that
// surfaces the first reader error, and a table asserting each malformed
// input maps to its sentinel.
func badArtifact() []byte {
	var p printer
	p.header("encoding/base64", "errors", "testing", "",
		"github.com/wiregolden/wiregolden/wire")

	p.P()
	p.P("func readAllFields(raw []byte) error {")
	p.P("\tfor len(raw) > 0 {")
	p.P("\t\t_, typ, n := wire.ConsumeTag(raw)")
	p.P("\t\tif n < 0 {")
	p.P("\t\t\treturn wire.ParseError(n)")
	p.P("\t\t}")
	p.P("\t\traw = raw[n:]")
	p.P("\t\tswitch typ {")
	p.P("\t\tcase wire.BytesType:")
	p.P("\t\t\t_, n := wire.ConsumeString(raw)")
	p.P("\t\t\tif n < 0 {")
	p.P("\t\t\t\treturn wire.ParseError(n)")
	p.P("\t\t\t}")
	p.P("\t\t\traw = raw[n:]")
	p.P("\t\tdefault:")
	p.P("\t\t\tn := wire.ConsumeFieldValue(typ, raw)")
	p.P("\t\t\tif n < 0 {")
	p.P("\t\t\t\treturn wire.ParseError(n)")
	p.P("\t\t\t}")
	p.P("\t\t\traw = raw[n:]")
	p.P("\t\t}")
	p.P("\t}")
	p.P("\treturn nil")
	p.P("}")

	p.P()
	p.P("func TestGoldenMalformed(t *testing.T) {")
	p.P("\ttests := []struct {")
	p.P("\t\tname string")
	p.P("\t\twire string")
	p.P("\t\terr  error")
	p.P("\t}{")
	for _, c := range badCases() {
		b64 := base64.StdEncoding.EncodeToString(c.raw)
		p.P("\t\t{", strconv.Quote(c.name), ", ", strconv.Quote(b64), ", wire.", c.err, "},")
	}
	p.P("\t}")
	p.P("\tfor _, tt := range tests {")
	p.P("\t\tt.Run(tt.name, func(t *testing.T) {")
	p.P("\t\t\traw, err := base64.StdEncoding.DecodeString(tt.wire)")
	p.P("\t\t\tif err != nil {")
	p.P("\t\t\t\tt.Fatalf(\"bad fixture %q: %v\", tt.wire, err)")
	p.P("\t\t\t}")
	p.P("\t\t\tif err := readAllFields(raw); !errors.Is(err, tt.err) {")
	p.P("\t\t\t\tt.Errorf(\"readAllFields(%q) = %v, want %v\", tt.wire, err, tt.err)")
	p.P("\t\t\t}")
	p.P("\t\t})")
	p.P("\t}")
	p.P("}")
	return p.Bytes()
}

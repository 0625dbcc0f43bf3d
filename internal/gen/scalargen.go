// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"text/template"

	"github.com/wiregolden/wiregolden/internal/canon"
	"github.com/wiregolden/wiregolden/internal/corpus"
	"github.com/wiregolden/wiregolden/internal/oracle"
	"github.com/wiregolden/wiregolden/internal/scalar"
)

// scalarHelpers renders the per-kind decode and encode routines emitted at
// the top of the scalar artifact. The decode side checks the tag before the
// value so a framing regression reports as a tag mismatch rather than a
// value mismatch.
var scalarHelpers = template.Must(template.New("scalar").Parse(
	`func decode{{.Camel}}(t *testing.T, raw []byte) {{.GoType}} {
	t.Helper()
	num, typ, n := wire.ConsumeTag(raw)
	if n < 0 {
		t.Fatalf("{{.Name}}: read tag: %v", wire.ParseError(n))
	}
	if num != 1 || typ != {{.WireType}} {
		t.Fatalf("{{.Name}}: tag = (%v, %v), want (1, %v)", num, typ, {{.WireType}})
	}
	v, n := wire.Consume{{.Camel}}(raw[n:])
	if n < 0 {
		t.Fatalf("{{.Name}}: read value: %v", wire.ParseError(n))
	}
	return {{.Return}}
}

func encode{{.Camel}}(v {{.GoType}}) []byte {
	b := wire.AppendTag(nil, 1, {{.WireType}})
	return wire.Append{{.Camel}}(b, {{.Arg}})
}

`))

type scalarTmpl struct {
	Name     string
	Camel    string
	GoType   string
	WireType string
	Return   string
	Arg      string
}

func scalarExprs(k scalar.Kind) (ret, arg string) {
	switch {
	case k == scalar.Float:
		return "math.Float32bits(v)", "math.Float32frombits(v)"
	case k == scalar.Double:
		return "math.Float64bits(v)", "math.Float64frombits(v)"
	case k.Unwrap():
		return k.GoType() + "(v)", "wire." + k.Name() + "(v)"
	default:
		return "v", "v"
	}
}

// scalarArtifact builds golden_scalar_test.go: one fixture table and one
// test function per scalar kind, in corpus order.
func (g *Generator) scalarArtifact(ctx context.Context) ([]byte, error) {
	var p printer
	p.header("bytes", "encoding/base64", "math", "testing", "",
		"github.com/wiregolden/wiregolden/wire")

	for _, c := range corpus.Scalar() {
		rows := make([][2]string, 0, len(c.Values))
		for i, v := range c.Values {
			text, err := c.Spec.TextProto(v)
			if err != nil {
				return nil, fmt.Errorf("scalar %s case %d: %w", c.Spec.Name, i, err)
			}
			raw, err := g.Oracle.Encode(ctx, oracle.Request{
				Proto:   c.Spec.Proto,
				Message: c.Spec.Message,
				Text:    text,
			})
			if err != nil {
				return nil, fmt.Errorf("scalar %s case %d: %w", c.Spec.Name, i, err)
			}
			canonical, err := canon.Scalar(c.Spec.Kind, raw)
			if err != nil {
				return nil, fmt.Errorf("scalar %s case %d: %w", c.Spec.Name, i, err)
			}
			if err := verifyScalar(c.Spec.Kind, v, canonical); err != nil {
				return nil, fmt.Errorf("scalar %s case %d: %w", c.Spec.Name, i, err)
			}
			lit, err := c.Spec.Kind.GoLiteral(canonical)
			if err != nil {
				return nil, fmt.Errorf("scalar %s case %d: %w", c.Spec.Name, i, err)
			}
			rows = append(rows, [2]string{base64.StdEncoding.EncodeToString(raw), lit})
		}

		k := c.Spec.Kind
		ret, arg := scalarExprs(k)
		p.P()
		if err := scalarHelpers.Execute(&p.buf, scalarTmpl{
			Name:     c.Spec.Name,
			Camel:    k.Name(),
			GoType:   k.GoType(),
			WireType: wireTypeExpr(k.WireType()),
			Return:   ret,
			Arg:      arg,
		}); err != nil {
			return nil, err
		}

		p.P("func TestGolden", k.Name(), "(t *testing.T) {")
		p.P("\ttests := []struct {")
		p.P("\t\twire string")
		p.P("\t\twant ", k.GoType())
		p.P("\t}{")
		for _, r := range rows {
			p.P("\t\t{", strconv.Quote(r[0]), ", ", r[1], "},")
		}
		p.P("\t}")
		p.P("\tfor _, tt := range tests {")
		p.P("\t\traw, err := base64.StdEncoding.DecodeString(tt.wire)")
		p.P("\t\tif err != nil {")
		p.P("\t\t\tt.Fatalf(\"", c.Spec.Name, ": bad fixture %q: %v\", tt.wire, err)")
		p.P("\t\t}")
		if k == scalar.Bytes {
			p.P("\t\tif got := decode", k.Name(), "(t, raw); !bytes.Equal(got, tt.want) {")
		} else {
			p.P("\t\tif got := decode", k.Name(), "(t, raw); got != tt.want {")
		}
		p.P("\t\t\tt.Errorf(\"decode", k.Name(), "(%q) = %v, want %v\", tt.wire, got, tt.want)")
		p.P("\t\t}")
		p.P("\t\tif got := base64.StdEncoding.EncodeToString(encode", k.Name(), "(tt.want)); got != tt.wire {")
		p.P("\t\t\tt.Errorf(\"encode", k.Name(), "(%v) = %q, want %q\", tt.want, got, tt.wire)")
		p.P("\t\t}")
		p.P("\t}")
		p.P("}")
	}
	return p.Bytes(), nil
}

// verifyScalar cross-checks the canonical value against the corpus input.
// Bit-pattern kinds are exempt: their corpus inputs are decimal strings and
// the bit pattern is the ground truth being captured.
func verifyScalar(k scalar.Kind, input, canonical any) error {
	if k.Bits() {
		return nil
	}
	want := input
	if k == scalar.Enum {
		want = corpus.EnumNumber(input.(string))
	}
	if a, ok := want.([]byte); ok {
		if b, ok := canonical.([]byte); ok && bytes.Equal(a, b) {
			return nil
		}
	} else if want == canonical {
		return nil
	}
	return fmt.Errorf("oracle value %v disagrees with corpus value %v", canonical, want)
}

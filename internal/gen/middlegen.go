// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/wiregolden/wiregolden/internal/canon"
	"github.com/wiregolden/wiregolden/internal/corpus"
	"github.com/wiregolden/wiregolden/internal/oracle"
	"github.com/wiregolden/wiregolden/internal/scalar"
	"github.com/wiregolden/wiregolden/wire"
)

// middleHelpers is the static prelude of golden_middle_test.go: the message
// mirror structs and their decode and encode routines. Decoding applies the
// full reader contract (unknown fields skipped, repeated scalar tags
// accumulated in order, last occurrence wins elsewhere); encoding omits
// zero-valued singular fields the way the reference encoder does.
const middleHelpers = `
type middleNested struct {
	Count int64
	Flag  bool
	Note  string
}

type middleMessage struct {
	ID           int32
	Values       []int32
	PackedValues []int32
	Label        string
	Data         []byte
	Nested       *middleNested
	Status       uint32
	Tags         []string
}

func decodeMiddleNested(t *testing.T, raw []byte) *middleNested {
	t.Helper()
	m := &middleNested{}
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			t.Fatalf("middle nested: read tag: %v", wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeInt64(raw)
			if n < 0 {
				t.Fatalf("middle nested: count: %v", wire.ParseError(n))
			}
			m.Count = v
			raw = raw[n:]
		case 2:
			v, n := wire.ConsumeBool(raw)
			if n < 0 {
				t.Fatalf("middle nested: flag: %v", wire.ParseError(n))
			}
			m.Flag = v
			raw = raw[n:]
		case 3:
			v, n := wire.ConsumeString(raw)
			if n < 0 {
				t.Fatalf("middle nested: note: %v", wire.ParseError(n))
			}
			m.Note = v
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				t.Fatalf("middle nested: skip field %v: %v", num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	return m
}

func decodeMiddle(t *testing.T, raw []byte) middleMessage {
	t.Helper()
	var m middleMessage
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			t.Fatalf("middle: read tag: %v", wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeInt32(raw)
			if n < 0 {
				t.Fatalf("middle: id: %v", wire.ParseError(n))
			}
			m.ID = v
			raw = raw[n:]
		case 2:
			v, n := wire.ConsumeInt32(raw)
			if n < 0 {
				t.Fatalf("middle: values: %v", wire.ParseError(n))
			}
			m.Values = append(m.Values, v)
			raw = raw[n:]
		case 3:
			pack, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("middle: packed_values: %v", wire.ParseError(n))
			}
			for len(pack) > 0 {
				v, n := wire.ConsumeSint32(pack)
				if n < 0 {
					t.Fatalf("middle: packed_values element: %v", wire.ParseError(n))
				}
				m.PackedValues = append(m.PackedValues, int32(v))
				pack = pack[n:]
			}
			raw = raw[n:]
		case 4:
			v, n := wire.ConsumeString(raw)
			if n < 0 {
				t.Fatalf("middle: label: %v", wire.ParseError(n))
			}
			m.Label = v
			raw = raw[n:]
		case 5:
			v, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("middle: data: %v", wire.ParseError(n))
			}
			m.Data = v
			raw = raw[n:]
		case 6:
			v, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("middle: nested: %v", wire.ParseError(n))
			}
			m.Nested = decodeMiddleNested(t, v)
			raw = raw[n:]
		case 7:
			v, n := wire.ConsumeEnum(raw)
			if n < 0 {
				t.Fatalf("middle: status: %v", wire.ParseError(n))
			}
			m.Status = uint32(v)
			raw = raw[n:]
		case 8:
			v, n := wire.ConsumeString(raw)
			if n < 0 {
				t.Fatalf("middle: tags: %v", wire.ParseError(n))
			}
			m.Tags = append(m.Tags, v)
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				t.Fatalf("middle: skip field %v: %v", num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	return m
}

func encodeMiddleNested(m *middleNested) []byte {
	var b []byte
	if m.Count != 0 {
		b = wire.AppendTag(b, 1, wire.VarintType)
		b = wire.AppendInt64(b, m.Count)
	}
	if m.Flag {
		b = wire.AppendTag(b, 2, wire.VarintType)
		b = wire.AppendBool(b, m.Flag)
	}
	if m.Note != "" {
		b = wire.AppendTag(b, 3, wire.BytesType)
		b = wire.AppendString(b, m.Note)
	}
	return b
}

func encodeMiddle(m middleMessage) []byte {
	var b []byte
	if m.ID != 0 {
		b = wire.AppendTag(b, 1, wire.VarintType)
		b = wire.AppendInt32(b, m.ID)
	}
	for _, v := range m.Values {
		b = wire.AppendTag(b, 2, wire.VarintType)
		b = wire.AppendInt32(b, v)
	}
	if len(m.PackedValues) > 0 {
		var pack []byte
		for _, v := range m.PackedValues {
			pack = wire.AppendSint32(pack, wire.Sint32(v))
		}
		b = wire.AppendTag(b, 3, wire.BytesType)
		b = wire.AppendBytes(b, pack)
	}
	if m.Label != "" {
		b = wire.AppendTag(b, 4, wire.BytesType)
		b = wire.AppendString(b, m.Label)
	}
	if len(m.Data) > 0 {
		b = wire.AppendTag(b, 5, wire.BytesType)
		b = wire.AppendBytes(b, m.Data)
	}
	if m.Nested != nil {
		b = wire.AppendTag(b, 6, wire.BytesType)
		b = wire.AppendBytes(b, encodeMiddleNested(m.Nested))
	}
	if m.Status != 0 {
		b = wire.AppendTag(b, 7, wire.VarintType)
		b = wire.AppendEnum(b, wire.Enum(m.Status))
	}
	for _, v := range m.Tags {
		b = wire.AppendTag(b, 8, wire.BytesType)
		b = wire.AppendString(b, v)
	}
	return b
}
`

// rowField is one rendered struct-literal field of a fixture row.
type rowField struct {
	key string
	val string
}

// row emits one positional fixture row. Literal fields are padded to a
// common column, matching gofmt's keyed-literal alignment.
func (p *printer) row(b64, typ string, fields []rowField) {
	if len(fields) == 0 {
		p.P("\t\t{", strconv.Quote(b64), ", ", typ, "{}},")
		return
	}
	p.P("\t\t{", strconv.Quote(b64), ", ", typ, "{")
	w := 0
	for _, f := range fields {
		if len(f.key) > w {
			w = len(f.key)
		}
	}
	for _, f := range fields {
		p.P("\t\t\t", f.key, ":", strings.Repeat(" ", w-len(f.key)+1), f.val, ",")
	}
	p.P("\t\t}},")
}

func (g *Generator) middleArtifact(ctx context.Context) ([]byte, error) {
	cases := corpus.Middle(g.Config.MiddleCases)

	var p printer
	p.header("encoding/base64", "testing", "",
		"github.com/google/go-cmp/cmp", "",
		"github.com/wiregolden/wiregolden/wire")
	p.buf.WriteString(middleHelpers)

	p.P()
	p.P("func TestGoldenMiddle(t *testing.T) {")
	p.P("\ttests := []struct {")
	p.P("\t\twire string")
	p.P("\t\tmsg  middleMessage")
	p.P("\t}{")
	for i, c := range cases {
		raw, err := g.Oracle.Encode(ctx, oracle.Request{
			Proto:   "middle.proto",
			Message: "codec.middle.Middle",
			Text:    c.TextProto(),
		})
		if err != nil {
			return nil, fmt.Errorf("middle case %d: %w", i, err)
		}
		if err := verifyMiddle(c, raw); err != nil {
			return nil, fmt.Errorf("middle case %d: %w", i, err)
		}
		p.row(base64.StdEncoding.EncodeToString(raw), "middleMessage", middleRow(c))
	}
	p.P("\t}")
	p.P("\tfor _, tt := range tests {")
	p.P("\t\traw, err := base64.StdEncoding.DecodeString(tt.wire)")
	p.P("\t\tif err != nil {")
	p.P("\t\t\tt.Fatalf(\"middle: bad fixture %q: %v\", tt.wire, err)")
	p.P("\t\t}")
	p.P("\t\tif diff := cmp.Diff(tt.msg, decodeMiddle(t, raw)); diff != \"\" {")
	p.P("\t\t\tt.Errorf(\"decodeMiddle(%q) mismatch (-want +got):\\n%s\", tt.wire, diff)")
	p.P("\t\t}")
	p.P("\t\tif got := base64.StdEncoding.EncodeToString(encodeMiddle(tt.msg)); got != tt.wire {")
	p.P("\t\t\tt.Errorf(\"encodeMiddle(%+v) = %q, want %q\", tt.msg, got, tt.wire)")
	p.P("\t\t}")
	p.P("\t}")
	p.P("}")
	return p.Bytes(), nil
}

// middleRow renders the decoded view of a corpus case: zero-valued singular
// fields are omitted, the status symbol becomes its number, and absent
// repeated fields stay nil.
func middleRow(c corpus.MiddleCase) []rowField {
	var fs []rowField
	if c.ID != 0 {
		fs = append(fs, rowField{"ID", strconv.FormatInt(int64(c.ID), 10)})
	}
	if len(c.Values) > 0 {
		fs = append(fs, rowField{"Values", goInt32Slice(c.Values)})
	}
	if len(c.Packed) > 0 {
		fs = append(fs, rowField{"PackedValues", goInt32Slice(c.Packed)})
	}
	if c.Label != "" {
		fs = append(fs, rowField{"Label", strconv.Quote(c.Label)})
	}
	if len(c.Data) > 0 {
		fs = append(fs, rowField{"Data", scalar.GoBytes(c.Data)})
	}
	if c.Nested != nil {
		fs = append(fs, rowField{"Nested", goMiddleNested(c.Nested)})
	}
	if n := corpus.MiddleStatusNumber(c.Status); n != 0 {
		fs = append(fs, rowField{"Status", strconv.FormatUint(uint64(n), 10)})
	}
	if len(c.Tags) > 0 {
		fs = append(fs, rowField{"Tags", goStringSlice(c.Tags)})
	}
	return fs
}

func goMiddleNested(n *corpus.MiddleNested) string {
	var parts []string
	if n.Count != 0 {
		parts = append(parts, "Count: "+strconv.FormatInt(n.Count, 10))
	}
	if n.Flag {
		parts = append(parts, "Flag: true")
	}
	if n.Note != "" {
		parts = append(parts, "Note: "+strconv.Quote(n.Note))
	}
	return "&middleNested{" + strings.Join(parts, ", ") + "}"
}

func goInt32Slice(vs []int32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return "[]int32{" + strings.Join(parts, ", ") + "}"
}

func goStringSlice(vs []string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Quote(v)
	}
	return "[]string{" + strings.Join(parts, ", ") + "}"
}

// verifyMiddle walks the oracle bytes and cross-checks the sub-fields whose
// canonical form is cheap to recover without a full message decoder: the
// last id occurrence and the packed sint32 region.
func verifyMiddle(c corpus.MiddleCase, raw []byte) error {
	var id int32
	var packed []int32
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			return fmt.Errorf("%w: %v", canon.ErrMalformedOutput, wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeInt32(raw)
			if n < 0 {
				return fmt.Errorf("%w: id: %v", canon.ErrMalformedOutput, wire.ParseError(n))
			}
			id = v
			raw = raw[n:]
		case 3:
			region, n := wire.ConsumeBytes(raw)
			if n < 0 {
				return fmt.Errorf("%w: packed_values: %v", canon.ErrMalformedOutput, wire.ParseError(n))
			}
			vs, err := canon.PackedSint32(region)
			if err != nil {
				return err
			}
			packed = append(packed, vs...)
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				return fmt.Errorf("%w: field %v: %v", canon.ErrMalformedOutput, num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	if id != c.ID {
		return fmt.Errorf("oracle id %d disagrees with corpus id %d", id, c.ID)
	}
	if len(packed) != len(c.Packed) {
		return fmt.Errorf("oracle packed length %d disagrees with corpus length %d", len(packed), len(c.Packed))
	}
	for i := range packed {
		if packed[i] != c.Packed[i] {
			return fmt.Errorf("oracle packed_values[%d] = %d disagrees with corpus value %d", i, packed[i], c.Packed[i])
		}
	}
	return nil
}

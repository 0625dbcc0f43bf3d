// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wiregolden/wiregolden/internal/canon"
	"github.com/wiregolden/wiregolden/internal/corpus"
	"github.com/wiregolden/wiregolden/internal/oracle"
	"github.com/wiregolden/wiregolden/internal/scalar"
	"github.com/wiregolden/wiregolden/wire"
)

// difficultHelpers is the static prelude of golden_difficult_test.go.
// The count entry's value field has explicit presence, so its encoder
// writes the field unconditionally; the oneof alternatives are modelled
// as two pointer slots of which at most one is set.
const difficultHelpers = `
type difficultItem struct {
	Name string
	Raw  []byte
	Code uint64
}

type difficultCount struct {
	Key   string
	Value int32
}

type difficultMessage struct {
	Big          uint64
	Zigzag       int32
	Ratio        float64
	Scores       []float64
	Items        []difficultItem
	Counts       []difficultCount
	ChoiceText   *string
	ChoiceNumber *int32
	Payload      []byte
}

func ptr[T any](v T) *T {
	return &v
}

func decodeDifficultItem(t *testing.T, raw []byte) difficultItem {
	t.Helper()
	var m difficultItem
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			t.Fatalf("difficult item: read tag: %v", wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeString(raw)
			if n < 0 {
				t.Fatalf("difficult item: name: %v", wire.ParseError(n))
			}
			m.Name = v
			raw = raw[n:]
		case 2:
			v, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("difficult item: raw: %v", wire.ParseError(n))
			}
			m.Raw = v
			raw = raw[n:]
		case 3:
			v, n := wire.ConsumeFixed64(raw)
			if n < 0 {
				t.Fatalf("difficult item: code: %v", wire.ParseError(n))
			}
			m.Code = v
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				t.Fatalf("difficult item: skip field %v: %v", num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	return m
}

func decodeDifficultCount(t *testing.T, raw []byte) difficultCount {
	t.Helper()
	var m difficultCount
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			t.Fatalf("difficult count: read tag: %v", wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeString(raw)
			if n < 0 {
				t.Fatalf("difficult count: key: %v", wire.ParseError(n))
			}
			m.Key = v
			raw = raw[n:]
		case 2:
			v, n := wire.ConsumeInt32(raw)
			if n < 0 {
				t.Fatalf("difficult count: value: %v", wire.ParseError(n))
			}
			m.Value = v
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				t.Fatalf("difficult count: skip field %v: %v", num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	return m
}

func decodeDifficult(t *testing.T, raw []byte) difficultMessage {
	t.Helper()
	var m difficultMessage
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			t.Fatalf("difficult: read tag: %v", wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeUint64(raw)
			if n < 0 {
				t.Fatalf("difficult: big: %v", wire.ParseError(n))
			}
			m.Big = v
			raw = raw[n:]
		case 2:
			v, n := wire.ConsumeSint32(raw)
			if n < 0 {
				t.Fatalf("difficult: zigzag: %v", wire.ParseError(n))
			}
			m.Zigzag = int32(v)
			raw = raw[n:]
		case 3:
			v, n := wire.ConsumeDouble(raw)
			if n < 0 {
				t.Fatalf("difficult: ratio: %v", wire.ParseError(n))
			}
			m.Ratio = v
			raw = raw[n:]
		case 4:
			pack, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("difficult: scores: %v", wire.ParseError(n))
			}
			for len(pack) > 0 {
				v, n := wire.ConsumeDouble(pack)
				if n < 0 {
					t.Fatalf("difficult: scores element: %v", wire.ParseError(n))
				}
				m.Scores = append(m.Scores, v)
				pack = pack[n:]
			}
			raw = raw[n:]
		case 5:
			v, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("difficult: items: %v", wire.ParseError(n))
			}
			m.Items = append(m.Items, decodeDifficultItem(t, v))
			raw = raw[n:]
		case 6:
			v, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("difficult: counts: %v", wire.ParseError(n))
			}
			m.Counts = append(m.Counts, decodeDifficultCount(t, v))
			raw = raw[n:]
		case 7:
			v, n := wire.ConsumeString(raw)
			if n < 0 {
				t.Fatalf("difficult: text: %v", wire.ParseError(n))
			}
			m.ChoiceText = &v
			m.ChoiceNumber = nil
			raw = raw[n:]
		case 8:
			v, n := wire.ConsumeInt32(raw)
			if n < 0 {
				t.Fatalf("difficult: number: %v", wire.ParseError(n))
			}
			m.ChoiceNumber = &v
			m.ChoiceText = nil
			raw = raw[n:]
		case 9:
			v, n := wire.ConsumeBytes(raw)
			if n < 0 {
				t.Fatalf("difficult: payload: %v", wire.ParseError(n))
			}
			m.Payload = v
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				t.Fatalf("difficult: skip field %v: %v", num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	return m
}

func encodeDifficultItem(m difficultItem) []byte {
	var b []byte
	if m.Name != "" {
		b = wire.AppendTag(b, 1, wire.BytesType)
		b = wire.AppendString(b, m.Name)
	}
	if len(m.Raw) > 0 {
		b = wire.AppendTag(b, 2, wire.BytesType)
		b = wire.AppendBytes(b, m.Raw)
	}
	if m.Code != 0 {
		b = wire.AppendTag(b, 3, wire.Fixed64Type)
		b = wire.AppendFixed64(b, m.Code)
	}
	return b
}

func encodeDifficultCount(m difficultCount) []byte {
	var b []byte
	if m.Key != "" {
		b = wire.AppendTag(b, 1, wire.BytesType)
		b = wire.AppendString(b, m.Key)
	}
	b = wire.AppendTag(b, 2, wire.VarintType)
	b = wire.AppendInt32(b, m.Value)
	return b
}

func encodeDifficult(m difficultMessage) []byte {
	var b []byte
	if m.Big != 0 {
		b = wire.AppendTag(b, 1, wire.VarintType)
		b = wire.AppendUint64(b, m.Big)
	}
	if m.Zigzag != 0 {
		b = wire.AppendTag(b, 2, wire.VarintType)
		b = wire.AppendSint32(b, wire.Sint32(m.Zigzag))
	}
	if m.Ratio != 0 {
		b = wire.AppendTag(b, 3, wire.Fixed64Type)
		b = wire.AppendDouble(b, m.Ratio)
	}
	if len(m.Scores) > 0 {
		var pack []byte
		for _, v := range m.Scores {
			pack = wire.AppendDouble(pack, v)
		}
		b = wire.AppendTag(b, 4, wire.BytesType)
		b = wire.AppendBytes(b, pack)
	}
	for _, it := range m.Items {
		b = wire.AppendTag(b, 5, wire.BytesType)
		b = wire.AppendBytes(b, encodeDifficultItem(it))
	}
	for _, ct := range m.Counts {
		b = wire.AppendTag(b, 6, wire.BytesType)
		b = wire.AppendBytes(b, encodeDifficultCount(ct))
	}
	if m.ChoiceText != nil {
		b = wire.AppendTag(b, 7, wire.BytesType)
		b = wire.AppendString(b, *m.ChoiceText)
	}
	if m.ChoiceNumber != nil {
		b = wire.AppendTag(b, 8, wire.VarintType)
		b = wire.AppendInt32(b, *m.ChoiceNumber)
	}
	if len(m.Payload) > 0 {
		b = wire.AppendTag(b, 9, wire.BytesType)
		b = wire.AppendBytes(b, m.Payload)
	}
	return b
}
`

func (g *Generator) difficultArtifact(ctx context.Context) ([]byte, error) {
	cases := corpus.Difficult(g.Config.DifficultCases)

	var p printer
	p.header("encoding/base64", "testing", "",
		"github.com/google/go-cmp/cmp", "",
		"github.com/wiregolden/wiregolden/wire")
	p.buf.WriteString(difficultHelpers)

	p.P()
	p.P("func TestGoldenDifficult(t *testing.T) {")
	p.P("\ttests := []struct {")
	p.P("\t\twire string")
	p.P("\t\tmsg  difficultMessage")
	p.P("\t}{")
	for i, c := range cases {
		raw, err := g.Oracle.Encode(ctx, oracle.Request{
			Proto:   "difficult.proto",
			Message: "codec.difficult.Difficult",
			Text:    c.TextProto(),
		})
		if err != nil {
			return nil, fmt.Errorf("difficult case %d: %w", i, err)
		}
		if err := verifyDifficult(c, raw); err != nil {
			return nil, fmt.Errorf("difficult case %d: %w", i, err)
		}
		p.row(base64.StdEncoding.EncodeToString(raw), "difficultMessage", difficultRow(c))
	}
	p.P("\t}")
	p.P("\tfor _, tt := range tests {")
	p.P("\t\traw, err := base64.StdEncoding.DecodeString(tt.wire)")
	p.P("\t\tif err != nil {")
	p.P("\t\t\tt.Fatalf(\"difficult: bad fixture %q: %v\", tt.wire, err)")
	p.P("\t\t}")
	p.P("\t\tif diff := cmp.Diff(tt.msg, decodeDifficult(t, raw)); diff != \"\" {")
	p.P("\t\t\tt.Errorf(\"decodeDifficult(%q) mismatch (-want +got):\\n%s\", tt.wire, diff)")
	p.P("\t\t}")
	p.P("\t\tif got := base64.StdEncoding.EncodeToString(encodeDifficult(tt.msg)); got != tt.wire {")
	p.P("\t\t\tt.Errorf(\"encodeDifficult(%+v) = %q, want %q\", tt.msg, got, tt.wire)")
	p.P("\t\t}")
	p.P("\t}")
	p.P("}")
	return p.Bytes(), nil
}

// difficultRow renders the decoded view of a corpus case.
func difficultRow(c corpus.DifficultCase) []rowField {
	var fs []rowField
	if c.Big != 0 {
		fs = append(fs, rowField{"Big", strconv.FormatUint(c.Big, 10)})
	}
	if c.Zigzag != 0 {
		fs = append(fs, rowField{"Zigzag", strconv.FormatInt(int64(c.Zigzag), 10)})
	}
	if c.Ratio != 0 {
		fs = append(fs, rowField{"Ratio", scalar.FormatFloat(c.Ratio)})
	}
	if len(c.Scores) > 0 {
		fs = append(fs, rowField{"Scores", goFloat64Slice(c.Scores)})
	}
	if len(c.Items) > 0 {
		fs = append(fs, rowField{"Items", goDifficultItems(c.Items)})
	}
	if len(c.Counts) > 0 {
		fs = append(fs, rowField{"Counts", goDifficultCounts(c.Counts)})
	}
	if c.ChoiceText != nil {
		fs = append(fs, rowField{"ChoiceText", "ptr(" + strconv.Quote(*c.ChoiceText) + ")"})
	}
	if c.ChoiceNumber != nil {
		fs = append(fs, rowField{"ChoiceNumber", "ptr(int32(" + strconv.FormatInt(int64(*c.ChoiceNumber), 10) + "))"})
	}
	if len(c.Payload) > 0 {
		fs = append(fs, rowField{"Payload", scalar.GoBytes(c.Payload)})
	}
	return fs
}

func goFloat64Slice(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = scalar.FormatFloat(v)
	}
	return "[]float64{" + strings.Join(parts, ", ") + "}"
}

func goDifficultItems(vs []corpus.DifficultItem) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		var fields []string
		if v.Name != "" {
			fields = append(fields, "Name: "+strconv.Quote(v.Name))
		}
		if len(v.Raw) > 0 {
			fields = append(fields, "Raw: "+scalar.GoBytes(v.Raw))
		}
		if v.Code != 0 {
			fields = append(fields, "Code: "+strconv.FormatUint(v.Code, 10))
		}
		parts[i] = "{" + strings.Join(fields, ", ") + "}"
	}
	return "[]difficultItem{" + strings.Join(parts, ", ") + "}"
}

func goDifficultCounts(vs []corpus.DifficultCount) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		var fields []string
		if v.Key != "" {
			fields = append(fields, "Key: "+strconv.Quote(v.Key))
		}
		if v.Value != 0 {
			fields = append(fields, "Value: "+strconv.FormatInt(int64(v.Value), 10))
		}
		parts[i] = "{" + strings.Join(fields, ", ") + "}"
	}
	return "[]difficultCount{" + strings.Join(parts, ", ") + "}"
}

// verifyDifficult cross-checks the big field and the packed double region
// against the corpus case. Score comparison is by bit pattern.
func verifyDifficult(c corpus.DifficultCase, raw []byte) error {
	var big uint64
	var scores []uint64
	for len(raw) > 0 {
		num, typ, n := wire.ConsumeTag(raw)
		if n < 0 {
			return fmt.Errorf("%w: %v", canon.ErrMalformedOutput, wire.ParseError(n))
		}
		raw = raw[n:]
		switch num {
		case 1:
			v, n := wire.ConsumeUint64(raw)
			if n < 0 {
				return fmt.Errorf("%w: big: %v", canon.ErrMalformedOutput, wire.ParseError(n))
			}
			big = v
			raw = raw[n:]
		case 4:
			region, n := wire.ConsumeBytes(raw)
			if n < 0 {
				return fmt.Errorf("%w: scores: %v", canon.ErrMalformedOutput, wire.ParseError(n))
			}
			vs, err := canon.PackedDouble(region)
			if err != nil {
				return err
			}
			scores = append(scores, vs...)
			raw = raw[n:]
		default:
			n := wire.ConsumeFieldValue(typ, raw)
			if n < 0 {
				return fmt.Errorf("%w: field %v: %v", canon.ErrMalformedOutput, num, wire.ParseError(n))
			}
			raw = raw[n:]
		}
	}
	if big != c.Big {
		return fmt.Errorf("oracle big %d disagrees with corpus big %d", big, c.Big)
	}
	if len(scores) != len(c.Scores) {
		return fmt.Errorf("oracle scores length %d disagrees with corpus length %d", len(scores), len(c.Scores))
	}
	for i := range scores {
		if scores[i] != math.Float64bits(c.Scores[i]) {
			return fmt.Errorf("oracle scores[%d] bits %#x disagree with corpus value %v", i, scores[i], c.Scores[i])
		}
	}
	return nil
}

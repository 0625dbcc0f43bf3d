// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corpus

import (
	"strings"

	"github.com/wiregolden/wiregolden/internal/scalar"
)

// Composite corpora combine a hand-authored seed set of interesting cases
// with a synthetic expansion. Synthetic case i draws each sub-field from an
// independent candidate pool at index (i*k) mod len(pool), with a distinct
// multiplier k per sub-field so that simultaneous pool indices decorrelate
// across i. The multipliers and pool orderings are frozen.

// MiddleNested is the nested sub-message of the middle corpus.
type MiddleNested struct {
	Count int64
	Flag  bool
	Note  string
}

// MiddleCase is one composite case of the codec.middle.Middle corpus.
// Nil Nested and empty Status mark absent sub-fields.
type MiddleCase struct {
	ID     int32
	Values []int32
	Packed []int32 // packed sint32
	Label  string
	Data   []byte
	Nested *MiddleNested
	Status string // enum symbol, "" when unset
	Tags   []string
}

// MiddleStatusNumber maps the middle-schema status symbols to their values.
func MiddleStatusNumber(symbol string) uint32 {
	switch symbol {
	case "", "STATUS_UNSPECIFIED":
		return 0
	case "STATUS_OK":
		return 1
	case "STATUS_FAIL":
		return 2
	}
	panic("corpus: unknown status symbol " + symbol)
}

// Middle returns the middle corpus: six seeds plus total synthetic cases.
// The first seed leaves every sub-field at its zero value to exercise the
// default-omission contract.
func Middle(total int) []MiddleCase {
	cases := []MiddleCase{
		{},
		{
			ID:     1,
			Values: []int32{1},
			Packed: []int32{0},
			Label:  "nested-empty",
			Data:   []byte{0x00},
			Nested: &MiddleNested{},
			Status: "STATUS_OK",
			Tags:   []string{"a"},
		},
		{
			ID:     -1,
			Values: []int32{-1, -2},
			Packed: []int32{-1},
			Label:  "neg",
			Data:   []byte{0xff},
			Nested: &MiddleNested{Count: -1, Flag: true, Note: "neg"},
			Status: "STATUS_FAIL",
			Tags:   []string{"neg"},
		},
		{
			ID:     2147483647,
			Values: []int32{2147483647},
			Packed: []int32{-2147483648, 2147483647},
			Label:  "max",
			Data:   []byte{0x00, 0xff},
			Nested: &MiddleNested{Count: 9223372036854775807, Flag: true, Note: "max"},
			Status: "STATUS_OK",
			Tags:   []string{"edge"},
		},
		{
			ID:     -2147483648,
			Values: []int32{-2147483648},
			Packed: []int32{0, 1},
			Label:  "min",
			Data:   []byte{0x10, 0x20, 0x30},
			Nested: &MiddleNested{Count: -9223372036854775808, Flag: false, Note: "min"},
			Status: "STATUS_FAIL",
			Tags:   []string{"edge", "min"},
		},
		{
			ID:     42,
			Packed: []int32{123456},
			Label:  "tags-only",
			Status: "STATUS_OK",
			Tags:   []string{"t1", "t2", "t3"},
		},
	}

	ids := []int32{
		0, 1, -1, 2, -2, 127, 128, 1024, -1024, 16384, -16384,
		2147483647, -2147483648,
	}
	values := [][]int32{
		nil,
		{0},
		{1, 2, 3},
		{-1, -2},
		{127, 128, 129},
		{1024, 2048},
		{-1024, 1024},
		{2147483647},
		{-2147483648},
		{1000, -1000},
		{0, 0, 0},
	}
	packed := [][]int32{
		nil,
		{0},
		{1, -1},
		{63, -63, 64, -64},
		{8191, -8191, 8192, -8192},
		{123456},
		{-123456},
		{-2147483648, 2147483647},
		{5, 6, 7, 8},
	}
	labels := []string{
		"", "alpha", "beta", "gamma", "delta", "with space",
		"symbols-!@#", "path\\\\slash",
	}
	data := [][]byte{
		nil,
		{0x00},
		{0x01, 0x02},
		{0xff},
		{0x00, 0xff, 0x10, 0x20},
		byteRange(5),
		byteRange(16),
		{0xde, 0xad, 0xbe, 0xef},
		repeatByte(0xab, 8),
	}
	nesteds := []*MiddleNested{
		nil,
		{},
		{Count: 1, Flag: true, Note: "n"},
		{Count: -1, Flag: true, Note: "neg"},
		{Count: 123456789, Flag: false, Note: "note"},
		{Count: 9223372036854775807, Flag: true, Note: "max"},
		{Count: -9223372036854775808, Flag: false, Note: "min"},
	}
	statuses := []string{
		"", "STATUS_UNSPECIFIED", "STATUS_OK", "STATUS_FAIL",
	}
	tags := [][]string{
		nil,
		{"a"},
		{"x", "y"},
		{"tag-one", "tag-two", "tag-three"},
		{"dup", "dup"},
		{"edge"},
		{"m1", "m2", "m3", "m4"},
	}

	for i := 0; i < total; i++ {
		cases = append(cases, MiddleCase{
			ID:     ids[i%len(ids)],
			Values: values[(i*3)%len(values)],
			Packed: packed[(i*5)%len(packed)],
			Label:  labels[(i*7)%len(labels)],
			Data:   data[(i*11)%len(data)],
			Nested: nesteds[(i*13)%len(nesteds)],
			Status: statuses[(i*17)%len(statuses)],
			Tags:   tags[(i*19)%len(tags)],
		})
	}
	return cases
}

// TextProto renders the case in the reference encoder's text grammar.
// Only present sub-fields are rendered, except id, which the grammar always
// states and the encoder's implicit-presence rule drops when zero.
func (c MiddleCase) TextProto() string {
	var b strings.Builder
	line(&b, 0, "id: "+formatInt(int64(c.ID)))
	for _, v := range c.Values {
		line(&b, 0, "values: "+formatInt(int64(v)))
	}
	for _, v := range c.Packed {
		line(&b, 0, "packed_values: "+formatInt(int64(v)))
	}
	if c.Label != "" {
		line(&b, 0, "label: "+scalar.TextString(c.Label))
	}
	if len(c.Data) > 0 {
		line(&b, 0, "data: "+scalar.TextBytes(c.Data))
	}
	if c.Nested != nil {
		line(&b, 0, "nested {")
		line(&b, 1, "count: "+formatInt(c.Nested.Count))
		line(&b, 1, "flag: "+formatBool(c.Nested.Flag))
		line(&b, 1, "note: "+scalar.TextString(c.Nested.Note))
		line(&b, 0, "}")
	}
	if c.Status != "" {
		line(&b, 0, "status: "+c.Status)
	}
	for _, t := range c.Tags {
		line(&b, 0, "tags: "+scalar.TextString(t))
	}
	return b.String()
}

// DifficultItem is the repeated sub-message of the difficult corpus.
type DifficultItem struct {
	Name string
	Raw  []byte
	Code uint64 // fixed64
}

// DifficultCount is the map-like repeated entry of the difficult corpus.
// Its value field has explicit presence and is always stated, even at zero.
type DifficultCount struct {
	Key   string
	Value int32
}

// DifficultCase is one composite case of the codec.difficult.Difficult
// corpus. ChoiceText and ChoiceNumber are the two alternatives of a oneof;
// the corpus never sets both.
type DifficultCase struct {
	Big          uint64
	Zigzag       int32 // sint32
	Ratio        float64
	Scores       []float64 // packed double
	Items        []DifficultItem
	Counts       []DifficultCount
	ChoiceText   *string
	ChoiceNumber *int32
	Payload      []byte
}

// Difficult returns the difficult corpus: six seeds plus total synthetic
// cases. The first seed is all-default.
func Difficult(total int) []DifficultCase {
	cases := []DifficultCase{
		{},
		{
			Big:    1,
			Zigzag: -1,
			Ratio:  1.5,
			Scores: []float64{1.25, -2.5},
			Items: []DifficultItem{
				{Name: "a", Raw: []byte{0x01}, Code: 1},
			},
			Counts:     []DifficultCount{{"a", 1}, {"b", 2}},
			ChoiceText: ptr("hello"),
			Payload:    []byte{0x00, 0x01},
		},
		{
			Big:    18446744073709551615,
			Zigzag: 123456,
			Ratio:  -3.5,
			Scores: []float64{0.0, 99.5},
			Items: []DifficultItem{
				{Name: "first", Raw: []byte{0xff, 0x00}, Code: 0x123456789ABCDEF0},
			},
			Counts:       []DifficultCount{{"max", 2147483647}},
			ChoiceNumber: ptr(int32(0)),
			Payload:      []byte{0xff},
		},
		{
			Big:    9223372036854775808,
			Zigzag: -2147483648,
			Ratio:  2.0,
			Items: []DifficultItem{
				{Name: "x", Raw: nil, Code: 0},
				{Name: "y", Raw: []byte{0x10, 0x20}, Code: 999},
			},
			Counts:     []DifficultCount{{"dup", 1}, {"dup", 2}},
			ChoiceText: ptr("world"),
			Payload:    []byte{0x10, 0x20, 0x30},
		},
		{
			Big:    999,
			Zigzag: -999,
			Ratio:  3.14159,
			Scores: []float64{1e-3, 1e3},
			Items: []DifficultItem{
				{Name: "mix", Raw: []byte{0x00, 0xff}, Code: 0x0F0E0D0C0B0A0908},
				{Name: "tail", Raw: byteRange(8), Code: 7},
			},
			Counts:       []DifficultCount{{"alpha", 100}, {"beta", 200}, {"gamma", 300}},
			ChoiceNumber: ptr(int32(2147483647)),
			Payload:      []byte{0x00, 0xff, 0x10, 0x20},
		},
		{
			Big:    1234567890123456789,
			Zigzag: 12345,
			Ratio:  1e-9,
			Scores: []float64{123.456, 789.012},
			Items: []DifficultItem{
				{Name: "m", Raw: []byte{0x01, 0x02, 0x03}, Code: 123456789},
			},
			Counts:       []DifficultCount{{"k", -2147483648}},
			ChoiceNumber: ptr(int32(-1)),
			Payload:      []byte{0x7f},
		},
	}

	bigs := []uint64{
		0, 1, 127, 128, 16384, 4294967295, 4294967296,
		9223372036854775808, 18446744073709551615, 1234567890123456789,
	}
	zigzags := []int32{
		0, 1, -1, 2, -2, 63, -63, 64, -64, 123456, -123456,
		2147483647, -2147483648,
	}
	ratios := []float64{
		0.0, 1.5, -3.5, 0.125, 3.14159, 1e-9, 1e6, -2.25,
	}
	scores := [][]float64{
		nil,
		{0.0},
		{1.25, -2.5},
		{0.0, 99.5},
		{1e-3, 1e3},
		{-1.0, -2.0, -3.0},
		{123.456, 789.012},
		{0.125, 0.25, 0.5, 1.0},
	}
	items := [][]DifficultItem{
		nil,
		{{Name: "a", Raw: []byte{0x01}, Code: 1}},
		{{Name: "first", Raw: []byte{0xff, 0x00}, Code: 0x123456789ABCDEF0}},
		{
			{Name: "x", Raw: nil, Code: 0},
			{Name: "y", Raw: []byte{0x10, 0x20}, Code: 999},
		},
		{{Name: "big", Raw: byteRange(4), Code: 18446744073709551615}},
		{{Name: "empty-raw", Raw: nil, Code: 42}},
		{
			{Name: "mix", Raw: []byte{0x00, 0xff}, Code: 0x0F0E0D0C0B0A0908},
			{Name: "tail", Raw: byteRange(8), Code: 7},
		},
	}
	counts := [][]DifficultCount{
		nil,
		{{"a", 1}, {"b", 2}},
		{{"max", 2147483647}},
		{{"x", -1}, {"y", 7}},
		{{"dup", 1}, {"dup", 2}},
		{{"zero", 0}},
		{{"neg", -2147483648}, {"pos", 2147483647}},
	}
	choices := []DifficultCase{
		{ChoiceText: ptr("hello")},
		{ChoiceNumber: ptr(int32(42))},
		{ChoiceText: ptr("world")},
		{ChoiceNumber: ptr(int32(0))},
		{ChoiceText: ptr("choice text")},
		{ChoiceNumber: ptr(int32(-1))},
	}
	payloads := [][]byte{
		nil,
		{0xff},
		{0x00, 0x01},
		{0x10, 0x20, 0x30},
		{0x00, 0xff, 0x10, 0x20},
		byteRange(8),
	}

	for i := 0; i < total; i++ {
		choice := choices[(i*17)%len(choices)]
		cases = append(cases, DifficultCase{
			Big:          bigs[i%len(bigs)],
			Zigzag:       zigzags[(i*3)%len(zigzags)],
			Ratio:        ratios[(i*5)%len(ratios)],
			Scores:       scores[(i*7)%len(scores)],
			Items:        items[(i*11)%len(items)],
			Counts:       counts[(i*13)%len(counts)],
			ChoiceText:   choice.ChoiceText,
			ChoiceNumber: choice.ChoiceNumber,
			Payload:      payloads[(i*19)%len(payloads)],
		})
	}
	return cases
}

// TextProto renders the case in the reference encoder's text grammar.
func (c DifficultCase) TextProto() string {
	var b strings.Builder
	line(&b, 0, "big: "+formatUint(c.Big))
	line(&b, 0, "zigzag: "+formatInt(int64(c.Zigzag)))
	line(&b, 0, "ratio: "+scalar.FormatFloat(c.Ratio))
	for _, s := range c.Scores {
		line(&b, 0, "scores: "+scalar.FormatFloat(s))
	}
	for _, it := range c.Items {
		line(&b, 0, "items {")
		line(&b, 1, "name: "+scalar.TextString(it.Name))
		line(&b, 1, "raw: "+scalar.TextBytes(it.Raw))
		line(&b, 1, "code: "+formatUint(it.Code))
		line(&b, 0, "}")
	}
	for _, ct := range c.Counts {
		line(&b, 0, "counts {")
		line(&b, 1, "key: "+scalar.TextString(ct.Key))
		line(&b, 1, "value: "+formatInt(int64(ct.Value)))
		line(&b, 0, "}")
	}
	if c.ChoiceText != nil {
		line(&b, 0, "text: "+scalar.TextString(*c.ChoiceText))
	}
	if c.ChoiceNumber != nil {
		line(&b, 0, "number: "+formatInt(int64(*c.ChoiceNumber)))
	}
	if len(c.Payload) > 0 {
		line(&b, 0, "payload: "+scalar.TextBytes(c.Payload))
	}
	return b.String()
}

// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corpus

import (
	"strconv"
	"strings"
)

func line(b *strings.Builder, indent int, s string) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func ptr[T any](v T) *T {
	return &v
}

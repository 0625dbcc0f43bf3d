// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen renders the generated test artifacts. Each artifact is a
// self-contained Go test file holding literal fixture tables and small
// helper routines that depend only on the wire package's public read and
// write operations.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wiregolden/wiregolden/internal/config"
	"github.com/wiregolden/wiregolden/internal/oracle"
	"github.com/wiregolden/wiregolden/wire"
)

// Generator runs the full pipeline: corpus build, oracle call,
// canonicalization and emission, one artifact at a time.
type Generator struct {
	Oracle oracle.Oracle
	Config config.Config
}

// Run generates every artifact. The pipeline is synchronous and fail-fast:
// the first error aborts the run, and a failed artifact leaves no
// half-written file behind.
func (g *Generator) Run(ctx context.Context) error {
	artifacts := []struct {
		name  string
		build func(context.Context) ([]byte, error)
	}{
		{"golden_scalar_test.go", g.scalarArtifact},
		{"golden_middle_test.go", g.middleArtifact},
		{"golden_difficult_test.go", g.difficultArtifact},
		{"golden_bad_test.go", func(context.Context) ([]byte, error) { return badArtifact(), nil }},
	}
	for _, a := range artifacts {
		data, err := a.build(ctx)
		if err != nil {
			return fmt.Errorf("gen: %s: %w", a.name, err)
		}
		if err := writeFileAtomic(filepath.Join(g.Config.OutDir, a.name), data); err != nil {
			return fmt.Errorf("gen: %s: %w", a.name, err)
		}
	}
	return nil
}

// writeFileAtomic fully replaces path, staging the content in a temporary
// file first so an interrupted run never leaves a truncated artifact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// printer accumulates generated source one line per P call, in the manner
// of protogen's GeneratedFile.
type printer struct {
	buf bytes.Buffer
}

func (p *printer) P(args ...any) {
	for _, a := range args {
		fmt.Fprint(&p.buf, a)
	}
	p.buf.WriteByte('\n')
}

func (p *printer) Bytes() []byte {
	return p.buf.Bytes()
}

const generatedHeader = "// Code generated by wiregolden. DO NOT EDIT."

func (p *printer) header(imports ...string) {
	p.P(generatedHeader)
	p.P()
	p.P("package wire_test")
	p.P()
	p.P("import (")
	for _, im := range imports {
		if im == "" {
			p.P()
			continue
		}
		p.P("\t", `"`, im, `"`)
	}
	p.P(")")
}

func wireTypeExpr(t wire.Type) string {
	switch t {
	case wire.VarintType:
		return "wire.VarintType"
	case wire.Fixed32Type:
		return "wire.Fixed32Type"
	case wire.Fixed64Type:
		return "wire.Fixed64Type"
	case wire.BytesType:
		return "wire.BytesType"
	default:
		panic("gen: reserved wire type")
	}
}

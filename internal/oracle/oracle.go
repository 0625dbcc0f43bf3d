// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle obtains ground-truth wire encodings from the trusted
// external reference encoder.
package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var (
	// ErrSchemaNotFound is returned when the schema file for a request does
	// not exist under the configured proto directory.
	ErrSchemaNotFound = errors.New("oracle: schema not found")
	// ErrInvocation is returned when the reference encoder exits non-zero or
	// writes anything to stderr. There is no fallback: an untrusted oracle
	// output invalidates every downstream fixture.
	ErrInvocation = errors.New("oracle: reference encoder invocation failed")
)

// Request names one encoding to obtain: a schema file, a fully-qualified
// message type within it, and the text-format rendering of the field values.
type Request struct {
	Proto   string // schema file name, relative to the proto directory
	Message string // fully-qualified message type, e.g. codec.simple.Int32Value
	Text    string // text-format field values
}

// Oracle produces the canonical wire encoding for a request.
type Oracle interface {
	Encode(ctx context.Context, req Request) ([]byte, error)
}

// Func adapts a function to the Oracle interface.
type Func func(ctx context.Context, req Request) ([]byte, error)

// Encode calls f.
func (f Func) Encode(ctx context.Context, req Request) ([]byte, error) {
	return f(ctx, req)
}

// Protoc drives the protoc binary in --encode mode. The call blocks until
// protoc exits; there is no internal timeout, so cancellation is the
// caller's context's responsibility.
type Protoc struct {
	Path     string   // protoc binary, e.g. "protoc"
	ProtoDir string   // directory holding the schema files
	Include  []string // additional import directories
}

// Encode runs protoc --encode for the request and returns the raw bytes it
// writes to stdout. Any non-zero exit or stderr content is fatal.
func (p *Protoc) Encode(ctx context.Context, req Request) ([]byte, error) {
	schema := filepath.Join(p.ProtoDir, req.Proto)
	if _, err := os.Stat(schema); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, schema)
	}

	args := []string{"--proto_path=" + p.ProtoDir}
	for _, dir := range p.Include {
		args = append(args, "--proto_path="+dir)
	}
	args = append(args, "--encode="+req.Message, schema)

	cmd := exec.CommandContext(ctx, p.Path, args...)
	cmd.Stdin = bytes.NewReader([]byte(req.Text))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v: %s",
			ErrInvocation, req.Message, req.Proto, err, stderr.Bytes())
	}
	if stderr.Len() > 0 {
		return nil, fmt.Errorf("%w: %s %s: unexpected diagnostics: %s",
			ErrInvocation, req.Message, req.Proto, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

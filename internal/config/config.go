// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the generation run configuration.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one generation run.
type Config struct {
	// Protoc is the reference encoder binary.
	Protoc string `yaml:"protoc"`
	// ProtoDir holds the schema files.
	ProtoDir string `yaml:"proto_dir"`
	// Include lists additional import directories passed to the encoder.
	Include []string `yaml:"include"`
	// OutDir receives the generated artifacts.
	OutDir string `yaml:"out_dir"`
	// MiddleCases and DifficultCases size the synthetic expansions. The
	// defaults are frozen alongside the corpus algorithm; changing them
	// changes every downstream fixture.
	MiddleCases    int `yaml:"middle_cases"`
	DifficultCases int `yaml:"difficult_cases"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Protoc:         "protoc",
		ProtoDir:       "testdata/proto",
		OutDir:         "wire",
		MiddleCases:    80,
		DifficultCases: 70,
	}
}

// Load reads a YAML configuration file. Absent keys keep their defaults;
// unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

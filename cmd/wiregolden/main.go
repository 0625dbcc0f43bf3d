// Copyright 2025 The wiregolden Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// wiregolden regenerates the golden wire-format test artifacts by running
// the corpus through a reference protoc encoder and emitting self-contained
// Go test files.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/wiregolden/wiregolden/internal/config"
	"github.com/wiregolden/wiregolden/internal/gen"
	"github.com/wiregolden/wiregolden/internal/oracle"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wiregolden: ")
	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "wiregolden",
		Short:         "wiregolden generates golden wire-format codec tests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		cfgPath string
		protoc  string
		outDir  string
	)
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate every golden test artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				var err error
				cfg, err = config.Load(cfgPath)
				if err != nil {
					return err
				}
			}
			if protoc != "" {
				cfg.Protoc = protoc
			}
			if outDir != "" {
				cfg.OutDir = outDir
			}
			g := &gen.Generator{
				Oracle: &oracle.Protoc{
					Path:     cfg.Protoc,
					ProtoDir: cfg.ProtoDir,
					Include:  cfg.Include,
				},
				Config: cfg,
			}
			if err := g.Run(cmd.Context()); err != nil {
				return err
			}
			log.Printf("wrote artifacts to %s", cfg.OutDir)
			return nil
		},
	}
	generate.Flags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	generate.Flags().StringVar(&protoc, "protoc", "", "reference encoder binary (overrides config)")
	generate.Flags().StringVar(&outDir, "out", "", "artifact output directory (overrides config)")

	root.AddCommand(generate)
	return root
}

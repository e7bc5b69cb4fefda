// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/stillmatic/python-betterproto/internal/codegen"
	"github.com/stillmatic/python-betterproto/internal/config"
	"github.com/stillmatic/python-betterproto/internal/plugin"
	"github.com/stillmatic/python-betterproto/internal/prompts"
	"github.com/stillmatic/python-betterproto/internal/render"
)

type compileOptions struct {
	descriptorSet string
	output        string
	config        string
}

func registerCompileCmd(parent *cobra.Command, renderers render.Register) {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a serialized descriptor set to Python sources",
		Long: fmt.Sprintf(`Compile a serialized FileDescriptorSet, as produced by
protoc --descriptor_set_out, into a tree of Python modules.

Available renderers: %s`, strings.Join(renderers.Available(), ", ")),
		Example: `  # Produce the descriptor set, then compile it
  protoc --descriptor_set_out=build/descriptors.pb --include_source_info greeter.proto
  protoc-gen-python_betterproto compile --descriptor-set build/descriptors.pb --output gen

  # Interactive mode
  protoc-gen-python_betterproto compile

  # With a configuration file
  protoc-gen-python_betterproto compile --descriptor-set build/descriptors.pb --config betterproto.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(renderers, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.descriptorSet, "descriptor-set", "d", "", "Serialized FileDescriptorSet file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "gen", "Output directory")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Generator configuration file (betterproto.yaml)")

	parent.AddCommand(cmd)
}

func runCompile(renderers render.Register, opts *compileOptions) error {
	if err := prompts.RunCompileForm(&opts.descriptorSet, &opts.output); err != nil {
		return err
	}

	cfg := config.Default()
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	renderer, err := renderers.Get(cfg.Renderer)
	if err != nil {
		return fmt.Errorf("unsupported renderer %q. Available renderers: %s",
			cfg.Renderer, strings.Join(renderers.Available(), ", "))
	}

	data, err := os.ReadFile(opts.descriptorSet) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("failed to read descriptor set: %w", err)
	}

	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(data, set); err != nil {
		return fmt.Errorf("failed to parse descriptor set: %w", err)
	}

	units, err := codegen.CompileFiles(set.GetFile())
	if err != nil {
		return err
	}

	fmt.Printf("Compiling %d unit(s) to %s...\n", len(units), opts.output)

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var generated []string
	for _, unit := range units {
		content, err := renderer.Render(unit, cfg.Runtime)
		if err != nil {
			return fmt.Errorf("%s: %w", unit.Key, err)
		}

		name := plugin.OutputPath(unit.Key, renderer.FileExtension())
		outFile := filepath.Join(opts.output, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(outFile), 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outFile, content, 0o600); err != nil {
			return fmt.Errorf("%s: %w", unit.Key, err)
		}
		fmt.Printf("  %s\n", outFile)
		generated = append(generated, name)
	}

	for _, init := range plugin.InitPaths(generated) {
		initFile := filepath.Join(opts.output, filepath.FromSlash(init))
		if err := os.WriteFile(initFile, nil, 0o600); err != nil {
			return fmt.Errorf("%s: %w", init, err)
		}
	}

	fmt.Printf("\nSuccessfully compiled %d unit(s)\n", len(units))
	return nil
}

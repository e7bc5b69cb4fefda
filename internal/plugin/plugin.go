// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package plugin implements the protoc code generator exchange: a
// CodeGeneratorRequest read whole from one stream, a CodeGeneratorResponse
// written whole to another.
package plugin

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/stillmatic/python-betterproto/internal/codegen"
	"github.com/stillmatic/python-betterproto/internal/config"
	"github.com/stillmatic/python-betterproto/internal/render"
)

// Run reads a serialized CodeGeneratorRequest from in, compiles it, and
// writes the serialized CodeGeneratorResponse to out. When compilation
// fails, nothing is written: the invoking toolchain sees a non-zero exit
// instead of a truncated response.
func Run(in io.Reader, out io.Writer, renderers render.Register) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}

	resp, err := Generate(req, renderers)
	if err != nil {
		return err
	}

	raw, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if _, err := out.Write(raw); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Generate compiles every descriptor file in the request into response
// files. Units are independent, so each one is compiled and rendered on its
// own goroutine; results are placed by index to keep the response
// deterministic.
func Generate(req *pluginpb.CodeGeneratorRequest, renderers render.Register) (*pluginpb.CodeGeneratorResponse, error) {
	cfg, err := configFromParameter(req.GetParameter())
	if err != nil {
		return nil, err
	}

	renderer, err := renderers.Get(cfg.Renderer)
	if err != nil {
		return nil, err
	}

	groups := codegen.GroupFiles(req.GetProtoFile())
	files := make([]*pluginpb.CodeGeneratorResponse_File, len(groups))

	var eg errgroup.Group
	for i, group := range groups {
		eg.Go(func() error {
			unit, err := codegen.CompileGroup(group)
			if err != nil {
				return err
			}
			content, err := renderer.Render(unit, cfg.Runtime)
			if err != nil {
				return err
			}
			files[i] = &pluginpb.CodeGeneratorResponse_File{
				Name:    proto.String(OutputPath(unit.Key, renderer.FileExtension())),
				Content: proto.String(string(content)),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	resp := &pluginpb.CodeGeneratorResponse{File: files}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.GetName()
	}
	for _, init := range InitPaths(names) {
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(init),
			Content: proto.String(""),
		})
	}
	return resp, nil
}

// configFromParameter builds the generator configuration from the protoc
// plugin parameter string (the --python_betterproto_opt values, joined by
// commas). A config=<path> entry loads a configuration file; anything else
// is rejected so typos fail loudly.
func configFromParameter(parameter string) (*config.Config, error) {
	cfg := config.Default()
	if parameter == "" {
		return cfg, nil
	}

	for _, opt := range strings.Split(parameter, ",") {
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "config":
			loaded, err := config.Load(value)
			if err != nil {
				return nil, fmt.Errorf("failed to load config %q: %w", value, err)
			}
			if err := loaded.Validate(); err != nil {
				return nil, err
			}
			cfg = loaded
		case "runtime":
			cfg.Runtime = value
		case "renderer":
			cfg.Renderer = value
		default:
			return nil, fmt.Errorf("unknown plugin parameter %q", opt)
		}
	}
	return cfg, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the plugin.
package internal

import (
	"context"

	"github.com/stillmatic/python-betterproto/internal/commands"
	"github.com/stillmatic/python-betterproto/internal/render"
	"github.com/stillmatic/python-betterproto/internal/render/python"
)

func registerRenderers() render.Register {
	renderers := make(render.Register)
	renderers["python"] = &python.Renderer{}
	return renderers
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context) error {
	renderers := registerRenderers()
	rootCmd := commands.NewRootCmd(renderers)
	return rootCmd.ExecuteContext(ctx)
}

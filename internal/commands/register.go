// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/stillmatic/python-betterproto/internal/plugin"
	"github.com/stillmatic/python-betterproto/internal/render"
)

// NewRootCmd creates and returns the root command. Run with no subcommand
// it behaves as a protoc plugin: the code generator request is read from
// stdin and the response written to stdout, which is how protoc invokes it.
func NewRootCmd(renderers render.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "protoc-gen-python_betterproto",
		Short:        "Protocol buffer compiler plugin generating Python dataclasses",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plugin.Run(cmd.InOrStdin(), cmd.OutOrStdout(), renderers)
		},
	}

	registerCompileCmd(rootCmd, renderers)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package render turns compiled units into generated source text.
package render

import (
	"fmt"
	"sort"

	"github.com/stillmatic/python-betterproto/internal/codegen"
)

// Renderer defines the interface all output renderers must implement.
type Renderer interface {
	// Name returns the renderer's identifier (e.g., "python")
	Name() string

	// Render produces the generated source for one compiled unit.
	// runtime names the module the generated code imports at run time;
	// empty selects the renderer's default.
	Render(unit *codegen.Unit, runtime string) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".py")
	FileExtension() string
}

// Register maps renderer names to implementations.
type Register map[string]Renderer

// Get retrieves a renderer by name.
func (r Register) Get(name string) (Renderer, error) {
	renderer, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
	return renderer, nil
}

// Available returns all registered renderer names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python renders compiled units as Python dataclass modules.
package python

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/stillmatic/python-betterproto/internal/codegen"
)

// DefaultRuntime is the Python module the generated code imports unless
// configuration overrides it.
const DefaultRuntime = "betterproto"

//go:embed python.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("python.go.tmpl").Funcs(template.FuncMap{
	"join":   strings.Join,
	"indent": indent,
}).ParseFS(tmplFS, "python.go.tmpl"))

// Renderer renders compiled units as Python dataclass definitions.
type Renderer struct{}

// Name returns the renderer's registry identifier.
func (r *Renderer) Name() string {
	return "python"
}

// FileExtension returns the file extension for Python files.
func (r *Renderer) FileExtension() string {
	return ".py"
}

// Render produces one Python module for the unit.
func (r *Renderer) Render(unit *codegen.Unit, runtime string) ([]byte, error) {
	if runtime == "" {
		runtime = DefaultRuntime
	}

	data := &templateData{Unit: unit, Runtime: runtime}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "python.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, '\n'), nil
}

type templateData struct {
	*codegen.Unit
	Runtime string
}

// indent shifts a pre-formatted comment block one level deeper, for
// docstrings placed inside method bodies.
func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n")
}

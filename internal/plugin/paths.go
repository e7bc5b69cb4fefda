// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plugin

import (
	"path"
	"sort"
	"strings"
)

// OutputPath converts a unit's dotted output key into its generated file
// path: dots become path separators and the renderer's extension is
// appended.
func OutputPath(key, ext string) string {
	return strings.ReplaceAll(key, ".", "/") + ext
}

// InitPaths returns the package-initializer files covering every generated
// file: one __init__.py per directory level, including the output root.
// The result is sorted for deterministic responses.
func InitPaths(generated []string) []string {
	dirs := map[string]struct{}{"": {}}
	for _, name := range generated {
		for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
			dirs[dir] = struct{}{}
		}
	}

	inits := make([]string, 0, len(dirs))
	for dir := range dirs {
		inits = append(inits, path.Join(dir, "__init__.py"))
	}
	sort.Strings(inits)
	return inits
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"sort"
	"strings"
)

// unitBuilder accumulates one unit's state during a compile pass. The
// import sets live here so accumulation stays explicit builder state
// instead of a shared mutable set threaded through free functions.
type unitBuilder struct {
	pkg     string
	imports map[string]struct{}
	typing  map[string]struct{}
	unit    *Unit
}

func newUnitBuilder(g *FileGroup) *unitBuilder {
	unit := &Unit{Key: g.Key, Package: g.Package}
	for _, file := range g.Files {
		unit.SourceFiles = append(unit.SourceFiles, file.GetName())
	}
	return &unitBuilder{
		pkg:     g.Package,
		imports: make(map[string]struct{}),
		typing:  make(map[string]struct{}),
		unit:    unit,
	}
}

func (b *unitBuilder) addImport(stmt string) { b.imports[stmt] = struct{}{} }
func (b *unitBuilder) addTyping(name string) { b.typing[name] = struct{}{} }

// finalize sorts the accumulated import sets and hands over the unit.
// The builder must not be used afterward.
func (b *unitBuilder) finalize() *Unit {
	b.unit.Imports = sortedKeys(b.imports)
	b.unit.TypingImports = sortedKeys(b.typing)
	return b.unit
}

// refType resolves a fully qualified dotted type reference to a usable
// Python type expression. References within the current package are
// flattened and quoted as forward references, since the target class may
// not be emitted yet. References into other packages record a relative
// import and return the package-qualified form unquoted.
func (b *unitBuilder) refType(ref string) (string, error) {
	name := strings.TrimPrefix(ref, ".")
	if name == "" {
		return "", &MalformedReferenceError{Ref: ref}
	}

	if b.pkg == "" || name == b.pkg || strings.HasPrefix(name, b.pkg+".") {
		local := strings.TrimPrefix(name, b.pkg)
		local = strings.TrimPrefix(local, ".")
		local = strings.ReplaceAll(local, ".", "")
		if local == "" {
			return "", &MalformedReferenceError{Ref: ref}
		}
		return `"` + local + `"`, nil
	}

	parts := strings.Split(name, ".")
	if len(parts) == 1 {
		// Same-package top-level symbol with no package prefix to strip.
		return name, nil
	}

	module := parts[len(parts)-2]
	symbol := parts[len(parts)-1]
	b.addImport("from ." + strings.Join(parts[:len(parts)-2], ".") + " import " + module)
	return module + "." + symbol, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

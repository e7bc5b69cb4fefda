// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"path"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// FileGroup is the set of descriptor files sharing one output target,
// keyed by declared package or, for files without a package, by the file
// path with separators replaced by dots.
type FileGroup struct {
	Key     string
	Package string
	Files   []*descriptorpb.FileDescriptorProto
}

// GroupFiles buckets descriptor files into compilation groups, preserving
// the order in which keys first appear in the request.
func GroupFiles(files []*descriptorpb.FileDescriptorProto) []*FileGroup {
	byKey := make(map[string]*FileGroup)
	var groups []*FileGroup

	for _, file := range files {
		key := file.GetPackage()
		if key == "" {
			name := strings.TrimSuffix(file.GetName(), path.Ext(file.GetName()))
			key = strings.ReplaceAll(name, "/", ".")
		}

		g, ok := byKey[key]
		if !ok {
			g = &FileGroup{Key: key, Package: file.GetPackage()}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Files = append(g.Files, file)
	}

	return groups
}

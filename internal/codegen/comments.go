// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"slices"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// commentWidth is the wrap column for extracted comments.
const commentWidth = 75

// shortCommentWidth is the longest single wrapped line still rendered as a
// one-line docstring.
const shortCommentWidth = 70

// comment returns the formatted documentation for the declaration at path,
// or "" when no leading comment is attached. Trailing comments are ignored.
// Field and enum-value paths render as indented line comments; message,
// enum, service, and method paths render as docstrings.
func comment(file *descriptorpb.FileDescriptorProto, path []int32) string {
	for _, loc := range file.GetSourceCodeInfo().GetLocation() {
		if loc.GetLeadingComments() == "" || !slices.Equal(loc.GetPath(), path) {
			continue
		}

		text := strings.ReplaceAll(strings.TrimSpace(loc.GetLeadingComments()), "\n", " ")
		lines := wrap(text, commentWidth)

		if isFieldPath(path) {
			return "    # " + strings.Join(lines, "\n    # ")
		}

		if len(lines) == 1 && len(lines[0]) < shortCommentWidth {
			return `    """` + strings.Trim(lines[0], `"`) + `"""`
		}
		return "    \"\"\"\n    " + strings.Join(lines, "\n    ") + "\n    \"\"\""
	}

	return ""
}

// isFieldPath reports whether path addresses a message field or enum value,
// which take line-comment layout. Service method paths end the same way but
// take docstring layout, so they are excluded by the enclosing element.
func isFieldPath(path []int32) bool {
	if len(path) < 4 {
		return false
	}
	return path[len(path)-2] == pathField && path[len(path)-4] != pathService
}

// wrap word-wraps text to the given width, greedily. Words longer than the
// width get a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func fileWithComment(path []int32, leading string) *descriptorpb.FileDescriptorProto {
	file := testFile("pkg", "pkg.proto")
	file.SourceCodeInfo = &descriptorpb.SourceCodeInfo{
		Location: []*descriptorpb.SourceCodeInfo_Location{
			{Path: path, LeadingComments: proto.String(leading)},
		},
	}
	return file
}

func TestComment_NoneAttached(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	assert.Empty(t, comment(file, []int32{4, 0}))
}

func TestComment_PathMismatch(t *testing.T) {
	file := fileWithComment([]int32{4, 0}, "Attached to the first message.")
	assert.Empty(t, comment(file, []int32{4, 1}))
}

func TestComment_TrailingIgnored(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	file.SourceCodeInfo = &descriptorpb.SourceCodeInfo{
		Location: []*descriptorpb.SourceCodeInfo_Location{
			{Path: []int32{4, 0}, TrailingComments: proto.String("trailing")},
		},
	}
	assert.Empty(t, comment(file, []int32{4, 0}))
}

func TestComment_ShortDeclarationBecomesOneLineDocstring(t *testing.T) {
	file := fileWithComment([]int32{4, 0}, " A short message comment.\n")

	got := comment(file, []int32{4, 0})

	assert.Equal(t, `    """A short message comment."""`, got)
}

func TestComment_EnclosingQuotesStripped(t *testing.T) {
	file := fileWithComment([]int32{4, 0}, `"quoted"`)

	got := comment(file, []int32{4, 0})

	assert.Equal(t, `    """quoted"""`, got)
}

func TestComment_LongDeclarationBecomesBlockDocstring(t *testing.T) {
	long := strings.Repeat("word ", 40)
	file := fileWithComment([]int32{4, 0}, long)

	got := comment(file, []int32{4, 0})

	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, `    """`, lines[0])
	assert.Equal(t, `    """`, lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "    word"))
		assert.LessOrEqual(t, len(line), 4+commentWidth)
	}
}

func TestComment_FieldRendersLineComments(t *testing.T) {
	path := []int32{4, 0, 2, 0}
	file := fileWithComment(path, "The field comment.")

	got := comment(file, path)

	assert.Equal(t, "    # The field comment.", got)
}

func TestComment_LongFieldWrapsToMultipleLineComments(t *testing.T) {
	path := []int32{4, 0, 2, 0}
	file := fileWithComment(path, strings.Repeat("tag ", 50))

	got := comment(file, path)

	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, "    # "))
	}
}

func TestComment_EnumValueUsesFieldLayout(t *testing.T) {
	path := []int32{5, 0, 2, 1}
	file := fileWithComment(path, "Second value.")

	got := comment(file, path)

	assert.Equal(t, "    # Second value.", got)
}

func TestComment_MethodUsesDocstringLayout(t *testing.T) {
	path := []int32{6, 0, 2, 0}
	file := fileWithComment(path, "Calls the thing.")

	got := comment(file, path)

	assert.Equal(t, `    """Calls the thing."""`, got)
}

func TestComment_InternalNewlinesCollapsed(t *testing.T) {
	file := fileWithComment([]int32{4, 0}, "first\nsecond")

	got := comment(file, []int32{4, 0})

	assert.Equal(t, `    """first second"""`, got)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("", 10))
	assert.Equal(t, []string{"one two"}, wrap("one two", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"supercalifragilistic"}, wrap("supercalifragilistic", 5))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestDeclarations_FlattensNestedMessages(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	file.MessageType = []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("Outer"),
			NestedType: []*descriptorpb.DescriptorProto{
				{
					Name:  proto.String("Inner"),
					Field: []*descriptorpb.FieldDescriptorProto{testField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING)},
				},
			},
		},
	}

	var names []string
	for decl := range Declarations(file) {
		require.NotNil(t, decl.Message)
		names = append(names, decl.Message.GetName())
	}

	assert.Equal(t, []string{"Outer", "OuterInner"}, names)
}

func TestDeclarations_DeepNestingAccumulatesPrefixes(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	file.MessageType = []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("A"),
			NestedType: []*descriptorpb.DescriptorProto{
				{
					Name: proto.String("B"),
					NestedType: []*descriptorpb.DescriptorProto{
						{Name: proto.String("C")},
					},
				},
			},
		},
	}

	var names []string
	for decl := range Declarations(file) {
		names = append(names, decl.Message.GetName())
	}

	assert.Equal(t, []string{"A", "AB", "ABC"}, names)
}

func TestDeclarations_NestedEnumPrefixedWithEnclosingMessage(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	file.EnumType = []*descriptorpb.EnumDescriptorProto{
		{Name: proto.String("TopLevel")},
	}
	file.MessageType = []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("Outer"),
			EnumType: []*descriptorpb.EnumDescriptorProto{
				{Name: proto.String("Kind")},
			},
		},
	}

	var names []string
	for decl := range Declarations(file) {
		switch {
		case decl.Enum != nil:
			names = append(names, "enum:"+decl.Enum.GetName())
		case decl.Message != nil:
			names = append(names, "msg:"+decl.Message.GetName())
		}
	}

	// Top-level enums come first, then messages with their nested enums.
	assert.Equal(t, []string{"enum:TopLevel", "msg:Outer", "enum:OuterKind"}, names)
}

func TestDeclarations_SourcePaths(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	file.EnumType = []*descriptorpb.EnumDescriptorProto{
		{Name: proto.String("E")},
	}
	file.MessageType = []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("M"),
			EnumType: []*descriptorpb.EnumDescriptorProto{
				{Name: proto.String("K")},
			},
			NestedType: []*descriptorpb.DescriptorProto{
				{Name: proto.String("N")},
			},
		},
	}

	paths := make(map[string][]int32)
	for decl := range Declarations(file) {
		switch {
		case decl.Enum != nil:
			paths[decl.Enum.GetName()] = decl.Path
		case decl.Message != nil:
			paths[decl.Message.GetName()] = decl.Path
		}
	}

	assert.Equal(t, []int32{5, 0}, paths["E"])
	assert.Equal(t, []int32{4, 0}, paths["M"])
	assert.Equal(t, []int32{4, 0, 4, 0}, paths["MK"])
	assert.Equal(t, []int32{4, 0, 3, 0}, paths["MN"])
}

func TestDeclarations_DoesNotMutateInput(t *testing.T) {
	inner := &descriptorpb.DescriptorProto{Name: proto.String("Inner")}
	kind := &descriptorpb.EnumDescriptorProto{Name: proto.String("Kind")}
	file := testFile("pkg", "pkg.proto")
	file.MessageType = []*descriptorpb.DescriptorProto{
		{
			Name:       proto.String("Outer"),
			EnumType:   []*descriptorpb.EnumDescriptorProto{kind},
			NestedType: []*descriptorpb.DescriptorProto{inner},
		},
	}

	for range Declarations(file) {
	}

	assert.Equal(t, "Inner", inner.GetName())
	assert.Equal(t, "Kind", kind.GetName())
}

func TestDeclarations_StopsWhenYieldReturnsFalse(t *testing.T) {
	file := testFile("pkg", "pkg.proto")
	file.MessageType = []*descriptorpb.DescriptorProto{
		{Name: proto.String("A")},
		{Name: proto.String("B")},
	}

	var seen []string
	for decl := range Declarations(file) {
		seen = append(seen, decl.Message.GetName())
		break
	}

	assert.Equal(t, []string{"A"}, seen)
}

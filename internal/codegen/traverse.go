// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"iter"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FileDescriptorProto field numbers used as source-path components.
const (
	pathMessageType = 4 // FileDescriptorProto.message_type
	pathEnumType    = 5 // FileDescriptorProto.enum_type
	pathService     = 6 // FileDescriptorProto.service
)

// DescriptorProto field numbers used as source-path components. pathField
// doubles as EnumDescriptorProto.value and ServiceDescriptorProto.method,
// which share field number 2.
const (
	pathField      = 2 // DescriptorProto.field
	pathNestedType = 3 // DescriptorProto.nested_type
	pathNestedEnum = 4 // DescriptorProto.enum_type
)

// Decl is one declaration yielded during file traversal: a message or an
// enum, never both, paired with the source-code-info path locating it.
type Decl struct {
	Message *descriptorpb.DescriptorProto
	Enum    *descriptorpb.EnumDescriptorProto
	Path    []int32
}

// Declarations returns an iterator over every enum and message declared in
// file, including nested ones, depth-first in declaration order. Nested
// declarations are yielded as renamed copies with all enclosing message
// names prepended; the input descriptors are never modified.
func Declarations(file *descriptorpb.FileDescriptorProto) iter.Seq[Decl] {
	return func(yield func(Decl) bool) {
		for i, enum := range file.GetEnumType() {
			if !yield(Decl{Enum: enum, Path: []int32{pathEnumType, int32(i)}}) {
				return
			}
		}
		for i, msg := range file.GetMessageType() {
			if !walkMessage(msg, "", []int32{pathMessageType, int32(i)}, yield) {
				return
			}
		}
	}
}

func walkMessage(msg *descriptorpb.DescriptorProto, prefix string, path []int32, yield func(Decl) bool) bool {
	if prefix != "" {
		msg = renamedMessage(msg, prefix)
	}
	if !yield(Decl{Message: msg, Path: path}) {
		return false
	}

	for i, enum := range msg.GetEnumType() {
		enumPath := append(slices.Clone(path), pathNestedEnum, int32(i))
		if !yield(Decl{Enum: renamedEnum(enum, msg.GetName()), Path: enumPath}) {
			return false
		}
	}

	for i, nested := range msg.GetNestedType() {
		nestedPath := append(slices.Clone(path), pathNestedType, int32(i))
		if !walkMessage(nested, msg.GetName(), nestedPath, yield) {
			return false
		}
	}

	return true
}

func renamedMessage(msg *descriptorpb.DescriptorProto, prefix string) *descriptorpb.DescriptorProto {
	renamed := proto.Clone(msg).(*descriptorpb.DescriptorProto)
	renamed.Name = proto.String(prefix + msg.GetName())
	return renamed
}

func renamedEnum(enum *descriptorpb.EnumDescriptorProto, prefix string) *descriptorpb.EnumDescriptorProto {
	renamed := proto.Clone(enum).(*descriptorpb.EnumDescriptorProto)
	renamed.Name = proto.String(prefix + enum.GetName())
	return renamed
}

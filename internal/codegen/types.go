// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// pyType maps a field's wire type to a Python type expression. Message and
// enum references are resolved through the builder, which records any
// import they need.
func (b *unitBuilder) pyType(field *descriptorpb.FieldDescriptorProto) (string, error) {
	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
		descriptorpb.FieldDescriptorProto_TYPE_FLOAT,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return "float", nil
	case descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_INT32,
		descriptorpb.FieldDescriptorProto_TYPE_UINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SINT64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return "int", nil
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "bool", nil
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "str", nil
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "bytes", nil
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE,
		descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return b.refType(field.GetTypeName())
	case descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return "", &UnsupportedError{Feature: "group field " + field.GetName()}
	default:
		return "", &UnsupportedError{Feature: fmt.Sprintf("field type %d", field.GetType())}
	}
}

// pyZero returns the default value expression for a wire type. Numeric
// types, including floating-point ones, default to the literal 0: Python
// accepts it as a float and the generated output stays compatible with
// previous releases.
func pyZero(t descriptorpb.FieldDescriptorProto_Type) string {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "False"
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return `""`
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		return "None"
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return `b""`
	default:
		return "0"
	}
}

// packable reports whether a repeated field of this type uses packed wire
// encoding. Strings, bytes, messages, and groups are length-delimited and
// never packed; every numeric, boolean, and enum type is.
func packable(t descriptorpb.FieldDescriptorProto_Type) bool {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING,
		descriptorpb.FieldDescriptorProto_TYPE_BYTES,
		descriptorpb.FieldDescriptorProto_TYPE_MESSAGE,
		descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return false
	default:
		return true
	}
}

// fieldTypeName returns the lowercased wire tag name without its TYPE_
// prefix, e.g. "string", "int32", "message".
func fieldTypeName(t descriptorpb.FieldDescriptorProto_Type) string {
	return strings.ToLower(strings.TrimPrefix(t.String(), "TYPE_"))
}

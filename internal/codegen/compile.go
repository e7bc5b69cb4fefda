// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"slices"

	"google.golang.org/protobuf/types/descriptorpb"
)

// CompileFiles groups descriptor files into units and compiles each one, in
// request order. Any error aborts the whole compilation.
func CompileFiles(files []*descriptorpb.FileDescriptorProto) ([]*Unit, error) {
	groups := GroupFiles(files)
	units := make([]*Unit, len(groups))
	for i, g := range groups {
		unit, err := CompileGroup(g)
		if err != nil {
			return nil, err
		}
		units[i] = unit
	}
	return units, nil
}

// CompileGroup compiles one group of descriptor files into a finalized
// Unit. Groups are independent of each other, so callers may compile
// several groups concurrently.
func CompileGroup(g *FileGroup) (*Unit, error) {
	b := newUnitBuilder(g)
	for _, file := range g.Files {
		if err := b.compileFile(file); err != nil {
			return nil, err
		}
	}
	return b.finalize(), nil
}

func (b *unitBuilder) compileFile(file *descriptorpb.FileDescriptorProto) error {
	for decl := range Declarations(file) {
		switch {
		case decl.Message != nil:
			if decl.Message.GetOptions().GetMapEntry() {
				// Synthetic map entries become dict-typed fields, not classes.
				continue
			}
			msg, err := b.compileMessage(file, decl.Message, decl.Path)
			if err != nil {
				return err
			}
			b.unit.Messages = append(b.unit.Messages, msg)
		case decl.Enum != nil:
			b.unit.Enums = append(b.unit.Enums, compileEnum(file, decl.Enum, decl.Path))
		}
	}

	for i, svc := range file.GetService() {
		compiled, err := b.compileService(file, svc, int32(i))
		if err != nil {
			return err
		}
		b.unit.Services = append(b.unit.Services, compiled)
	}

	return nil
}

func (b *unitBuilder) compileMessage(file *descriptorpb.FileDescriptorProto, msg *descriptorpb.DescriptorProto, path []int32) (*Message, error) {
	compiled := &Message{
		Name:    msg.GetName(),
		Comment: comment(file, path),
	}

	for i, field := range msg.GetField() {
		fieldPath := append(slices.Clone(path), pathField, int32(i))
		cf, err := b.compileField(file, msg, field, fieldPath)
		if err != nil {
			return nil, err
		}
		compiled.Fields = append(compiled.Fields, cf)
	}

	return compiled, nil
}

func (b *unitBuilder) compileField(file *descriptorpb.FileDescriptorProto, msg *descriptorpb.DescriptorProto, field *descriptorpb.FieldDescriptorProto, path []int32) (*Field, error) {
	typ, err := b.pyType(field)
	if err != nil {
		return nil, err
	}

	compiled := &Field{
		Name:      field.GetName(),
		Number:    field.GetNumber(),
		Comment:   comment(file, path),
		ProtoType: int32(field.GetType()),
		FieldType: fieldTypeName(field.GetType()),
		Type:      typ,
		Zero:      pyZero(field.GetType()),
	}

	if field.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE {
		if key, value, ok := mapEntry(msg, field); ok {
			keyType, err := b.pyType(key)
			if err != nil {
				return nil, err
			}
			valueType, err := b.pyType(value)
			if err != nil {
				return nil, err
			}
			compiled.Type = "Dict[" + keyType + ", " + valueType + "]"
			compiled.FieldType = "map"
			compiled.MapTypes = []string{key.GetType().String(), value.GetType().String()}
			b.addTyping("Dict")
		}
	}

	if field.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED && compiled.FieldType != "map" {
		compiled.Repeated = true
		compiled.Type = "List[" + compiled.Type + "]"
		compiled.Zero = "[]"
		compiled.Packed = packable(field.GetType())
		b.addTyping("List")
	}

	return compiled, nil
}

func compileEnum(file *descriptorpb.FileDescriptorProto, enum *descriptorpb.EnumDescriptorProto, path []int32) *Enum {
	compiled := &Enum{
		Name:    enum.GetName(),
		Comment: comment(file, path),
	}

	for i, value := range enum.GetValue() {
		valuePath := append(slices.Clone(path), pathField, int32(i))
		compiled.Entries = append(compiled.Entries, EnumEntry{
			Name:    value.GetName(),
			Value:   value.GetNumber(),
			Comment: comment(file, valuePath),
		})
	}

	return compiled
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegen compiles protocol buffer file descriptors into an
// intermediate representation ready for rendering as Python source.
package codegen

// Unit is one compilation target: every descriptor file sharing an output
// module, keyed by declared package name (or dot-joined file path for files
// without a package). A finalized Unit owns its compiled declarations; no
// compiled entity points back at the Unit.
type Unit struct {
	Key           string     // output identifier, dotted
	Package       string     // declared proto package, may be empty
	SourceFiles   []string   // contributing .proto file names, in request order
	Imports       []string   // cross-package import statements, sorted
	TypingImports []string   // names needed from the typing module, sorted
	Messages      []*Message // flattened, in declaration order
	Enums         []*Enum
	Services      []*Service
}

// Message is a compiled message declaration with a package-unique flattened
// name. It is immutable once appended to its Unit; service compilation may
// read it later to link a method's input message.
type Message struct {
	Name    string
	Comment string
	Fields  []*Field
}

// Field is one compiled message field.
type Field struct {
	Name      string
	Number    int32
	Comment   string
	ProtoType int32    // raw wire-type tag
	FieldType string   // lowercased tag name without the TYPE_ prefix, or "map"
	MapTypes  []string // key and value wire tag names ("TYPE_STRING"), map fields only
	Type      string   // resolved Python type expression
	Zero      string   // default value expression
	Repeated  bool
	Packed    bool
}

// Enum is a compiled enum declaration. Nested enums carry their enclosing
// message's flattened name as a prefix.
type Enum struct {
	Name    string
	Comment string
	Entries []EnumEntry
}

// EnumEntry is one named enum value.
type EnumEntry struct {
	Name    string
	Value   int32
	Comment string
}

// Service is a compiled service declaration.
type Service struct {
	Name    string
	Comment string
	Methods []*Method
}

// Method is one compiled service method. InputMessage links the method to
// the already-compiled input message when it lives in the same unit, so the
// renderer can build keyword-argument request constructors.
type Method struct {
	Name            string
	PyName          string // snake_case Python method name
	Comment         string
	Route           string // fixed shape: /<package>.<Service>/<Method>
	Input           string
	InputMessage    *Message // nil when the input type is external to the unit
	Output          string
	ClientStreaming bool
	ServerStreaming bool
}

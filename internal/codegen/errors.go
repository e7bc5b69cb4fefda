// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import "fmt"

// UnsupportedError reports a schema feature the generator cannot compile,
// such as a client-streaming method or an unrecognized wire type. It is
// fatal: compilation aborts and no output is produced.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return "unsupported schema feature: " + e.Feature
}

// MalformedReferenceError reports a type reference that resolves to an
// empty name after package stripping. It is fatal: emitting an invalid
// identifier would produce broken output.
type MalformedReferenceError struct {
	Ref string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed type reference %q", e.Ref)
}

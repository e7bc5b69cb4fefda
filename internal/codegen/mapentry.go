// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// mapEntry looks for the synthetic map-entry message backing field inside
// its declaring message. Map-entry messages are named after their field
// ("attrs" -> "AttrsEntry"), so the candidate is matched by normalized name
// first and then confirmed by the map_entry option. It returns the entry's
// key and value fields, or ok=false when the field is an ordinary message
// reference. A name collision with a non-synthetic nested message is not an
// error; the field simply stays a message field.
func mapEntry(msg *descriptorpb.DescriptorProto, field *descriptorpb.FieldDescriptorProto) (key, value *descriptorpb.FieldDescriptorProto, ok bool) {
	ref := field.GetTypeName()
	simple := ref[strings.LastIndex(ref, ".")+1:]
	want := normalizeEntryName(field.GetName()) + "entry"
	if normalizeEntryName(simple) != want {
		return nil, nil, false
	}

	for _, nested := range msg.GetNestedType() {
		if normalizeEntryName(nested.GetName()) != want {
			continue
		}
		if !nested.GetOptions().GetMapEntry() {
			continue
		}
		fields := nested.GetField()
		if len(fields) < 2 {
			return nil, nil, false
		}
		return fields[0], fields[1], true
	}

	return nil, nil, false
}

func normalizeEntryName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

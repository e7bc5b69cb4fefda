// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"google.golang.org/protobuf/types/descriptorpb"
)

func (b *unitBuilder) compileService(file *descriptorpb.FileDescriptorProto, svc *descriptorpb.ServiceDescriptorProto, index int32) (*Service, error) {
	path := []int32{pathService, index}
	compiled := &Service{
		Name:    svc.GetName(),
		Comment: comment(file, path),
	}

	for j, method := range svc.GetMethod() {
		if method.GetClientStreaming() {
			return nil, &UnsupportedError{
				Feature: fmt.Sprintf("client streaming method %s.%s", svc.GetName(), method.GetName()),
			}
		}

		input, err := b.refType(method.GetInputType())
		if err != nil {
			return nil, err
		}
		output, err := b.refType(method.GetOutputType())
		if err != nil {
			return nil, err
		}

		cm := &Method{
			Name:            method.GetName(),
			PyName:          snakeCase(method.GetName()),
			Comment:         comment(file, []int32{pathService, index, pathField, int32(j)}),
			Route:           fmt.Sprintf("/%s.%s/%s", b.pkg, svc.GetName(), method.GetName()),
			Input:           strings.Trim(input, `"`),
			Output:          strings.Trim(output, `"`),
			ServerStreaming: method.GetServerStreaming(),
		}

		// Link the already-compiled input message so the renderer can build
		// keyword-argument constructors and spot optional fields.
		for _, msg := range b.unit.Messages {
			if msg.Name != cm.Input {
				continue
			}
			cm.InputMessage = msg
			for _, f := range msg.Fields {
				if f.Zero == "None" {
					b.addTyping("Optional")
				}
			}
			break
		}

		if cm.ServerStreaming {
			b.addTyping("AsyncGenerator")
		}

		compiled.Methods = append(compiled.Methods, cm)
	}

	return compiled, nil
}

// snakeCase converts a CamelCase method name to a snake_case Python
// identifier. A run of capitals stays together, with an underscore before
// its last letter when a lowercase run follows: "GetHTTPResponse" becomes
// "get_http_response".
func snakeCase(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			sb.WriteRune(r)
			continue
		}
		prevLower := i > 0 && unicode.IsLower(runes[i-1])
		nextLower := i+1 < len(runes) && !unicode.IsUpper(runes[i+1])
		if i > 0 && (prevLower || nextLower) {
			sb.WriteRune('_')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return strings.Trim(sb.String(), "_")
}

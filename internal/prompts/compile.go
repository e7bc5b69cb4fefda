// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunCompileForm prompts for any compile inputs not provided as flags.
// Values already set are left untouched.
func RunCompileForm(descriptorSet, output *string) error {
	var fields []huh.Field

	if *descriptorSet == "" {
		fields = append(fields, huh.NewInput().
			Title("Descriptor set file").
			Placeholder("e.g., build/descriptors.pb").
			Value(descriptorSet).
			Validate(requiredValidator("descriptor set file")))
	}
	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("e.g., gen").
			Value(output).
			Validate(requiredValidator("output directory")))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "slices"

// NoMinimum is the default minimal number of unassigned values. It is below
// any real count, so the check never fails.
const NoMinimum = -1

// Validator holds the rules a ParamString is checked against. Configuration
// methods return the receiver so calls can be chained.
type Validator struct {
	requiredValueFlags []string
	optionalValueFlags []string
	requiredFlags      []string
	optionalFlags      []string
	minimalUnassigned  int
}

// NewValidator returns a Validator with no rules.
func NewValidator() *Validator {
	return &Validator{minimalUnassigned: NoMinimum}
}

func appendUnique(list []string, name string) []string {
	if slices.Contains(list, name) {
		return list
	}
	return append(list, name)
}

// MinimalUnassigned sets the minimal number of unassigned values.
func (v *Validator) MinimalUnassigned(n int) *Validator {
	v.minimalUnassigned = n
	return v
}

// RequireValueFlag requires name to be given with a value.
func (v *Validator) RequireValueFlag(name string) *Validator {
	v.requiredValueFlags = appendUnique(v.requiredValueFlags, name)
	return v
}

// OptionalValueFlag allows name to be given with a value. Giving it as a
// boolean flag is an error.
func (v *Validator) OptionalValueFlag(name string) *Validator {
	v.optionalValueFlags = appendUnique(v.optionalValueFlags, name)
	return v
}

// RequireFlag requires name to be given as a boolean flag.
func (v *Validator) RequireFlag(name string) *Validator {
	v.requiredFlags = appendUnique(v.requiredFlags, name)
	return v
}

// OptionalFlag allows name as a boolean flag. Giving it with a value is an
// error.
func (v *Validator) OptionalFlag(name string) *Validator {
	v.optionalFlags = appendUnique(v.optionalFlags, name)
	return v
}

// RequiredValueFlags returns a copy of the required value flag names.
func (v *Validator) RequiredValueFlags() []string { return slices.Clone(v.requiredValueFlags) }

// OptionalValueFlags returns a copy of the optional value flag names.
func (v *Validator) OptionalValueFlags() []string { return slices.Clone(v.optionalValueFlags) }

// RequiredFlags returns a copy of the required boolean flag names.
func (v *Validator) RequiredFlags() []string { return slices.Clone(v.requiredFlags) }

// OptionalFlags returns a copy of the optional boolean flag names.
func (v *Validator) OptionalFlags() []string { return slices.Clone(v.optionalFlags) }

// Minimum returns the minimal number of unassigned values, or NoMinimum.
func (v *Validator) Minimum() int { return v.minimalUnassigned }

// Validate checks p against every rule and returns a *ValidationError listing
// all violations, or nil. Neither v nor p is modified.
func (v *Validator) Validate(p *ParamString) error {
	var (
		missingValueFlags []string
		invalidValueFlags []string
		missingFlags      []string
		invalidFlags      []string
	)

	for _, name := range v.requiredValueFlags {
		if !p.HasValueFlag(name) {
			missingValueFlags = append(missingValueFlags, name)
		}
		// Given as a bare flag. Reported in addition to missing.
		if p.HasFlag(name) {
			invalidValueFlags = append(invalidValueFlags, name)
		}
	}
	for _, name := range v.optionalValueFlags {
		if !p.HasValueFlag(name) && p.HasFlag(name) {
			invalidValueFlags = append(invalidValueFlags, name)
		}
	}
	for _, name := range v.requiredFlags {
		if !p.HasFlag(name) {
			missingFlags = append(missingFlags, name)
		}
		if p.HasValueFlag(name) {
			invalidFlags = append(invalidFlags, name)
		}
	}
	for _, name := range v.optionalFlags {
		if !p.HasFlag(name) && p.HasValueFlag(name) {
			invalidFlags = append(invalidFlags, name)
		}
	}

	if len(missingValueFlags) == 0 &&
		len(invalidValueFlags) == 0 &&
		len(missingFlags) == 0 &&
		len(invalidFlags) == 0 &&
		len(p.unassigned) >= v.minimalUnassigned {
		return nil
	}
	return &ValidationError{
		MissingValueFlags: missingValueFlags,
		InvalidValueFlags: invalidValueFlags,
		MissingFlags:      missingFlags,
		InvalidFlags:      invalidFlags,
		MinimalUnassigned: v.minimalUnassigned,
		Input:             p,
	}
}

// Check reports whether p passes Validate. The diagnostics are discarded.
func (v *Validator) Check(p *ParamString) bool {
	return v.Validate(p) == nil
}

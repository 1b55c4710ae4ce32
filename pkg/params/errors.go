// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"strings"
)

// ValidationError is returned by Validator.Validate when a ParamString does
// not satisfy the validator's rules.
type ValidationError struct {
	MissingValueFlags []string // required value flags that were not given with a value
	InvalidValueFlags []string // value flags given as boolean flags
	MissingFlags      []string // required boolean flags that were not given
	InvalidFlags      []string // boolean flags given with a value
	MinimalUnassigned int      // configured minimum of unassigned values
	Input             *ParamString
}

// TooFewUnassigned reports whether the input has fewer unassigned values than
// the configured minimum.
func (e *ValidationError) TooFewUnassigned() bool {
	return e.Input != nil && len(e.Input.unassigned) < e.MinimalUnassigned
}

func (e *ValidationError) Error() string {
	var parts []string
	add := func(what string, names []string) {
		if len(names) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", what, strings.Join(names, ", ")))
		}
	}
	add("missing value flags", e.MissingValueFlags)
	add("invalid value flags", e.InvalidValueFlags)
	add("missing flags", e.MissingFlags)
	add("invalid flags", e.InvalidFlags)
	if e.TooFewUnassigned() {
		parts = append(parts, fmt.Sprintf("requires at least %d unassigned value(s), got %d", e.MinimalUnassigned, len(e.Input.unassigned)))
	}
	if len(parts) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

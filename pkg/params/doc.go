// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params parses a space separated command string into unassigned
// values, boolean flags and value flags, and validates the result against a
// declarative schema.
//
// # Parsing
//
// Input is split on single spaces. A token starting with "-" is a flag; every
// "-" in it is removed to form the name. If the following token exists and
// does not start with "-", it is consumed as the flag's value:
//
//	p := params.Parse("unassigned -a assigned-value -flag --help nohelp")
//	p.Unassigned()       // [unassigned]
//	p.Flags()            // [flag]
//	p.ValueFlag("help")  // "nohelp", true
//
// Parsing never fails. Values are never quoted, escaped or converted.
//
// # Validation
//
// A Validator is built with chained calls and may be reused for any number
// of parameter strings:
//
//	v := params.NewValidator().
//	    RequireFlag("flag").
//	    RequireValueFlag("help").
//	    MinimalUnassigned(1)
//
//	if err := v.Validate(p); err != nil {
//	    var verr *params.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.MissingFlags)
//	    }
//	}
//
// Every rule is evaluated before reporting, so a *ValidationError carries the
// complete list of problems. Check is the boolean form.
//
// A Validator must not be configured while another goroutine validates with
// it. Finish building first, then share it.
package params

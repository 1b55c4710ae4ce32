// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const sample = "unassigned -a assigned-value -flag --help nohelp"

func TestValidatorPasses(t *testing.T) {
	p := Parse(sample)
	p.SetValidator(NewValidator().RequireFlag("flag").RequireValueFlag("help"))

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !p.ValidateSilently() {
		t.Error("ValidateSilently() = false, want true")
	}
}

func TestValidatorMissingFlagAndMinimum(t *testing.T) {
	p := Parse(sample)
	p.SetValidator(NewValidator().RequireFlag("aflag").MinimalUnassigned(3))

	err := p.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if diff := cmp.Diff([]string{"aflag"}, verr.MissingFlags); diff != "" {
		t.Errorf("MissingFlags mismatch (-want +got):\n%s", diff)
	}
	if verr.MinimalUnassigned <= len(p.Unassigned()) {
		t.Errorf("MinimalUnassigned = %d, want more than %d", verr.MinimalUnassigned, len(p.Unassigned()))
	}
	if !verr.TooFewUnassigned() {
		t.Error("TooFewUnassigned() = false, want true")
	}
	if verr.Input != p {
		t.Error("Input does not reference the validated ParamString")
	}
	if p.ValidateSilently() {
		t.Error("ValidateSilently() = true, want false")
	}
}

func TestValidatorRules(t *testing.T) {
	type lists struct {
		MissingValueFlags []string
		InvalidValueFlags []string
		MissingFlags      []string
		InvalidFlags      []string
	}

	tests := []struct {
		name string
		raw  string
		v    *Validator
		ok   bool
		want lists
	}{
		{
			name: "required value flag given bare",
			raw:  "-out",
			v:    NewValidator().RequireValueFlag("out"),
			want: lists{MissingValueFlags: []string{"out"}, InvalidValueFlags: []string{"out"}},
		},
		{
			name: "required value flag absent",
			raw:  "x",
			v:    NewValidator().RequireValueFlag("out"),
			want: lists{MissingValueFlags: []string{"out"}},
		},
		{
			name: "optional value flag given bare",
			raw:  "-out -v",
			v:    NewValidator().OptionalValueFlag("out"),
			want: lists{InvalidValueFlags: []string{"out"}},
		},
		{
			name: "optional value flag absent",
			raw:  "x",
			v:    NewValidator().OptionalValueFlag("out"),
			ok:   true,
		},
		{
			name: "optional value flag given twice in both shapes",
			raw:  "-out -out file",
			v:    NewValidator().OptionalValueFlag("out"),
			ok:   true,
		},
		{
			name: "required flag given with value",
			raw:  "-force yes",
			v:    NewValidator().RequireFlag("force"),
			want: lists{MissingFlags: []string{"force"}, InvalidFlags: []string{"force"}},
		},
		{
			name: "optional flag given with value",
			raw:  "-force yes",
			v:    NewValidator().OptionalFlag("force"),
			want: lists{InvalidFlags: []string{"force"}},
		},
		{
			name: "optional flag absent",
			raw:  "",
			v:    NewValidator().OptionalFlag("force"),
			ok:   true,
		},
		{
			name: "all violations collected in discovery order",
			raw:  "-b -c x -d y -e",
			v: NewValidator().
				RequireValueFlag("a").
				RequireValueFlag("b").
				OptionalValueFlag("e").
				RequireFlag("c").
				RequireFlag("z").
				OptionalFlag("d"),
			want: lists{
				MissingValueFlags: []string{"a", "b"},
				InvalidValueFlags: []string{"b", "e"},
				MissingFlags:      []string{"c", "z"},
				InvalidFlags:      []string{"c", "d"},
			},
		},
		{
			name: "name in both schema categories",
			raw:  "-both",
			v:    NewValidator().RequireFlag("both").RequireValueFlag("both"),
			want: lists{MissingValueFlags: []string{"both"}, InvalidValueFlags: []string{"both"}},
		},
		{
			name: "minimum met exactly",
			raw:  "a b",
			v:    NewValidator().MinimalUnassigned(2),
			ok:   true,
		},
		{
			name: "empty input no rules",
			raw:  "",
			v:    NewValidator(),
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.raw)
			err := tt.v.Validate(p)
			if got := tt.v.Check(p); got != tt.ok {
				t.Errorf("Check() = %v, want %v", got, tt.ok)
			}
			if tt.ok {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			got := lists{
				MissingValueFlags: verr.MissingValueFlags,
				InvalidValueFlags: verr.InvalidValueFlags,
				MissingFlags:      verr.MissingFlags,
				InvalidFlags:      verr.InvalidFlags,
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidatorMinimumOnly(t *testing.T) {
	p := Parse("a -f")
	err := NewValidator().MinimalUnassigned(2).Validate(p)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if n := len(verr.MissingValueFlags) + len(verr.InvalidValueFlags) + len(verr.MissingFlags) + len(verr.InvalidFlags); n != 0 {
		t.Errorf("diagnostic lists hold %d names, want 0", n)
	}
	if verr.MinimalUnassigned != 2 {
		t.Errorf("MinimalUnassigned = %d, want 2", verr.MinimalUnassigned)
	}
	if want := "validation failed: requires at least 2 unassigned value(s), got 1"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidatorDeduplicates(t *testing.T) {
	v := NewValidator().
		RequireFlag("f").RequireFlag("f").
		OptionalFlag("o").OptionalFlag("o").
		RequireValueFlag("k").RequireValueFlag("k").
		OptionalValueFlag("p").OptionalValueFlag("p")

	for name, got := range map[string][]string{
		"RequiredFlags":      v.RequiredFlags(),
		"OptionalFlags":      v.OptionalFlags(),
		"RequiredValueFlags": v.RequiredValueFlags(),
		"OptionalValueFlags": v.OptionalValueFlags(),
	} {
		if len(got) != 1 {
			t.Errorf("%s() = %v, want one entry", name, got)
		}
	}

	err := v.Validate(Parse(""))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if diff := cmp.Diff([]string{"f"}, verr.MissingFlags); diff != "" {
		t.Errorf("MissingFlags mismatch (-want +got):\n%s", diff)
	}
}

func TestValidatorDefaultMinimum(t *testing.T) {
	v := NewValidator()
	if v.Minimum() != NoMinimum {
		t.Errorf("Minimum() = %d, want %d", v.Minimum(), NoMinimum)
	}
	if err := v.Validate(Parse("")); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidatorReusable(t *testing.T) {
	v := NewValidator().RequireValueFlag("name")
	if !v.Check(Parse("-name a")) {
		t.Error("Check(-name a) = false, want true")
	}
	if v.Check(Parse("-name")) {
		t.Error("Check(-name) = true, want false")
	}
	if !v.Check(Parse("x --name b")) {
		t.Error("Check(x --name b) = false, want true")
	}
}

func TestValidateWithoutValidator(t *testing.T) {
	p := Parse("-anything")
	if p.Validator() != nil {
		t.Fatal("Validator() != nil on a fresh ParamString")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	v := NewValidator().RequireFlag("other")
	p.SetValidator(v)
	if p.Validator() != v {
		t.Error("Validator() did not return the attached validator")
	}
	if p.ValidateSilently() {
		t.Error("ValidateSilently() = true, want false")
	}
	p.SetValidator(nil)
	if !p.ValidateSilently() {
		t.Error("ValidateSilently() = false after detaching, want true")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidator().
		RequireValueFlag("out").
		RequireFlag("force").
		MinimalUnassigned(1).
		Validate(Parse("-out"))
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	msg := err.Error()
	for _, want := range []string{
		"missing value flags: out",
		"invalid value flags: out",
		"missing flags: force",
		"requires at least 1 unassigned value(s), got 0",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if strings.Contains(msg, "invalid flags") {
		t.Errorf("Error() = %q, should not mention invalid flags", msg)
	}
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"slices"
	"strings"
)

const (
	// Marker is the character that identifies a flag token. All occurrences
	// of it are removed from a flag token to form the flag name.
	Marker = "-"

	separator = " "
)

// ParamString is a parsed command string. It is not modified after parsing,
// except for the validator attached with SetValidator.
type ParamString struct {
	raw        string
	unassigned []string
	flags      []string
	valueFlags map[string]string

	// valueFlagOrder holds value flag names in first-seen order.
	valueFlagOrder []string

	validator *Validator
}

// Parse interprets raw as a parameter string. It always succeeds.
func Parse(raw string) *ParamString {
	p := &ParamString{
		raw:        raw,
		unassigned: []string{},
		flags:      []string{},
		valueFlags: make(map[string]string),
	}
	p.interpret(tokenize(raw))
	return p
}

// Of joins tokens with single spaces and parses the result.
func Of(tokens ...string) *ParamString {
	return Parse(strings.Join(tokens, separator))
}

// tokenize splits raw on single spaces. Runs of spaces yield empty tokens,
// but trailing empty tokens are dropped, so "" and "   " have no tokens.
func tokenize(raw string) []string {
	tokens := strings.Split(raw, separator)
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

func isFlag(token string) bool {
	return strings.HasPrefix(token, Marker)
}

// flagName removes every marker in token, not just the leading run.
func flagName(token string) string {
	return strings.ReplaceAll(token, Marker, "")
}

func (p *ParamString) interpret(tokens []string) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !isFlag(tok) {
			p.unassigned = append(p.unassigned, tok)
			continue
		}

		name := flagName(tok)
		if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
			p.setValueFlag(name, tokens[i+1])
			i++ // value consumed
			continue
		}
		p.flags = append(p.flags, name)
	}
}

func (p *ParamString) setValueFlag(name, value string) {
	if _, ok := p.valueFlags[name]; !ok {
		p.valueFlagOrder = append(p.valueFlagOrder, name)
	}
	p.valueFlags[name] = value
}

// String returns the original input verbatim.
func (p *ParamString) String() string {
	return p.raw
}

// HasFlag reports whether name was given as a boolean flag.
func (p *ParamString) HasFlag(name string) bool {
	return slices.Contains(p.flags, name)
}

// HasValueFlag reports whether name was given with a value.
func (p *ParamString) HasValueFlag(name string) bool {
	_, ok := p.valueFlags[name]
	return ok
}

// HasUnassigned reports whether at least one unassigned value was given.
func (p *ParamString) HasUnassigned() bool {
	return len(p.unassigned) > 0
}

// NoUnassigned reports whether no unassigned value was given.
func (p *ParamString) NoUnassigned() bool {
	return len(p.unassigned) == 0
}

// Unassigned returns the unassigned values in input order.
func (p *ParamString) Unassigned() []string {
	return slices.Clone(p.unassigned)
}

// Flags returns the boolean flag names in input order, including duplicates.
func (p *ParamString) Flags() []string {
	return slices.Clone(p.flags)
}

// ValueFlags returns the names of all value flags in the order they first
// appeared.
func (p *ParamString) ValueFlags() []string {
	return slices.Clone(p.valueFlagOrder)
}

// ValueFlag returns the value bound to name. When a name was given more than
// once the last value wins.
func (p *ParamString) ValueFlag(name string) (string, bool) {
	v, ok := p.valueFlags[name]
	return v, ok
}

// SetValidator attaches v to p. A nil v removes the validator.
func (p *ParamString) SetValidator(v *Validator) {
	p.validator = v
}

// Validator returns the attached validator, or nil.
func (p *ParamString) Validator() *Validator {
	return p.validator
}

// Validate checks p against its attached validator. It returns nil when no
// validator is attached. A failure is always a *ValidationError.
func (p *ParamString) Validate() error {
	if p.validator == nil {
		return nil
	}
	return p.validator.Validate(p)
}

// ValidateSilently is like Validate but only reports whether it passed.
func (p *ParamString) ValidateSilently() bool {
	return p.Validate() == nil
}

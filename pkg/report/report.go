// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders parsed parameter strings and validation results.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/paramizer/pkg/params"
)

// ValueFlag is a value flag name and its value.
type ValueFlag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Summary is the printable form of a ParamString and its validation outcome.
type Summary struct {
	Input      string      `json:"input"`
	Unassigned []string    `json:"unassigned"`
	Flags      []string    `json:"flags"`
	ValueFlags []ValueFlag `json:"value_flags"`

	// Validated is set when a validator was attached to the input.
	Validated bool   `json:"validated"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`

	MissingValueFlags []string `json:"missing_value_flags,omitempty"`
	InvalidValueFlags []string `json:"invalid_value_flags,omitempty"`
	MissingFlags      []string `json:"missing_flags,omitempty"`
	InvalidFlags      []string `json:"invalid_flags,omitempty"`

	// MinUnassigned is only set when the input had too few unassigned values.
	MinUnassigned   *int `json:"min_unassigned,omitempty"`
	UnassignedCount int  `json:"unassigned_count"`
}

// NewSummary builds a Summary for p. err is the result of validating p.
func NewSummary(p *params.ParamString, err error) Summary {
	s := Summary{
		Input:           p.String(),
		Unassigned:      p.Unassigned(),
		Flags:           p.Flags(),
		ValueFlags:      []ValueFlag{},
		Validated:       p.Validator() != nil,
		Valid:           err == nil,
		UnassignedCount: len(p.Unassigned()),
	}
	for _, name := range p.ValueFlags() {
		v, _ := p.ValueFlag(name)
		s.ValueFlags = append(s.ValueFlags, ValueFlag{Name: name, Value: v})
	}
	if err == nil {
		return s
	}

	s.Error = err.Error()
	var verr *params.ValidationError
	if errors.As(err, &verr) {
		s.MissingValueFlags = verr.MissingValueFlags
		s.InvalidValueFlags = verr.InvalidValueFlags
		s.MissingFlags = verr.MissingFlags
		s.InvalidFlags = verr.InvalidFlags
		if verr.TooFewUnassigned() {
			n := verr.MinimalUnassigned
			s.MinUnassigned = &n
		}
	}
	return s
}

// WriteJSON writes s as indented JSON followed by a newline.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Printer writes human readable summaries.
type Printer struct {
	Color bool
}

func (p Printer) paint(attr color.Attribute, text string) string {
	if !p.Color {
		return text
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}

// WriteText writes a table of the classified tokens, then the validation
// outcome when s was validated.
func (p Printer) WriteText(w io.Writer, s Summary) error {
	fmt.Fprintf(w, "input: %q\n", s.Input)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tVALUE\t")
	for _, v := range s.Unassigned {
		fmt.Fprintf(tw, "unassigned\t-\t%q\t\n", v)
	}
	for _, f := range s.Flags {
		fmt.Fprintf(tw, "flag\t%q\t-\t\n", f)
	}
	for _, vf := range s.ValueFlags {
		fmt.Fprintf(tw, "value-flag\t%q\t%q\t\n", vf.Name, vf.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !s.Validated {
		return nil
	}
	if s.Valid {
		_, err := fmt.Fprintln(w, p.paint(color.FgGreen, "valid"))
		return err
	}

	fmt.Fprintln(w, p.paint(color.FgRed, "invalid"))
	if s.MissingValueFlags == nil && s.InvalidValueFlags == nil &&
		s.MissingFlags == nil && s.InvalidFlags == nil && s.MinUnassigned == nil {
		_, err := fmt.Fprintf(w, "  %s\n", s.Error)
		return err
	}
	line := func(what string, names []string) {
		if len(names) == 0 {
			return
		}
		fmt.Fprintf(w, "  %s %s\n", p.paint(color.FgYellow, what+":"), strings.Join(names, ", "))
	}
	line("missing value flags", s.MissingValueFlags)
	line("invalid value flags", s.InvalidValueFlags)
	line("missing flags", s.MissingFlags)
	line("invalid flags", s.InvalidFlags)
	if s.MinUnassigned != nil {
		fmt.Fprintf(w, "  %s want at least %d, got %d\n", p.paint(color.FgYellow, "unassigned values:"), *s.MinUnassigned, s.UnassignedCount)
	}
	return nil
}

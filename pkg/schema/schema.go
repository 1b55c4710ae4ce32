// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema loads validator rules from TOML or YAML files.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/paramizer/pkg/params"
	"gopkg.in/yaml.v3"
)

// Version is the only schema file version understood by this package.
const Version = 1

// File is the on-disk form of a validator.
type File struct {
	Version            int      `toml:"version,omitempty" yaml:"version,omitempty"`
	MinUnassigned      *int     `toml:"min_unassigned,omitempty" yaml:"min_unassigned,omitempty"`
	RequiredFlags      []string `toml:"required_flags,omitempty" yaml:"required_flags,omitempty"`
	OptionalFlags      []string `toml:"optional_flags,omitempty" yaml:"optional_flags,omitempty"`
	RequiredValueFlags []string `toml:"required_value_flags,omitempty" yaml:"required_value_flags,omitempty"`
	OptionalValueFlags []string `toml:"optional_value_flags,omitempty" yaml:"optional_value_flags,omitempty"`
}

// Load reads a schema file. The format is chosen by extension: .toml, .yaml
// or .yml.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		f, err = DecodeTOML(bytes.NewReader(b))
	case ".yaml", ".yml":
		f, err = DecodeYAML(bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("unsupported schema format %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// DecodeTOML decodes a schema from TOML. Unknown keys are an error.
func DecodeTOML(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML schema: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown schema keys: %s", strings.Join(keys, ", "))
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// DecodeYAML decodes a schema from YAML. Unknown keys are an error. An empty
// document yields an empty schema.
func DecodeYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML schema: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) check() error {
	if f.Version != 0 && f.Version != Version {
		return fmt.Errorf("unsupported schema version %d (want %d)", f.Version, Version)
	}
	return nil
}

// Validator builds a validator from the file's rules.
func (f *File) Validator() *params.Validator {
	v := params.NewValidator()
	for _, name := range f.RequiredFlags {
		v.RequireFlag(name)
	}
	for _, name := range f.OptionalFlags {
		v.OptionalFlag(name)
	}
	for _, name := range f.RequiredValueFlags {
		v.RequireValueFlag(name)
	}
	for _, name := range f.OptionalValueFlags {
		v.OptionalValueFlag(name)
	}
	if f.MinUnassigned != nil {
		v.MinimalUnassigned(*f.MinUnassigned)
	}
	return v
}

// FromValidator is the inverse of Validator.
func FromValidator(v *params.Validator) *File {
	f := &File{
		Version:            Version,
		RequiredFlags:      v.RequiredFlags(),
		OptionalFlags:      v.OptionalFlags(),
		RequiredValueFlags: v.RequiredValueFlags(),
		OptionalValueFlags: v.OptionalValueFlags(),
	}
	if n := v.Minimum(); n != params.NoMinimum {
		f.MinUnassigned = &n
	}
	return f
}

// WriteTOML encodes f as TOML.
func (f *File) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

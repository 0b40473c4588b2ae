// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pelletier/go-toml/v2"
)

// Format is a job file syntax.
type Format string

const (
	// FormatHCL is the HashiCorp configuration language.
	FormatHCL Format = "hcl"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
	// FormatTOML is TOML.
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned when the job file format cannot be determined.
	ErrUnknownFormat = errors.New("unknown job file format")
	// ErrInvalidHCL is returned when the HCL job file cannot be parsed or decoded.
	ErrInvalidHCL = errors.New("invalid HCL")
	// ErrInvalidYaml is returned when the YAML job file cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidTOML is returned when the TOML job file cannot be decoded.
	ErrInvalidTOML = errors.New("invalid TOML")
	// ErrInvalidDefinition is returned when the decoded job definition is not usable.
	ErrInvalidDefinition = errors.New("invalid job definition")
)

// FormatFromFileName returns the format matching the extension of name.
func FormatFromFileName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// ParseFormat parses a format name such as "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHCL, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}

// Parse decodes a job definition. The format is taken from the extension of fileName,
// which is also used in error messages.
func Parse(fileName string, data []byte) (*Definition, error) {
	f, err := FormatFromFileName(fileName)
	if err != nil {
		return nil, err
	}

	var def *Definition

	switch f {
	case FormatHCL:
		def, err = parseHCL(fileName, data)
	case FormatYAML:
		def, err = parseYAML(data)
	case FormatTOML:
		def, err = parseTOML(data)
	}

	if err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}

	return def, nil
}

func parseHCL(fileName string, data []byte) (*Definition, error) {
	file, diags := hclsyntax.ParseConfig(literalPlaceholders(data), fileName, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Join(ErrInvalidHCL, multierror.Append(nil, diags.Errs()...))
	}

	def := &Definition{}

	// Values are literal: no variables or functions are made available.
	if diags := gohcl.DecodeBody(file.Body, nil, def); diags.HasErrors() {
		return nil, errors.Join(ErrInvalidHCL, multierror.Append(nil, diags.Errs()...))
	}

	return def, nil
}

// literalPlaceholders escapes `${` and `%{` sequences that are not already escaped, so build
// parameter placeholders are kept as text for expansion at build time.
func literalPlaceholders(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); i++ {
		c := data[i]
		if (c == '$' || c == '%') && i+1 < len(data) && data[i+1] == '{' && (i == 0 || data[i-1] != c) {
			out = append(out, c)
		}

		out = append(out, c)
	}

	return out
}

func parseYAML(data []byte) (*Definition, error) {
	def := &Definition{}
	if err := yaml.UnmarshalWithOptions(data, def, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	return def, nil
}

func parseTOML(data []byte) (*Definition, error) {
	def := &Definition{}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTOML, err)
	}

	return def, nil
}

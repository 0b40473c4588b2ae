// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package expand substitutes build parameters into configured strings.
//
// Placeholders are written `${NAME}` or `$NAME`, and `$$` produces a literal dollar sign.
// The text is evaluated as an HCL template with every build parameter bound as a string variable.
// References to unknown parameters are left in place. A malformed placeholder is reported as an
// error.
package expand

import (
	"errors"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var (
	// ErrExpansion is returned when a string cannot be expanded.
	ErrExpansion = errors.New("failed to resolve parameters in string")
	// ErrNotString is returned when a placeholder evaluates to something that is not a string.
	ErrNotString = errors.New("expanded value is not a string")
)

const templateFilename = "parameter"

// Logger receives the diagnostic written when expansion falls back to the literal text.
type Logger interface {
	Warn(msg string, args ...any)
}

// Expand returns text with the parameters in env substituted.
// On failure it logs the original text and the cause, then returns text unchanged.
func Expand(text string, env map[string]string, log Logger) string {
	out, err := String(text, env)
	if err != nil {
		if log != nil {
			log.Warn("failed to resolve parameters in string, using it verbatim", "text", text, "error", err.Error())
		}

		return text
	}

	return out
}

// String returns text with the parameters in env substituted, or an error wrapping ErrExpansion.
func String(text string, env map[string]string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	expr, diags := hclsyntax.ParseTemplate([]byte(toTemplate(text, env)), templateFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return "", errors.Join(ErrExpansion, diags)
	}

	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}

	val, diags := expr.Value(&hcl.EvalContext{Variables: vars})
	if diags.HasErrors() {
		return "", errors.Join(ErrExpansion, diags)
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil || val.IsNull() || !val.IsKnown() {
		return "", errors.Join(ErrExpansion, ErrNotString, err)
	}

	return val.AsString(), nil
}

// toTemplate rewrites the parameter syntax into an HCL template.
// `$NAME` becomes `${NAME}`, `$$` becomes a literal dollar and HCL directives (`%{`) are escaped.
// References to names missing from env are escaped so they come through unchanged.
func toTemplate(s string, env map[string]string) string {
	var b strings.Builder

	b.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); i++ {
		c := s[i]
		next := byte(0)

		if i+1 < len(s) {
			next = s[i+1]
		}

		switch {
		case c == '%' && next == '{':
			b.WriteString("%%{")
			i++
		case c != '$':
			b.WriteByte(c)
		case next == '$':
			i++
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteString("$${")
				i++

				continue
			}

			b.WriteByte('$')
		case next == '{':
			if name, ok := bracedName(s[i+2:]); ok && !known(env, name) {
				b.WriteString("$${")
				i++

				continue
			}

			b.WriteByte('$')
		case isNameStart(next):
			j := i + 1
			for j < len(s) && isNameChar(s[j]) {
				j++
			}

			if known(env, s[i+1:j]) {
				b.WriteString("${")
				b.WriteString(s[i+1 : j])
				b.WriteString("}")
			} else {
				b.WriteString(s[i:j])
			}

			i = j - 1
		default:
			b.WriteByte('$')
		}
	}

	return b.String()
}

// bracedName returns the identifier in s up to the closing brace, if s starts with `NAME}`.
func bracedName(s string) (string, bool) {
	end := strings.IndexByte(s, '}')
	if end <= 0 || !isNameStart(s[0]) {
		return "", false
	}

	for k := 1; k < end; k++ {
		if !isNameChar(s[k]) {
			return "", false
		}
	}

	return s[:end], true
}

func known(env map[string]string, name string) bool {
	_, ok := env[name]

	return ok
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

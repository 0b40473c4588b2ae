// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copier

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrWriteGob is returned when writing the outcomes to a binary format fails.
	ErrWriteGob = errors.New("failed to write binary outcomes")
	// ErrReadGob is returned when reading outcomes from a binary format fails.
	ErrReadGob = errors.New("failed to read binary outcomes")
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// WriteText writes a human readable report, one line per outcome followed by a summary.
func (o Outcomes) WriteText(w io.Writer) error {
	for _, v := range o {
		if err := writeOutcome(w, v); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d file(s) copied, %d of %d entries failed", o.Files(), len(o)-o.Count(KindCopied), len(o))
	if o.HasError() {
		summary = failStyle.Render(summary)
	} else {
		summary = successStyle.Render(summary)
	}

	_, err := fmt.Fprintln(w, summary)

	return err
}

func writeOutcome(w io.Writer, v Outcome) error {
	var status string

	style := failStyle

	switch v.Kind {
	case KindCopied:
		status = "✓"
		style = successStyle
	case KindZeroMatched:
		status = "~"
		style = warnStyle
	default:
		status = "✗"
	}

	label := v.Entry
	if label == "" {
		label = "[batch]"
	}

	line := fmt.Sprintf("%s %s %s", style.Render(status), style.Render(label), detailStyle.Render("("+v.Kind.String()+")"))
	if v.Kind == KindCopied {
		line += fmt.Sprintf(" %d file(s) %s -> %s", v.Count, v.Source, v.Destination)
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if v.Err != nil {
		if _, err := fmt.Fprintf(w, "  %s %s\n", style.Render("➜ Error:"), v.Err.Error()); err != nil {
			return err
		}
	}

	return nil
}

// gobOutcome is the serialised form of Outcome. Errors only keep their message.
type gobOutcome struct {
	Kind        Kind
	Entry       string
	Count       int
	Source      string
	Destination string
	Err         string
}

// WriteBinary writes the outcomes in gob format so they can be shown later.
func (o Outcomes) WriteBinary(w io.Writer) error {
	out := make([]gobOutcome, len(o))

	for i, v := range o {
		out[i] = gobOutcome{
			Kind:        v.Kind,
			Entry:       v.Entry,
			Count:       v.Count,
			Source:      v.Source,
			Destination: v.Destination,
		}

		if v.Err != nil {
			out[i].Err = v.Err.Error()
		}
	}

	if err := gob.NewEncoder(w).Encode(out); err != nil {
		return errors.Join(ErrWriteGob, err)
	}

	return nil
}

// ReadBinary reads outcomes written by WriteBinary.
func ReadBinary(r io.Reader) (Outcomes, error) {
	var in []gobOutcome

	if err := gob.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Join(ErrReadGob, err)
	}

	out := make(Outcomes, len(in))

	for i, v := range in {
		out[i] = Outcome{
			Kind:        v.Kind,
			Entry:       v.Entry,
			Count:       v.Count,
			Source:      v.Source,
			Destination: v.Destination,
		}

		if v.Err != "" {
			out[i].Err = errors.New(v.Err)
		}
	}

	return out, nil
}

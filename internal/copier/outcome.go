// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copier

import (
	"fmt"
	"slices"
)

// Kind classifies an Outcome.
type Kind int

const (
	// KindCopied means the entry matched and at least one file was copied.
	KindCopied Kind = iota
	// KindSourceMissing means the source directory does not exist and nothing was attempted.
	KindSourceMissing
	// KindZeroMatched means the source exists but the entry copied nothing.
	KindZeroMatched
	// KindIOFailure means copying the entry failed part way.
	KindIOFailure
	// KindUnresolvedDestination means no destination directory could be determined.
	KindUnresolvedDestination
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCopied:
		return "copied"
	case KindSourceMissing:
		return "source-missing"
	case KindZeroMatched:
		return "zero-matched"
	case KindIOFailure:
		return "io-failure"
	case KindUnresolvedDestination:
		return "unresolved-destination"
	default:
		return "unknown"
	}
}

// Outcome is the result of copying one entry, or of a batch that could not start.
type Outcome struct {
	Kind Kind
	// Entry is the file list entry. It is empty for batch-level outcomes.
	Entry string
	// Count is the number of files copied.
	Count       int
	Source      string
	Destination string
	Err         error
}

// Failed reports whether the outcome is anything but a successful copy.
func (o Outcome) Failed() bool {
	return o.Kind != KindCopied
}

// EntryError describes an I/O failure while copying one entry.
type EntryError struct {
	Entry       string
	Source      string
	Destination string
	Err         error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("failed to copy %q from %s to %s: %v", e.Entry, e.Source, e.Destination, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Outcomes is the ordered report of a batch.
type Outcomes []Outcome

// HasError reports whether any outcome failed.
func (o Outcomes) HasError() bool {
	return slices.ContainsFunc(o, Outcome.Failed)
}

// Count returns the number of outcomes of the given kind.
func (o Outcomes) Count(k Kind) int {
	n := 0

	for _, v := range o {
		if v.Kind == k {
			n++
		}
	}

	return n
}

// Files returns the total number of files copied.
func (o Outcomes) Files() int {
	n := 0

	for _, v := range o {
		n += v.Count
	}

	return n
}

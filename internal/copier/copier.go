// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copier

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/copyfiles/internal/dirpath"
)

var (
	// ErrSourceMissing is recorded when the source directory does not exist.
	ErrSourceMissing = errors.New("specified file directory does not exist")
	// ErrZeroMatched is recorded when an entry copied nothing.
	ErrZeroMatched = errors.New("entry matched no files")
	// ErrNoEntries is recorded when the file list has no non-blank entries.
	ErrNoEntries = errors.New("file list is empty")
)

// Logger is the build log the copier reports to.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// SplitList splits a comma-separated file list into trimmed, non-blank entries.
func SplitList(list string) []string {
	parts := strings.Split(list, ",")
	entries := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			entries = append(entries, p)
		}
	}

	return entries
}

// CopyAll copies every entry of the comma-separated fileNames from src to dst.
//
// If src does not exist the result is a single KindSourceMissing outcome. Otherwise there is one
// outcome per entry, in list order. The error is non-nil only if ctx is done, in which case the
// outcomes recorded so far are returned with it.
func CopyAll(ctx context.Context, src, dst dirpath.Path, fileNames string, log Logger) (Outcomes, error) {
	if log == nil {
		log = nopLogger{}
	}

	ok, err := src.Exists(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if !ok {
		cause := ErrSourceMissing
		if err != nil {
			cause = errors.Join(ErrSourceMissing, err)
		}

		log.Error("specified file directory does not exist", "dir", src.String(), "host", src.Host())

		return Outcomes{{
			Kind:        KindSourceMissing,
			Source:      src.String(),
			Destination: dst.String(),
			Err:         cause,
		}}, nil
	}

	entries := SplitList(fileNames)
	if len(entries) == 0 {
		log.Error("no files to copy", "dir", src.String())

		return Outcomes{{
			Kind:        KindZeroMatched,
			Source:      src.String(),
			Destination: dst.String(),
			Err:         ErrNoEntries,
		}}, nil
	}

	outcomes := make(Outcomes, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		o, err := copyEntry(ctx, src, dst, entry, log)
		if err != nil {
			return outcomes, err
		}

		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

// copyEntry copies one entry. The error is only set when the context was cancelled.
func copyEntry(ctx context.Context, src, dst dirpath.Path, entry string, log Logger) (Outcome, error) {
	o := Outcome{
		Entry:       entry,
		Source:      src.String(),
		Destination: dst.String(),
	}

	n, err := src.CopyRecursiveTo(ctx, entry, dst)
	o.Count = n

	switch {
	case err != nil && ctx.Err() != nil:
		return o, ctx.Err()
	case err != nil:
		o.Kind = KindIOFailure
		o.Err = &EntryError{Entry: entry, Source: src.String(), Destination: dst.String(), Err: err}
		log.Error("failed to copy", "file", entry, "from", src.String(), "to", dst.String(), "copied", n, "error", err.Error())
	case n == 0:
		o.Kind = KindZeroMatched
		o.Err = ErrZeroMatched
		log.Error("directory exists but failed copying", "file", entry, "from", src.String(), "to", dst.String())
	default:
		o.Kind = KindCopied
		log.Info("copied files", "file", entry, "from", src.String(), "to", dst.String(),
			"sourceHost", src.Host(), "destinationHost", dst.Host(), "count", n)
	}

	return o, nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dirpath

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

var (
	// ErrBadPattern is returned when an include pattern cannot be parsed.
	ErrBadPattern = errors.New("invalid include pattern")
	// ErrFileCopy is returned when a single file cannot be copied.
	ErrFileCopy = errors.New("file copy error")
	// ErrFilePath is returned when a relative path cannot be computed.
	ErrFilePath = errors.New("file path error")
)

const (
	// sevenFiveFive is the mode for directories created at the destination.
	sevenFiveFive = 0o755
	// everythingBelow is appended to a pattern so that a matched directory brings its contents along.
	everythingBelow = "/**"
	// ownerWritable is added while rewriting a destination file that is read-only.
	ownerWritable = 0o200
)

// CopyRecursiveTo copies every file below p whose slash-separated relative path matches pattern
// into dest, preserving the relative structure. It returns the number of files copied.
//
// The pattern uses doublestar syntax (`*`, `?`, `**`, `[...]`, `{a,b}`). A pattern that matches a
// directory also selects everything below it, and a trailing slash is shorthand for `dir/**`.
// Existing destination files are overwritten, other destination files are left alone.
func (p Path) CopyRecursiveTo(ctx context.Context, pattern string, dest Path) (int, error) {
	if p.fs == nil || dest.fs == nil {
		return 0, ErrNoFilesystem
	}

	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	if strings.HasSuffix(pattern, "/") {
		pattern += "**"
	}

	if pattern == "" || !doublestar.ValidatePattern(pattern) || escapes(pattern) {
		return 0, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	// Only the static prefix of the pattern can contain matches, so start the walk there.
	base, _ := doublestar.SplitPattern(pattern)
	root := filepath.Join(p.path, filepath.FromSlash(base))

	if ok, err := afero.Exists(p.fs, root); err != nil || !ok {
		return 0, err
	}

	count := 0

	err := afero.Walk(p.fs, root, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return err
		}

		rel, err := filepath.Rel(p.path, path)
		if err != nil {
			return errors.Join(ErrFilePath, err)
		}

		if rel == "." || !matches(pattern, filepath.ToSlash(rel)) {
			return nil
		}

		if escapes(filepath.ToSlash(rel)) {
			return fmt.Errorf("%w: %q leaves %s", ErrBadPattern, rel, p.path)
		}

		dstPath := filepath.Join(dest.path, rel)

		if info.Mode()&os.ModeSymlink != 0 {
			if target, statErr := p.fs.Stat(path); statErr == nil && target.Mode().IsRegular() {
				info = target
			}
		}

		switch {
		case info.IsDir():
			return dest.fs.MkdirAll(dstPath, sevenFiveFive)
		case !info.Mode().IsRegular():
			return nil
		}

		if err := copyFile(ctx, p.fs, path, dest.fs, dstPath, info); err != nil {
			return err
		}

		count++

		return nil
	})

	return count, err
}

// escapes reports whether a slash-separated path has a ".." element.
func escapes(path string) bool {
	return slices.Contains(strings.Split(path, "/"), "..")
}

func matches(pattern, rel string) bool {
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}

	ok, _ := doublestar.Match(pattern+everythingBelow, rel)

	return ok
}

func copyFile(ctx context.Context, srcFs afero.Fs, src string, dstFs afero.Fs, dst string, info os.FileInfo) error {
	in, err := srcFs.Open(src)
	if err != nil {
		return errors.Join(ErrFileCopy, err)
	}
	defer in.Close() //nolint:errcheck

	if err := dstFs.MkdirAll(filepath.Dir(dst), sevenFiveFive); err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	out, err := dstFs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if errors.Is(err, os.ErrPermission) {
		// A read-only file left by an earlier copy is replaced.
		if rmErr := dstFs.Remove(dst); rmErr == nil {
			out, err = dstFs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, ownerWritable|info.Mode().Perm())
		}
	}

	if err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	_, err = io.Copy(out, &ctxReader{ctx: ctx, r: in})
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	if err := dstFs.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	// Timestamps are best effort, not every filesystem supports them.
	_ = dstFs.Chtimes(dst, info.ModTime(), info.ModTime())

	return nil
}

// ctxReader aborts an in-flight copy once the context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}

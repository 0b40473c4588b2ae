// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dirpath

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrNoFilesystem is returned when an operation is attempted on a zero Path.
	ErrNoFilesystem = errors.New("directory handle is not bound to a filesystem")
	// ErrStat is returned when the existence of a path cannot be determined.
	ErrStat = errors.New("unable to stat path")
)

// Path is a directory location on a specific host.
type Path struct {
	fs   afero.Fs
	path string
	host string
}

// New returns a Path for dir on the given filesystem. host names the machine the filesystem belongs to
// and is only used for reporting.
func New(fs afero.Fs, host, dir string) Path {
	return Path{
		fs:   fs,
		path: dir,
		host: host,
	}
}

// Child returns the path rel below p, on the same host.
func (p Path) Child(rel string) Path {
	return Path{
		fs:   p.fs,
		path: filepath.Join(p.path, rel),
		host: p.host,
	}
}

// IsZero reports whether p is unbound.
func (p Path) IsZero() bool {
	return p.fs == nil
}

// Fs returns the filesystem the path is bound to.
func (p Path) Fs() afero.Fs {
	return p.fs
}

// Host returns the name of the host the path lives on.
func (p Path) Host() string {
	return p.host
}

// String returns the path on its host.
func (p Path) String() string {
	return p.path
}

// Exists reports whether anything exists at p.
func (p Path) Exists(ctx context.Context) (bool, error) {
	if p.fs == nil {
		return false, ErrNoFilesystem
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	ok, err := afero.Exists(p.fs, p.path)
	if err != nil {
		return false, errors.Join(ErrStat, err)
	}

	return ok, nil
}

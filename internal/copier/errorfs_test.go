// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copier

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// errorFS wraps a filesystem and fails every write below errorPath.
type errorFS struct {
	afero.Fs
	errorPath string
}

func (e *errorFS) hit(name string) bool {
	name = filepath.Clean(name)
	return name == e.errorPath || strings.HasPrefix(name, e.errorPath+string(filepath.Separator))
}

func (e *errorFS) Create(name string) (afero.File, error) {
	if e.hit(name) {
		return nil, os.ErrPermission
	}

	return e.Fs.Create(name)
}

func (e *errorFS) MkdirAll(path string, perm os.FileMode) error {
	if e.hit(path) {
		return os.ErrPermission
	}

	return e.Fs.MkdirAll(path, perm)
}

func (e *errorFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if e.hit(name) && flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE) != 0 {
		return nil, os.ErrPermission
	}

	return e.Fs.OpenFile(name, flag, perm)
}

func (e *errorFS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	if e.hit(name) {
		return os.ErrPermission
	}

	return e.Fs.Chtimes(name, atime, mtime)
}

func (e *errorFS) Name() string {
	return "errorFS"
}

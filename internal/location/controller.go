// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package location

import (
	"path/filepath"

	"github.com/matt-FFFFFF/copyfiles/internal/dirpath"
	"github.com/spf13/afero"
)

const (
	// DefaultControllerName is used when the controller has no name.
	DefaultControllerName = "controller"
	userContentDirName    = "userContent"
	jobsDirName           = "jobs"
	workspaceDirName      = "workspace"
)

// Controller describes the build controller the files are copied from.
// It is passed explicitly to the Resolver.
type Controller struct {
	// Name identifies the controller in logs.
	Name string
	// HomeDir is the controller's root directory.
	HomeDir string
	// UserContentDir defaults to HomeDir/userContent.
	UserContentDir string
	// JobsDir holds one directory per job and defaults to HomeDir/jobs.
	JobsDir string
	// Fs serves the symbolic directories. It defaults to the OS filesystem.
	Fs afero.Fs
	// LocalFs serves literal paths. It defaults to the OS filesystem and is never a remote view.
	LocalFs afero.Fs
}

func (c *Controller) name() string {
	if c.Name == "" {
		return DefaultControllerName
	}

	return c.Name
}

func (c *Controller) fs() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}

	return c.Fs
}

func (c *Controller) localFs() afero.Fs {
	if c.LocalFs == nil {
		return afero.NewOsFs()
	}

	return c.LocalFs
}

// Home returns the controller's home directory.
func (c *Controller) Home() dirpath.Path {
	return dirpath.New(c.fs(), c.name(), c.HomeDir)
}

// UserContent returns the controller's user-content directory.
func (c *Controller) UserContent() dirpath.Path {
	if c.UserContentDir != "" {
		return dirpath.New(c.fs(), c.name(), c.UserContentDir)
	}

	return c.Home().Child(userContentDirName)
}

// JobWorkspace returns the workspace the controller keeps for job.
func (c *Controller) JobWorkspace(job string) dirpath.Path {
	jobs := c.JobsDir
	if jobs == "" {
		jobs = filepath.Join(c.HomeDir, jobsDirName)
	}

	return dirpath.New(c.fs(), c.name(), filepath.Join(jobs, job, workspaceDirName))
}

// LocalPath returns path on the controller's local disk.
func (c *Controller) LocalPath(path string) dirpath.Path {
	return dirpath.New(c.localFs(), c.name(), path)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/copyfiles/internal/copyfiles"
	"github.com/matt-FFFFFF/copyfiles/internal/location"
	"github.com/spf13/afero"
)

// ErrNotAbsolute is returned when a directory setting must be an absolute path.
var ErrNotAbsolute = errors.New("path must be absolute")

// Definition is the root of a job file.
type Definition struct {
	Name        string            `yaml:"name,omitempty" toml:"name,omitempty" hcl:"name,optional"`
	Description string            `yaml:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
	CopyFiles   CopyFiles         `yaml:"copy_files" toml:"copy_files" hcl:"copy_files,block"`
	Controller  *Controller       `yaml:"controller,omitempty" toml:"controller,omitempty" hcl:"controller,block"`
	Worker      *Worker           `yaml:"worker,omitempty" toml:"worker,omitempty" hcl:"worker,block"`
	Env         map[string]string `yaml:"env,omitempty" toml:"env,omitempty" hcl:"env,optional"`
}

// CopyFiles holds the five persisted settings of the copy step.
type CopyFiles struct {
	MasterFileDir    string `yaml:"master_file_dir,omitempty" toml:"master_file_dir,omitempty" hcl:"master_file_dir,optional"`
	MasterFileName   string `yaml:"master_file_name" toml:"master_file_name" hcl:"master_file_name"`
	SlaveFileDir     string `yaml:"slave_file_dir,omitempty" toml:"slave_file_dir,omitempty" hcl:"slave_file_dir,optional"`
	MasterRelativeTo string `yaml:"master_relative_to,omitempty" toml:"master_relative_to,omitempty" hcl:"master_relative_to,optional"`
	SlaveRelativeTo  string `yaml:"slave_relative_to,omitempty" toml:"slave_relative_to,omitempty" hcl:"slave_relative_to,optional"`
}

// Controller describes the directories of the build controller.
type Controller struct {
	Name        string `yaml:"name,omitempty" toml:"name,omitempty" hcl:"name,optional"`
	Home        string `yaml:"home,omitempty" toml:"home,omitempty" hcl:"home,optional"`
	UserContent string `yaml:"user_content,omitempty" toml:"user_content,omitempty" hcl:"user_content,optional"`
	JobsDir     string `yaml:"jobs_dir,omitempty" toml:"jobs_dir,omitempty" hcl:"jobs_dir,optional"`
}

// Worker describes the node executing the build.
// When MountRoot is set the worker filesystem is reached below that directory.
type Worker struct {
	Name      string `yaml:"name,omitempty" toml:"name,omitempty" hcl:"name,optional"`
	Workspace string `yaml:"workspace,omitempty" toml:"workspace,omitempty" hcl:"workspace,optional"`
	MountRoot string `yaml:"mount_root,omitempty" toml:"mount_root,omitempty" hcl:"mount_root,optional"`
}

// Configuration returns the copy setup of the job.
func (d *Definition) Configuration() copyfiles.Configuration {
	c := d.CopyFiles

	return copyfiles.NewConfiguration(c.MasterFileDir, c.MasterFileName, c.SlaveFileDir, c.MasterRelativeTo, c.SlaveRelativeTo)
}

// LocationController returns the controller environment described by the definition, on fs.
func (d *Definition) LocationController(fs afero.Fs) *location.Controller {
	c := &location.Controller{
		Fs:      fs,
		LocalFs: fs,
	}

	if d.Controller != nil {
		c.Name = d.Controller.Name
		c.HomeDir = d.Controller.Home
		c.UserContentDir = d.Controller.UserContent
		c.JobsDir = d.Controller.JobsDir
	}

	return c
}

// Node returns the worker node described by the definition, on fs.
func (d *Definition) Node(fs afero.Fs) location.Node {
	w := d.worker()
	if w.MountRoot != "" {
		return location.NewMountedNode(w.Name, fs, w.MountRoot)
	}

	return location.NewLocalNode(w.Name, fs)
}

// Workspace returns the build workspace on the worker, if any.
func (d *Definition) Workspace() string {
	return d.worker().Workspace
}

func (d *Definition) worker() Worker {
	if d.Worker == nil {
		return Worker{}
	}

	return *d.Worker
}

// Validate checks the directory settings that must be absolute.
// All problems are reported together.
func (d *Definition) Validate() error {
	var err error

	check := func(field, v string) {
		if v != "" && !filepath.IsAbs(v) {
			err = multierror.Append(err, fmt.Errorf("%w: %s = %q", ErrNotAbsolute, field, v))
		}
	}

	if d.Controller != nil {
		check("controller.home", d.Controller.Home)
		check("controller.user_content", d.Controller.UserContent)
		check("controller.jobs_dir", d.Controller.JobsDir)
	}

	if d.Worker != nil {
		check("worker.workspace", d.Worker.Workspace)
		check("worker.mount_root", d.Worker.MountRoot)
	}

	return err
}

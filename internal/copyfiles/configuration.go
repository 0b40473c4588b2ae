// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copyfiles

import (
	"errors"
	"strings"

	"github.com/matt-FFFFFF/copyfiles/internal/location"
)

// Configuration is the per-job copy setup. It is created once and shared by every build of the job.
type Configuration struct {
	masterFileDir    string
	masterFileName   string
	slaveFileDir     string
	masterRelativeTo location.MasterRelativeTo
	slaveRelativeTo  location.SlaveRelativeTo
	parseErr         error
}

// NewConfiguration trims the string fields and parses the relative-to fields.
// Unknown relative-to values fall back to location.MasterOther and location.SlaveUnspecified;
// Validate reports them.
func NewConfiguration(masterFileDir, masterFileName, slaveFileDir, masterRelativeTo, slaveRelativeTo string) Configuration {
	m, mErr := location.NewMasterRelativeTo(masterRelativeTo)
	s, sErr := location.NewSlaveRelativeTo(slaveRelativeTo)

	return Configuration{
		masterFileDir:    strings.TrimSpace(masterFileDir),
		masterFileName:   strings.TrimSpace(masterFileName),
		slaveFileDir:     strings.TrimSpace(slaveFileDir),
		masterRelativeTo: m,
		slaveRelativeTo:  s,
		parseErr:         errors.Join(mErr, sErr),
	}
}

// MasterFileDir is the source directory, relative to the master base or literal.
func (c Configuration) MasterFileDir() string {
	return c.masterFileDir
}

// MasterFileName is the comma-separated list of entries to copy.
func (c Configuration) MasterFileName() string {
	return c.masterFileName
}

// SlaveFileDir is the destination directory on the worker.
func (c Configuration) SlaveFileDir() string {
	return c.slaveFileDir
}

// MasterRelativeTo selects the source base.
func (c Configuration) MasterRelativeTo() location.MasterRelativeTo {
	return c.masterRelativeTo
}

// SlaveRelativeTo selects the destination base.
func (c Configuration) SlaveRelativeTo() location.SlaveRelativeTo {
	return c.slaveRelativeTo
}

// Validate returns the relative-to values that were not recognised, wrapping location.ErrUnknownRelativeTo.
func (c Configuration) Validate() error {
	return c.parseErr
}

func (c Configuration) source() location.Source {
	return location.Source{RelativeTo: c.masterRelativeTo, Dir: c.masterFileDir}
}

func (c Configuration) destination() location.Destination {
	return location.Destination{RelativeTo: c.slaveRelativeTo, Dir: c.slaveFileDir}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package location

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRelativeTo is returned when a relative-to value is not recognised.
// The accompanying value is always the explicit fallback variant, so callers may log and carry on.
var ErrUnknownRelativeTo = errors.New("unknown relative-to value")

// MasterRelativeTo selects the controller-side base directory of the copy source.
type MasterRelativeTo int

const (
	// MasterOther means no symbolic base: the source directory is a literal path on the controller.
	MasterOther MasterRelativeTo = iota
	// MasterUserContent is the controller's user-content directory.
	MasterUserContent
	// MasterHome is the controller's home directory.
	MasterHome
	// MasterWorkspace is the job's workspace on the controller.
	MasterWorkspace
)

const (
	masterOtherStr       = "Other"
	masterUserContentStr = "UserContent"
	masterHomeStr        = "Home"
	masterWorkspaceStr   = "MasterWorkspace"
)

// String returns the configuration spelling of the value.
func (m MasterRelativeTo) String() string {
	switch m {
	case MasterUserContent:
		return masterUserContentStr
	case MasterHome:
		return masterHomeStr
	case MasterWorkspace:
		return masterWorkspaceStr
	default:
		return masterOtherStr
	}
}

// NewMasterRelativeTo parses s, ignoring case and surrounding space.
// Blank input is MasterOther without error. Unrecognised input is MasterOther with ErrUnknownRelativeTo.
func NewMasterRelativeTo(s string) (MasterRelativeTo, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "", strings.EqualFold(s, masterOtherStr):
		return MasterOther, nil
	case strings.EqualFold(s, masterUserContentStr):
		return MasterUserContent, nil
	case strings.EqualFold(s, masterHomeStr):
		return MasterHome, nil
	case strings.EqualFold(s, masterWorkspaceStr):
		return MasterWorkspace, nil
	default:
		return MasterOther, fmt.Errorf("%w: %q", ErrUnknownRelativeTo, s)
	}
}

// SlaveRelativeTo selects how the destination directory on the worker is found.
type SlaveRelativeTo int

const (
	// SlaveUnspecified means no destination was configured. Resolution fails with ErrUnresolvedDestination.
	SlaveUnspecified SlaveRelativeTo = iota
	// SlaveWorkspace is the build's workspace on the worker executing it.
	SlaveWorkspace
	// SlaveAnyDir is an arbitrary path on the worker executing the build.
	SlaveAnyDir
)

const (
	slaveUnspecifiedStr = "Unspecified"
	slaveWorkspaceStr   = "SlaveWorkspace"
	slaveAnyDirStr      = "SlaveAnyDir"
)

// String returns the configuration spelling of the value.
func (s SlaveRelativeTo) String() string {
	switch s {
	case SlaveWorkspace:
		return slaveWorkspaceStr
	case SlaveAnyDir:
		return slaveAnyDirStr
	default:
		return slaveUnspecifiedStr
	}
}

// NewSlaveRelativeTo parses s, ignoring case and surrounding space.
// Blank input is SlaveUnspecified without error. Unrecognised input is SlaveUnspecified with ErrUnknownRelativeTo.
func NewSlaveRelativeTo(s string) (SlaveRelativeTo, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "", strings.EqualFold(s, slaveUnspecifiedStr):
		return SlaveUnspecified, nil
	case strings.EqualFold(s, slaveWorkspaceStr):
		return SlaveWorkspace, nil
	case strings.EqualFold(s, slaveAnyDirStr):
		return SlaveAnyDir, nil
	default:
		return SlaveUnspecified, fmt.Errorf("%w: %q", ErrUnknownRelativeTo, s)
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_LocationController(t *testing.T) {
	fs := afero.NewMemMapFs()

	c := (&Definition{Controller: &Controller{Name: "ci", Home: "/ctrl", JobsDir: "/jobs"}}).LocationController(fs)
	assert.Equal(t, "ci", c.Name)
	assert.Equal(t, "/ctrl", c.Home().String())
	assert.Equal(t, "/ctrl/userContent", c.UserContent().String())
	assert.Equal(t, "/jobs/j/workspace", c.JobWorkspace("j").String())

	empty := (&Definition{}).LocationController(fs)
	assert.Empty(t, empty.HomeDir)
}

func TestDefinition_Node(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mnt/w1/opt/tool", []byte("x"), 0o644))

	local := (&Definition{Worker: &Worker{Name: "w1"}}).Node(fs)
	assert.Equal(t, "w1", local.Name())

	mounted := (&Definition{Worker: &Worker{Name: "w1", MountRoot: "/mnt/w1"}}).Node(fs)
	p := mounted.CreatePath("/opt")

	ok, err := afero.Exists(p.Fs(), "/opt/tool")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Empty(t, (&Definition{}).Workspace())
}

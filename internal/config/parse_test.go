// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/matt-FFFFFF/copyfiles/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hclJob = `
name = "reports"

copy_files {
  master_file_dir    = "reports"
  master_file_name   = "summary.html, css/**"
  master_relative_to = "Home"
  slave_relative_to  = "SlaveWorkspace"
}

controller {
  home = "/ctrl"
}

worker {
  name      = "W"
  workspace = "/work/job1"
}

env = {
  REPORT = "nightly"
}
`

const yamlJob = `
name: reports
copy_files:
  master_file_dir: reports
  master_file_name: summary.html, css/**
  master_relative_to: Home
  slave_relative_to: SlaveWorkspace
controller:
  home: /ctrl
worker:
  name: W
  workspace: /work/job1
env:
  REPORT: nightly
`

const tomlJob = `
name = "reports"

[copy_files]
master_file_dir = "reports"
master_file_name = "summary.html, css/**"
master_relative_to = "Home"
slave_relative_to = "SlaveWorkspace"

[controller]
home = "/ctrl"

[worker]
name = "W"
workspace = "/work/job1"

[env]
REPORT = "nightly"
`

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		fileName string
		content  string
	}{
		{name: "hcl", fileName: "job.hcl", content: hclJob},
		{name: "yaml", fileName: "job.yaml", content: yamlJob},
		{name: "yml", fileName: "job.YML", content: yamlJob},
		{name: "toml", fileName: "job.toml", content: tomlJob},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse(tc.fileName, []byte(tc.content))
			require.NoError(t, err)

			assert.Equal(t, "reports", def.Name)
			assert.Equal(t, CopyFiles{
				MasterFileDir:    "reports",
				MasterFileName:   "summary.html, css/**",
				MasterRelativeTo: "Home",
				SlaveRelativeTo:  "SlaveWorkspace",
			}, def.CopyFiles)
			require.NotNil(t, def.Controller)
			assert.Equal(t, "/ctrl", def.Controller.Home)
			assert.Equal(t, "/work/job1", def.Workspace())
			assert.Equal(t, map[string]string{"REPORT": "nightly"}, def.Env)

			cfg := def.Configuration()
			require.NoError(t, cfg.Validate())
			assert.Equal(t, location.MasterHome, cfg.MasterRelativeTo())
			assert.Equal(t, location.SlaveWorkspace, cfg.SlaveRelativeTo())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		fileName string
		content  string
		wantErr  error
	}{
		{
			name:     "unknown extension",
			fileName: "job.json",
			content:  `{}`,
			wantErr:  ErrUnknownFormat,
		},
		{
			name:     "hcl syntax error",
			fileName: "job.hcl",
			content:  `copy_files {`,
			wantErr:  ErrInvalidHCL,
		},
		{
			name:     "hcl missing copy_files block",
			fileName: "job.hcl",
			content:  `name = "x"`,
			wantErr:  ErrInvalidHCL,
		},
		{
			name:     "hcl variables are not supported",
			fileName: "job.hcl",
			content:  "copy_files {\n  master_file_name = var.files\n}\n",
			wantErr:  ErrInvalidHCL,
		},
		{
			name:     "yaml unknown field",
			fileName: "job.yaml",
			content:  "copy_files:\n  master_file_names: a.txt\n",
			wantErr:  ErrInvalidYaml,
		},
		{
			name:     "toml unknown field",
			fileName: "job.toml",
			content:  "[copy_files]\nmaster_file_name = \"a\"\nbogus = 1\n",
			wantErr:  ErrInvalidTOML,
		},
		{
			name:     "relative directories",
			fileName: "job.yaml",
			content:  "copy_files:\n  master_file_name: a\ncontroller:\n  home: ctrl\nworker:\n  mount_root: mnt\n",
			wantErr:  ErrNotAbsolute,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse(tc.fileName, []byte(tc.content))
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, def)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	def := &Definition{
		Controller: &Controller{Home: "ctrl", JobsDir: "/jobs"},
		Worker:     &Worker{Workspace: "ws", MountRoot: "mnt"},
	}

	err := def.Validate()
	require.ErrorIs(t, err, ErrNotAbsolute)
	assert.Contains(t, err.Error(), "controller.home")
	assert.Contains(t, err.Error(), "worker.workspace")
	assert.Contains(t, err.Error(), "worker.mount_root")
	assert.NotContains(t, err.Error(), "controller.jobs_dir")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"hcl": FormatHCL, " YAML ": FormatYAML, "yml": FormatYAML, "toml": FormatTOML} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}

	_, err := ParseFormat("json")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExample_ParsesBack(t *testing.T) {
	for _, f := range []Format{FormatHCL, FormatYAML, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			b, err := Example(f)
			require.NoError(t, err)

			def, err := Parse("example."+string(f), b)
			require.NoError(t, err)
			assert.Equal(t, ExampleDefinition(), def)
			require.NoError(t, def.Configuration().Validate())
		})
	}
}

func TestParse_PlaceholdersAreKeptAsText(t *testing.T) {
	testCases := []struct {
		name     string
		fileName string
		content  string
	}{
		{
			name:     "hcl",
			fileName: "job.hcl",
			content:  "copy_files {\n  master_file_dir  = \"reports/${JOB_NAME}\"\n  master_file_name = \"%{BUILD_ID}.log, $${LITERAL}\"\n}\n",
		},
		{
			name:     "yaml",
			fileName: "job.yaml",
			content:  "copy_files:\n  master_file_dir: 'reports/${JOB_NAME}'\n  master_file_name: '%{BUILD_ID}.log, ${LITERAL}'\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse(tc.fileName, []byte(tc.content))
			require.NoError(t, err)
			assert.Equal(t, "reports/${JOB_NAME}", def.CopyFiles.MasterFileDir)
			assert.Equal(t, "%{BUILD_ID}.log, ${LITERAL}", def.CopyFiles.MasterFileName)
		})
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LocalFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/jobs/reports.toml", []byte(tomlJob), 0o644))

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	def, err := Load(context.Background(), "/jobs/reports.toml")
	require.NoError(t, err)
	assert.Equal(t, "reports", def.Name)
	assert.Equal(t, "/work/job1", def.Workspace())
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/jobs/broken.yaml", []byte("copy_files: [\n"), 0o644))

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	_, err := Load(context.Background(), "")
	require.ErrorIs(t, err, ErrGetConfigFile)

	_, err = Load(context.Background(), "/jobs/broken.yaml")
	require.ErrorIs(t, err, ErrInvalidYaml)

	_, err = Load(context.Background(), "git::http://notexist.invalid/repo")
	require.ErrorIs(t, err, ErrGetConfigFile)
}

func Test_splitFileNameFromGetterURL(t *testing.T) {
	testCases := []struct {
		url      string
		wantURL  string
		wantFile string
	}{
		{
			url:      "git::https://github.com/org/repo//jobs/job.yaml?ref=v1.0.0",
			wantURL:  "git::https://github.com/org/repo//jobs?ref=v1.0.0",
			wantFile: "job.yaml",
		},
		{
			url:      "git::https://github.com/org/repo//job.hcl",
			wantURL:  "git::https://github.com/org/repo",
			wantFile: "job.hcl",
		},
		{
			url: "https://example.com/job.yaml",
		},
		{
			url: "git::https://github.com/org/repo//jobs/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			u, f := splitFileNameFromGetterURL(tc.url)
			assert.Equal(t, tc.wantURL, u)
			assert.Equal(t, tc.wantFile, f)
		})
	}
}

func Test_newRequest(t *testing.T) {
	dir := t.TempDir()
	job := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(job, []byte(yamlJob), 0o600))

	t.Run("local file", func(t *testing.T) {
		req, fileName, err := newRequest(job, dir, "/tmp/dst")
		require.NoError(t, err)
		assert.Equal(t, dir, req.Src)
		assert.Equal(t, "job.yaml", fileName)
	})

	t.Run("missing local file is not fetched", func(t *testing.T) {
		_, _, err := newRequest("missing.yaml", dir, "/tmp/dst")
		require.ErrorIs(t, err, ErrGetConfigFile)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("remote subdirectory", func(t *testing.T) {
		req, fileName, err := newRequest("git::https://github.com/org/repo//jobs/job.hcl?ref=v1", dir, "/tmp/dst")
		require.NoError(t, err)
		assert.Equal(t, "git::https://github.com/org/repo//jobs?ref=v1", req.Src)
		assert.Equal(t, "job.hcl", fileName)
	})
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
	"github.com/spf13/afero"
)

// ErrGetConfigFile is returned when the job file cannot be read.
var ErrGetConfigFile = errors.New("failed to get job file")

// Load reads and parses the job file at url.
//
// A url naming an existing file on FsFactory() is read directly. Anything else is handed to
// go-getter, so git, http and the other getter sources work.
// See https://github.com/hashicorp/go-getter.
func Load(ctx context.Context, url string) (*Definition, error) {
	if url == "" {
		return nil, ErrGetConfigFile
	}

	fs := FsFactory()

	if ok, _ := afero.Exists(fs, url); ok {
		ctxlog.Debug(ctx, "reading job file", "path", url)

		data, err := afero.ReadFile(fs, url)
		if err != nil {
			return nil, errors.Join(ErrGetConfigFile, err)
		}

		return Parse(url, data)
	}

	ctxlog.Debug(ctx, "fetching job file", "url", url)

	data, fileName, err := getURL(ctx, url)
	if err != nil {
		return nil, err
	}

	return Parse(fileName, data)
}

// getURL retrieves the file at url using go-getter and returns its content and name.
// The download directory is removed before returning.
func getURL(ctx context.Context, url string) ([]byte, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	downloadDir, err := os.MkdirTemp("", "copyfiles-job-*")
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	defer os.RemoveAll(downloadDir) //nolint:errcheck

	req, fileName, err := newRequest(url, wd, filepath.Join(downloadDir, "job"))
	if err != nil {
		return nil, "", err
	}

	client := &getter.Client{DisableSymlinks: true}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	return data, fileName, nil
}

// newRequest builds a directory request for the directory holding the job file, and returns the
// file name to read from it. Getters fetch directories, not single files from a repository.
// https://github.com/hashicorp/go-getter/issues/98
func newRequest(url, wd, dst string) (*getter.Request, string, error) {
	req := &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	local, err := getter.Detect(req, &getter.FileGetter{})
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	if local {
		path := strings.TrimPrefix(strings.TrimPrefix(url, "file::"), "file://")
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}

		if _, err := os.Stat(path); err != nil {
			return nil, "", errors.Join(ErrGetConfigFile, err)
		}

		req.Src = filepath.Dir(url)

		return req, filepath.Base(url), nil
	}

	src, fileName := splitFileNameFromGetterURL(url)
	if src == "" || fileName == "" {
		return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetConfigFile, url)
	}

	req.Src = src

	return req, fileName, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3
)

// splitFileNameFromGetterURL splits a getter URL of the form `src//dir/file?ref=x` into
// `src//dir?ref=x` and `file`. Both are empty if the URL has no subdirectory part
// or does not end in a file.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := len(parts) - 1

	if strings.Contains(parts[last], goGetterRefSeparator) {
		refSplit := strings.SplitN(parts[last], goGetterRefSeparator, 2) //nolint:mnd
		ref = refSplit[1]
		parts[last] = refSplit[0]
	}

	if filepath.Clean(parts[last]) == filepath.Dir(parts[last]) {
		return "", ""
	}

	fileName := filepath.Base(parts[last])
	parts[last] = filepath.Dir(parts[last])

	if parts[last] == "." {
		parts = parts[:last]
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}

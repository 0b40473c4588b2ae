// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/copyfiles/internal/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestShow(t *testing.T) {
	name := filepath.Join(t.TempDir(), "report.gob")

	f, err := os.Create(name)
	require.NoError(t, err)

	outcomes := copier.Outcomes{
		{Kind: copier.KindCopied, Entry: "summary.html", Count: 1, Source: "/ctrl/reports", Destination: "/work/job1"},
		{Kind: copier.KindZeroMatched, Entry: "b/*.log", Source: "/ctrl/reports", Destination: "/work/job1", Err: copier.ErrZeroMatched},
	}
	require.NoError(t, outcomes.WriteBinary(f))
	require.NoError(t, f.Close())

	out := &bytes.Buffer{}
	root := &cli.Command{
		Name:     "copyfiles",
		Commands: []*cli.Command{ShowCmd},
		Writer:   out,
	}

	require.NoError(t, root.Run(context.Background(), []string{"copyfiles", "show", name}))
	assert.Contains(t, out.String(), "summary.html")
	assert.Contains(t, out.String(), "b/*.log")
	assert.Contains(t, out.String(), "1 file(s) copied, 1 of 2 entries failed")
}

func TestShow_MissingFile(t *testing.T) {
	root := &cli.Command{
		Name:     "copyfiles",
		Commands: []*cli.Command{ShowCmd},
		Writer:   &bytes.Buffer{},
	}

	err := root.Run(context.Background(), []string{"copyfiles", "show", filepath.Join(t.TempDir(), "nope.gob")})
	require.ErrorIs(t, err, ErrReadFile)
}

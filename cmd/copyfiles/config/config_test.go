// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/copyfiles/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestConfigCmd(t *testing.T) {
	for _, format := range []string{"hcl", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			out := &bytes.Buffer{}
			root := &cli.Command{
				Name:     "copyfiles",
				Commands: []*cli.Command{ConfigCmd},
				Writer:   out,
			}

			require.NoError(t, root.Run(context.Background(), []string{"copyfiles", "config", "--format", format}))

			def, err := config.Parse("job."+format, out.Bytes())
			require.NoError(t, err)
			assert.Equal(t, config.ExampleDefinition().CopyFiles, def.CopyFiles)
		})
	}
}

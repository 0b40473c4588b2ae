// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config contains the command that prints an example job file.
package config

import (
	"context"

	"github.com/matt-FFFFFF/copyfiles/internal/config"
	"github.com/urfave/cli/v3"
)

const formatFlag = "format"

// ConfigCmd prints an example job file in the requested format.
var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Print an example job file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  formatFlag,
			Usage: "Format of the example: hcl, yaml or toml",
			Value: string(config.FormatHCL),
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	f, err := config.ParseFormat(cmd.String(formatFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	b, err := config.Example(f)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	_, err = cmd.Root().Writer.Write(b)

	return err //nolint:wrapcheck
}

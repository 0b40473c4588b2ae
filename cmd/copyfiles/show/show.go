// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show contains the command that prints a saved report.
package show

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/copyfiles/internal/copier"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"
)

var (
	// ErrReadFile is returned when the file cannot be read.
	ErrReadFile = errors.New("failed to read file")
	// ErrWriteResults is returned when the report cannot be written.
	ErrWriteResults = errors.New("failed to write report")
)

// ShowCmd is the command that shows a report saved with before-build --out.
var ShowCmd = &cli.Command{
	Name:        "show",
	Usage:       "Show a previously saved report",
	Description: "Show a report previously saved with before-build --out.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: fileArg,
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		file, err := os.Open(cmd.StringArg(fileArg))
		if err != nil {
			return errors.Join(ErrReadFile, err)
		}
		defer file.Close() // nolint:errcheck

		outcomes, err := copier.ReadBinary(file)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err := outcomes.WriteText(cmd.Root().Writer); err != nil {
			return errors.Join(ErrWriteResults, err)
		}

		return nil
	},
}

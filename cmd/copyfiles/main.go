// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the copyfiles command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/copyfiles"
	"github.com/matt-FFFFFF/copyfiles/cmd/copyfiles/afterbuild"
	"github.com/matt-FFFFFF/copyfiles/cmd/copyfiles/beforebuild"
	"github.com/matt-FFFFFF/copyfiles/cmd/copyfiles/config"
	"github.com/matt-FFFFFF/copyfiles/cmd/copyfiles/show"
	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
	"github.com/matt-FFFFFF/copyfiles/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const jsonLogFlag = "json-log"

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		beforebuild.BeforeBuildCmd,
		afterbuild.AfterBuildCmd,
		show.ShowCmd,
		config.ConfigCmd,
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  jsonLogFlag,
			Usage: "Write log lines as JSON",
		},
	},
	Before:    before,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "copyfiles",
	Description: `copyfiles copies files from the build controller to the worker executing a build,
before the build runs. What is copied, and from where to where, is described in a job file.`,
	Usage:                     "copyfiles before-build -f job.hcl --workspace /work/job",
	Copyright:                 "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors:                   []any{"Matt White (matt-FFFFFF)"},
	DisableSliceFlagSeparator: true,
	EnableShellCompletion:     true,
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool(jsonLogFlag) {
		return ctxlog.New(ctx, ctxlog.JSONLogger), nil
	}

	return ctx, nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", copyfiles.Version, copyfiles.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1) //nolint:gocritic
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

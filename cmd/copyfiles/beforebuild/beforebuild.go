// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package beforebuild contains the command that runs the pre-build copy.
package beforebuild

import (
	"context"
	"fmt"
	"maps"

	"github.com/matt-FFFFFF/copyfiles/internal/config"
	"github.com/matt-FFFFFF/copyfiles/internal/copyfiles"
	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
	"github.com/matt-FFFFFF/copyfiles/internal/location"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag        = "file"
	outFlag         = "out"
	buildIDFlag     = "build-id"
	jobFlag         = "job"
	nodeFlag        = "node"
	workspaceFlag   = "workspace"
	mountRootFlag   = "mount-root"
	homeFlag        = "home"
	userContentFlag = "user-content"
	jobsDirFlag     = "jobs-dir"
	paramFlag       = "param"
	cliExitStr      = ""
)

// BeforeBuildCmd is the command that copies the configured files into a build.
var BeforeBuildCmd = NewCommand()

// NewCommand returns a new before-build command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "before-build",
		Usage: "Copy files from the controller into the build before it runs",
		Description: `Copy the files named in a job file from the build controller to the worker executing the build.

The job file is HCL, YAML or TOML, chosen by extension. Its URL uses Hashicorp's go-getter syntax,
which allows for fetching files from various sources. See https://github.com/hashicorp/go-getter.

Settings given on the command line override the job file. Files that cannot be copied are reported
but do not fail the command.

To save the report to a file, specify the output file name with --out.
`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     fileFlag,
				Aliases:  []string{"f"},
				Usage:    "Specify the URL of the job file. Supports Hashicorp's go-getter syntax.",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      outFlag,
				Usage:     "Specify the output file name for the binary report",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.StringFlag{
				Name:  buildIDFlag,
				Usage: "Identifier of the build. A random one is used if not set",
			},
			&cli.StringFlag{
				Name:  jobFlag,
				Usage: "Name of the job being built. Defaults to the job file name setting",
			},
			&cli.StringFlag{
				Name:  nodeFlag,
				Usage: "Name of the worker executing the build",
			},
			&cli.StringFlag{
				Name:  workspaceFlag,
				Usage: "Build workspace on the worker",
			},
			&cli.StringFlag{
				Name:  mountRootFlag,
				Usage: "Directory the worker filesystem is mounted under",
			},
			&cli.StringFlag{
				Name:  homeFlag,
				Usage: "Home directory of the controller",
			},
			&cli.StringFlag{
				Name:  userContentFlag,
				Usage: "User content directory of the controller. Defaults to <home>/userContent",
			},
			&cli.StringFlag{
				Name:  jobsDirFlag,
				Usage: "Directory holding the controller job directories. Defaults to <home>/jobs",
			},
			&cli.StringMapFlag{
				Name:    paramFlag,
				Aliases: []string{"p"},
				Usage:   "Build parameter KEY=VALUE used for expansion. Specify multiple times for several parameters",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running before-build command")

	url := cmd.String(fileFlag)
	if url == "" {
		logger.Error("Please specify the URL of the job file using the --file or -f flag.")
		return cli.Exit(cliExitStr, 1)
	}

	def, err := config.Load(ctx, url)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read job file %s: %s", url, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	applyFlags(cmd, def)

	env := maps.Clone(def.Env)
	if env == nil {
		env = make(map[string]string)
	}

	maps.Copy(env, cmd.StringMap(paramFlag))

	job := cmd.String(jobFlag)
	if job == "" {
		job = def.Name
	}

	fs := config.FsFactory()
	build := location.NewBuild(cmd.String(buildIDFlag), job, def.Node(fs), def.Workspace(), env)
	wrapper := copyfiles.NewWrapper(def.Configuration(), def.LocationController(fs))

	res, runErr := wrapper.BeforeBuild(ctx, build)

	defer func() {
		if err := wrapper.AfterBuild(ctx, build, res); err != nil {
			logger.Warn(fmt.Sprintf("Teardown failed: %s", err.Error()))
		}
	}()

	if out := cmd.String(outFlag); out != "" {
		if err := writeReport(afero.NewOsFs(), out, res); err != nil {
			logger.Error(fmt.Sprintf("Failed to write report to file %s: %s", out, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		logger.Info(fmt.Sprintf("Report written to %s", out))
	}

	if err := res.Outcomes.WriteText(cmd.Root().Writer); err != nil {
		logger.Error(fmt.Sprintf("Failed to write report: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if runErr != nil {
		logger.Error(fmt.Sprintf("Copy cancelled: %s", runErr.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if res.Outcomes.HasError() {
		logger.Warn("Some entries were not copied. See above for details.")
	}

	return nil
}

// applyFlags overrides the job file settings with the ones given on the command line.
func applyFlags(cmd *cli.Command, def *config.Definition) {
	if def.Controller == nil {
		def.Controller = &config.Controller{}
	}

	if def.Worker == nil {
		def.Worker = &config.Worker{}
	}

	override := func(dst *string, flag string) {
		if v := cmd.String(flag); v != "" {
			*dst = v
		}
	}

	override(&def.Controller.Home, homeFlag)
	override(&def.Controller.UserContent, userContentFlag)
	override(&def.Controller.JobsDir, jobsDirFlag)
	override(&def.Worker.Name, nodeFlag)
	override(&def.Worker.Workspace, workspaceFlag)
	override(&def.Worker.MountRoot, mountRootFlag)
}

// writeReport saves the outcomes in binary form. A failed close is reported, as the file may be truncated.
func writeReport(fs afero.Fs, name string, res *copyfiles.Environment) (err error) {
	f, err := fs.Create(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return res.Outcomes.WriteBinary(f)
}

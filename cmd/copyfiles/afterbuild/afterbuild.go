// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package afterbuild contains the teardown command.
package afterbuild

import (
	"context"

	"github.com/matt-FFFFFF/copyfiles/internal/copyfiles"
	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
	"github.com/matt-FFFFFF/copyfiles/internal/location"
	"github.com/urfave/cli/v3"
)

// AfterBuildCmd is the teardown hook. Copied files are left in place, so it always succeeds.
var AfterBuildCmd = &cli.Command{
	Name:  "after-build",
	Usage: "Run the post-build teardown. Nothing is removed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "build-id",
			Usage: "Identifier of the build",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		w := copyfiles.NewWrapper(copyfiles.Configuration{}, nil)
		b := location.NewBuild(cmd.String("build-id"), "", nil, "", nil)

		ctxlog.Debug(ctx, "teardown", "build", b.ID)

		return w.AfterBuild(ctx, b, nil)
	},
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copyfiles

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/copyfiles/internal/copier"
	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
	"github.com/matt-FFFFFF/copyfiles/internal/expand"
	"github.com/matt-FFFFFF/copyfiles/internal/location"
)

// ErrNoBuild is recorded when BeforeBuild is called without a build.
var ErrNoBuild = errors.New("no build given")

// Hook is called by the build pipeline around a build.
type Hook interface {
	// BeforeBuild runs before the build executes. The returned Environment is always usable.
	BeforeBuild(ctx context.Context, b *location.Build) (*Environment, error)
	// AfterBuild runs after the build, whatever its result.
	AfterBuild(ctx context.Context, b *location.Build, env *Environment) error
}

var _ Hook = (*Wrapper)(nil)

// Environment is what BeforeBuild leaves behind for the rest of the build.
type Environment struct {
	Resolved location.Resolved
	Outcomes copier.Outcomes
}

// Wrapper copies the configured files into the build before it runs.
type Wrapper struct {
	Config     Configuration
	Controller *location.Controller
	// Prefix tags every build log line. It defaults to ctxlog.DefaultBuildLogPrefix.
	Prefix string
}

// NewWrapper returns a Wrapper for cfg copying from controller.
func NewWrapper(cfg Configuration, controller *location.Controller) *Wrapper {
	return &Wrapper{
		Config:     cfg,
		Controller: controller,
		Prefix:     ctxlog.DefaultBuildLogPrefix,
	}
}

// BeforeBuild resolves the source and destination directories and copies every configured entry.
// Failures are logged and recorded in the returned Environment. The error is non-nil only when ctx
// is cancelled during the copy.
func (w *Wrapper) BeforeBuild(ctx context.Context, b *location.Build) (*Environment, error) {
	if b == nil {
		ctxlog.NewBuildLog(ctx, w.Prefix, "", "").Error("no build to copy into", "error", ErrNoBuild.Error())

		return &Environment{
			Outcomes: copier.Outcomes{{Kind: copier.KindUnresolvedDestination, Err: ErrNoBuild}},
		}, nil
	}

	log := ctxlog.NewBuildLog(ctx, w.Prefix, b.ID, b.Job)

	if err := w.Config.Validate(); err != nil {
		log.Warn("unrecognised configuration value, using the fallback", "error", err.Error())
	}

	resolver := location.NewResolver(w.Controller, log)
	env := &Environment{}

	res, err := resolver.Resolve(w.Config.source(), w.Config.destination(), b)
	env.Resolved = res

	if err != nil {
		log.Error("destination directory could not be resolved",
			"slaveRelativeTo", w.Config.SlaveRelativeTo().String(),
			"slaveFileDir", w.Config.SlaveFileDir(),
			"error", err.Error())

		env.Outcomes = copier.Outcomes{{
			Kind:   copier.KindUnresolvedDestination,
			Source: res.Source.String(),
			Err:    err,
		}}

		return env, nil
	}

	fileNames := expandList(w.Config.MasterFileName(), b.Env, log)

	outcomes, err := copier.CopyAll(ctx, res.Source, res.Destination, fileNames, log)
	env.Outcomes = outcomes

	if err != nil {
		log.Error("copy interrupted", "error", err.Error())
		return env, err
	}

	return env, nil
}

// AfterBuild does nothing and always succeeds, so the build can go on.
func (w *Wrapper) AfterBuild(_ context.Context, _ *location.Build, _ *Environment) error {
	return nil
}

// expandList expands every entry of a comma-separated list on its own,
// so an entry that fails to expand does not affect the others.
func expandList(list string, env map[string]string, log expand.Logger) string {
	entries := copier.SplitList(list)
	for i, e := range entries {
		entries[i] = expand.Expand(e, env, log)
	}

	return strings.Join(entries, ", ")
}

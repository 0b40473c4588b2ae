// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package location

import (
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/copyfiles/internal/dirpath"
	"github.com/matt-FFFFFF/copyfiles/internal/expand"
)

var (
	// ErrUnresolvedDestination is returned when no destination directory can be determined.
	ErrUnresolvedDestination = errors.New("destination directory could not be resolved")
	// ErrNoWorkspace is returned when the build has no workspace on its node.
	ErrNoWorkspace = errors.New("build has no workspace")
	// ErrNoNode is returned when the build is not running on any node.
	ErrNoNode = errors.New("build is not running on a node")
)

// Source describes where the files are taken from.
type Source struct {
	RelativeTo MasterRelativeTo
	Dir        string
}

// Destination describes where the files are copied to.
type Destination struct {
	RelativeTo SlaveRelativeTo
	Dir        string
}

// Resolved holds the concrete directories of one copy.
type Resolved struct {
	Source      dirpath.Path
	Destination dirpath.Path
}

// Resolver turns symbolic locations into directory handles for a build.
type Resolver struct {
	Controller *Controller
	// Log receives parameter expansion diagnostics. It may be nil.
	Log expand.Logger
}

// NewResolver returns a Resolver for the given controller.
func NewResolver(controller *Controller, log expand.Logger) *Resolver {
	if controller == nil {
		controller = &Controller{}
	}

	return &Resolver{Controller: controller, Log: log}
}

// ResolveSource returns the source directory on the controller.
//
// A symbolic base has the expanded Dir appended when it is not empty. Without a symbolic base the
// expanded Dir is taken as a literal path on the controller's local disk.
func (r *Resolver) ResolveSource(src Source, b *Build) dirpath.Path {
	dir := expand.Expand(src.Dir, b.Env, r.Log)

	var base dirpath.Path

	switch src.RelativeTo {
	case MasterUserContent:
		base = r.Controller.UserContent()
	case MasterHome:
		base = r.Controller.Home()
	case MasterWorkspace:
		base = r.Controller.JobWorkspace(b.Job)
	default:
		return r.Controller.LocalPath(dir)
	}

	if dir == "" {
		return base
	}

	return base.Child(dir)
}

// ResolveDestination returns the destination directory on the node executing the build.
// The error wraps ErrUnresolvedDestination.
func (r *Resolver) ResolveDestination(dst Destination, b *Build) (dirpath.Path, error) {
	switch dst.RelativeTo {
	case SlaveWorkspace:
		if b.Workspace.IsZero() {
			return dirpath.Path{}, errors.Join(ErrUnresolvedDestination, ErrNoWorkspace)
		}

		dir := expand.Expand(dst.Dir, b.Env, r.Log)
		if dir == "" {
			return b.Workspace, nil
		}

		return b.Workspace.Child(dir), nil
	case SlaveAnyDir:
		if b.Node == nil {
			return dirpath.Path{}, errors.Join(ErrUnresolvedDestination, ErrNoNode)
		}

		return b.Node.CreatePath(expand.Expand(dst.Dir, b.Env, r.Log)), nil
	default:
		return dirpath.Path{}, fmt.Errorf("%w: destination relative-to is %s", ErrUnresolvedDestination, dst.RelativeTo)
	}
}

// Resolve resolves both ends of a copy. The source is always resolved, even when the destination is not.
func (r *Resolver) Resolve(src Source, dst Destination, b *Build) (Resolved, error) {
	res := Resolved{Source: r.ResolveSource(src, b)}

	d, err := r.ResolveDestination(dst, b)
	if err != nil {
		return res, err
	}

	res.Destination = d

	return res, nil
}

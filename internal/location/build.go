// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package location

import (
	"maps"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/copyfiles/internal/dirpath"
)

// Parameters every build exposes unless the caller supplied a value.
const (
	EnvBuildID   = "BUILD_ID"
	EnvJobName   = "JOB_NAME"
	EnvNodeName  = "NODE_NAME"
	EnvWorkspace = "WORKSPACE"
)

// Build is a single execution of a job on a worker.
type Build struct {
	// ID identifies the build in logs.
	ID string
	// Job is the name of the job being built.
	Job string
	// Node is the worker executing the build. It may be nil before the build is scheduled.
	Node Node
	// Workspace is the build's working directory on Node.
	Workspace dirpath.Path
	// Env is the parameter snapshot used to expand configured strings.
	Env map[string]string
}

// NewBuild returns a build of job running on node in workspace.
// An empty id is replaced by a random one. Env gets the standard build parameters added.
func NewBuild(id, job string, node Node, workspace string, env map[string]string) *Build {
	if id == "" {
		id = uuid.NewString()
	}

	b := &Build{
		ID:   id,
		Job:  job,
		Node: node,
		Env:  maps.Clone(env),
	}

	if b.Env == nil {
		b.Env = make(map[string]string)
	}

	defaults := map[string]string{
		EnvBuildID: id,
		EnvJobName: job,
	}

	if node != nil {
		defaults[EnvNodeName] = node.Name()

		if workspace != "" {
			b.Workspace = node.CreatePath(workspace)
			defaults[EnvWorkspace] = workspace
		}
	}

	for k, v := range defaults {
		if _, ok := b.Env[k]; !ok {
			b.Env[k] = v
		}
	}

	return b
}

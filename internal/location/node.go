// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package location

import (
	"github.com/matt-FFFFFF/copyfiles/internal/dirpath"
	"github.com/spf13/afero"
)

// Node is a worker that executes builds.
type Node interface {
	// Name identifies the node in logs.
	Name() string
	// CreatePath returns path as seen by the node.
	CreatePath(path string) dirpath.Path
}

var _ Node = (*FsNode)(nil)

// FsNode is a worker whose filesystem is reachable through an afero.Fs.
type FsNode struct {
	name string
	fs   afero.Fs
}

// NewLocalNode returns a node backed by fs, typically the OS filesystem when the build runs
// on the same machine as the copy.
func NewLocalNode(name string, fs afero.Fs) *FsNode {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &FsNode{name: name, fs: fs}
}

// NewMountedNode returns a node whose root filesystem is mounted below mountRoot on fs,
// for example through sshfs or an NFS export. Paths are given as the node sees them.
func NewMountedNode(name string, fs afero.Fs, mountRoot string) *FsNode {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &FsNode{name: name, fs: afero.NewBasePathFs(fs, mountRoot)}
}

// Name implements Node.
func (n *FsNode) Name() string {
	return n.name
}

// CreatePath implements Node.
func (n *FsNode) CreatePath(path string) dirpath.Path {
	return dirpath.New(n.fs, n.name, path)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
)

// DefaultBuildLogPrefix tags every line written through a BuildLog unless overridden.
const DefaultBuildLogPrefix = "[copy-files]"

// BuildLog is a log sink attributed to a single build.
// Every message carries the prefix, so the lines can be filtered out of a shared build log.
type BuildLog struct {
	logger *slog.Logger
	prefix string
}

// NewBuildLog returns a BuildLog using the logger found in ctx.
// The build and job identifiers are attached to every line.
func NewBuildLog(ctx context.Context, prefix, buildID, job string) *BuildLog {
	if prefix == "" {
		prefix = DefaultBuildLogPrefix
	}

	logger := Logger(ctx).With("build", buildID)
	if job != "" {
		logger = logger.With("job", job)
	}

	return &BuildLog{
		logger: logger,
		prefix: prefix,
	}
}

// Prefix returns the tag prepended to every message.
func (b *BuildLog) Prefix() string {
	return b.prefix
}

// Info writes an informational line.
func (b *BuildLog) Info(msg string, args ...any) {
	b.logger.Info(b.prefix+" "+msg, args...)
}

// Warn writes a warning line.
func (b *BuildLog) Warn(msg string, args ...any) {
	b.logger.Warn(b.prefix+" "+msg, args...)
}

// Error writes an error line.
func (b *BuildLog) Error(msg string, args ...any) {
	b.logger.Error(b.prefix+" "+msg, args...)
}

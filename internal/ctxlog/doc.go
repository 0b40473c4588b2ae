// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler to format the log messages in a human-readable way.
// BuildLog wraps a logger with a build identity and a filterable message prefix, so that
// lines belonging to a single build can be picked out of a shared log.
package ctxlog

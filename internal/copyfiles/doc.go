// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package copyfiles copies configured files from the build controller to the worker before a build runs.
//
// Wrapper implements Hook, a before/after pair that whatever owns the build pipeline calls around
// the build. Copy problems never fail the build: they are written to the build log and returned as
// outcomes in the Environment. Only cancellation of the context is returned as an error.
package copyfiles

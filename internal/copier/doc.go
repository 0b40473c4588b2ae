// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package copier copies a comma-separated list of entries from one directory handle to another.
//
// Every entry is copied on its own and produces its own Outcome. A failing entry is logged and
// recorded, then the batch moves on to the next one, so the caller always gets a complete report.
// The only thing that stops a batch early is cancellation of the context.
package copier

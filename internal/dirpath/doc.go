// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dirpath provides Path, a directory handle bound to a filesystem and the host it lives on.
//
// A Path may point at the local disk, at a worker node's filesystem mounted on the controller,
// or at an in-memory filesystem in tests. The only operations the copy machinery needs are an
// existence check and a pattern-driven recursive copy into another Path, which may be bound to a
// different filesystem.
package dirpath

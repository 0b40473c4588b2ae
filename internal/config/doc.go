// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config reads job definitions.
//
// A job definition holds the copy setup of a job together with the controller, worker and
// build settings that the command line does not supply. Definitions may be written in HCL,
// YAML or TOML; the format is chosen by file extension. Local files are read through
// FsFactory, anything else is fetched with go-getter.
package config

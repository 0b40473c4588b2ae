// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pelletier/go-toml/v2"
)

// ErrEncodeExample is returned when the example job file cannot be rendered.
var ErrEncodeExample = errors.New("failed to encode example job file")

// ExampleDefinition returns a job definition showing every setting.
func ExampleDefinition() *Definition {
	return &Definition{
		Name:        "nightly-report",
		Description: "Copy the shared report templates into the build workspace.",
		CopyFiles: CopyFiles{
			MasterFileDir:    "templates/$JOB_NAME",
			MasterFileName:   "summary.html, css/**, images/",
			SlaveFileDir:     "reports",
			MasterRelativeTo: "UserContent",
			SlaveRelativeTo:  "SlaveWorkspace",
		},
		Controller: &Controller{
			Name:        "controller",
			Home:        "/var/lib/ci",
			UserContent: "/var/lib/ci/userContent",
			JobsDir:     "/var/lib/ci/jobs",
		},
		Worker: &Worker{
			Name:      "worker-1",
			Workspace: "/home/ci/workspace/nightly-report",
			MountRoot: "/mnt/worker-1",
		},
		Env: map[string]string{
			"REPORT_KIND": "nightly",
		},
	}
}

// Example renders ExampleDefinition in the given format.
func Example(f Format) ([]byte, error) {
	def := ExampleDefinition()

	switch f {
	case FormatHCL:
		file := hclwrite.NewEmptyFile()
		gohcl.EncodeIntoBody(def, file.Body())

		return file.Bytes(), nil
	case FormatYAML:
		b, err := yaml.Marshal(def)
		if err != nil {
			return nil, errors.Join(ErrEncodeExample, err)
		}

		return b, nil
	case FormatTOML:
		b, err := toml.Marshal(def)
		if err != nil {
			return nil, errors.Join(ErrEncodeExample, err)
		}

		return b, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copyfiles

import (
	"testing"

	"github.com/matt-FFFFFF/copyfiles/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration(t *testing.T) {
	c := NewConfiguration("  reports ", " summary.html, b/*.log ", " out ", "Home", "SlaveWorkspace")

	require.NoError(t, c.Validate())
	assert.Equal(t, "reports", c.MasterFileDir())
	assert.Equal(t, "summary.html, b/*.log", c.MasterFileName())
	assert.Equal(t, "out", c.SlaveFileDir())
	assert.Equal(t, location.MasterHome, c.MasterRelativeTo())
	assert.Equal(t, location.SlaveWorkspace, c.SlaveRelativeTo())
}

func TestNewConfiguration_Fallbacks(t *testing.T) {
	c := NewConfiguration("/srv", "a", "", "Somewhere", "Nowhere")

	assert.Equal(t, location.MasterOther, c.MasterRelativeTo())
	assert.Equal(t, location.SlaveUnspecified, c.SlaveRelativeTo())

	err := c.Validate()
	require.ErrorIs(t, err, location.ErrUnknownRelativeTo)
	assert.Contains(t, err.Error(), "Somewhere")
	assert.Contains(t, err.Error(), "Nowhere")

	blank := NewConfiguration("/srv", "a", "", "", "")
	require.NoError(t, blank.Validate())
	assert.Equal(t, location.MasterOther, blank.MasterRelativeTo())
}

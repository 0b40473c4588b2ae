// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package expand

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Warn(msg string, args ...any) {
	r.lines = append(r.lines, fmt.Sprint(append([]any{msg}, args...)...))
}

func TestString(t *testing.T) {
	env := map[string]string{
		"WORKSPACE": "/work/job1",
		"JOB_NAME":  "job1",
		"BRANCH":    "main",
		"EMPTY":     "",
	}

	testCases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "no placeholders", in: "reports/summary.html", want: "reports/summary.html"},
		{name: "braced", in: "${WORKSPACE}/out", want: "/work/job1/out"},
		{name: "bare", in: "$WORKSPACE/out", want: "/work/job1/out"},
		{name: "bare followed by dash", in: "/cache/$JOB_NAME-$BRANCH", want: "/cache/job1-main"},
		{name: "empty value", in: "a${EMPTY}b", want: "ab"},
		{name: "escaped dollar", in: "price$$5", want: "price$5"},
		{name: "escaped placeholder", in: "$${WORKSPACE}", want: "${WORKSPACE}"},
		{name: "lone dollar", in: "a $ b", want: "a $ b"},
		{name: "trailing dollar", in: "dir$", want: "dir$"},
		{name: "directive is literal", in: "%{if}x/$JOB_NAME", want: "%{if}x/job1"},
		{name: "unknown parameter kept", in: "${NOPE}/x", want: "${NOPE}/x"},
		{name: "unknown bare parameter kept", in: "$NOPE/x", want: "$NOPE/x"},
		{name: "known and unknown", in: "${WORKSPACE}/cache$UNSET", want: "/work/job1/cache$UNSET"},
		{name: "list with unknown entry", in: "${WORKSPACE}/a.txt, $OTHER.log", want: "/work/job1/a.txt, $OTHER.log"},
		{name: "unknown braced then known bare", in: "${NOPE}-$BRANCH", want: "${NOPE}-main"},
		{name: "malformed placeholder", in: "${WORKSPACE", wantErr: true},
		{name: "function call", in: "${upper(JOB_NAME)}", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := String(tc.in, env)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrExpansion)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpand_FallsBackToOriginal(t *testing.T) {
	log := &recordingLogger{}

	got := Expand("${JOB_NAME/reports", map[string]string{"JOB_NAME": "job1"}, log)
	assert.Equal(t, "${JOB_NAME/reports", got)
	require.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "${JOB_NAME/reports")
	assert.Contains(t, log.lines[0], "failed to resolve parameters")
}

func TestExpand_Success(t *testing.T) {
	log := &recordingLogger{}

	got := Expand("$HOME_DIR/x", map[string]string{"HOME_DIR": "/ctrl"}, log)
	assert.Equal(t, "/ctrl/x", got)
	assert.Empty(t, log.lines)
}

func TestExpand_UnknownLeftInPlace(t *testing.T) {
	log := &recordingLogger{}

	got := Expand("${WORKSPACE}/cache$UNSET", map[string]string{"WORKSPACE": "/work/job1"}, log)
	assert.Equal(t, "/work/job1/cache$UNSET", got)
	assert.Empty(t, log.lines)
}

func TestExpand_NilLogger(t *testing.T) {
	assert.Equal(t, "${X", Expand("${X", nil, nil))
}

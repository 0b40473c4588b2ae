// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
)

// ForcedExitCode is the process exit code used when a second signal arrives.
const ForcedExitCode = 130

// exitFunc terminates the process.
var exitFunc = os.Exit

// Watch reads sigCh until it is closed.
// The first signal cancels the context. Any further signal terminates the process with ForcedExitCode.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	received := false

	for sig := range sigCh {
		if received {
			ctxlog.Logger(ctx).Error("watchdog", "detail", "received second signal, forcefully terminating", "signal", sig.String())
			exitFunc(ForcedExitCode)

			return
		}

		ctxlog.Logger(ctx).Warn("watchdog", "detail", "received signal, cancelling", "signal", sig.String())

		received = true

		cancel()
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS signals that should stop the process.
// By default it listens for os.Interrupt, syscall.SIGINT, syscall.SIGTERM and syscall.SIGQUIT.
//
// Watch turns the first signal into a context cancellation, so an in-flight copy stops cleanly,
// and exits the process on the second.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/copyfiles/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a channel that receives the given signals, or the termination signals if none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops delivery of signals to ch and closes it, which ends Watch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
	close(ch)
}

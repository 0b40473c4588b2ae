// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

const (
	// TimeFormat is the format used for timestamps in log messages.
	TimeFormat = "[15:04:05.000]"
	// noColorEnv disables colour output when set to any value.
	noColorEnv = "NO_COLOR"
)

var (
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	fatalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

var jsonFormatter = colorjson.NewFormatter()

func init() {
	jsonFormatter.Indent = 0
	jsonFormatter.DisabledColor = !term.IsTerminal(int(os.Stderr.Fd()))
}

// PrettyHandler is a custom slog handler that formats log messages to the console in a pretty way.
// Attributes are rendered by an inner JSON handler and then re-formatted.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	colour           bool
	outputEmptyAttrs bool
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	c.h = h.h.WithAttrs(attrs)

	return c
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := h.clone()
	c.h = h.h.WithGroup(name)

	return c
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		h:                h.h,
		r:                h.r,
		b:                h.b,
		m:                h.m,
		writer:           h.writer,
		colour:           h.colour,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	if err := json.Unmarshal(h.b.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

func (h *PrettyHandler) paint(s string, style lipgloss.Style) string {
	if !h.colour {
		return s
	}

	return style.Render(s)
}

func levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l <= slog.LevelDebug:
		return debugStyle
	case l <= slog.LevelInfo:
		return infoStyle
	case l < slog.LevelError:
		return warnStyle
	case l <= slog.LevelError+1:
		return errorStyle
	default:
		return fatalStyle
	}
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	replace := func(a slog.Attr) slog.Attr {
		if h.r == nil {
			return a
		}

		return h.r(nil, a)
	}

	out := strings.Builder{}

	if a := replace(slog.String(slog.TimeKey, r.Time.Format(TimeFormat))); !a.Equal(slog.Attr{}) {
		out.WriteString(h.paint(a.Value.String(), faintStyle))
		out.WriteString(" ")
	}

	if a := replace(slog.Any(slog.LevelKey, r.Level)); !a.Equal(slog.Attr{}) {
		out.WriteString(h.paint(a.Value.String()+":", levelStyle(r.Level)))
		out.WriteString(" ")
	}

	if a := replace(slog.String(slog.MessageKey, r.Message)); !a.Equal(slog.Attr{}) {
		out.WriteString(h.paint(a.Value.String(), messageStyle))
		out.WriteString(" ")
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	if h.outputEmptyAttrs || len(attrs) > 0 {
		attrsAsBytes, err := jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		out.Write(attrsAsBytes)
	}

	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// suppressDefaults stops the inner JSON handler from emitting the keys we print ourselves.
func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewPrettyHandler creates a new PrettyHandler with the given options.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:      handlerOptions.ReplaceAttr,
		m:      &sync.Mutex{},
		writer: os.Stderr,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables color output for the PrettyHandler.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables colour when stderr is a terminal and NO_COLOR is unset.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		_, noColour := os.LookupEnv(noColorEnv)
		h.colour = !noColour && term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// WithOutputEmptyAttrs enables output of empty attributes for the PrettyHandler.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}

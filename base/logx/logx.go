// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog handler and user log level,
// with terminal colors for the level of each message.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the -v and -q command line flags. It defaults to
// [slog.LevelInfo], except for debug builds (Debug) and
// release builds (Warn).
var UserLevel = defaultUserLevel

// Handler is a [slog.Handler] writing text records in which the
// message is colored according to its level. Colors are only emitted
// when the output is a terminal that supports them.
type Handler struct {
	slog.Handler
	out *termenv.Output
}

// NewHandler returns a new [Handler] writing to w,
// showing records at or above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		out:     termenv.NewOutput(w),
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	r.Message = h.out.String(r.Message).Foreground(h.LevelColor(r.Level)).String()
	return h.Handler.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), out: h.out}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), out: h.out}
}

// LevelColor returns the terminal color used for messages at the given level.
func (h *Handler) LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return h.out.Color("1")
	case level >= slog.LevelWarn:
		return h.out.Color("3")
	case level >= slog.LevelInfo:
		return h.out.Color("2")
	default:
		return h.out.Color("4")
	}
}

// SetDefault installs a [Handler] writing to stderr at [UserLevel]
// as the default slog logger.
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

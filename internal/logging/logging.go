// Package logging provides the process-wide structured logger for
// cmd/lnk2json. Adapted from the teacher's cmd/hiveexplorer/logger
// package: same disabled-by-default io.Discard handler and Init(Options)
// entry point, minus the date-rotated log-file machinery, which a
// one-shot CLI dumper has no long-running session to need. Output goes
// to stderr so stdout stays reserved for the JSON document.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// L is the package logger. Discards everything until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool
	Level   slog.Level
}

// Init configures L. Call once from main before any decode work.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level}))
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used throughout shopsync.
//
// The Logger type embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger. Code that runs inside a request or sync cycle should
// obtain its logger via FromContext so per-operation fields are preserved.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// upstream API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout for the given role
// label (e.g. "devserver"). Every entry carries the role, a timestamp and the
// fully-qualified caller function name under "func".
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger is like NewLogger but writes to a "logs" file next to the
// executable, falling back to stdout when the file cannot be opened. The
// client binary owns the terminal, so its log stream goes to disk.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	logger := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest extracts the request-scoped logger attached by HTTP middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx by zerolog's WithContext.
// If none is attached zerolog falls back to its global logger, so the result
// is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Copyright (c) 2026 Groqscribe Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

// In this file: logging and tracing initialisation.

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/rusq/tracer"
)

// initLog initialises logging and returns the logger and a stop function
// that must be called in a deferred call; it closes the log file if one was
// opened.  Log output goes to stderr by default: with the stdio transport,
// stdout carries the MCP protocol stream and must stay clean.
func initLog(filename string, jsonHandler bool, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if jsonHandler {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	stop := func() {}

	if filename != "" {
		lf, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create the log file: %w", err)
		}
		log.SetOutput(lf) // redirect the standard log to the file just in case, panics will be logged there.
		if jsonHandler {
			h = slog.NewJSONHandler(lf, opts)
		} else {
			h = slog.NewTextHandler(lf, opts)
		}
		stop = func() {
			if err := lf.Close(); err != nil {
				slog.Error("failed to close the log file", "error", err)
			}
		}
	}

	lg := slog.New(h)
	slog.SetDefault(lg)
	return lg, stop, nil
}

// initTrace initialises execution tracing.  If the filename is not empty,
// the file will be opened and the trace written to it.  Returns the stop
// function that must be called in the deferred call.
func initTrace(filename string) (stop func()) {
	stop = func() {}
	if filename == "" {
		return
	}

	slog.Info("trace will be written to", "filename", filename)

	trc := tracer.New(filename)
	if err := trc.Start(); err != nil {
		slog.Warn("failed to start the trace", "filename", filename, "error", err)
		return
	}

	stop = func() {
		if err := trc.End(); err != nil {
			slog.Warn("failed to write the trace file", "filename", filename, "error", err)
		}
	}
	return
}

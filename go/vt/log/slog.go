/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structured is set once records go to slog instead of glog.
	structured atomic.Bool
)

// Init switches to structured logging when --log-fmt was given on fs.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	f := fs.Lookup("log-fmt")
	if f == nil || !f.Changed {
		return nil
	}
	return Configure(os.Stderr, logFormat, logLevel)
}

// Configure sends every further record to a slog handler writing format
// (json or logfmt) to w, dropping records below level.
func Configure(w io.Writer, format, level string) error {
	lvl, err := slogLevel(level)
	if err != nil {
		return err
	}
	handler, err := slogHandler(w, format, &slog.HandlerOptions{AddSource: true, Level: lvl})
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	structured.Store(true)
	return nil
}

func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn or error", level)
}

func slogHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt", "text":
		return slog.NewTextHandler(w, opts), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
}

// logS emits msg through slog when structured logging is on and through
// glog otherwise. depth counts the callers above the exported wrapper.
func logS(level slog.Level, depth int, msg string, args ...any) {
	if !structured.Load() {
		logGlog(level, depth, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// skip runtime.Callers, logS and the wrapper
	var pcs [1]uintptr
	runtime.Callers(depth+3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// Enabled reports whether a record at level would be emitted. Without
// structured logging, debug records need glog verbosity 1.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

func logGlog(level slog.Level, depth int, msg string, args ...any) {
	depth += 3
	args = append([]any{msg}, args...)

	switch {
	case level < slog.LevelInfo:
		if glog.V(1) {
			glog.InfoDepth(depth, args...)
		}
	case level < slog.LevelWarn:
		glog.InfoDepth(depth, args...)
	case level < slog.LevelError:
		glog.WarningDepth(depth, args...)
	default:
		glog.ErrorDepth(depth, args...)
	}
}

// InfoS logs at the Info level.
func InfoS(msg string, args ...any) {
	logS(slog.LevelInfo, 0, msg, args...)
}

// WarnS logs at the Warn level.
func WarnS(msg string, args ...any) {
	logS(slog.LevelWarn, 0, msg, args...)
}

// DebugS logs at the Debug level.
func DebugS(msg string, args ...any) {
	logS(slog.LevelDebug, 0, msg, args...)
}

// ErrorS logs at the Error level.
func ErrorS(msg string, args ...any) {
	logS(slog.LevelError, 0, msg, args...)
}

// SetLogger routes records to logger until the returned function is called.
// Used for testing.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	prevStructured := structured.Load()
	prevDefault := slog.Default()

	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(prevDefault)
		structured.Store(prevStructured)
	}
}

/*
Copyright 2026 The rflx Authors.

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
// Records are written to stderr.
func Init(fs *pflag.FlagSet) error {
	return initTo(fs, os.Stderr)
}

func initTo(fs *pflag.FlagSet, w io.Writer) error {
	if fs == nil {
		return nil
	}
	f := fs.Lookup("log-fmt")
	if f == nil || !f.Changed {
		return nil
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	handler, err := newHandler(w, logFormat, &slog.HandlerOptions{AddSource: true, Level: level})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	structured.Store(true)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", s)
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt", "text":
		return slog.NewTextHandler(w, opts), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
}

// Enabled reports whether a record at level would be written.
// Without structured logging, debug records need glog -v=1.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return V(1)
	}
	return true
}

// emit skips emit itself plus the exported wrapper when attributing source.
func emit(level slog.Level, msg string, args ...any) {
	if !structured.Load() {
		toGlog(level, msg, args)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}

func toGlog(level slog.Level, msg string, args []any) {
	const depth = 3
	line := glogLine(msg, args)
	switch {
	case level >= slog.LevelError:
		glog.ErrorDepth(depth, line)
	case level >= slog.LevelWarn:
		glog.WarningDepth(depth, line)
	case level < slog.LevelInfo:
		if V(1) {
			glog.InfoDepth(depth, line)
		}
	default:
		glog.InfoDepth(depth, line)
	}
}

// glogLine renders a structured call as one glog message: msg followed by
// key=value pairs. A trailing key without a value is printed alone.
func glogLine(msg string, args []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(args); i++ {
		b.WriteByte(' ')
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			fmt.Fprintf(&b, "%s=%v", key, args[i+1])
			i++
			continue
		}
		fmt.Fprint(&b, args[i])
	}
	return b.String()
}

// DebugS logs msg and key/value args at debug level.
func DebugS(msg string, args ...any) { emit(slog.LevelDebug, msg, args...) }

// InfoS logs msg and key/value args at info level.
func InfoS(msg string, args ...any) { emit(slog.LevelInfo, msg, args...) }

// WarnS logs msg and key/value args at warn level.
func WarnS(msg string, args ...any) { emit(slog.LevelWarn, msg, args...) }

// ErrorS logs msg and key/value args at error level.
func ErrorS(msg string, args ...any) { emit(slog.LevelError, msg, args...) }

// SetLogger routes structured records to logger until the returned
// function is called. Used by tests.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}
	prevEnabled := structured.Load()
	prevDefault := slog.Default()

	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(prevDefault)
		structured.Store(prevEnabled)
	}
}

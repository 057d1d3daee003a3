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

// Package log wraps glog for the rflx tools and adds optional structured
// output through slog.
//
// glog stays the default sink and keeps its own flags. Structured records
// replace it only after --log-fmt has been set on the command line.
package log

import (
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"rflx.io/rflx/go/utils"
)

// Flush writes any buffered glog output.
var Flush = glog.Flush

// V reports whether glog verbosity is at least level.
func V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

// RegisterFlags adds the logging flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	maxSize := &rotateSize{val: strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10)}
	utils.SetFlagVar(fs, maxSize, "log-rotate-max-size", "size in bytes at which glog files are rotated")

	utils.SetFlagStringVar(fs, &logFormat, "log-fmt", "json", "structured log format: json or logfmt; setting it switches output from glog to slog")
	utils.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured log level: debug, info, warn or error")
}

// rotateSize is a pflag.Value over glog.MaxSize, which glog reads atomically.
type rotateSize struct {
	val string
}

var _ pflag.Value = (*rotateSize)(nil)

func (r *rotateSize) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	atomic.StoreUint64(&glog.MaxSize, n)
	r.val = s
	return nil
}

func (r *rotateSize) String() string { return r.val }

func (r *rotateSize) Type() string { return "uint64" }

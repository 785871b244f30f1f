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

// Package log routes the few log records unitext emits through glog, or
// through slog once a structured format is configured.
//
// The text engine never logs on its comparison and search paths. Records
// come from the command line tool and from one-time setup such as building
// a collator for a locale.
package log

import (
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"vitess.io/unitext/go/vt/utils"
)

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

// RegisterFlags installs the log flags on fs. glog's own flags (-v,
// -logtostderr, ...) live on the standard flag set and are added by the
// caller.
func RegisterFlags(fs *pflag.FlagSet) {
	maxSize := &rotateSize{val: strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10)}
	utils.SetFlagVar(fs, maxSize, "log-rotate-max-size", "size in bytes at which glog files are rotated")

	utils.SetFlagStringVar(fs, &logFormat, "log-fmt", "json", "structured log format: json or logfmt (glog is used when unset)")
	utils.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured log level: debug, info, warn or error")
}

// rotateSize is a pflag.Value over glog.MaxSize.
type rotateSize struct {
	val string
}

func (rs *rotateSize) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	atomic.StoreUint64(&glog.MaxSize, n)
	rs.val = s
	return nil
}

func (rs *rotateSize) String() string {
	return rs.val
}

func (rs *rotateSize) Type() string {
	return "uint64"
}

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

// Package utils registers command line flags with dashed names.
package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

// Warnings receives the notices printed for flag names spelled with
// underscores.
var Warnings io.Writer = os.Stderr

// glogFlags keep their underscored names; glog registers them that way.
var glogFlags = map[string]bool{
	"log_dir":          true,
	"log_link":         true,
	"log_backtrace_at": true,
}

// flagVariants returns name spelled with underscores and with dashes.
func flagVariants(name string) (underscored, dashed string) {
	prefix := ""
	if strings.HasPrefix(name, "--") {
		prefix, name = "--", strings.TrimPrefix(name, "--")
	}
	return prefix + strings.ReplaceAll(name, "-", "_"), prefix + strings.ReplaceAll(name, "_", "-")
}

func setFlagVar[T any](fs *pflag.FlagSet, p *T, name string, def T, usage string,
	setFunc func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	_, dashed := flagVariants(name)
	if dashed != name {
		fmt.Fprintf(Warnings, "[WARNING] flag %q registered as %q: use dashes in flag names\n", name, dashed)
	}
	setFunc(fs, p, dashed, def, usage)
}

func SetFlagIntVar(fs *pflag.FlagSet, p *int, name string, def int, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).IntVar)
}

func SetFlagBoolVar(fs *pflag.FlagSet, p *bool, name string, def bool, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).BoolVar)
}

func SetFlagStringVar(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringVar)
}

// SetFlagVar registers a flag implementing pflag.Value under its dashed name.
func SetFlagVar(fs *pflag.FlagSet, value pflag.Value, name, usage string) {
	_, dashed := flagVariants(name)
	if dashed != name {
		fmt.Fprintf(Warnings, "[WARNING] flag %q registered as %q: use dashes in flag names\n", name, dashed)
	}
	fs.Var(value, dashed, usage)
}

var (
	warnedMu sync.Mutex
	warned   = make(map[string]bool)
)

// NormalizeUnderscoresToDashes is a pflag normalization function accepting
// --input_encoding for --input-encoding. A deprecation notice is printed
// once per spelling.
func NormalizeUnderscoresToDashes(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if glogFlags[name] || !strings.Contains(name, "_") || strings.Contains(name, "-") {
		return pflag.NormalizedName(name)
	}

	_, dashed := flagVariants(name)

	warnedMu.Lock()
	defer warnedMu.Unlock()
	if !warned[name] {
		warned[name] = true
		fmt.Fprintf(Warnings, "Flag --%s has been deprecated, use --%s instead\n", name, dashed)
	}
	return pflag.NormalizedName(dashed)
}

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

// Package utils holds test helpers shared by the text packages.
package utils

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// MustMatchFn returns a helper that diffs want and got and fails the test on
// any difference. Unexported fields are compared, nil and empty slices are
// equal, and fields whose cmp path is listed in ignored (".length") are
// skipped.
func MustMatchFn(ignored ...string) func(t testing.TB, want, got any, msg ...any) {
	opts := []cmp.Option{
		cmp.Exporter(func(reflect.Type) bool { return true }),
		cmpopts.EquateEmpty(),
		ignorePaths(ignored),
	}
	return func(t testing.TB, want, got any, msg ...any) {
		t.Helper()
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", fmt.Sprint(msg...), diff)
		}
	}
}

// MustMatch diffs with no ignored fields.
var MustMatch = MustMatchFn()

func ignorePaths(names []string) cmp.Option {
	skip := make(map[string]bool, len(names))
	for _, name := range names {
		skip[name] = true
	}
	return cmp.FilterPath(func(p cmp.Path) bool {
		return slices.ContainsFunc(p, func(ps cmp.PathStep) bool {
			return skip[ps.String()]
		})
	}, cmp.Ignore())
}

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

package utils

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

const (
	leakAttempts = 5
	leakBackoff  = 100 * time.Millisecond
)

// glog starts its flush daemons on first use; they run for the life of the
// process.
var ignoredGoroutines = []goleak.Option{
	goleak.IgnoreTopFunction("github.com/golang/glog.(*fileSink).flushDaemon"),
	goleak.IgnoreTopFunction("github.com/golang/glog.(*loggingT).flushDaemon"),
	goleak.IgnoreTopFunction("testing.tRunner.func1"),
}

// EnsureNoLeaks fails t when goroutines are left running. Failed tests are
// not checked.
func EnsureNoLeaks(t testing.TB) {
	if t.Failed() {
		return
	}
	if err := GetLeaks(); err != nil {
		t.Fatal(err)
	}
}

// CheckLeaks runs EnsureNoLeaks once t and its subtests are done.
func CheckLeaks(t testing.TB) {
	t.Cleanup(func() {
		EnsureNoLeaks(t)
	})
}

// GetLeaks returns an error describing the goroutines still running, retrying
// for a short while so that goroutines on their way out can finish. Meant for
// TestMain.
func GetLeaks() error {
	var err error
	for range leakAttempts {
		if err = goleak.Find(ignoredGoroutines...); err == nil {
			return nil
		}
		time.Sleep(leakBackoff)
	}
	return err
}

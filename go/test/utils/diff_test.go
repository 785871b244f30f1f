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
)

type span struct {
	Offset int
	length int
}

func TestMustMatch(t *testing.T) {
	MustMatch(t, []span{{1, 2}}, []span{{1, 2}}, "identical spans")
	MustMatch(t, []int(nil), []int{}, "nil and empty")

	ignoreLength := MustMatchFn(".length")
	ignoreLength(t, span{Offset: 3, length: 1}, span{Offset: 3, length: 9}, "length is ignored")
}

func TestNoLeaks(t *testing.T) {
	EnsureNoLeaks(t)
	if err := GetLeaks(); err != nil {
		t.Fatal(err)
	}
}

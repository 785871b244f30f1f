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

// unitext compares, searches, matches, hashes and segments Unicode text from
// the command line.
package main

import (
	"flag"
	"os"

	"vitess.io/unitext/go/cmd/unitext/command"
	"vitess.io/unitext/go/vt/log"
)

func main() {
	root := command.NewRoot()

	// glog registers its flags on the standard flag set.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// hack to get rid of an "ERROR: logging before flag.Parse"
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := root.Execute(); err != nil {
		log.ErrorS("command failed", "err", err)
		log.Flush()
		os.Exit(1)
	}
}

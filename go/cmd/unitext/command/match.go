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

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (u *unitext) newMatch() *cobra.Command {
	return &cobra.Command{
		Use:   "match <text> <pattern>",
		Short: "Reports whether text matches the wildcard pattern.",
		Long: `Reports whether text matches the wildcard pattern.

'?' matches one codepoint, '*' any run of codepoints and '[...]' one codepoint
of a class, with '!' negating it and '-' forming ranges. The pattern must
cover the whole text.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE:                  u.commandMatch,
	}
}

func (u *unitext) commandMatch(cmd *cobra.Command, args []string) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.engine.WildcardMatch(texts[0], texts[1], u.opt))
	return nil
}

func (u *unitext) newHash() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <text>...",
		Short: "Prints the 32-bit and 64-bit hashes of each text.",
		Long: `Prints the 32-bit and 64-bit hashes of each text.

Texts that compare equal under --option hash to the same values, whatever
their storage.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		RunE:                  u.commandHash,
	}
}

func (u *unitext) commandHash(cmd *cobra.Command, args []string) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, t := range texts {
		fmt.Fprintf(out, "%08x %016x %s\n", u.engine.Hash(t, u.opt), u.engine.Hash64(t, u.opt), args[i])
	}
	return nil
}

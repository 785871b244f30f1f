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
	"unicode/utf8"

	"github.com/spf13/cobra"

	"vitess.io/unitext/go/text/textcmp"
	"vitess.io/unitext/go/vt/utils"
)

type searchOptions struct {
	Offset int
	Length int
	Last   bool
	Char   bool
}

func (o *searchOptions) within() textcmp.Range {
	return textcmp.Range{Offset: o.Offset, Length: o.Length}
}

func registerRangeFlags(cmd *cobra.Command, o *searchOptions) {
	utils.SetFlagIntVar(cmd.Flags(), &o.Offset, "offset", 0, "Unit offset where the searched range starts.")
	utils.SetFlagIntVar(cmd.Flags(), &o.Length, "length", -1, "Length in units of the searched range; negative to search to the end.")
}

func (u *unitext) newFind() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "find [--offset N] [--length N] [--last] [--char] <text> <needle>",
		Short: "Prints the unit offset and length of the first occurrence of needle in text, or -1.",
		Long: `Prints the unit offset and length of the first occurrence of needle in text, or -1.

The matched length may differ from the needle's when --option normalizes.
--last prints the offset of the last occurrence in the whole text instead.
--char searches for the single codepoint given as needle.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return u.commandFind(cmd, args, opts)
		},
	}
	registerRangeFlags(cmd, opts)
	utils.SetFlagBoolVar(cmd.Flags(), &opts.Last, "last", false, "Find the last occurrence.")
	utils.SetFlagBoolVar(cmd.Flags(), &opts.Char, "char", false, "Treat the needle as a single codepoint.")
	return cmd
}

func (u *unitext) commandFind(cmd *cobra.Command, args []string, opts *searchOptions) error {
	t, err := u.text(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if opts.Char {
		r, size := utf8.DecodeRuneInString(args[1])
		if size == 0 || size != len(args[1]) || (r == utf8.RuneError && size == 1) {
			return fmt.Errorf("--char needs exactly one codepoint, got %q", args[1])
		}
		if opts.Last {
			fmt.Fprintln(out, u.engine.LastIndexOfChar(t, r, u.opt))
		} else {
			fmt.Fprintln(out, u.engine.FirstIndexOfChar(t, r, u.opt))
		}
		return nil
	}

	needle, err := u.text(args[1])
	if err != nil {
		return err
	}
	if opts.Last {
		fmt.Fprintln(out, u.engine.LastIndexOf(t, needle, u.opt))
		return nil
	}

	found, ok := u.engine.Find(t, opts.within(), needle, u.opt)
	if !ok {
		fmt.Fprintln(out, -1)
		return nil
	}
	fmt.Fprintf(out, "%d %d\n", found.Offset, found.Length)
	return nil
}

func (u *unitext) newCount() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:                   "count [--offset N] [--length N] <text> <needle>",
		Short:                 "Prints the number of non-overlapping occurrences of needle in text.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return u.commandCount(cmd, args, opts)
		},
	}
	registerRangeFlags(cmd, opts)
	return cmd
}

func (u *unitext) commandCount(cmd *cobra.Command, args []string, opts *searchOptions) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.engine.Count(texts[0], opts.within(), texts[1], u.opt))
	return nil
}

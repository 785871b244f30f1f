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

func (u *unitext) newCompare() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Prints -1, 0 or 1 as a sorts before, equal to or after b in codepoint order.",
		Long: `Prints -1, 0 or 1 as a sorts before, equal to or after b in codepoint order.

The texts are compared after the transformations selected with --option.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE:                  u.commandCompare,
	}
}

func (u *unitext) commandCompare(cmd *cobra.Command, args []string) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.engine.Compare(texts[0], texts[1], u.opt))
	return nil
}

func (u *unitext) newPrefix() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <a> <b>",
		Short: "Reports whether a begins with b, and the lengths of their shared prefix.",
		Long: `Reports whether a begins with b, and the lengths of their shared prefix.

The output is "<begins> <units of a> <units of b>". Both lengths cover whole
source units, so a composed and a decomposed accent may differ in length.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE:                  u.commandPrefix,
	}
}

func (u *unitext) commandPrefix(cmd *cobra.Command, args []string) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	a, b := texts[0], texts[1]
	la, lb := u.engine.SharedPrefix(a, b, u.opt)
	fmt.Fprintf(cmd.OutOrStdout(), "%t %d %d\n", u.engine.BeginsWith(a, b, u.opt), la, lb)
	return nil
}

func (u *unitext) newSuffix() *cobra.Command {
	return &cobra.Command{
		Use:                   "suffix <a> <b>",
		Short:                 "Reports whether a ends with b, and the lengths of their shared suffix.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE:                  u.commandSuffix,
	}
}

func (u *unitext) commandSuffix(cmd *cobra.Command, args []string) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	a, b := texts[0], texts[1]
	la, lb := u.engine.SharedSuffix(a, b, u.opt)
	fmt.Fprintf(cmd.OutOrStdout(), "%t %d %d\n", u.engine.EndsWith(a, b, u.opt), la, lb)
	return nil
}

func (u *unitext) newCollate() *cobra.Command {
	return &cobra.Command{
		Use:   "collate <a> <b>",
		Short: "Prints -1, 0 or 1 as a sorts before, equal to or after b in the collation order of --locale.",
		Long: `Prints -1, 0 or 1 as a sorts before, equal to or after b in the collation order of --locale.

--strength selects which differences count: primary ignores case and
accents, secondary ignores case only.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		RunE:                  u.commandCollate,
	}
}

func (u *unitext) commandCollate(cmd *cobra.Command, args []string) error {
	texts, err := u.texts(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.engine.Collate(texts[0], texts[1], u.strength))
	return nil
}

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
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/locale"
	"vitess.io/unitext/go/text/textbreak"
	"vitess.io/unitext/go/vt/utils"
)

type segmentOptions struct {
	Kind  string
	UAX29 bool
}

func (u *unitext) newSegment() *cobra.Command {
	opts := &segmentOptions{}
	cmd := &cobra.Command{
		Use:   "segment [--kind grapheme|word|sentence|line] [--uax29] <text>",
		Short: "Splits text into graphemes, words or sentences, or lists its line break opportunities.",
		Long: `Splits text into graphemes, words or sentences, or lists its line break opportunities.

Each segment is printed as "<start> <end> <columns> <quoted text>", with
offsets in units and the display width in terminal columns. --uax29 uses the
full segmentation rules of --locale instead of the built-in tables. The line
kind prints one unit offset per break opportunity.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return u.commandSegment(cmd, args, opts)
		},
	}
	utils.SetFlagStringVar(cmd.Flags(), &opts.Kind, "kind", "grapheme", "Segment kind: grapheme, word, sentence or line.")
	utils.SetFlagBoolVar(cmd.Flags(), &opts.UAX29, "uax29", false, "Segment with the locale's UAX #29 rules.")
	return cmd
}

func (u *unitext) commandSegment(cmd *cobra.Command, args []string, opts *segmentOptions) error {
	t, err := u.text(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if strings.EqualFold(opts.Kind, "line") {
		writeLineBreaks(out, t)
		return nil
	}

	kind, err := locale.ParseBreakKind(opts.Kind)
	if err != nil {
		return err
	}
	var seg locale.Segmenter
	if opts.UAX29 {
		seg = u.loc
	}

	bounds := textbreak.Segment(t, kind, seg)
	for i := 1; i < len(bounds); i++ {
		s := t.Slice(bounds[i-1], bounds[i]).String()
		fmt.Fprintf(out, "%d %d %d %q\n", bounds[i-1], bounds[i], runewidth.StringWidth(s), s)
	}
	return nil
}

// writeLineBreaks prints the unit offsets where a line may be wrapped.
func writeLineBreaks(w io.Writer, t charset.Text) {
	prev := textbreak.None
	for off := 0; off < t.Len(); {
		r, size := charset.DecodeRune(t, off)
		if prev != textbreak.None && textbreak.CanBreakLine(prev, r) {
			fmt.Fprintln(w, off)
		}
		prev = r
		off += size
	}
}

type caseOptions struct {
	Mode string
}

func (u *unitext) newCase() *cobra.Command {
	opts := &caseOptions{}
	cmd := &cobra.Command{
		Use:   "case [--mode upper|lower|title|fold] <text>",
		Short: "Prints text with its case mapped by the rules of --locale.",
		Long: `Prints text with its case mapped by the rules of --locale.

Unlike comparisons, which fold one codepoint at a time, these mappings may
change the length of the text, e.g. upper-casing "ß" gives "SS".`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return u.commandCase(cmd, args, opts)
		},
	}
	utils.SetFlagStringVar(cmd.Flags(), &opts.Mode, "mode", "lower", "Case mapping: upper, lower, title or fold.")
	return cmd
}

func (u *unitext) commandCase(cmd *cobra.Command, args []string, opts *caseOptions) error {
	t, err := u.text(args[0])
	if err != nil {
		return err
	}

	var mapped string
	switch s := t.String(); strings.ToLower(opts.Mode) {
	case "upper":
		mapped = u.loc.Upper(s)
	case "lower":
		mapped = u.loc.Lower(s)
	case "title":
		mapped = u.loc.Title(s)
	case "fold":
		mapped = u.loc.Fold(s)
	default:
		return fmt.Errorf("invalid case mode %q: expected upper, lower, title or fold", opts.Mode)
	}

	fmt.Fprintln(cmd.OutOrStdout(), mapped)
	return nil
}

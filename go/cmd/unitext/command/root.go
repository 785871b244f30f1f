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

// Package command contains the commands of the unitext binary.
package command

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vitess.io/unitext/go/text/charset"
	"vitess.io/unitext/go/text/filter"
	"vitess.io/unitext/go/text/locale"
	"vitess.io/unitext/go/text/textcmp"
	"vitess.io/unitext/go/vt/log"
	"vitess.io/unitext/go/vt/utils"
)

// EnvPrefix prefixes the environment variables read for configuration keys,
// as in UNITEXT_OPTION or UNITEXT_INPUT_ENCODING.
const EnvPrefix = "UNITEXT"

// configKeys are the flags that may also come from the config file or the
// environment.
var configKeys = []string{"option", "locale", "codepage", "input-encoding", "strength", "storage"}

// Storage modes for text given on the command line.
const (
	storageAuto   = "auto"
	storageNative = "native"
	storageUTF16  = "utf16"
)

// unitext holds the state of one command tree: raw flag values, the viper
// registry they are bound to and the settings resolved before a command runs.
type unitext struct {
	v *viper.Viper

	configFile string
	flags      struct {
		option        string
		locale        string
		codepage      string
		inputEncoding string
		strength      string
		storage       string
		files         bool
	}

	opt      filter.Option
	loc      *locale.Locale
	cp       *charset.Codepage
	strength locale.Strength
	engine   *textcmp.Engine
}

// NewRoot builds the unitext command tree.
func NewRoot() *cobra.Command {
	u := &unitext{v: viper.New()}

	root := &cobra.Command{
		Use:   "unitext",
		Short: "Compares, searches, matches, hashes and segments Unicode text.",
		Long: `Compares, searches, matches, hashes and segments Unicode text.

Text arguments are stored natively when the code page can represent them and
as UTF-16 otherwise, unless --storage says which. With --files every text
argument names a file decoded with --input-encoding.

Every flag of the root command may also be set in the file given with
--config (yaml, toml or json) or through the environment, e.g.
UNITEXT_OPTION=caseless.`,
		SilenceUsage:      true,
		PersistentPreRunE: u.preRun,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	fs := root.PersistentFlags()
	utils.SetFlagStringVar(fs, &u.configFile, "config", "", "Config file providing values for the flags of this command.")
	utils.SetFlagStringVar(fs, &u.flags.option, "option", "exact", "Comparison option: exact, normalized, folded or caseless.")
	utils.SetFlagStringVar(fs, &u.flags.locale, "locale", "root", "BCP 47 locale used for folding, collation and segmentation.")
	utils.SetFlagStringVar(fs, &u.flags.codepage, "codepage", charset.DefaultCodepage.Name(), "Code page of natively stored text.")
	utils.SetFlagStringVar(fs, &u.flags.inputEncoding, "input-encoding", "utf-8", "Encoding of files read with --files: utf-8, utf-16le, utf-16be or a code page.")
	utils.SetFlagStringVar(fs, &u.flags.strength, "strength", "tertiary", "Collation strength: primary, secondary, tertiary or identical.")
	utils.SetFlagStringVar(fs, &u.flags.storage, "storage", storageAuto, "Storage of text arguments: auto, native or utf16.")
	utils.SetFlagBoolVar(fs, &u.flags.files, "files", false, "Read every text argument from the file it names.")
	log.RegisterFlags(fs)

	root.AddCommand(
		u.newCompare(),
		u.newPrefix(),
		u.newSuffix(),
		u.newFind(),
		u.newCount(),
		u.newMatch(),
		u.newHash(),
		u.newSegment(),
		u.newCollate(),
		u.newCase(),
	)
	root.SetGlobalNormalizationFunc(utils.NormalizeUnderscoresToDashes)
	return root
}

func (u *unitext) preRun(cmd *cobra.Command, args []string) error {
	if err := log.Init(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	if err := u.loadConfig(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	if err := u.resolve(); err != nil {
		return err
	}

	log.DebugS("running command", "command", cmd.CommandPath(), "option", u.opt.String(), "locale", u.loc.String())
	return nil
}

// loadConfig binds the config keys to their flags, the environment and the
// config file, in increasing order of precedence: file, environment, flag.
func (u *unitext) loadConfig(fs *pflag.FlagSet) error {
	u.v.SetEnvPrefix(EnvPrefix)
	u.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	u.v.AutomaticEnv()

	for _, key := range configKeys {
		if err := u.v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}

	if u.configFile == "" {
		return nil
	}
	u.v.SetConfigFile(u.configFile)
	if err := u.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", u.configFile, err)
	}
	log.InfoS("loaded config file", "file", u.v.ConfigFileUsed())
	return nil
}

func (u *unitext) resolve() (err error) {
	if u.opt, err = filter.ParseOption(u.v.GetString("option")); err != nil {
		return err
	}
	if u.loc, err = locale.Parse(u.v.GetString("locale")); err != nil {
		return err
	}
	if u.cp, err = charset.LookupCodepage(u.v.GetString("codepage")); err != nil {
		return err
	}
	if u.strength, err = locale.ParseStrength(u.v.GetString("strength")); err != nil {
		return err
	}
	switch storage := u.v.GetString("storage"); storage {
	case storageAuto, storageNative, storageUTF16:
	default:
		return fmt.Errorf("invalid storage %q: expected auto, native or utf16", storage)
	}

	u.engine = textcmp.New(u.loc)
	return nil
}

// text turns a command line argument into a Text, reading it from a file
// when --files is set.
func (u *unitext) text(arg string) (charset.Text, error) {
	if u.flags.files {
		b, err := os.ReadFile(arg)
		if err != nil {
			return charset.Text{}, err
		}
		return charset.Decode(b, u.v.GetString("input-encoding"))
	}

	switch u.v.GetString("storage") {
	case storageNative:
		b, err := charset.Encode(nil, arg, u.cp)
		var failed charset.ErrFailedConversion
		switch {
		case errors.As(err, &failed):
			log.WarnS("text does not fit the code page", "codepage", u.cp.Name(), "replaced", int(failed))
		case err != nil:
			return charset.Text{}, err
		}
		return charset.NewNative(b, u.cp), nil
	case storageUTF16:
		return charset.UTF16String(arg), nil
	}
	return charset.FromString(arg), nil
}

// texts converts every argument with text.
func (u *unitext) texts(args []string) ([]charset.Text, error) {
	out := make([]charset.Text, 0, len(args))
	for _, arg := range args {
		t, err := u.text(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

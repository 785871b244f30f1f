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
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "vitess.io/unitext/go/test/utils"
	"vitess.io/unitext/go/vt/log"
	"vitess.io/unitext/go/vt/utils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	testutils.CheckLeaks(t)

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"compare exact", []string{"compare", "hello", "HELLO"}, "1\n"},
		{"compare caseless", []string{"compare", "--option", "caseless", "hello", "HELLO"}, "0\n"},
		{"compare normalized", []string{"compare", "--option", "normalized", "caf\u00e9", "cafe\u0301"}, "0\n"},
		{"compare composed first", []string{"compare", "caf\u00e9", "cafe\u0301"}, "1\n"},
		{"compare utf16 storage", []string{"compare", "--storage", "utf16", "abc", "abd"}, "-1\n"},
		{"compare native storage", []string{"compare", "--storage", "native", "--codepage", "windows-1252", "\u20ac", "\u20ac"}, "0\n"},
		{"prefix folded", []string{"prefix", "--option", "folded", "foobar", "FOO"}, "true 3 3\n"},
		{"prefix partial", []string{"prefix", "foobar", "fox"}, "false 2 2\n"},
		{"suffix", []string{"suffix", "foobar", "bar"}, "true 3 3\n"},
		{"find", []string{"find", "hello world", "o"}, "4 1\n"},
		{"find range", []string{"find", "--offset", "5", "hello world", "o"}, "7 1\n"},
		{"find short range", []string{"find", "--offset", "5", "--length", "2", "hello world", "o"}, "-1\n"},
		{"find last", []string{"find", "--last", "hello world", "o"}, "7\n"},
		{"find char", []string{"find", "--char", "hello world", "w"}, "6\n"},
		{"find last char", []string{"find", "--char", "--last", "hello world", "l"}, "9\n"},
		{"find missing", []string{"find", "hello world", "z"}, "-1\n"},
		{"find normalized", []string{"find", "--option", "normalized", "xcafe\u0301y", "caf\u00e9"}, "1 5\n"},
		{"count", []string{"count", "banana", "an"}, "2\n"},
		{"count non overlapping", []string{"count", "aaaa", "aa"}, "2\n"},
		{"count range", []string{"count", "--offset", "2", "banana", "an"}, "1\n"},
		{"match", []string{"match", "hello", "h?l*"}, "true\n"},
		{"match case", []string{"match", "hello", "H*"}, "false\n"},
		{"match caseless", []string{"match", "--option", "caseless", "hello", "H*"}, "true\n"},
		{"match class", []string{"match", "x9", "[a-z][!a-z]"}, "true\n"},
		{"segment words", []string{"segment", "--kind", "word", "hi there"}, "0 2 2 \"hi\"\n2 3 1 \" \"\n3 8 5 \"there\"\n"},
		{"segment wide", []string{"segment", "\u4e00\u4e01"}, "0 1 2 \"\u4e00\"\n1 2 2 \"\u4e01\"\n"},
		{"segment sentences", []string{"segment", "--kind", "sentence", "Hi. Bye."}, "0 4 4 \"Hi. \"\n4 8 4 \"Bye.\"\n"},
		{"segment uax29", []string{"segment", "--kind", "word", "--uax29", "Hi. Bye."}, "0 2 2 \"Hi\"\n2 3 1 \".\"\n3 4 1 \" \"\n4 7 3 \"Bye\"\n7 8 1 \".\"\n"},
		{"segment lines", []string{"segment", "--kind", "line", "ab cd ef"}, "3\n6\n"},
		{"collate", []string{"collate", "a", "B"}, "-1\n"},
		{"collate primary", []string{"collate", "--strength", "primary", "a", "A"}, "0\n"},
		{"collate tertiary", []string{"collate", "a", "A"}, "-1\n"},
		{"case upper", []string{"case", "--mode", "upper", "stra\u00dfe"}, "STRASSE\n"},
		{"case turkish", []string{"case", "--mode", "upper", "--locale", "tr", "i"}, "\u0130\n"},
		{"case fold", []string{"case", "--mode", "fold", "Stra\u00dfe"}, "strasse\n"},
		{"case title", []string{"case", "--mode", "title", "hello world"}, "Hello World\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		err  string
	}{
		{"bad option", []string{"compare", "--option", "fuzzy", "a", "b"}, "invalid comparison option"},
		{"bad locale", []string{"compare", "--locale", "not a locale", "a", "b"}, "parsing locale"},
		{"bad codepage", []string{"compare", "--codepage", "ebcdic", "a", "b"}, "unknown code page"},
		{"bad strength", []string{"collate", "--strength", "strong", "a", "b"}, "invalid collation strength"},
		{"bad storage", []string{"compare", "--storage", "utf32", "a", "b"}, "invalid storage"},
		{"bad kind", []string{"segment", "--kind", "paragraph", "a"}, "invalid break kind"},
		{"bad mode", []string{"case", "--mode", "swap", "a"}, "invalid case mode"},
		{"bad char", []string{"find", "--char", "abc", "ab"}, "exactly one codepoint"},
		{"missing file", []string{"compare", "--files", "/nonexistent/a", "/nonexistent/b"}, "no such file"},
		{"missing config", []string{"compare", "--config", "/nonexistent/unitext.yaml", "a", "b"}, "reading config file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.err)
		})
	}

	_, err := execute(t, "compare", "only-one")
	assert.Error(t, err)
}

func TestHashCommand(t *testing.T) {
	out, err := execute(t, "hash", "--option", "caseless", "Caf\u00e9", "CAFE\u0301")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	first, second := strings.Fields(lines[0]), strings.Fields(lines[1])
	require.Len(t, first, 3)
	require.Len(t, second, 3)
	assert.Equal(t, first[:2], second[:2])
	assert.Len(t, first[0], 8)
	assert.Len(t, first[1], 16)

	out, err = execute(t, "hash", "Caf\u00e9", "CAFE\u0301")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.NotEqual(t, strings.Fields(lines[0])[0], strings.Fields(lines[1])[0])
}

func TestConfigSources(t *testing.T) {
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "unitext.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("option: caseless\nstrength: primary\n"), 0o600))
	jsonFile := filepath.Join(dir, "unitext.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"option": "folded"}`), 0o600))

	out, err := execute(t, "compare", "--config", yamlFile, "hello", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = execute(t, "collate", "--config", yamlFile, "a", "A")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	// flags win over the config file
	out, err = execute(t, "compare", "--config", yamlFile, "--option", "exact", "hello", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = execute(t, "compare", "--config", jsonFile, "hello", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	t.Setenv("UNITEXT_OPTION", "caseless")
	out, err = execute(t, "compare", "caf\u00e9", "CAFE\u0301")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = execute(t, "compare", "--option", "exact", "hello", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o600))
		return path
	}

	text := write("text.txt", []byte("\xef\xbb\xbfhello world"))
	needle := write("needle.txt", []byte("WORLD"))
	out, err := execute(t, "find", "--files", "--option", "caseless", text, needle)
	require.NoError(t, err)
	assert.Equal(t, "6 5\n", out)

	le := write("le.txt", []byte{'h', 0, 'i', 0})
	le2 := write("le2.txt", []byte{'H', 0, 'I', 0})
	out, err = execute(t, "compare", "--files", "--input-encoding", "utf-16le", "--option", "folded", le, le2)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	latin := write("latin.txt", []byte{'c', 'a', 'f', 0xE9})
	utf8 := write("utf8.txt", []byte("caf\u00e9"))
	out, err = execute(t, "compare", "--files", "--input-encoding", "latin1", latin, latin)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
	out, err = execute(t, "compare", "--files", utf8, utf8)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestUnderscoreFlags(t *testing.T) {
	prev := utils.Warnings
	var warnings bytes.Buffer
	utils.Warnings = &warnings
	defer func() { utils.Warnings = prev }()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte{'h', 0, 'i', 0}, 0o600))

	out, err := execute(t, "compare", "--files", "--input_encoding", "utf-16le", a, a)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestNativeStorageWarning(t *testing.T) {
	var buf bytes.Buffer
	restore := log.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer restore()

	out, err := execute(t, "compare", "--storage", "native", "\u4e00", "?")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "iso-8859-1", record["codepage"])
	assert.EqualValues(t, 1, record["replaced"])
}

package cli_test

import (
	"bytes"
	"encoding/json"
	"github.com/davejbax/go-ytime"
	"github.com/davejbax/go-ytime/internal/cli"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func run(args ...string) (string, string, error) {
	cmd := cli.NewRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands_Golden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"pack_text", []string{"pack", "1972-07-01T00:00:00"}},
		{"pack_json", []string{"--format", "json", "pack", "1972-07-01T00:00:00"}},
		{"unpack_leap_second", []string{"unpack", "24372489600500000"}},
		{"delta_text", []string{"delta", "2015-06-29T23:59:59", "2015-07-01T00:00:00"}},
		{"delta_json", []string{"delta", "--format", "json", "2015-06-29T23:59:59", "2015-07-01T00:00:00"}},
		{"add_onto_leap_second", []string{"add", "1990-12-31T23:59:59", "9497", "1"}},
		{"add_negative", []string{"add", "2019-12-31T23:59:59", "--", "-7669", "-86400"}},
		{"add_fraction_json", []string{"--format=json", "add", "2015-06-30T23:59:59.5", "0", "0.75"}},
		{"leapseconds_builtin", []string{"leapseconds"}},
		{"leapseconds_custom", []string{"--leap-seconds", "testdata/leap-seconds.yaml", "leapseconds"}},
		{"leapseconds_config", []string{"--config", "testdata/ytime.toml", "leapseconds"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := run(c.args...)
			require.NoError(t, err, "Command should succeed")
			g.Assert(t, c.name, []byte(out))
		})
	}
}

func TestCommands_ExitCodes(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected int
	}{
		{"delta from leap second", []string{"delta", "2016-12-31T23:59:60", "2017-01-01T00:00:00"}, cli.ExitFailure},
		{"add days from leap second", []string{"add", "2016-12-31T23:59:60", "1", "0"}, cli.ExitFailure},
		{"leap second on a regular day", []string{"pack", "2016-12-30T23:59:60"}, cli.ExitCommandError},
		{"unparseable date-time", []string{"pack", "yesterday"}, cli.ExitCommandError},
		{"unparseable packed value", []string{"unpack", "-1"}, cli.ExitCommandError},
		{"unparseable seconds", []string{"add", "2016-12-31T00:00:00", "1", "1.x"}, cli.ExitCommandError},
		{"too few arguments", []string{"delta", "2016-12-31T00:00:00"}, cli.ExitCommandError},
		{"unknown output format", []string{"--format", "xml", "leapseconds"}, cli.ExitCommandError},
		{"missing leap second table", []string{"--leap-seconds", "testdata/missing.yaml", "leapseconds"}, cli.ExitCommandError},
		{"missing config", []string{"--config", "testdata/missing.toml", "leapseconds"}, cli.ExitCommandError},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := run(c.args...)
			require.Error(t, err, "Command should fail")
			assert.Equal(t, c.expected, cli.GetExitCode(err), "Exit code should match for error: %v", err)
		})
	}
}

func TestCommands_LeapSecondAnchorError(t *testing.T) {
	_, _, err := run("delta", "2016-12-31T23:59:60", "2017-01-01T00:00:00")
	assert.ErrorIs(t, err, ytime.ErrLeapSecondAnchor, "The calendar error should be wrapped, not replaced")
}

func TestCommands_FlagsOverrideConfig(t *testing.T) {
	out, _, err := run("--config", "testdata/ytime.toml", "--format", "text", "leapseconds")
	require.NoError(t, err)
	assert.Equal(t, "1972-07-01 1\n2027-01-01 2\n", out, "--format should override the config file")
}

func TestCommands_CustomTableValidation(t *testing.T) {
	_, _, err := run("--leap-seconds", "testdata/leap-seconds.yaml", "pack", "2026-12-31T23:59:60")
	assert.NoError(t, err, "23:59:60 should be valid on a day the loaded table gives a leap second")

	_, _, err = run("--leap-seconds", "testdata/leap-seconds.yaml", "pack", "2016-12-31T23:59:60")
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err), "23:59:60 should be rejected on a day the loaded table has no leap second")
}

func TestCommands_Verbose(t *testing.T) {
	_, errOut, err := run("--verbose", "pack", "2016-12-31T23:59:60")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=debug", "--verbose should log diagnostics to stderr")

	_, errOut, err = run("pack", "2016-12-31T23:59:60")
	require.NoError(t, err)
	assert.Empty(t, errOut, "Diagnostics should be silent by default")
}

func TestNow(t *testing.T) {
	out, _, err := run("--format", "json", "now")
	require.NoError(t, err)

	var result struct {
		DateTime string `json:"datetime"`
		Packed   uint64 `json:"packed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	dt, err := ytime.ParseDateTime(result.DateTime)
	require.NoError(t, err, "now should print a parseable date-time")
	assert.Equal(t, ytime.Pack(dt).Uint64(), result.Packed, "now should print the packed value of the date-time")
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := cli.NewRootCommand()

	for _, name := range []string{"pack", "unpack", "delta", "add", "leapseconds", "now"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "Command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

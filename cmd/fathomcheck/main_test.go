package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values persist across Execute calls on the shared rootCmd.
	checkList, docRaw = false, false
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCheckListPrintsFixtureNames(t *testing.T) {
	out, err := execRoot(t, "check", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "point")
	assert.Contains(t, out, "flags")
}

func TestCheckWellFormedFixturePasses(t *testing.T) {
	out, err := execRoot(t, "check", "point")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestCheckBrokenFixtureReportsDiagnostics(t *testing.T) {
	out, _ := execRoot(t, "check", "broken")
	assert.Contains(t, out, "ELAB001")
	assert.Contains(t, out, "ELAB003")
}

func TestCheckUnknownFixtureErrors(t *testing.T) {
	_, err := execRoot(t, "check", "nope")
	assert.Error(t, err)
}

func TestDocGeneratesMarkdownForFixture(t *testing.T) {
	out, err := execRoot(t, "doc", "point", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "## Point")
}

func TestParseAliasCommandAcceptsNumberAndName(t *testing.T) {
	a, err := parseAliasCommand("limit : U8 = 10")
	require.NoError(t, err)
	assert.Equal(t, "limit", a.Label())

	b, err := parseAliasCommand("flag : Bool = true")
	require.NoError(t, err)
	assert.Equal(t, "flag", b.Label())
}

func TestParseAliasCommandRejectsMalformedInput(t *testing.T) {
	_, err := parseAliasCommand("not a valid command")
	assert.Error(t, err)
}

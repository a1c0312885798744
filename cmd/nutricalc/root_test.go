package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NUTRICALC_PROFILE", "")
	_ = os.Unsetenv("NUTRICALC_PROFILE")
	t.Setenv("NUTRICALC_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	out, _, err := execute(t, "", "--defaults", "--format", "plain")
	require.NoError(t, err)
	require.Contains(t, out, "BMR (resting burn): 1649 kcal/day")
	require.Contains(t, out, "Protein: 56.0 g/day")
}

func TestRoot_PromptsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "female\n\n\n\n\n\n\nno\nyes\nno\n\n", "--format", "plain", "--no-color")
	require.NoError(t, err)
	require.Contains(t, errOut, "Are you pregnant?")
	require.NotContains(t, out, "Are you pregnant?")
	require.Contains(t, out, "Pregnancy increased need")
}

func TestRoot_ProfileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sex: female\nbreastfeeding: true\n"), 0o644))

	out, _, err := execute(t, "", "--profile", path, "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"amount": 290`)
}

func TestRoot_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "--defaults", "--format", "xml")
	require.Error(t, err)
	require.Equal(t, 1, exitCode(err))
}

func TestRoot_BadConfigIsSetupError(t *testing.T) {
	t.Setenv("NUTRICALC_NO_COLOR", "maybe")
	_, _, err := execute(t, "", "--defaults")
	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))
	require.Equal(t, 1, exitCode(errors.New("other")))
}

func TestReference(t *testing.T) {
	out, _, err := execute(t, "", "reference", "--sex", "female", "--pregnant", "--format", "plain")
	require.NoError(t, err)
	require.Contains(t, out, "27 mg")
	require.Contains(t, out, "600 µg DFE")
	require.Equal(t, 26, strings.Count(out, "\n"))
}

func TestReference_MaleIgnoresFlags(t *testing.T) {
	out, _, err := execute(t, "", "reference", "--pregnant", "--format", "plain")
	require.NoError(t, err)
	require.Contains(t, out, "| Men")
	require.NotContains(t, out, "Pregnancy")
}

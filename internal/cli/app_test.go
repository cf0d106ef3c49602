package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_AdjacentDeadEnds_PrintsFirstSolution(t *testing.T) {
	cmd := NewRootCommand(false)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("11"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "╶─╴\n", out.String())
}

func TestRun_ShowCount_ReportsTwoSolutions(t *testing.T) {
	cmd := NewRootCommand(true)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("1CC1\n1CC1"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "solutions: 2\n")
}

func TestRun_NoSolution_ReturnsErrNoSolution(t *testing.T) {
	cmd := NewRootCommand(false)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("1"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestRun_StrictMode_RejectsUnrecognizedChar(t *testing.T) {
	cmd := NewRootCommand(false)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("Z"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Flags().Set("strict", "true"))

	err := cmd.Execute()
	require.Error(t, err)
}

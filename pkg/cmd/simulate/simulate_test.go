package simulate

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msimtools/motorsport-session-manager-go/log"
)

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	log.ResetDefault(log.New(io.Discard, log.InfoLevel))

	cmd := NewSimulateCmd()
	cmd.SetIn(strings.NewReader(input))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimulateCmd(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.txt")
	console, err := runCmd(t, "Ann Dale\nMonzetta\n1\n",
		"--report", reportPath, "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, console, "Welcome to Motorsports Simulator")
	assert.Contains(t, console, "Enter driver name: ")
	assert.Contains(t, console, "Lap 1: ")
	assert.Contains(t, console, "Lap 3: ")
	assert.Contains(t, console, "Average Lap Time: ")
	assert.Contains(t, console, "Overall Average: ")
	assert.Contains(t, console, "Report saved to "+reportPath)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"Driver         Track          Vehicle   Avg Lap     ", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Ann Dale       Monzetta       GT3       "))
}

func TestSimulateCmdDeterministicForSeed(t *testing.T) {
	dir := t.TempDir()
	firstPath := filepath.Join(dir, "first.txt")
	secondPath := filepath.Join(dir, "second.txt")

	_, err := runCmd(t, "Ann Dale\nMonzetta\n2\n", "--report", firstPath, "--seed", "23")
	require.NoError(t, err)
	_, err = runCmd(t, "Ann Dale\nMonzetta\n2\n", "--report", secondPath, "--seed", "23")
	require.NoError(t, err)

	first, err := os.ReadFile(firstPath)
	require.NoError(t, err)
	second, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSimulateCmdTruncatedInput(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.txt")
	_, err := runCmd(t, "Ann Dale\n", "--report", reportPath)
	require.Error(t, err)
	assert.NoFileExists(t, reportPath)
}

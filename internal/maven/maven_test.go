package maven

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandError_KeepsLogTail(t *testing.T) {
	lines := []string{
		"[INFO] Scanning for projects...",
		"[INFO] Building demo 1.0.0-SNAPSHOT",
		"[ERROR] Failed to execute goal",
		"[ERROR] Compilation failure",
		"[ERROR] cannot find symbol",
		"[ERROR] -> [Help 1]",
	}
	err := &CommandError{
		Args:   []string{"clean", "test"},
		Output: strings.Join(lines, "\n"),
		Err:    errors.New("exit status 1"),
	}

	msg := err.Error()
	require.Contains(t, msg, "mvn clean test")
	require.Contains(t, msg, "cannot find symbol")
	require.NotContains(t, msg, "Scanning for projects")
}

func TestCommandError_NoOutput(t *testing.T) {
	err := &CommandError{
		Args: []string{"clean", "install"},
		Err:  errors.New("executable file not found"),
	}
	require.Contains(t, err.Error(), "executable file not found")
}

func TestMockRunner_RecordsCalls(t *testing.T) {
	m := &MockRunner{
		CurrentVersionFunc: func() (string, error) { return "1.2.3-SNAPSHOT", nil },
	}

	v, err := m.CurrentVersion()
	require.NoError(t, err)
	require.Equal(t, "1.2.3-SNAPSHOT", v)

	require.NoError(t, m.SetVersions("1.2.3"))
	require.NoError(t, m.RunGoals("clean verify"))

	require.Equal(t, []string{
		"current-version",
		"set-versions 1.2.3",
		"run-goals clean verify",
	}, m.Calls)
}

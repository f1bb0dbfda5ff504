package cmd

import (
	"testing"

	"github.com/alexist/gitflow/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup("path"))
	require.NotNil(t, flags.Lookup("config"))
	require.NotNil(t, flags.Lookup("non-interactive"))
	require.NotNil(t, flags.Lookup("push"))
	require.NotNil(t, flags.Lookup("fetch"))
	require.NotNil(t, flags.Lookup("install"))
	require.NotNil(t, flags.Lookup("skip-tests"))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	expected := []string{"feature", "release", "hotfix", "support", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		require.True(t, found, "%s subcommand should be registered", name)
	}
}

func TestBranchKindCmds_HaveStartAndFinish(t *testing.T) {
	tests := []struct {
		parent   string
		children []string
	}{
		{"feature", []string{"start", "finish"}},
		{"release", []string{"start", "finish"}},
		{"hotfix", []string{"start", "finish"}},
		{"support", []string{"start"}},
	}
	for _, tt := range tests {
		t.Run(tt.parent, func(t *testing.T) {
			var parent *cobra.Command
			for _, sub := range rootCmd.Commands() {
				if sub.Name() == tt.parent {
					parent = sub
					break
				}
			}
			require.NotNil(t, parent)
			for _, child := range tt.children {
				found := false
				for _, sub := range parent.Commands() {
					if sub.Name() == child {
						found = true
						break
					}
				}
				require.True(t, found, "%s should have a %s subcommand", tt.parent, child)
			}
		})
	}
}

func TestApplyFlagOverrides_OnlyChangedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	require.NoError(t, flags.Set("push", "false"))
	defer func() {
		flagPush = true
		flags.Lookup("push").Changed = false
	}()

	cfg := config.DefaultConfig()
	applyFlagOverrides(cfg)

	require.NotNil(t, cfg.PushRemote)
	require.False(t, *cfg.PushRemote)
	// Untouched flags keep the file values.
	require.True(t, *cfg.FetchRemote)
	require.False(t, *cfg.InstallProject)
}

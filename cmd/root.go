// Package cmd wires the gitflow command tree: the root command carries the
// flags shared by every action, and each branch kind gets a subcommand with
// start/finish operations.
package cmd

import (
	"fmt"
	"os"

	"github.com/alexist/gitflow/internal/config"
	"github.com/alexist/gitflow/internal/flow"
	"github.com/alexist/gitflow/internal/git"
	"github.com/alexist/gitflow/internal/maven"
	"github.com/alexist/gitflow/internal/prompt"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath           string
	flagConfig         string
	flagNonInteractive bool
	flagPush           bool
	flagFetch          bool
	flagInstall        bool
	flagSkipTests      bool
)

// rootCmd is the top-level command for gitflow.
var rootCmd = &cobra.Command{
	Use:   "gitflow",
	Short: "Git-flow branch lifecycle automation",
	Long: "gitflow automates the feature, release, hotfix, and support branch\n" +
		"lifecycle: it sequences the git and Maven commands for starting and\n" +
		"finishing branches, including version bumps, merges, tags, and pushes.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&flagNonInteractive, "non-interactive", "B", false, "never prompt; fail when input would be required")
	rootCmd.PersistentFlags().BoolVar(&flagPush, "push", true, "push affected branches to the remote")
	rootCmd.PersistentFlags().BoolVar(&flagFetch, "fetch", true, "fetch the remote and check for divergence first")
	rootCmd.PersistentFlags().BoolVar(&flagInstall, "install", false, "run the install goal after the action")
	rootCmd.PersistentFlags().BoolVar(&flagSkipTests, "skip-tests", false, "skip the test goal before merging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// interactive reports whether prompting is allowed.
func interactive() bool {
	return !flagNonInteractive
}

// buildEngine assembles the workflow engine for one invocation: it opens the
// repository, loads and resolves the configuration with flag overrides, and
// wires the git, Maven, and prompting adapters.
func buildEngine(cmd *cobra.Command) (*flow.Engine, error) {
	repo, err := git.Open(flagPath, "origin")
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	cfg, err := loadConfig(repo.WorkingDirectory())
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	applyFlagOverrides(cfg)

	effective, err := config.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	// The remote name is only known after config resolution.
	if effective.Remote != "origin" {
		repo, err = git.Open(flagPath, effective.Remote)
		if err != nil {
			return nil, fmt.Errorf("opening repository: %w", err)
		}
	}

	var prompter prompt.Prompter
	if interactive() {
		prompter = prompt.Terminal{}
	}

	runner := maven.NewCLI(repo.WorkingDirectory())
	return flow.New(effective, repo, runner, prompter, cmd.OutOrStdout()), nil
}

// loadConfig reads the configuration file, or returns an empty configuration
// when none exists.
func loadConfig(workDir string) (*config.Config, error) {
	if flagConfig != "" {
		return config.LoadFromFile(flagConfig)
	}
	return config.Discover(workDir)
}

// applyFlagOverrides overlays explicitly-set command line flags onto the
// file configuration. Unset flags leave the file values alone.
func applyFlagOverrides(cfg *config.Config) {
	set := rootCmd.PersistentFlags().Changed
	if set("push") {
		cfg.PushRemote = &flagPush
	}
	if set("fetch") {
		cfg.FetchRemote = &flagFetch
	}
	if set("install") {
		cfg.InstallProject = &flagInstall
	}
	if set("skip-tests") {
		cfg.SkipTestProject = &flagSkipTests
	}
}

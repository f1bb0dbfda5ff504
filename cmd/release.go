package cmd

import (
	"github.com/alexist/gitflow/internal/flow"

	"github.com/spf13/cobra"
)

var (
	flagReleaseBranch    string
	flagReleaseSkipTag   bool
	flagReleaseKeep      bool
	flagReleasePreGoals  string
	flagReleasePostGoals string
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Manage release branches",
}

var releaseStartCmd = &cobra.Command{
	Use:   "start [version]",
	Short: "Start a release branch off the development branch",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		version := ""
		if len(args) > 0 {
			version = args[0]
		}
		return engine.ReleaseStart(flow.ReleaseStartOptions{
			Version:     version,
			Interactive: interactive(),
		})
	},
}

var releaseFinishCmd = &cobra.Command{
	Use:   "finish [version]",
	Short: "Merge a release branch into production and development",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return engine.ReleaseFinish(flow.ReleaseFinishOptions{
			Branch:      flagReleaseBranch,
			Name:        name,
			Interactive: interactive(),
			SkipTag:     flagReleaseSkipTag,
			KeepBranch:  flagReleaseKeep,
			PreGoals:    flagReleasePreGoals,
			PostGoals:   flagReleasePostGoals,
		})
	},
}

func init() {
	releaseFinishCmd.Flags().StringVar(&flagReleaseBranch, "branch", "", "full release branch name (overrides the version argument)")
	releaseFinishCmd.Flags().BoolVar(&flagReleaseSkipTag, "skip-tag", false, "do not tag the release on the production branch")
	releaseFinishCmd.Flags().BoolVar(&flagReleaseKeep, "keep-branch", false, "keep the release branch after the merge")
	releaseFinishCmd.Flags().StringVar(&flagReleasePreGoals, "pre-goals", "", "build goals to run on the release branch before merging")
	releaseFinishCmd.Flags().StringVar(&flagReleasePostGoals, "post-goals", "", "build goals to run after the production merge")

	releaseCmd.AddCommand(releaseStartCmd, releaseFinishCmd)
	rootCmd.AddCommand(releaseCmd)
}

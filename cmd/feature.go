package cmd

import (
	"github.com/alexist/gitflow/internal/flow"

	"github.com/spf13/cobra"
)

var (
	flagFeatureBranch      string
	flagSkipFeatureVersion bool
	flagFeatureIncrement   bool
	flagFeatureSquash      bool
	flagFeatureKeep        bool
	flagFeaturePreGoals    string
	flagFeaturePostGoals   string
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Manage feature branches",
}

var featureStartCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a feature branch off the development branch",
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
		return engine.FeatureStart(flow.FeatureStartOptions{
			Name:               name,
			Interactive:        interactive(),
			SkipFeatureVersion: flagSkipFeatureVersion,
		})
	},
}

var featureFinishCmd = &cobra.Command{
	Use:   "finish [name]",
	Short: "Merge a feature branch into the development branch",
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
		return engine.FeatureFinish(flow.FeatureFinishOptions{
			Branch:           flagFeatureBranch,
			Name:             name,
			Interactive:      interactive(),
			IncrementVersion: flagFeatureIncrement,
			Squash:           flagFeatureSquash,
			KeepBranch:       flagFeatureKeep,
			PreGoals:         flagFeaturePreGoals,
			PostGoals:        flagFeaturePostGoals,
		})
	},
}

func init() {
	featureStartCmd.Flags().BoolVar(&flagSkipFeatureVersion, "skip-feature-version", false, "do not qualify the project version with the feature name")

	featureFinishCmd.Flags().StringVar(&flagFeatureBranch, "branch", "", "full feature branch name (overrides the name argument)")
	featureFinishCmd.Flags().BoolVar(&flagFeatureIncrement, "increment-version", false, "bump the development version before merging")
	featureFinishCmd.Flags().BoolVar(&flagFeatureSquash, "squash", false, "squash the feature commits into one")
	featureFinishCmd.Flags().BoolVar(&flagFeatureKeep, "keep-branch", false, "keep the feature branch after the merge")
	featureFinishCmd.Flags().StringVar(&flagFeaturePreGoals, "pre-goals", "", "build goals to run on the feature branch before merging")
	featureFinishCmd.Flags().StringVar(&flagFeaturePostGoals, "post-goals", "", "build goals to run on the development branch after merging")

	featureCmd.AddCommand(featureStartCmd, featureFinishCmd)
	rootCmd.AddCommand(featureCmd)
}

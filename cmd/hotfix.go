package cmd

import (
	"github.com/alexist/gitflow/internal/flow"

	"github.com/spf13/cobra"
)

var (
	flagHotfixSupport     string
	flagHotfixUseSnapshot bool
	flagHotfixBranch      string
	flagHotfixSkipTag     bool
	flagHotfixKeep        bool
	flagHotfixPreGoals    string
	flagHotfixPostGoals   string
)

var hotfixCmd = &cobra.Command{
	Use:   "hotfix",
	Short: "Manage hotfix branches",
}

var hotfixStartCmd = &cobra.Command{
	Use:   "start [version]",
	Short: "Start a hotfix branch off the production branch",
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
		return engine.HotfixStart(flow.HotfixStartOptions{
			SupportBranch: flagHotfixSupport,
			Version:       version,
			UseSnapshot:   flagHotfixUseSnapshot,
		})
	},
}

var hotfixFinishCmd = &cobra.Command{
	Use:   "finish [version]",
	Short: "Merge a hotfix branch into production and development",
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
		return engine.HotfixFinish(flow.HotfixFinishOptions{
			Branch:      flagHotfixBranch,
			Name:        name,
			Interactive: interactive(),
			SkipTag:     flagHotfixSkipTag,
			KeepBranch:  flagHotfixKeep,
			PreGoals:    flagHotfixPreGoals,
			PostGoals:   flagHotfixPostGoals,
		})
	},
}

func init() {
	hotfixStartCmd.Flags().StringVar(&flagHotfixSupport, "support-branch", "", "start the hotfix from a support branch instead of production")
	hotfixStartCmd.Flags().BoolVar(&flagHotfixUseSnapshot, "use-snapshot", false, "append the development qualifier to the hotfix version")

	hotfixFinishCmd.Flags().StringVar(&flagHotfixBranch, "branch", "", "full hotfix branch name (overrides the version argument)")
	hotfixFinishCmd.Flags().BoolVar(&flagHotfixSkipTag, "skip-tag", false, "do not tag the hotfix on the production branch")
	hotfixFinishCmd.Flags().BoolVar(&flagHotfixKeep, "keep-branch", false, "keep the hotfix branch after the merge")
	hotfixFinishCmd.Flags().StringVar(&flagHotfixPreGoals, "pre-goals", "", "build goals to run on the hotfix branch before merging")
	hotfixFinishCmd.Flags().StringVar(&flagHotfixPostGoals, "post-goals", "", "build goals to run after the production merge")

	hotfixCmd.AddCommand(hotfixStartCmd, hotfixFinishCmd)
	rootCmd.AddCommand(hotfixCmd)
}

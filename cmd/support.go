package cmd

import (
	"github.com/alexist/gitflow/internal/flow"

	"github.com/spf13/cobra"
)

var (
	flagSupportTag         string
	flagSupportName        string
	flagSupportUseSnapshot bool
)

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "Manage support branches",
}

var supportStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a long-lived support branch from a release tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		return engine.SupportStart(flow.SupportStartOptions{
			Tag:         flagSupportTag,
			Name:        flagSupportName,
			Interactive: interactive(),
			UseSnapshot: flagSupportUseSnapshot,
		})
	},
}

func init() {
	supportStartCmd.Flags().StringVar(&flagSupportTag, "tag", "", "tag to branch from (default: the most recent tag)")
	supportStartCmd.Flags().StringVar(&flagSupportName, "name", "", "branch name without the support prefix (default: the tag)")
	supportStartCmd.Flags().BoolVar(&flagSupportUseSnapshot, "use-snapshot", false, "bump the branched version to a development snapshot")

	supportCmd.AddCommand(supportStartCmd)
	rootCmd.AddCommand(supportCmd)
}

package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tbool",
	Short: "Temporal boolean demos",
	Long:  "tbool shows a boolean that decays back to false a fixed time after it was set true, with no timer behind it.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = VersionString()
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
}

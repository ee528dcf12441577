package cmd

import (
	"github.com/sisense/compose-sdk-charts/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Compose CLI version",
	Example: `
compose version
`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("CLI version: %s\n", version.Version())
		if commit := version.Commit(); commit != "" {
			cmd.Printf("Commit:      %s\n", commit)
		}
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"

	"github.com/bitrise-io/komp/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of komp`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "komp v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

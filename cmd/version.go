package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/mapwalk/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mapwalk %s\n", version.GetFullVersion())
		fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
		fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

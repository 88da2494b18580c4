package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, version.String())
		fmt.Fprintln(w, "Beam Analysis and Reinforced Concrete Design Tool")
		fmt.Fprintln(w, "Design provisions based on ACI 318-19")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version of qltview.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qltview version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qltview %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

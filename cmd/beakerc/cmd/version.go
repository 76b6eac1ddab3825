package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the beakerc version",
	RunE: func(c *cobra.Command, args []string) error {
		fmt.Printf("beakerc version %s\ncommit: %s\n", Version, GitCommit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

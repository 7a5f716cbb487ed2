/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// mvCmd represents the mv command
var mvCmd = &cobra.Command{
	Use:   "mv OLD NEW",
	Short: "Rename a file or directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fsutil.Rename(appFs, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}

/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// chvisCmd represents the chvis command
var chvisCmd = &cobra.Command{
	Use:   "chvis PATH public|private",
	Short: "Set the visibility of a file or directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vis, err := fsutil.ParseVisibility(args[1])
		if err != nil {
			return err
		}
		return fsutil.SetVisibility(appFs, args[0], vis)
	},
}

func init() {
	rootCmd.AddCommand(chvisCmd)
}

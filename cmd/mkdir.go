/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// mkdirCmd represents the mkdir command
var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH",
	Short: "Create a directory and its parents",
	Args:  cobra.ExactArgs(1),
	RunE:  runMkdir,
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
	mkdirCmd.Flags().String("visibility", "", "public or private (defaults to fs.visibility)")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	vis, err := visibilityFlag(cmd)
	if err != nil {
		return err
	}
	return fsutil.CreateDir(appFs, args[0], vis)
}

func visibilityFlag(cmd *cobra.Command) (fsutil.Visibility, error) {
	raw, _ := cmd.Flags().GetString("visibility")
	if raw == "" {
		return defaultVisibility()
	}
	return fsutil.ParseVisibility(raw)
}

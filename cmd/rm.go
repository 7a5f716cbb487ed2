/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fstree/src/fsutil"
	"fstree/src/log"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm PATH",
	Short: "Remove a file, or a directory tree with --recursive",
	Long: `Remove a file, or a whole directory tree with --recursive. Tree removal
keeps going when an entry cannot be removed and lists everything left behind.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolP("recursive", "r", false, "Remove a directory and its contents")
}

func runRemove(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	path := args[0]

	if !recursive {
		return fsutil.Delete(appFs, path)
	}

	err := fsutil.DeleteTree(appFs, path)
	var partial *fsutil.PartialError
	if errors.As(err, &partial) {
		for _, p := range partial.Paths() {
			fmt.Fprintf(cmd.ErrOrStderr(), "not removed: %s\n", p)
		}
		return fmt.Errorf("%d entries under %s could not be removed", len(partial.Errs), path)
	}
	if err == nil {
		log.Debug("removed tree", "path", path)
	}
	return err
}

/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// mimeCmd represents the mime command
var mimeCmd = &cobra.Command{
	Use:   "mime PATH",
	Short: "Print the MIME type of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMime,
}

func init() {
	rootCmd.AddCommand(mimeCmd)
	mimeCmd.Flags().Bool("guess", false, "Only look at the file extension")
}

func runMime(cmd *cobra.Command, args []string) error {
	guess, _ := cmd.Flags().GetBool("guess")

	mt := fsutil.GuessMimeType(args[0])
	if !guess {
		var err error
		if mt, err = fsutil.MimeType(appFs, args[0]); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), mt)
	return nil
}

/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// duCmd represents the du command
var duCmd = &cobra.Command{
	Use:   "du PATH",
	Short: "Print the total size of the files below a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiskUsage,
}

func init() {
	rootCmd.AddCommand(duCmd)
	duCmd.Flags().Bool("bytes", false, "Print the size in bytes")
}

func runDiskUsage(cmd *cobra.Command, args []string) error {
	inBytes, _ := cmd.Flags().GetBool("bytes")

	size, err := fsutil.DirectorySize(appFs, args[0])
	if err != nil {
		return err
	}
	if inBytes {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", size, args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", humanize.Bytes(size), args[0])
	return nil
}

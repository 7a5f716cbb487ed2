/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"fstree/src/fsutil"
	"fstree/src/log"
)

// cpCmd represents the cp command
var cpCmd = &cobra.Command{
	Use:   "cp SRC DST",
	Short: "Copy a file, or a directory tree with --recursive",
	Long: `Copy a file, or the contents of a directory into another with --recursive.
Existing files at the destination are overwritten. The copy stops at the first
entry that fails.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(cpCmd)
	cpCmd.Flags().BoolP("recursive", "r", false, "Copy a directory tree")
	cpCmd.Flags().Bool("progress", false, "Show a progress bar")
}

func runCopy(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	showProgress, _ := cmd.Flags().GetBool("progress")
	src, dst := args[0], args[1]

	if !recursive {
		return fsutil.Copy(appFs, src, dst)
	}

	var opts []fsutil.CopyOption
	if showProgress {
		total := len(fsutil.ListEntries(appFs, src, true))
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("copying"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		opts = append(opts, fsutil.WithProgress(func(ev fsutil.CopyEvent) {
			bar.Add(1)
		}))
	}

	if err := fsutil.CopyTree(appFs, src, dst, opts...); err != nil {
		return err
	}
	log.Debug("copied tree", "src", src, "dst", dst)
	return nil
}

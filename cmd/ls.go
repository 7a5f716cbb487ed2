/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls PATH",
	Short: "List the entries of a directory",
	Long: `List the entries of a directory. With --recursive every descendant is
listed and each directory appears before its contents. A path that is not a
directory lists nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolP("recursive", "r", false, "List all descendants")
	lsCmd.Flags().Bool("json", false, "Print entries as JSON")
	lsCmd.Flags().Bool("sort", false, "Sort entries by path")
}

func runList(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	asJSON, _ := cmd.Flags().GetBool("json")
	sorted, _ := cmd.Flags().GetBool("sort")

	entries := fsutil.ListEntries(appFs, args[0], recursive)
	if sorted {
		fsutil.SortEntries(entries)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, entries)
	}
	for _, e := range entries {
		printEntry(out, e)
	}
	return nil
}

func printEntry(w io.Writer, e fsutil.EntryInfo) {
	kind, size := "-", humanize.Bytes(uint64(e.Size))
	if e.IsDir() {
		kind, size = "d", "-"
	}
	fmt.Fprintf(w, "%s %9s  %s  %s\n", kind, size, e.Modified().Format(time.DateTime), e.Path)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

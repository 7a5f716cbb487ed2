/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fstree/src/fsutil"
)

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat PATH",
	Short: "Show the metadata, visibility and MIME type of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
	statCmd.Flags().Bool("json", false, "Print as JSON")
}

type statOutput struct {
	Entry      fsutil.EntryInfo  `json:"entry"`
	Visibility fsutil.Visibility `json:"visibility"`
	MimeType   string            `json:"mime_type,omitempty"`
}

func runStat(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	path := args[0]

	entry, err := fsutil.GetMetadata(appFs, path)
	if err != nil {
		return err
	}
	vis, err := fsutil.GetVisibility(appFs, path)
	if err != nil {
		return err
	}
	res := statOutput{Entry: entry, Visibility: vis}
	if !entry.IsDir() {
		if res.MimeType, err = fsutil.MimeType(appFs, path); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, res)
	}
	printEntry(out, entry)
	fmt.Fprintf(out, "visibility: %s\n", res.Visibility)
	if res.MimeType != "" {
		fmt.Fprintf(out, "mime: %s\n", res.MimeType)
	}
	return nil
}

/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fstree/src/log"
)

var (
	cfgFile string

	// newFs builds the filesystem commands operate on.
	newFs = func() afero.Fs { return afero.NewOsFs() }
	appFs afero.Fs
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fstree",
	Short: "Inspect and manage directory trees",
	Long: `fstree lists directory trees with normalized metadata, computes their size,
copies them and deletes them. Deletion is best effort and reports what it
could not remove; copying stops at the first failure.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	settingDefaultConfig()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
	viper.BindPFlag("log.verbosity", rootCmd.PersistentFlags().Lookup("verbose"))
}

func setup(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := log.Configure(viper.GetBool("log.development"), viper.GetInt("log.verbosity")); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	appFs = newFs()
	if root := viper.GetString("fs.root"); root != "" {
		appFs = afero.NewBasePathFs(appFs, root)
		log.Debug("using base path", "root", root)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

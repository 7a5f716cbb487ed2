/*
Copyright © 2024 fstree authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"fstree/src/fsutil"
)

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.SetEnvPrefix("fstree")
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for logging
	viper.BindEnv("log.development", "FSTREE_LOG_DEVELOPMENT")
	viper.BindEnv("log.verbosity", "FSTREE_LOG_VERBOSITY")

	// Map environment variables to Viper keys for the filesystem
	viper.BindEnv("fs.visibility", "FSTREE_VISIBILITY")
	viper.BindEnv("fs.root", "FSTREE_ROOT")

	viper.SetDefault("log.development", false)
	viper.SetDefault("log.verbosity", 0)
	viper.SetDefault("fs.visibility", string(fsutil.Public))
	viper.SetDefault("fs.root", "")
}

// loadConfig reads the file given with --config, if any.
func loadConfig() error {
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

func defaultVisibility() (fsutil.Visibility, error) {
	return fsutil.ParseVisibility(viper.GetString("fs.visibility"))
}

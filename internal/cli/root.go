// Package cli implements the compass command: the assessment in a terminal,
// with answers persisted locally so a run can be resumed.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"careercompass/internal/config"
	"careercompass/internal/logging"
)

const app = "compass"

var (
	// Used for flags.
	cfgFile   string
	storePath string
	debug     bool
	jsonLogs  bool

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:               app,
		Short:             "compass runs the career interest assessment in your terminal",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is config.yaml in the current directory)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "directory for saved answers (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging")
}

func setup(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, cfgFile); err != nil {
			return err
		}
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if storePath != "" {
		cfg.LocalStore.Path = storePath
	}

	logCfg := cfg.Logging
	logCfg.Format = "console"
	if jsonLogs {
		logCfg.Format = "json"
	}
	if debug {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfriday/rifme-grabber/internal/config"
	"github.com/nfriday/rifme-grabber/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file.",
	// The parent's PersistentPreRun would try to load the very file
	// these subcommands exist to create, so it is overridden here.
	PersistentPreRun: func(_ *cobra.Command, _ []string) {},
}

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file populated with the default settings.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := config.WriteDefaultConfig(configFilenameFromFlag); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to create configuration file: %v", err)
		}

		logger.Infof(cmd.Context(), "Configuration file created")
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register subcommands before execution.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

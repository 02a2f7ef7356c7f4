package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nfriday/rifme-grabber/internal/app"
	rifme_client "github.com/nfriday/rifme-grabber/internal/client/rifme"
	"github.com/nfriday/rifme-grabber/internal/config"
	"github.com/nfriday/rifme-grabber/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "rifme-grabber [flags] {word}",
		Short: "Fetch rhyme suggestions for a Russian word from rifme.net.",
		Long: `Rifme Grabber is a CLI tool for fetching rhyme suggestions for a Russian word.

Results can be filtered by:
- Syllable count (without it, all counts from 1 to 8 are fetched concurrently)
- Part of speech (noun, adj, verb, other)
- Position of the stressed syllable, counted from the end of the word

The fetched rhymes are printed to standard output, one per line.`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			options, err := buildRequestOptions(cmd.Flags())
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, args[0], options)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	addRequestFlags(rootCmd.Flags())

	rootCmd.Flags().Bool(
		"progress",
		false,
		"show a progress bar on stderr while fetching all syllable counts.")
}

// addRequestFlags registers the rhyme lookup filter flags on the given flag set.
func addRequestFlags(flags *pflag.FlagSet) {
	flags.IntP(
		"syllables",
		"s",
		0,
		"number of syllables: a positive value requests exactly that count, 0 fetches all counts from 1 to 8.")

	flags.StringP(
		"part",
		"p",
		"",
		"part of speech: noun, adj, verb or other (all by default).")

	flags.IntP(
		"emphasis",
		"e",
		0,
		"position of the stressed syllable from the end of the word: 0 for the last, 1 for the 2nd last, etc.")
}

// buildRequestOptions translates the lookup filter flags into request options.
// A flag left at its default is treated as an absent filter.
func buildRequestOptions(flags *pflag.FlagSet) (*rifme_client.RequestOptions, error) {
	options := &rifme_client.RequestOptions{}

	if flag := flags.Lookup("syllables"); flag != nil && flag.Changed {
		syllables, _ := flags.GetInt("syllables")
		options.Syllables = &syllables
	}

	if flag := flags.Lookup("part"); flag != nil && flag.Changed {
		rawPart, _ := flags.GetString("part")

		part, err := rifme_client.ParsePartOfSpeech(rawPart)
		if err != nil {
			return nil, err
		}

		options.Part = &part
	}

	if flag := flags.Lookup("emphasis"); flag != nil && flag.Changed {
		emphasis, _ := flags.GetInt("emphasis")
		options.Emphasis = &emphasis
	}

	return options, nil
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("progress"); flag != nil && flag.Changed {
		cfg.ShowProgress, _ = flags.GetBool("progress")
	}

	return config.ValidateConfig(cfg)
}

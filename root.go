package main

import (
	"io"
	"os"

	"github.com/Drolfothesgnir/minidom/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	logOutput io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "minidom",
	Short: "minidom - a tiny markup parser and document store",
	Long: `minidom turns a small subset of HTML into a flat, index-addressed document:
every element and text run becomes a node carrying its kind, its text and the
index of its parent.

The parser is forgiving: malformed input never fails, the problems found on the
way are reported as warnings.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(os.Getenv("ENVIRONMENT"))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", ".", "directory holding app.env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogger replaces the global logger. Only the development environment
// gets the console writer; everything else logs JSON lines.
func setupLogger(environment string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if environment == "development" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: logOutput}).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(logOutput).With().Timestamp().Logger()
}

func loadConfig() (util.Config, error) {
	config, err := util.LoadConfig(cfgPath)
	if err != nil {
		return config, err
	}

	setupLogger(config.Environment)
	return config, nil
}

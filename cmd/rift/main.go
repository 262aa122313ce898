package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rift/config"
)

var (
	cfgPath string
	verbose bool

	cfg    config.Config
	logger zerolog.Logger

	rootCmd = &cobra.Command{
		Use:   "rift",
		Short: "Lane advisor and match simulator",
		Long: `rift searches an abstract lane state for the best next move,
explains the pick in plain English, and can simulate whole matches.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger = newLogger(cfg.Log)
			return nil
		},
	}
)

func newLogger(lc config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	var out = zerolog.New(os.Stderr)
	if lc.Pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return out.Level(level).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd, adviseCmd, simulateCmd, planCmd, patchesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"decisiontree/experiments"
	"decisiontree/meta"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "decisiontree",
		Short:         "Decision tree experiments",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newExperimentCmd())
	return root
}

func newExperimentCmd() *cobra.Command {
	var configPath string
	var out string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play agent matchups on Nim and store the records as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := experiments.LoadConfig(configPath)
			if err != nil {
				return err
			}

			summary, err := experiments.Run(config, out)
			if err != nil {
				return fmt.Errorf("experiment %s failed: %w", config.Name, err)
			}

			for _, agent := range config.Agents {
				fmt.Fprintf(cmd.OutOrStdout(), "agent %d (permanent=%t): %d of %d games won\n",
					agent.ID, agent.Permanent, summary.Wins[agent.ID], summary.Games)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "records stored in %s\n", summary.Dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "experiment config file (YAML); defaults are used when empty")
	cmd.Flags().StringVar(&out, "out", meta.OUTPUT_DIR, "directory to store experiment records in")
	return cmd
}

func setupLogger(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}

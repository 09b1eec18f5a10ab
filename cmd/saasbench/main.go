package main

import (
	"fmt"
	"os"

	"github.com/mugiliam/saasbench/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "saasbench",
	Short: "Replay and evaluate simulated data-platform workflows",
	Long: `saasbench drives agent workflows against a simulated data-platform
workspace. Workflows are YAML documents pairing an initial workspace state
with a goal state and an ordered list of tool calls; replaying one executes
every step through the tool library and scores the final state against the
goal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := config.Load(configPath); err != nil {
				return fmt.Errorf("failed to load config %s: %w", configPath, err)
			}
		}
		level, err := zerolog.ParseLevel(config.Config().LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to saasbench.conf")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(specsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flags shared by every command
type rootFlags struct {
	configPath string
	seed       int64
	height     int
	width      int
}

func main() {
	setupLogging()

	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:           "dungeon-carver",
		Short:         "Procedural dungeon generator with rooms and maze corridors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().Int64VarP(&flags.seed, "seed", "s", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().IntVar(&flags.height, "height", 0, "map height in tiles (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flags.width, "width", 0, "map width in tiles (overrides config)")

	rootCmd.AddCommand(viewCmd(flags))
	rootCmd.AddCommand(generateCmd(flags))
	rootCmd.AddCommand(batchCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func viewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open a window showing a generated dungeon (R regenerates, C clears)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, flags)
		},
	}
}

func generateCmd(flags *rootFlags) *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one dungeon and print it as ASCII",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags, showStats)
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print map statistics after the map")
	return cmd
}

func batchCmd(flags *rootFlags) *cobra.Command {
	var count, workers int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many dungeons in parallel and report their statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, flags, count, workers)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of maps to generate")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "maximum maps generated at once")
	return cmd
}

func setupLogging() {
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dungeon-carver/config"
	"dungeon-carver/generation"
	"dungeon-carver/systems"
)

// loadConfig builds the generator settings: defaults or the YAML file, then
// DUNGEON_* environment variables, then command-line flags
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}

	persistent := cmd.Flags()
	if persistent.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if persistent.Changed("height") {
		cfg.MapHeight = flags.height
	}
	if persistent.Changed("width") {
		cfg.MapWidth = flags.width
	}

	return cfg.Normalize(), nil
}

func runView(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	viewer := NewViewer(cfg, log.Logger)

	windowWidth, windowHeight := cfg.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Dungeon Generator")

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, showStats bool) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	gen := generation.NewDungeonGenerator(cfg)
	gen.SetLogger(log.Logger)

	stats, err := gen.Generate()
	if err != nil && !errors.Is(err, generation.ErrRoomTargetNotReached) {
		return err
	}

	out := cmd.OutOrStdout()
	if err := systems.RenderASCII(out, gen.Dungeon()); err != nil {
		return fmt.Errorf("writing map: %w", err)
	}

	if showStats {
		fmt.Fprintf(out, "seed=%d rooms=%d regions=%d floors=%d corridors=%d doors=%d walls=%d\n",
			stats.Seed, stats.Rooms, stats.Regions, stats.Floors, stats.Corridors, stats.Doors, stats.Walls)
	}
	return nil
}

func runBatch(cmd *cobra.Command, flags *rootFlags, count, workers int) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	start := time.Now()
	results, err := generation.GenerateBatch(cmd.Context(), cfg, seeds, workers)
	if err != nil {
		return err
	}
	log.Info().Int("maps", count).Dur("elapsed", time.Since(start)).Msg("batch finished")

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tROOMS\tREGIONS\tFLOORS\tCORRIDORS\tDOORS\tNOTE")
	for _, r := range results {
		note := ""
		if r.Err != nil {
			note = r.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.Seed, r.Stats.Rooms, r.Stats.Regions, r.Stats.Floors, r.Stats.Corridors, r.Stats.Doors, note)
	}
	return tw.Flush()
}

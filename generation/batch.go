package generation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dungeon-carver/config"
)

// BatchResult is the outcome of generating one map of a batch
type BatchResult struct {
	Seed  int64
	Stats Stats
	Err   error
}

// GenerateBatch generates one map per seed using independent generators, at
// most workers at a time (workers <= 0 means no limit). Results keep the
// order of seeds. Per-map errors such as a missed room target are reported in
// each result; the returned error is only set when ctx is cancelled.
func GenerateBatch(ctx context.Context, cfg config.Config, seeds []int64, workers int) ([]BatchResult, error) {
	results := make([]BatchResult, len(seeds))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, seed := range seeds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			mapCfg := cfg
			mapCfg.Seed = seed
			gen := NewDungeonGenerator(mapCfg)
			stats, err := gen.Generate()

			results[i] = BatchResult{Seed: gen.Seed(), Stats: stats, Err: err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

package generation

import (
	"errors"
	"iter"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"dungeon-carver/components"
	"dungeon-carver/config"
)

// DungeonGenerator handles procedural generation of dungeon layouts. It owns
// one Dungeon and the rooms stamped into it. A generator is not safe for
// concurrent use; run one per goroutine.
type DungeonGenerator struct {
	cfg     config.Config
	dungeon *components.Dungeon
	rooms   []*components.Room

	rng            *rand.Rand
	seed           int64
	windingPercent int

	log zerolog.Logger
}

// Stats summarizes a generated map
type Stats struct {
	Seed      int64 `json:"seed"`
	Rooms     int   `json:"rooms"`
	Regions   int   `json:"regions"`
	Floors    int   `json:"floors"`
	Corridors int   `json:"corridors"`
	Doors     int   `json:"doors"`
	Walls     int   `json:"walls"`
}

// NewDungeonGenerator creates a new dungeon generator for the given settings.
// The map starts out as solid wall. A zero cfg.Seed picks a time-based seed.
func NewDungeonGenerator(cfg config.Config) *DungeonGenerator {
	cfg = cfg.Normalize()

	g := &DungeonGenerator{
		cfg:            cfg,
		dungeon:        components.NewDungeon(cfg.MapHeight, cfg.MapWidth),
		windingPercent: cfg.WindingPercent,
		log:            zerolog.Nop(),
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.SetSeed(seed)

	return g
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the random source was last reset with
func (g *DungeonGenerator) Seed() int64 {
	return g.seed
}

// SetLogger replaces the generator's logger. The default discards everything.
func (g *DungeonGenerator) SetLogger(logger zerolog.Logger) {
	g.log = logger
}

// SetWindingPercent sets how often corridors turn, from 0 (straight) to 100
func (g *DungeonGenerator) SetWindingPercent(percent int) {
	g.windingPercent = percent
}

// Width of the map in tiles
func (g *DungeonGenerator) Width() int { return g.dungeon.Width }

// Height of the map in tiles
func (g *DungeonGenerator) Height() int { return g.dungeon.Height }

// Dungeon returns the grid being generated
func (g *DungeonGenerator) Dungeon() *components.Dungeon { return g.dungeon }

// Rooms returns the rooms placed so far, in placement order
func (g *DungeonGenerator) Rooms() []*components.Room { return g.rooms }

// Config returns the normalized settings the generator was built with
func (g *DungeonGenerator) Config() config.Config { return g.cfg }

// Tile returns the tile at (x, y); out-of-bounds coordinates give an empty tile
func (g *DungeonGenerator) Tile(x, y int) components.Tile {
	return g.dungeon.TileAt(x, y)
}

// Region returns the region id at p
func (g *DungeonGenerator) Region(p components.Point) int {
	return g.dungeon.Region(p)
}

// All yields every point and tile of the map in row-major order
func (g *DungeonGenerator) All() iter.Seq2[components.Point, components.Tile] {
	return g.dungeon.All()
}

// InitializeMap fills every cell with wall and forgets all rooms and regions
func (g *DungeonGenerator) InitializeMap() {
	g.dungeon.Fill(components.TileWall)
	g.rooms = nil
}

// Clear resets the map so it can be regenerated without reallocating
func (g *DungeonGenerator) Clear() {
	g.dungeon.Clear()
	g.rooms = nil
}

// Generate runs the full pipeline described by the generator's config:
// rooms, corridors and, when enabled, the region connector and dead-end
// pruning. A missed room target is logged and returned, but the map is
// still complete.
func (g *DungeonGenerator) Generate() (Stats, error) {
	cfg := g.cfg
	g.InitializeMap()

	placed, err := g.PlaceRandomRooms(cfg.MinRoomSize, cfg.MaxRoomSize, cfg.RoomStep, cfg.RoomMargin, cfg.RoomAttempts, cfg.RoomCount)
	if err != nil {
		if !errors.Is(err, ErrRoomTargetNotReached) {
			return g.Stats(), err
		}
		g.log.Warn().Err(err).Int("placed", placed).Int("target", cfg.RoomCount).Msg("room target not reached")
	}

	runs := g.BuildCorridors()
	g.log.Debug().Int("mazes", runs).Msg("corridors built")

	if cfg.Connect {
		doors := g.ConnectRegions(cfg.ExtraDoorPercent)
		g.log.Debug().Int("doors", doors).Msg("regions connected")
	}
	if cfg.PruneDeadEnds {
		removed := g.PruneDeadEnds(0)
		g.log.Debug().Int("removed", removed).Msg("dead ends pruned")
	}

	stats := g.Stats()
	g.log.Info().
		Int64("seed", stats.Seed).
		Int("rooms", stats.Rooms).
		Int("regions", stats.Regions).
		Msg("dungeon generated")

	return stats, err
}

// Stats counts the rooms, regions and tiles of the current map
func (g *DungeonGenerator) Stats() Stats {
	s := Stats{
		Seed:    g.seed,
		Rooms:   len(g.rooms),
		Regions: g.dungeon.CurrentRegion() + 1,
	}
	for _, tile := range g.dungeon.All() {
		switch tile.Label {
		case components.TileFloor:
			s.Floors++
		case components.TileCorridor:
			s.Corridors++
		case components.TileDoor:
			s.Doors++
		case components.TileWall:
			s.Walls++
		}
	}
	return s
}

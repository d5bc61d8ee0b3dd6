package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default generation settings
const (
	LevelSize        = 100
	MinRoomSize      = 5
	MaxRoomSize      = 11
	RoomMargin       = 1
	RoomAttempts     = 500
	WindingPercent   = 0
	ExtraDoorPercent = 5
)

// Config holds the map and generation settings consumed by the generator
type Config struct {
	MapHeight int `yaml:"map_height"`
	MapWidth  int `yaml:"map_width"`
	TileSize  int `yaml:"tile_size"`

	// RoomCount is the target number of rooms. 0 means place as many as fit.
	RoomCount    int `yaml:"room_count"`
	MinRoomSize  int `yaml:"min_room_size"`
	MaxRoomSize  int `yaml:"max_room_size"`
	RoomStep     int `yaml:"room_step"`
	RoomMargin   int `yaml:"room_margin"`
	RoomAttempts int `yaml:"room_attempts"`

	// WindingPercent (0-100) is the chance a corridor turns instead of
	// continuing straight
	WindingPercent int `yaml:"winding_percent"`

	// Connect runs the region connector after corridors are built
	Connect          bool `yaml:"connect"`
	ExtraDoorPercent int  `yaml:"extra_door_percent"`
	PruneDeadEnds    bool `yaml:"prune_dead_ends"`

	// Seed for random number generation. A seed of 0 means a random seed
	// will be generated.
	Seed int64 `yaml:"seed"`
}

// Default returns the settings the generator uses when nothing is configured
func Default() Config {
	return Config{
		MapHeight:        LevelSize,
		MapWidth:         LevelSize + 1,
		TileSize:         TileSize,
		MinRoomSize:      MinRoomSize,
		MaxRoomSize:      MaxRoomSize,
		RoomStep:         1,
		RoomMargin:       RoomMargin,
		RoomAttempts:     RoomAttempts,
		WindingPercent:   WindingPercent,
		ExtraDoorPercent: ExtraDoorPercent,
	}
}

// Normalize applies the only correction the generator makes to its input:
// negative map dimensions become positive
func (c Config) Normalize() Config {
	if c.MapHeight < 0 {
		c.MapHeight = -c.MapHeight
	}
	if c.MapWidth < 0 {
		c.MapWidth = -c.MapWidth
	}
	return c
}

// Load reads a config from a YAML file. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	return cfg.Normalize(), nil
}

// FromEnv overlays DUNGEON_* environment variables onto cfg. A .env file in
// the working directory is loaded first when present.
func FromEnv(cfg Config) (Config, error) {
	_ = godotenv.Load()

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEON_MAP_HEIGHT", &cfg.MapHeight},
		{"DUNGEON_MAP_WIDTH", &cfg.MapWidth},
		{"DUNGEON_TILE_SIZE", &cfg.TileSize},
		{"DUNGEON_ROOM_COUNT", &cfg.RoomCount},
		{"DUNGEON_MIN_ROOM_SIZE", &cfg.MinRoomSize},
		{"DUNGEON_MAX_ROOM_SIZE", &cfg.MaxRoomSize},
		{"DUNGEON_ROOM_STEP", &cfg.RoomStep},
		{"DUNGEON_ROOM_MARGIN", &cfg.RoomMargin},
		{"DUNGEON_ROOM_ATTEMPTS", &cfg.RoomAttempts},
		{"DUNGEON_WINDING_PERCENT", &cfg.WindingPercent},
		{"DUNGEON_EXTRA_DOOR_PERCENT", &cfg.ExtraDoorPercent},
	}
	for _, f := range ints {
		v, ok := os.LookupEnv(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", f.key, err)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"DUNGEON_CONNECT", &cfg.Connect},
		{"DUNGEON_PRUNE_DEAD_ENDS", &cfg.PruneDeadEnds},
	}
	for _, f := range bools {
		v, ok := os.LookupEnv(f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", f.key, err)
		}
		*f.dst = b
	}

	if v := os.Getenv("DUNGEON_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parsing DUNGEON_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg.Normalize(), nil
}

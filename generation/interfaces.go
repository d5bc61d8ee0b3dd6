package generation

import (
	"dungeon-carver/components"
)

// MapGenerator is what the presentation layer needs from a generator: run
// the pipeline, reset, and read the finished map
type MapGenerator interface {
	Generate() (Stats, error)
	Clear()
	Dungeon() *components.Dungeon
	Stats() Stats
	SetSeed(seed int64)
}

var _ MapGenerator = (*DungeonGenerator)(nil)

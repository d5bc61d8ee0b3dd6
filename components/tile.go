package components

import "fmt"

// TileType labels a single grid cell
type TileType int

// Tile types. TileEmpty is the zero value so an unpopulated Tile is the
// empty sentinel.
const (
	TileEmpty TileType = iota
	TileWall
	TileFloor
	TileDoor
	TileCorridor
)

var tileTypeNames = map[TileType]string{
	TileEmpty:    "EMPTY",
	TileWall:     "WALL",
	TileFloor:    "FLOOR",
	TileDoor:     "DOOR",
	TileCorridor: "CORRIDOR",
}

func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// Tile is one cell of the dungeon grid
type Tile struct {
	Position Point
	Label    TileType
	Passable bool
}

// NewTile creates a tile with the given label. Only floors are passable.
func NewTile(p Point, label TileType) Tile {
	return Tile{
		Position: p,
		Label:    label,
		Passable: label == TileFloor,
	}
}

// EmptyTile returns the unset sentinel tile at p. It is also what
// out-of-bounds lookups return, so use Dungeon.InBounds to tell the two apart.
func EmptyTile(p Point) Tile {
	return Tile{Position: p, Label: TileEmpty}
}

// WithPassable returns a copy of the tile with passability overridden
func (t Tile) WithPassable(passable bool) Tile {
	t.Passable = passable
	return t
}

// X returns the tile's column
func (t Tile) X() int { return t.Position.X }

// Y returns the tile's row
func (t Tile) Y() int { return t.Position.Y }

func (t Tile) String() string {
	return fmt.Sprintf("Tile%s = %s, %t", t.Position, t.Label, t.Passable)
}

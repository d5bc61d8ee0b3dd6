package components

import (
	"fmt"
	"iter"
)

// NoRegion marks a cell that does not belong to any room or maze run
const NoRegion = -1

// Dungeon stores the tile grid and the parallel region grid. Both are
// indexed [y][x].
type Dungeon struct {
	Width  int
	Height int

	tiles         [][]Tile
	regions       [][]int
	currentRegion int
}

// NewDungeon creates a new map with the given dimensions, filled with walls.
// Negative dimensions are normalized to their absolute value.
func NewDungeon(height, width int) *Dungeon {
	d := &Dungeon{
		Width:  abs(width),
		Height: abs(height),
	}
	d.tiles = make([][]Tile, d.Height)
	d.regions = make([][]int, d.Height)
	for y := 0; y < d.Height; y++ {
		d.tiles[y] = make([]Tile, d.Width)
		d.regions[y] = make([]int, d.Width)
	}
	d.Fill(TileWall)
	return d
}

// Rows is the number of rows in the grid
func (d *Dungeon) Rows() int { return d.Height }

// Columns is the number of columns in the grid
func (d *Dungeon) Columns() int { return d.Width }

// InBounds returns true if p is a cell of the grid
func (d *Dungeon) InBounds(p Point) bool {
	return p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.Height
}

// Tile returns the tile at p, or an empty sentinel positioned at p when p is
// out of bounds
func (d *Dungeon) Tile(p Point) Tile {
	if !d.InBounds(p) {
		return EmptyTile(p)
	}
	return d.tiles[p.Y][p.X]
}

// TileAt is Tile for callers holding separate coordinates
func (d *Dungeon) TileAt(x, y int) Tile {
	return d.Tile(Point{X: x, Y: y})
}

// SetTile replaces the tile at p with a new tile of the given label.
// p must be in bounds.
func (d *Dungeon) SetTile(p Point, label TileType) {
	d.mustBeInBounds(p)
	d.tiles[p.Y][p.X] = NewTile(p, label)
}

// Region returns the region id at p, or NoRegion when p is out of bounds
func (d *Dungeon) Region(p Point) int {
	if !d.InBounds(p) {
		return NoRegion
	}
	return d.regions[p.Y][p.X]
}

// SetRegion assigns a region id to p. p must be in bounds.
func (d *Dungeon) SetRegion(p Point, region int) {
	d.mustBeInBounds(p)
	d.regions[p.Y][p.X] = region
}

// Carve sets both the tile label and the region of p
func (d *Dungeon) Carve(p Point, label TileType, region int) {
	d.SetTile(p, label)
	d.SetRegion(p, region)
}

// NewRegion advances the region counter and returns the new id. The first id
// handed out after a reset is 0.
func (d *Dungeon) NewRegion() int {
	d.currentRegion++
	return d.currentRegion
}

// CurrentRegion returns the last id handed out by NewRegion, or NoRegion
func (d *Dungeon) CurrentRegion() int {
	return d.currentRegion
}

// Fill resets every cell to label, every region to NoRegion and restarts the
// region counter
func (d *Dungeon) Fill(label TileType) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			p := Point{X: x, Y: y}
			d.tiles[y][x] = NewTile(p, label)
			d.regions[y][x] = NoRegion
		}
	}
	d.currentRegion = NoRegion
}

// Clear resets the map to solid wall
func (d *Dungeon) Clear() {
	d.Fill(TileWall)
}

// All yields every point and tile in row-major order
func (d *Dungeon) All() iter.Seq2[Point, Tile] {
	return func(yield func(Point, Tile) bool) {
		for y := 0; y < d.Height; y++ {
			for x := 0; x < d.Width; x++ {
				if !yield(Point{X: x, Y: y}, d.tiles[y][x]) {
					return
				}
			}
		}
	}
}

// Count returns the number of cells carrying label
func (d *Dungeon) Count(label TileType) int {
	n := 0
	for _, tile := range d.All() {
		if tile.Label == label {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds points around p in the given directions
func (d *Dungeon) Neighbors(p Point, dirs []Direction) []Point {
	result := make([]Point, 0, len(dirs))
	for _, dir := range dirs {
		n := p.Add(dir)
		if d.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

func (d *Dungeon) mustBeInBounds(p Point) {
	if !d.InBounds(p) {
		panic(fmt.Sprintf("dungeon: point %s outside %dx%d grid", p, d.Width, d.Height))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package generation

import (
	"slices"

	"dungeon-carver/components"
)

// CanCarve reports whether a corridor may be extended two cells from p in
// dir. The cell three steps away must be on the map and the cell two steps
// away must still be wall, which keeps at least one wall between parallel
// corridors. The cell in between must be wall too, so a maze never cuts
// through a room narrower than two tiles.
func (g *DungeonGenerator) CanCarve(p components.Point, dir components.Direction) bool {
	if !g.dungeon.InBounds(p.Add(dir.Scale(3))) {
		return false
	}
	return g.dungeon.Tile(p.Add(dir.Scale(2))).Label == components.TileWall &&
		g.dungeon.Tile(p.Add(dir)).Label == components.TileWall
}

// GrowMaze carves a maze with the recursive backtracker starting at start,
// which must be a wall. The whole run shares one new region. It returns that
// region, or NoRegion if start was not a wall.
func (g *DungeonGenerator) GrowMaze(start components.Point, label components.TileType) int {
	if g.dungeon.Tile(start).Label != components.TileWall {
		return components.NoRegion
	}

	region := g.dungeon.NewRegion()
	g.dungeon.Carve(start, label, region)

	cells := []components.Point{start}
	var lastDir *components.Direction

	for len(cells) > 0 {
		cell := cells[len(cells)-1]

		// See which adjacent cells are open
		var open []components.Direction
		for _, dir := range components.Cardinal() {
			if g.CanCarve(cell, dir) {
				open = append(open, dir)
			}
		}

		if len(open) == 0 {
			// Dead end; backtrack
			cells = cells[:len(cells)-1]
			lastDir = nil
			continue
		}

		var dir components.Direction
		if lastDir != nil && slices.Contains(open, *lastDir) && g.rng.Intn(100) >= g.windingPercent {
			dir = *lastDir
		} else {
			dir = open[g.rng.Intn(len(open))]
		}

		g.dungeon.Carve(cell.Add(dir), label, region)
		next := cell.Add(dir.Scale(2))
		g.dungeon.Carve(next, label, region)

		cells = append(cells, next)
		lastDir = &dir
	}

	return region
}

// BuildCorridors fills the space left between rooms with mazes. Seeds are
// taken from the odd/odd lattice in row-major order; every seed that is still
// wall starts a new maze run. It returns the number of runs.
func (g *DungeonGenerator) BuildCorridors() int {
	runs := 0
	for y := 1; y < g.dungeon.Height; y += 2 {
		for x := 1; x < g.dungeon.Width; x += 2 {
			p := components.Pt(x, y)
			if g.dungeon.Tile(p).Label != components.TileWall {
				continue
			}
			if g.GrowMaze(p, components.TileCorridor) != components.NoRegion {
				runs++
			}
		}
	}
	return runs
}

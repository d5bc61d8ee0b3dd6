package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-carver/components"
	"dungeon-carver/systems"
)

// DungeonRenderer draws a dungeon as a grid of coloured squares
type DungeonRenderer struct {
	TileSize int
}

// NewDungeonRenderer creates a renderer drawing tiles of tileSize pixels
func NewDungeonRenderer(tileSize int) *DungeonRenderer {
	return &DungeonRenderer{TileSize: tileSize}
}

// Draw renders the tiles visible through camera, starting offsetY pixels
// below the top of the screen
func (r *DungeonRenderer) Draw(screen *ebiten.Image, d *components.Dungeon, camera *systems.CameraSystem, offsetY int) {
	// Leave a one pixel gap between tiles to create the grid illusion
	size := float32(max(r.TileSize-1, 1))

	for y := 0; y < camera.ViewHeight; y++ {
		for x := 0; x < camera.ViewWidth; x++ {
			// Convert screen position to world position
			worldX, worldY := camera.ScreenToWorld(x, y)
			p := components.Pt(worldX, worldY)

			// Skip if out of map bounds
			if !d.InBounds(p) {
				continue
			}

			tile := d.Tile(p)
			vector.DrawFilledRect(screen,
				float32(x*r.TileSize), float32(offsetY+y*r.TileSize),
				size, size,
				systems.TileColor(tile.Label), false)
		}
	}
}

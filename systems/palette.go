package systems

import (
	"image/color"

	"dungeon-carver/components"
)

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune       // Character used by the ASCII renderer
	FG    color.RGBA // Fill colour used by the tile renderer
}

// tileDefinitions maps tile types to their visual representation
var tileDefinitions = map[components.TileType]TileDefinition{
	components.TileWall:     {Glyph: '#', FG: color.RGBA{255, 255, 255, 255}},
	components.TileFloor:    {Glyph: '.', FG: color.RGBA{191, 191, 191, 255}},
	components.TileDoor:     {Glyph: '+', FG: color.RGBA{255, 128, 128, 255}},
	components.TileCorridor: {Glyph: ',', FG: color.RGBA{128, 128, 128, 255}},
	components.TileEmpty:    {Glyph: ' ', FG: color.RGBA{99, 204, 99, 255}},
}

// GetTileDefinition returns the visual definition for a given tile type
func GetTileDefinition(t components.TileType) TileDefinition {
	if def, exists := tileDefinitions[t]; exists {
		return def
	}

	// Return a default if the tile type isn't defined
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
	}
}

// TileColor returns the display colour of a tile type
func TileColor(t components.TileType) color.RGBA {
	return GetTileDefinition(t).FG
}

// TileGlyph returns the ASCII character of a tile type
func TileGlyph(t components.TileType) rune {
	return GetTileDefinition(t).Glyph
}

package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 6

	// Window dimensions in pixels
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Height of the status line drawn above the map, in pixels
	StatusBarHeight = 16
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the window size needed to show the whole map at the
// configured tile size, capped to the screen dimensions
func (c Config) GetWindowSize() (width, height int) {
	tileSize := c.TileSize
	if tileSize <= 0 {
		tileSize = TileSize
	}
	width = min(c.MapWidth*tileSize, ScreenWidth)
	height = min(c.MapHeight*tileSize+StatusBarHeight, ScreenHeight)
	return max(width, 320), max(height, 240)
}

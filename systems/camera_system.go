package systems

// CameraSystem handles viewport positioning and scrolling over a map that may
// be larger than the window. Positions are in tiles.
type CameraSystem struct {
	X, Y int

	// Viewport size in tiles
	ViewWidth  int
	ViewHeight int

	// Map size in tiles
	MapWidth  int
	MapHeight int
}

// NewCameraSystem creates a camera for a viewport of the given size
func NewCameraSystem(viewWidth, viewHeight int) *CameraSystem {
	return &CameraSystem{ViewWidth: viewWidth, ViewHeight: viewHeight}
}

// SetMapSize updates the map bounds and re-applies the boundary constraints
func (s *CameraSystem) SetMapSize(width, height int) {
	s.MapWidth = width
	s.MapHeight = height
	s.clamp()
}

// Move scrolls the camera by dx, dy tiles, constrained to the map
func (s *CameraSystem) Move(dx, dy int) {
	s.X += dx
	s.Y += dy
	s.clamp()
}

// CenterOn puts the given tile in the middle of the viewport
func (s *CameraSystem) CenterOn(x, y int) {
	s.X = x - s.ViewWidth/2
	s.Y = y - s.ViewHeight/2
	s.clamp()
}

// WorldToScreen converts map coordinates to viewport coordinates
func (s *CameraSystem) WorldToScreen(worldX, worldY int) (screenX, screenY int) {
	return worldX - s.X, worldY - s.Y
}

// ScreenToWorld converts viewport coordinates to map coordinates
func (s *CameraSystem) ScreenToWorld(screenX, screenY int) (worldX, worldY int) {
	return screenX + s.X, screenY + s.Y
}

// IsVisible checks if a map position is inside the viewport
func (s *CameraSystem) IsVisible(worldX, worldY int) bool {
	return worldX >= s.X &&
		worldX < s.X+s.ViewWidth &&
		worldY >= s.Y &&
		worldY < s.Y+s.ViewHeight
}

// clamp keeps the viewport inside the map. Maps smaller than the viewport
// are pinned to the origin.
func (s *CameraSystem) clamp() {
	if s.X > s.MapWidth-s.ViewWidth {
		s.X = s.MapWidth - s.ViewWidth
	}
	if s.X < 0 {
		s.X = 0
	}

	if s.Y > s.MapHeight-s.ViewHeight {
		s.Y = s.MapHeight - s.ViewHeight
	}
	if s.Y < 0 {
		s.Y = 0
	}
}

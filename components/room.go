package components

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Room represents a rectangular room within the dungeon. It only describes
// an area that has been stamped into a Dungeon; the grid stays the source of
// truth for tile and region state.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
	Region        int // Region id assigned at placement, NoRegion before

	// Connections holds the regions this room has been joined to by doors
	Connections mapset.Set[int]
}

// NewRoom creates an unplaced room
func NewRoom(x, y, width, height int) *Room {
	return &Room{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Region:      NoRegion,
		Connections: mapset.New[int](),
	}
}

// Right is the last column covered by the room
func (r *Room) Right() int { return r.X + r.Width - 1 }

// Bottom is the last row covered by the room
func (r *Room) Bottom() int { return r.Y + r.Height - 1 }

func (r *Room) TopLeft() Point     { return Point{X: r.X, Y: r.Y} }
func (r *Room) TopRight() Point    { return Point{X: r.Right(), Y: r.Y} }
func (r *Room) BottomLeft() Point  { return Point{X: r.X, Y: r.Bottom()} }
func (r *Room) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Center returns the center coordinates of the room
func (r *Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the room
func (r *Room) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects returns true if this room overlaps with another room
func (r *Room) Intersects(other *Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Expand returns an unplaced room grown by margin on all four sides
func (r *Room) Expand(margin int) *Room {
	return NewRoom(r.X-margin, r.Y-margin, r.Width+margin*2, r.Height+margin*2)
}

// Points yields every point covered by the room, row by row
func (r *Room) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := r.Y; y <= r.Bottom(); y++ {
			for x := r.X; x <= r.Right(); x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Area is the number of cells covered by the room
func (r *Room) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

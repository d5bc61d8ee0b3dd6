package components

import "fmt"

// Point is an integer grid coordinate. It is comparable, so it can be used
// directly as a map key.
type Point struct {
	X, Y int
}

// NoPoint is the default position of sentinel tiles
var NoPoint = Point{X: -1, Y: -1}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of p and o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by k
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a unit step on the grid. Y grows downwards, matching row order.
type Direction = Point

var (
	North     = Direction{X: 0, Y: -1}
	NorthEast = Direction{X: 1, Y: -1}
	East      = Direction{X: 1, Y: 0}
	SouthEast = Direction{X: 1, Y: 1}
	South     = Direction{X: 0, Y: 1}
	SouthWest = Direction{X: -1, Y: 1}
	West      = Direction{X: -1, Y: 0}
	NorthWest = Direction{X: -1, Y: -1}
)

// Cardinal returns the four cardinal directions in N, E, S, W order
func Cardinal() []Direction {
	return []Direction{North, East, South, West}
}

// Every returns all eight neighbour directions
func Every() []Direction {
	return []Direction{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
}

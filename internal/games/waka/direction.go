// Package waka implements the Waka game: an autopilot maze muncher.
// The player agent steers itself with a breadth-first search toward the
// nearest dot while ghosts wander the corridors and a fruit pops up at
// configurable dot thresholds.
package waka

// Direction is one of the four cardinal movement directions, or DirNone
// for a stopped entity. Each cardinal carries a fixed display angle on a
// 360-degree circle: East 0, South 90, North 270, West 180.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

const degreesInCircle = 360

// Directions lists the four cardinals in a fixed order, for iteration.
var Directions = [4]Direction{DirNorth, DirSouth, DirEast, DirWest}

// Angle returns the display angle of the direction in degrees.
// DirNone has no angle and reports 0.
func (d Direction) Angle() int {
	switch d {
	case DirNorth:
		return 270
	case DirSouth:
		return 90
	case DirEast:
		return 0
	case DirWest:
		return 180
	default:
		return 0
	}
}

// Opposite returns the cardinal opposite. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// InterpolateAngle returns the display angle of d while turning toward
// next. When next is unset, equal to d, or the opposite of d, the raw
// angle of d is returned. Otherwise the midpoint of the two raw angles is
// used, with a +360 correction on the smaller angle for the North/East
// pair: (270+0)/2 would yield 135, visually wrong; the corrected average
// is 315.
func (d Direction) InterpolateAngle(next Direction) int {
	if next == DirNone || next == d || next == d.Opposite() {
		return d.Angle()
	}

	a1 := d.Angle()
	a2 := next.Angle()
	if d == DirNorth && next == DirEast {
		a2 += degreesInCircle
	} else if d == DirEast && next == DirNorth {
		a1 += degreesInCircle
	}
	return (a1 + a2) / 2
}

// Delta returns the per-step cell offset of the direction.
// North decreases y, South increases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns a lowercase name for logging and debug output.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	default:
		return "none"
	}
}

// Point is a discrete board cell coordinate.
type Point struct {
	X, Y int
}

// PointF is a continuous pixel location inside the board.
type PointF struct {
	X, Y float64
}

// Step returns a copy of p moved the given number of cells in direction d.
// The input is never mutated; DirNone leaves the point unchanged.
func Step(p Point, d Direction, steps int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*steps, Y: p.Y + dy*steps}
}

package waka

import "testing"

func TestDirectionAngles(t *testing.T) {
	cases := []struct {
		dir  Direction
		want int
	}{
		{DirEast, 0},
		{DirSouth, 90},
		{DirWest, 180},
		{DirNorth, 270},
		{DirNone, 0},
	}
	for _, c := range cases {
		if got := c.dir.Angle(); got != c.want {
			t.Errorf("%v.Angle() = %d, want %d", c.dir, got, c.want)
		}
	}
}

func TestDirectionOppositeInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, d.Opposite().Opposite(), d)
		}
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
	}
	if DirNone.Opposite() != DirNone {
		t.Errorf("DirNone.Opposite() = %v, want DirNone", DirNone.Opposite())
	}
}

func TestInterpolateAngleIdentityCases(t *testing.T) {
	for _, d := range Directions {
		if got := d.InterpolateAngle(DirNone); got != d.Angle() {
			t.Errorf("%v toward none = %d, want %d", d, got, d.Angle())
		}
		if got := d.InterpolateAngle(d); got != d.Angle() {
			t.Errorf("%v toward itself = %d, want %d", d, got, d.Angle())
		}
		if got := d.InterpolateAngle(d.Opposite()); got != d.Angle() {
			t.Errorf("%v toward opposite = %d, want %d", d, got, d.Angle())
		}
	}
}

func TestInterpolateAngleMidpoints(t *testing.T) {
	cases := []struct {
		dir, next Direction
		want      int
	}{
		{DirEast, DirSouth, 45},
		{DirSouth, DirEast, 45},
		{DirSouth, DirWest, 135},
		{DirWest, DirSouth, 135},
		{DirWest, DirNorth, 225},
		{DirNorth, DirWest, 225},
	}
	for _, c := range cases {
		if got := c.dir.InterpolateAngle(c.next); got != c.want {
			t.Errorf("%v toward %v = %d, want %d", c.dir, c.next, got, c.want)
		}
	}
}

func TestInterpolateAngleNorthEastWraparound(t *testing.T) {
	// The naive midpoint of 270 and 0 is 135, on the wrong side of the
	// circle. Both turn orders must land on 315.
	if got := DirNorth.InterpolateAngle(DirEast); got != 315 {
		t.Errorf("north toward east = %d, want 315", got)
	}
	if got := DirEast.InterpolateAngle(DirNorth); got != 315 {
		t.Errorf("east toward north = %d, want 315", got)
	}
}

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNorth, 0, -1},
		{DirSouth, 0, 1},
		{DirEast, 1, 0},
		{DirWest, -1, 0},
		{DirNone, 0, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", c.dir, dx, dy, c.dx, c.dy)
		}
	}
}

func TestStepDoesNotMutate(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Step(p, DirNorth, 2)

	if p != (Point{X: 3, Y: 4}) {
		t.Errorf("Step mutated its input: %v", p)
	}
	if q != (Point{X: 3, Y: 2}) {
		t.Errorf("Step(%v, north, 2) = %v, want {3 2}", Point{3, 4}, q)
	}
	if Step(p, DirNone, 5) != p {
		t.Errorf("Step with DirNone should return the same point")
	}
}

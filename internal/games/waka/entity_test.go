package waka

import (
	"math"
	"testing"
)

func TestSetPositionCentersLocation(t *testing.T) {
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 3, Y: 2})

	if e.Position() != (Point{X: 3, Y: 2}) {
		t.Errorf("Position = %v, want {3 2}", e.Position())
	}
	loc := e.Location()
	if loc.X != 28 || loc.Y != 20 {
		t.Errorf("Location = %v, want {28 20}", loc)
	}

	// Re-setting the same position is idempotent.
	e.SetPosition(e.Position())
	if e.Location() != loc {
		t.Errorf("SetPosition not idempotent: %v != %v", e.Location(), loc)
	}
}

func TestCollisionIsGridBasedAndSymmetric(t *testing.T) {
	a := newEntity()
	b := newEntity()
	a.Resize(8, 8)
	b.Resize(8, 8)

	a.SetPosition(Point{X: 1, Y: 1})
	b.SetPosition(Point{X: 1, Y: 1})

	// Sub-cell offset must not matter.
	b.loc.X += 3.9

	if !a.IsCollidingWith(&b) || !b.IsCollidingWith(&a) {
		t.Error("entities in the same cell should collide, both ways")
	}

	b.SetPosition(Point{X: 2, Y: 1})
	if a.IsCollidingWith(&b) {
		t.Error("entities in different cells should not collide")
	}
}

func TestAdvanceCrossesBoundaryOnce(t *testing.T) {
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 2, Y: 2})
	e.dir = DirEast

	crossings := 0
	for i := 0; i < e.ticksPerCell; i++ {
		e.advance(nil, func(*Game) { crossings++ })
	}

	if crossings != 1 {
		t.Errorf("expected exactly 1 boundary crossing after %d ticks, got %d", e.ticksPerCell, crossings)
	}
	if e.Position() != (Point{X: 3, Y: 2}) {
		t.Errorf("Position = %v, want {3 2}", e.Position())
	}
}

func TestAdvanceWestDecrementsCell(t *testing.T) {
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 2, Y: 2})
	e.dir = DirWest

	crossings := 0
	// Starting at the cell center, moving half a cell west crosses into
	// the next cell.
	for i := 0; i < e.ticksPerCell; i++ {
		e.advance(nil, func(*Game) { crossings++ })
	}

	if crossings != 1 {
		t.Errorf("expected 1 crossing, got %d", crossings)
	}
	if e.Position() != (Point{X: 1, Y: 2}) {
		t.Errorf("Position = %v, want {1 2}", e.Position())
	}
}

func TestAdvanceStoppedEntityFiresMovedEveryTick(t *testing.T) {
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 1, Y: 1})

	calls := 0
	for i := 0; i < 3; i++ {
		e.advance(nil, func(*Game) { calls++ })
	}

	if calls != 3 {
		t.Errorf("stopped entity moved calls = %d, want 3", calls)
	}
	if e.Position() != (Point{X: 1, Y: 1}) {
		t.Errorf("stopped entity moved cells: %v", e.Position())
	}
}

func TestSteerPromotesQueuedDirection(t *testing.T) {
	b := NewBoardFromLayout([]string{
		".....",
		".###.",
		".....",
	})
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 2, Y: 0})
	e.dir = DirEast
	e.nextDir = DirEast

	e.steer(b)
	if e.Dir() != DirEast {
		t.Errorf("Dir = %v, want east", e.Dir())
	}
}

func TestSteerSnapsOnPerpendicularTurn(t *testing.T) {
	b := NewBoardFromLayout([]string{
		".....",
		".#.#.",
		".....",
	})
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 2, Y: 0})
	e.dir = DirEast
	// Drift a little past the center, as happens mid-crossing.
	e.loc.X += 2.5
	e.nextDir = DirSouth

	e.steer(b)

	if e.Dir() != DirSouth {
		t.Fatalf("Dir = %v, want south", e.Dir())
	}
	// The turn must snap the location back to the cell center so the
	// entity stays corridor-aligned.
	if math.Abs(e.Location().X-20) > 1e-9 {
		t.Errorf("Location.X = %v, want 20 (cell center)", e.Location().X)
	}
}

func TestSteerStopsAtDeadEnd(t *testing.T) {
	b := NewBoardFromLayout([]string{
		"#####",
		"#...#",
		"#####",
	})
	e := newEntity()
	e.Resize(8, 8)
	e.SetPosition(Point{X: 3, Y: 1})
	e.dir = DirEast
	e.nextDir = DirEast

	e.steer(b)

	if e.Dir() != DirNone {
		t.Errorf("Dir = %v, want none at dead end", e.Dir())
	}
}

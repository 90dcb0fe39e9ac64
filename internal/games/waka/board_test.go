package waka

import "testing"

func TestNewBoardLatticeGeometry(t *testing.T) {
	b := NewBoard(21, 13, 3, 2)
	if b == nil {
		t.Fatal("NewBoard returned nil for a viable size")
	}

	// Dimensions trimmed to k*spacing+1 so every edge is a corridor.
	if (b.CellsWide()-1)%4 != 0 {
		t.Errorf("width %d is not of the form 4k+1", b.CellsWide())
	}
	if (b.CellsTall()-1)%3 != 0 {
		t.Errorf("height %d is not of the form 3k+1", b.CellsTall())
	}

	// Corridors run along every 4th column and every 3rd row.
	for y := 0; y < b.CellsTall(); y++ {
		for x := 0; x < b.CellsWide(); x++ {
			p := Point{X: x, Y: y}
			corridor := x%4 == 0 || y%3 == 0
			if corridor && !b.IsValidPosition(p) {
				t.Fatalf("corridor cell %v reads as wall", p)
			}
			if !corridor && b.IsValidPosition(p) {
				t.Fatalf("wall cell %v reads as corridor", p)
			}
		}
	}
}

func TestNewBoardTooSmall(t *testing.T) {
	if b := NewBoard(3, 3, 3, 2); b != nil {
		t.Errorf("expected nil board for size too small, got %dx%d", b.CellsWide(), b.CellsTall())
	}
}

func TestBoardDotsAndReset(t *testing.T) {
	b := NewBoard(9, 7, 3, 2)
	if b == nil {
		t.Fatal("NewBoard returned nil")
	}

	total := b.DotsRemaining()
	if total == 0 {
		t.Fatal("fresh board has no dots")
	}
	if b.DotsEaten() != 0 {
		t.Fatalf("fresh board reports %d dots eaten", b.DotsEaten())
	}

	p := Point{X: 0, Y: 0}
	if !b.EatDot(p) {
		t.Fatal("EatDot failed on a dot cell")
	}
	if b.EatDot(p) {
		t.Error("EatDot succeeded twice on the same cell")
	}
	if b.DotsEaten() != 1 || b.DotsRemaining() != total-1 {
		t.Errorf("counters off: eaten=%d remaining=%d", b.DotsEaten(), b.DotsRemaining())
	}

	b.ResetDots()
	if b.DotsEaten() != 0 || b.DotsRemaining() != total {
		t.Errorf("ResetDots did not restore counts: eaten=%d remaining=%d", b.DotsEaten(), b.DotsRemaining())
	}
	if b.CellAt(p) != CellDot {
		t.Error("ResetDots did not refill the eaten cell")
	}
}

func TestBoardSpawnSitesAreIntersections(t *testing.T) {
	b := NewBoard(9, 7, 3, 2)
	if b == nil {
		t.Fatal("NewBoard returned nil")
	}

	for y := 0; y < b.CellsTall(); y++ {
		for x := 0; x < b.CellsWide(); x++ {
			p := Point{X: x, Y: y}
			want := x%4 == 0 && y%3 == 0
			if got := b.IsValidBoardPosition(p); got != want {
				t.Errorf("IsValidBoardPosition(%v) = %v, want %v", p, got, want)
			}
		}
	}
}

func TestBoardCenterIsSpawnEligible(t *testing.T) {
	b := NewBoard(21, 13, 3, 2)
	if b == nil {
		t.Fatal("NewBoard returned nil")
	}
	c := b.Center()
	if !b.IsValidBoardPosition(c) {
		t.Errorf("Center() = %v is not a corridor crossing", c)
	}
}

func TestBoardHashPositionUnique(t *testing.T) {
	b := NewBoard(9, 7, 3, 2)
	if b == nil {
		t.Fatal("NewBoard returned nil")
	}

	seen := make(map[int]Point)
	for y := 0; y < b.CellsTall(); y++ {
		for x := 0; x < b.CellsWide(); x++ {
			p := Point{X: x, Y: y}
			h := b.HashPosition(p)
			if prev, ok := seen[h]; ok {
				t.Fatalf("hash collision: %v and %v both map to %d", prev, p, h)
			}
			seen[h] = p
		}
	}
}

func TestBoardFromLayout(t *testing.T) {
	b := NewBoardFromLayout([]string{
		"..#",
		". ",
	})

	if b.CellsWide() != 3 || b.CellsTall() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.CellsWide(), b.CellsTall())
	}
	if b.CellAt(Point{X: 2, Y: 0}) != CellWall {
		t.Error("'#' should be a wall")
	}
	if b.CellAt(Point{X: 0, Y: 0}) != CellDot {
		t.Error("'.' should be a dot")
	}
	if b.CellAt(Point{X: 1, Y: 1}) != CellBlank {
		t.Error("' ' should be blank")
	}
	// Short rows pad with walls.
	if b.CellAt(Point{X: 2, Y: 1}) != CellWall {
		t.Error("padding should be a wall")
	}
	// Off-board reads as wall.
	if b.CellAt(Point{X: -1, Y: 0}) != CellWall {
		t.Error("off-board should read as wall")
	}
	if b.DotsRemaining() != 3 {
		t.Errorf("dots = %d, want 3", b.DotsRemaining())
	}
}

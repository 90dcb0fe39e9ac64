package waka

// Cell is the kind of one board cell.
type Cell uint8

const (
	CellBlank Cell = iota
	CellDot
	CellWall
)

// BoardQuery is the read-only surface entities consult while moving.
// It must stay consistent for the duration of one entity's tick; the host
// guarantees that by serializing all ticks.
type BoardQuery interface {
	// IsValidPosition reports whether p is on the board and not a wall.
	IsValidPosition(p Point) bool

	// IsValidBoardPosition reports whether p is eligible as a fruit spawn
	// site: a corridor intersection, a subset of the valid positions.
	IsValidBoardPosition(p Point) bool

	// CellAt returns the kind of cell at p. Off-board positions are walls.
	CellAt(p Point) Cell

	// HashPosition returns a stable key for p, unique per cell on this board.
	HashPosition(p Point) int

	// CellsWide and CellsTall return the board dimensions in cells.
	CellsWide() int
	CellsTall() int
}

// NavQuery extends BoardQuery with live entity occupancy, queried by the
// navigator during its search.
type NavQuery interface {
	BoardQuery

	// IsGhostAt reports whether an obstacle-class entity occupies p right now.
	IsGhostAt(p Point) bool
}

// Board is the maze grid: a lattice of wall blocks separated by one-cell
// corridors, every corridor cell carrying a dot at level start. The layout
// mirrors the classic wallpaper grid: corridors run along every column
// divisible by colSpacing+1 and every row divisible by rowSpacing+1.
type Board struct {
	cellsWide  int
	cellsTall  int
	colSpacing int
	rowSpacing int
	cells      [][]Cell
	dotsTotal  int
	dotsEaten  int
}

// NewBoard builds a lattice board of the given size. Both dimensions are
// trimmed so the outer edge on every side is a corridor, which keeps the
// maze fully connected. Returns nil if the size cannot fit a single block.
func NewBoard(cellsWide, cellsTall, colSpacing, rowSpacing int) *Board {
	sx := colSpacing + 1
	sy := rowSpacing + 1

	// Largest size of the form k*spacing+1 that still fits.
	cellsWide = (cellsWide-1)/sx*sx + 1
	cellsTall = (cellsTall-1)/sy*sy + 1
	if cellsWide < sx+1 || cellsTall < sy+1 {
		return nil
	}

	b := &Board{
		cellsWide:  cellsWide,
		cellsTall:  cellsTall,
		colSpacing: colSpacing,
		rowSpacing: rowSpacing,
	}
	b.cells = make([][]Cell, cellsTall)
	for y := range b.cells {
		b.cells[y] = make([]Cell, cellsWide)
		for x := range b.cells[y] {
			if x%sx != 0 && y%sy != 0 {
				b.cells[y][x] = CellWall
			} else {
				b.cells[y][x] = CellDot
				b.dotsTotal++
			}
		}
	}
	return b
}

// NewBoardFromLayout builds a board from an ASCII layout where '#' is a
// wall, '.' is a dot and anything else is a blank corridor cell. Rows may
// have different lengths; short rows are padded with walls. Used by tests
// and custom scenarios; spawn eligibility falls back to the dot cells.
func NewBoardFromLayout(rows []string) *Board {
	tall := len(rows)
	wide := 0
	for _, row := range rows {
		if len(row) > wide {
			wide = len(row)
		}
	}

	b := &Board{cellsWide: wide, cellsTall: tall, colSpacing: -1, rowSpacing: -1}
	b.cells = make([][]Cell, tall)
	for y := range b.cells {
		b.cells[y] = make([]Cell, wide)
		for x := range b.cells[y] {
			switch {
			case x >= len(rows[y]) || rows[y][x] == '#':
				b.cells[y][x] = CellWall
			case rows[y][x] == '.':
				b.cells[y][x] = CellDot
				b.dotsTotal++
			default:
				b.cells[y][x] = CellBlank
			}
		}
	}
	return b
}

// CellsWide returns the board width in cells.
func (b *Board) CellsWide() int { return b.cellsWide }

// CellsTall returns the board height in cells.
func (b *Board) CellsTall() int { return b.cellsTall }

// IsValidPosition reports whether p is on the board and not a wall.
func (b *Board) IsValidPosition(p Point) bool {
	if p.X < 0 || p.X >= b.cellsWide || p.Y < 0 || p.Y >= b.cellsTall {
		return false
	}
	return b.cells[p.Y][p.X] != CellWall
}

// IsValidBoardPosition reports whether p is a legal fruit spawn site.
// On lattice boards those are the corridor intersections; on layout
// boards every non-wall cell qualifies.
func (b *Board) IsValidBoardPosition(p Point) bool {
	if !b.IsValidPosition(p) {
		return false
	}
	if b.colSpacing < 0 {
		return true
	}
	return p.X%(b.colSpacing+1) == 0 && p.Y%(b.rowSpacing+1) == 0
}

// CellAt returns the cell kind at p; off-board positions read as walls.
func (b *Board) CellAt(p Point) Cell {
	if p.X < 0 || p.X >= b.cellsWide || p.Y < 0 || p.Y >= b.cellsTall {
		return CellWall
	}
	return b.cells[p.Y][p.X]
}

// HashPosition returns a stable visited-set key, unique per cell.
func (b *Board) HashPosition(p Point) int {
	return p.Y*b.cellsWide + p.X
}

// EatDot consumes the dot at p if present, returning whether one was eaten.
func (b *Board) EatDot(p Point) bool {
	if b.CellAt(p) != CellDot {
		return false
	}
	b.cells[p.Y][p.X] = CellBlank
	b.dotsEaten++
	return true
}

// DotsEaten returns the cumulative count of dots eaten this level.
func (b *Board) DotsEaten() int { return b.dotsEaten }

// DotsRemaining returns how many dots are still on the board.
func (b *Board) DotsRemaining() int { return b.dotsTotal - b.dotsEaten }

// ResetDots refills every corridor cell with a dot for a new level.
func (b *Board) ResetDots() {
	b.dotsTotal = 0
	b.dotsEaten = 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != CellWall {
				b.cells[y][x] = CellDot
				b.dotsTotal++
			}
		}
	}
}

// Center returns the cell closest to the board's middle corridor crossing.
func (b *Board) Center() Point {
	p := Point{X: b.cellsWide / 2, Y: b.cellsTall / 2}
	if b.colSpacing >= 0 {
		sx := b.colSpacing + 1
		sy := b.rowSpacing + 1
		p.X = p.X / sx * sx
		p.Y = p.Y / sy * sy
	}
	return p
}

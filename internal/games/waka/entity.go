package waka

import "github.com/vovakirdan/waka-arcade/internal/core"

// defaultTicksPerCell is how many simulation ticks a speed-1.0 entity
// needs to cross one cell boundary.
const defaultTicksPerCell = 8

// Actor is the capability surface the game host drives each tick.
// The concrete actors (TheMan, Ghost, Fruit) share the Entity base for
// position state and movement; behavior differences live behind this
// interface rather than inheritance.
type Actor interface {
	// Resize updates cell dimensions. Must be called before any position
	// or tick operation; callers re-set positions afterward.
	Resize(cellW, cellH float64)

	// Tick advances the actor by one unit of simulated time.
	Tick(g *Game)

	// Draw renders the actor into the screen buffer.
	Draw(dst *core.Screen, g *Game)

	// NewLevel resets the actor to its initial state for a fresh level.
	NewLevel(g *Game)
}

// Entity holds the state shared by everything that occupies the board:
// a discrete cell Position, a continuous pixel Location, the current and
// next movement direction, and cell geometry. Location and Position are
// kept consistent by SetPosition, the only sanctioned way to relocate an
// entity to a new cell.
type Entity struct {
	pos          Point
	loc          PointF
	dir          Direction
	nextDir      Direction
	speed        float64
	ticksPerCell int
	cellW        float64
	cellH        float64
	halfW        float64
	halfH        float64
	tickCount    int
}

func newEntity() Entity {
	return Entity{
		dir:          DirNone,
		nextDir:      DirNone,
		speed:        1.0,
		ticksPerCell: defaultTicksPerCell,
	}
}

// Resize sets the cell dimensions and their halves.
func (e *Entity) Resize(cellW, cellH float64) {
	e.cellW = cellW
	e.cellH = cellH
	e.halfW = cellW / 2
	e.halfH = cellH / 2
}

// Position returns the entity's discrete cell coordinate.
func (e *Entity) Position() Point { return e.pos }

// Location returns the entity's continuous pixel location.
func (e *Entity) Location() PointF { return e.loc }

// Dir returns the current movement direction (DirNone when stopped).
func (e *Entity) Dir() Direction { return e.dir }

// NextDir returns the queued direction, used for display angle
// interpolation and applied at the next cell boundary.
func (e *Entity) NextDir() Direction { return e.nextDir }

// SetPosition moves the entity to cell p and recomputes Location as the
// center of that cell.
func (e *Entity) SetPosition(p Point) {
	e.pos = p
	e.loc = PointF{
		X: float64(p.X)*e.cellW + e.halfW,
		Y: float64(p.Y)*e.cellH + e.halfH,
	}
}

// IsCollidingWith reports whether both entities occupy the same cell.
// Collision is defined on the grid, not on sub-cell overlap.
func (e *Entity) IsCollidingWith(other *Entity) bool {
	return e.pos == other.pos
}

// advance moves the continuous location along the current direction and
// fires moved exactly once when a cell boundary is crossed. Only one axis
// transition is evaluated per tick, in the fixed priority +x, -x, +y, -y;
// at speeds high enough to cross two boundaries in one tick the second
// crossing lands on the following tick.
//
// A stopped entity cannot cross a boundary, so it gets a moved callback
// every tick instead; that is where actors steer themselves back into
// motion once a queued direction opens up.
func (e *Entity) advance(g *Game, moved func(*Game)) {
	e.tickCount++

	if e.dir == DirNone {
		moved(g)
		return
	}

	dx, dy := e.dir.Delta()
	e.loc.X += float64(dx) * e.speed * e.cellW / float64(e.ticksPerCell)
	e.loc.Y += float64(dy) * e.speed * e.cellH / float64(e.ticksPerCell)

	switch {
	case e.loc.X >= float64(e.pos.X+1)*e.cellW:
		e.pos.X++
		moved(g)
	case e.loc.X < float64(e.pos.X)*e.cellW:
		e.pos.X--
		moved(g)
	case e.loc.Y >= float64(e.pos.Y+1)*e.cellH:
		e.pos.Y++
		moved(g)
	case e.loc.Y < float64(e.pos.Y)*e.cellH:
		e.pos.Y--
		moved(g)
	}
}

// steer applies the queued direction at a cell boundary. Turning onto the
// perpendicular axis snaps the location to the cell center so the entity
// stays aligned with the corridor. If neither the queued nor the current
// direction leads to a valid cell the entity stops.
func (e *Entity) steer(q BoardQuery) {
	if e.nextDir != DirNone && q.IsValidPosition(Step(e.pos, e.nextDir, 1)) {
		if e.nextDir != e.dir {
			e.SetPosition(e.pos)
		}
		e.dir = e.nextDir
		return
	}
	if e.dir == DirNone || !q.IsValidPosition(Step(e.pos, e.dir, 1)) {
		e.dir = DirNone
		e.SetPosition(e.pos)
	}
}

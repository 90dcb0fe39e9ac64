package waka

import "github.com/vovakirdan/waka-arcade/internal/core"

// chompAngles drives the mouth animation, cycled by tick count.
var chompAngles = [4]int{90, 45, 0, 45}

// TheMan is the autopilot player agent. On every cell-boundary crossing it
// re-runs a breadth-first search toward the nearest dot and commits to the
// first step of that path.
type TheMan struct {
	Entity
	wantsToGo Direction
	color     core.Color
}

// NewTheMan creates the player agent.
func NewTheMan() *TheMan {
	return &TheMan{
		Entity:    newEntity(),
		wantsToGo: DirNone,
		color:     core.ColorBrightYellow,
	}
}

// SetWantsToGo records a desired direction from the player. The search
// does not consult it yet; it is accepted as input for a future manual
// steering mode.
func (m *TheMan) SetWantsToGo(d Direction) {
	m.wantsToGo = d
}

// WantsToGo returns the most recently requested direction.
func (m *TheMan) WantsToGo() Direction { return m.wantsToGo }

// SetColor sets the foreground color used by Draw.
func (m *TheMan) SetColor(c core.Color) { m.color = c }

// Tick advances the agent one unit of simulated time.
func (m *TheMan) Tick(g *Game) {
	m.advance(g, m.moved)
}

// moved fires once per cell-boundary crossing: let the board account for
// anything in the new cell, then pick where to go next.
func (m *TheMan) moved(g *Game) {
	g.CheckDots()
	g.CheckFruit()
	g.CheckGhosts()

	m.determineNextDirection(g)
	m.steer(g.board)
}

// vector is one node of the breadth-first search: a position, the
// direction taken to reach it, and the initial direction of the search
// branch it belongs to. The root carries initial == DirNone.
type vector struct {
	pos     Point
	dir     Direction
	initial Direction
}

// possibleMoves enumerates the successors of v: every direction except
// doubling back the way it came. The root node expands all four.
func (v vector) possibleMoves() []vector {
	moves := make([]vector, 0, 4)
	for _, d := range Directions {
		if v.initial != DirNone && d == v.dir.Opposite() {
			continue
		}
		initial := v.initial
		if initial == DirNone {
			initial = d
		}
		moves = append(moves, vector{pos: Step(v.pos, d, 1), dir: d, initial: initial})
	}
	return moves
}

// determineNextDirection searches breadth-first from the current cell for
// the nearest dot and queues the initial direction of the winning branch.
// Occupied cells are checked live against the board, never cached: ghost
// positions can differ between invocations. If no dot is reachable the
// queued direction is left unchanged.
func (m *TheMan) determineNextDirection(q NavQuery) {
	queue := []vector{{pos: m.pos, dir: m.dir, initial: DirNone}}
	seen := make(map[int]struct{})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		seen[q.HashPosition(cur.pos)] = struct{}{}

		for _, next := range cur.possibleMoves() {
			if !q.IsValidPosition(next.pos) {
				continue
			}
			if _, ok := seen[q.HashPosition(next.pos)]; ok {
				continue
			}
			if q.IsGhostAt(next.pos) {
				continue
			}
			if q.CellAt(next.pos) == CellDot {
				// Commit to the first step taken from the origin, not the
				// final step of the path.
				m.nextDir = next.initial
				return
			}
			queue = append(queue, next)
		}
	}
}

// NewLevel places the agent at the board center, stopped, with a random
// valid next direction.
func (m *TheMan) NewLevel(g *Game) {
	m.SetPosition(g.board.Center())
	m.dir = DirNone
	for {
		m.nextDir = Directions[g.rng.Intn(len(Directions))]
		if g.board.IsValidPosition(Step(m.pos, m.nextDir, 1)) {
			break
		}
	}
}

// manGlyph maps a display angle to a mouth-open glyph. The mouth opens
// toward the travel direction; turns show the in-between angle.
func manGlyph(angle int) rune {
	// Normalize to the nearest 45-degree sector.
	sector := ((angle%360+360)%360 + 22) / 45 % 8
	switch sector {
	case 0: // east
		return '('
	case 1, 2: // south-east, south
		return '^'
	case 3, 4: // south-west, west
		return ')'
	case 5, 6: // north-west, north
		return 'v'
	default: // north-east, wraparound 315
		return '('
	}
}

// Draw renders the agent at its continuous location with the chomping
// mouth animation.
func (m *TheMan) Draw(dst *core.Screen, g *Game) {
	x, y := g.screenPos(m.loc)
	if m.dir == DirNone || chompAngles[m.tickCount%len(chompAngles)] == 0 {
		dst.SetColored(x, y, 'O', m.color)
		return
	}
	angle := m.dir.InterpolateAngle(m.nextDir)
	dst.SetColored(x, y, manGlyph(angle), m.color)
}

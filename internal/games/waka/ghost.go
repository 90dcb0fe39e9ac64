package waka

import "github.com/vovakirdan/waka-arcade/internal/core"

// ghostColors are cycled across the ghost population.
var ghostColors = [4]core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Ghost is an obstacle-class entity: it occupies a cell, blocks the
// navigator's search, and ends a life on contact. Its own movement is a
// corridor wander with no chase logic.
type Ghost struct {
	Entity
	index int
	color core.Color
}

// NewGhost creates the index-th ghost. The index selects its color and
// home corner.
func NewGhost(index int) *Ghost {
	return &Ghost{
		Entity: newEntity(),
		index:  index,
		color:  ghostColors[index%len(ghostColors)],
	}
}

// SetSpeed adjusts the ghost's speed multiplier (1.0 = one cell per move
// period).
func (gh *Ghost) SetSpeed(speed float64) { gh.speed = speed }

// Tick advances the ghost one unit of simulated time.
func (gh *Ghost) Tick(g *Game) {
	gh.advance(g, gh.moved)
}

// moved picks a random onward direction at each cell boundary. Reversing
// is allowed only at a dead end.
func (gh *Ghost) moved(g *Game) {
	options := make([]Direction, 0, 3)
	for _, d := range Directions {
		if d == gh.dir.Opposite() && gh.dir != DirNone {
			continue
		}
		if g.board.IsValidPosition(Step(gh.pos, d, 1)) {
			options = append(options, d)
		}
	}
	switch len(options) {
	case 0:
		gh.nextDir = gh.dir.Opposite()
	case 1:
		gh.nextDir = options[0]
	default:
		gh.nextDir = options[g.rng.Intn(len(options))]
	}
	gh.steer(g.board)
}

// NewLevel parks the ghost at its home corner, stopped, pointed somewhere
// valid.
func (gh *Ghost) NewLevel(g *Game) {
	gh.SetPosition(gh.homeCorner(g.board))
	gh.dir = DirNone
	for {
		gh.nextDir = Directions[g.rng.Intn(len(Directions))]
		if g.board.IsValidPosition(Step(gh.pos, gh.nextDir, 1)) {
			break
		}
	}
}

// homeCorner returns one of the four board corners based on ghost index.
func (gh *Ghost) homeCorner(b *Board) Point {
	right := b.CellsWide() - 1
	bottom := b.CellsTall() - 1
	switch gh.index % 4 {
	case 0:
		return Point{X: 0, Y: 0}
	case 1:
		return Point{X: right, Y: 0}
	case 2:
		return Point{X: 0, Y: bottom}
	default:
		return Point{X: right, Y: bottom}
	}
}

// Draw renders the ghost at its continuous location.
func (gh *Ghost) Draw(dst *core.Screen, g *Game) {
	x, y := g.screenPos(gh.loc)
	dst.SetColored(x, y, 'M', gh.color)
}

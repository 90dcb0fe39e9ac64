package waka

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/waka-arcade/internal/config"
	"github.com/vovakirdan/waka-arcade/internal/core"
	"github.com/vovakirdan/waka-arcade/internal/registry"
)

// Virtual pixel size of one board cell. Entity locations move in this
// space; the renderer maps it onto terminal characters (2 wide, 1 tall).
const (
	cellPixW = 8.0
	cellPixH = 8.0
)

const (
	hudHeight = 2
	dotPoints = 10
)

// Mode selects the game variant.
type Mode string

const (
	// ModeClassic is the stock game: fruit appears at dot thresholds.
	ModeClassic Mode = "classic"
	// ModeZen forces the eden trophy: the fruit never leaves the board.
	ModeZen Mode = "zen"
)

// Package-level knobs set by the CLI before game creation, following the
// platform convention for per-game flags.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) { difficultyPreset = preset }

// Game hosts one Waka session: the board, the player agent, the ghosts
// and the fruit, advanced in a fixed deterministic order each tick.
type Game struct {
	mode Mode
	rng  *rand.Rand
	now  func() time.Time
	cfg  core.RuntimeConfig
	wcfg config.WakaConfig

	board  *Board
	man    *TheMan
	fruit  *Fruit
	ghosts []*Ghost

	tick     uint64
	score    int
	level    int
	lives    int
	gameOver bool
	paused   bool
	tooSmall bool

	// lifeLost latches within a tick so one ghost contact costs one life.
	lifeLost bool
	events   []core.Event

	offsetX int
	offsetY int
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic, now: time.Now}
}

// NewZen creates a zen-mode game (fruit always visible).
func NewZen() *Game {
	return &Game{mode: ModeZen, now: time.Now}
}

func init() {
	registry.Register("waka", func() registry.Game { return New() })
	registry.Register("waka_zen", func() registry.Game { return NewZen() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "waka_zen"
	}
	return "waka"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Waka (Zen)"
	}
	return "Waka"
}

// Reset initializes or restarts the session for the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.now == nil {
		g.now = time.Now
	}

	wcfg, err := config.LoadWaka(configPath)
	if err != nil {
		wcfg = config.DefaultWakaConfig()
	}
	config.ApplyWakaPreset(&wcfg, config.DifficultyPreset(difficultyPreset))
	g.wcfg = wcfg

	g.tick = 0
	g.score = 0
	g.level = 1
	g.lives = wcfg.Gameplay.Lives
	g.gameOver = false
	g.paused = false
	g.events = nil

	g.man = NewTheMan()
	g.man.SetColor(core.ColorByName(wcfg.Colors.Man))
	g.man.ticksPerCell = wcfg.Speed.TicksPerCell
	g.man.speed = wcfg.Speed.Man

	g.ghosts = make([]*Ghost, wcfg.Gameplay.GhostCount)
	for i := range g.ghosts {
		g.ghosts[i] = NewGhost(i)
		g.ghosts[i].ticksPerCell = wcfg.Speed.TicksPerCell
		g.ghosts[i].SetSpeed(wcfg.Speed.Ghost)
	}

	g.fruit = NewFruit()
	g.fruit.settings = FruitSettings{
		VisibleLower:    time.Duration(wcfg.Fruit.VisibleLowerMs) * time.Millisecond,
		VisibleUpper:    time.Duration(wcfg.Fruit.VisibleUpperMs) * time.Millisecond,
		ThresholdFirst:  wcfg.Fruit.ThresholdFirst,
		ThresholdSecond: wcfg.Fruit.ThresholdSecond,
		TrophyEden:      wcfg.Fruit.TrophyEden || g.mode == ModeZen,
		TrophyGoogol:    wcfg.Fruit.TrophyGoogol,
	}
	g.resizeActors()

	// Actors exist even when the board does not fit, so state queries
	// stay safe while the session waits for a bigger window.
	g.buildBoard()
	if g.tooSmall {
		return
	}

	g.fruit.RecomputeSpawns(g)
	g.startLevel()
}

// buildBoard derives the lattice from the current screen size: one board
// cell is two characters wide and one tall, with room left for the HUD.
func (g *Game) buildBoard() {
	wide := (g.cfg.ScreenW - 2) / 2
	tall := g.cfg.ScreenH - hudHeight - 1
	g.board = NewBoard(wide, tall, g.wcfg.Board.ColSpacing, g.wcfg.Board.RowSpacing)
	if g.board == nil {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.offsetX = (g.cfg.ScreenW - g.board.CellsWide()*2) / 2
	g.offsetY = hudHeight
}

// resizeActors pushes the virtual cell dimensions to every actor.
// Positions must be re-set afterward so locations stay consistent.
func (g *Game) resizeActors() {
	for _, a := range g.actors() {
		a.Resize(cellPixW, cellPixH)
	}
}

func (g *Game) actors() []Actor {
	actors := make([]Actor, 0, 2+len(g.ghosts))
	actors = append(actors, g.man)
	for _, gh := range g.ghosts {
		actors = append(actors, gh)
	}
	return append(actors, g.fruit)
}

// startLevel refills the dots and resets every actor for the current level.
func (g *Game) startLevel() {
	g.board.ResetDots()
	for _, a := range g.actors() {
		a.NewLevel(g)
	}
}

// newLife repositions the man and the ghosts after a ghost contact.
// Dots and fruit state carry over, matching the arcade rule.
func (g *Game) newLife() {
	g.man.NewLevel(g)
	for _, gh := range g.ghosts {
		gh.NewLevel(g)
	}
}

// Step advances the game by one tick. Actors tick in a fixed order —
// the man, then the ghosts, then the fruit — so each actor's board
// queries observe the previous positions of those ticked after it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.cfg.ScreenW,
			ScreenH:  g.cfg.ScreenH,
			TickRate: g.cfg.TickRate,
			Seed:     g.rng.Int63(),
		})
		return g.result()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || g.tooSmall {
		return g.result()
	}

	g.readWantsToGo(in)

	g.tick++
	g.lifeLost = false

	g.man.Tick(g)
	for _, gh := range g.ghosts {
		gh.Tick(g)
	}
	g.CheckGhosts()
	g.fruit.Tick(g)

	if g.board.DotsRemaining() == 0 {
		g.emit(core.EventLevelCleared, 0)
		g.level++
		g.startLevel()
	}

	return g.result()
}

// readWantsToGo forwards direction input to the agent as a steering
// preference. The autopilot search currently ignores it.
func (g *Game) readWantsToGo(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.man.SetWantsToGo(DirNorth)
	case in.Has(core.ActionDown):
		g.man.SetWantsToGo(DirSouth)
	case in.Has(core.ActionLeft):
		g.man.SetWantsToGo(DirWest)
	case in.Has(core.ActionRight):
		g.man.SetWantsToGo(DirEast)
	}
}

func (g *Game) result() core.StepResult {
	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) emit(kind core.EventKind, points int) {
	g.events = append(g.events, core.Event{Kind: kind, Points: points})
}

// CheckDots eats the dot under the man, if any, and scores it.
func (g *Game) CheckDots() {
	if g.board.EatDot(g.man.Position()) {
		g.score += dotPoints
		g.emit(core.EventDotEaten, dotPoints)
	}
}

// CheckFruit collects a visible fruit the man has walked onto.
func (g *Game) CheckFruit() {
	if g.fruit.IsVisible() && g.man.IsCollidingWith(&g.fruit.Entity) {
		points := g.fruit.Eat(g)
		g.score += points
		g.emit(core.EventFruitEaten, points)
	}
}

// CheckGhosts ends a life when the man shares a cell with a ghost.
// At most one life is lost per tick.
func (g *Game) CheckGhosts() {
	if g.gameOver || g.lifeLost {
		return
	}
	for _, gh := range g.ghosts {
		if g.man.IsCollidingWith(&gh.Entity) {
			g.lifeLost = true
			g.lives--
			g.emit(core.EventLifeLost, 0)
			if g.lives <= 0 {
				g.gameOver = true
			} else {
				g.newLife()
			}
			return
		}
	}
}

// IsGhostAt reports whether any ghost currently occupies p.
func (g *Game) IsGhostAt(p Point) bool {
	for _, gh := range g.ghosts {
		if gh.Position() == p {
			return true
		}
	}
	return false
}

// Board query delegation, so Game satisfies NavQuery for the search.

func (g *Game) IsValidPosition(p Point) bool      { return g.board.IsValidPosition(p) }
func (g *Game) IsValidBoardPosition(p Point) bool { return g.board.IsValidBoardPosition(p) }
func (g *Game) CellAt(p Point) Cell               { return g.board.CellAt(p) }
func (g *Game) HashPosition(p Point) int          { return g.board.HashPosition(p) }
func (g *Game) CellsWide() int                    { return g.board.CellsWide() }
func (g *Game) CellsTall() int                    { return g.board.CellsTall() }

// screenPos maps a continuous location to terminal character coordinates.
func (g *Game) screenPos(loc PointF) (int, int) {
	fx := loc.X / cellPixW
	fy := loc.Y / cellPixH
	return g.offsetX + int(fx*2.0) - 1, g.offsetY + int(fy)
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the full frame: HUD, maze, dots, then actors.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.fruit.Draw(dst, g)
	for _, gh := range g.ghosts {
		gh.Draw(dst, g)
	}
	g.man.Draw(dst, g)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d  Lives: %d", g.Title(), g.score, g.level, g.lives)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.board.CellsTall(); y++ {
		sy := g.offsetY + y
		for x := 0; x < g.board.CellsWide(); x++ {
			sx := g.offsetX + x*2
			switch g.board.CellAt(Point{X: x, Y: y}) {
			case CellWall:
				dst.SetColored(sx, sy, '█', core.ColorBlue)
				dst.SetColored(sx+1, sy, '█', core.ColorBlue)
			case CellDot:
				dst.SetColored(sx, sy, '·', core.ColorWhite)
			}
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()
	boxW := max(len(line1), len(line2)) + 4
	box := core.Rect{X: (w - boxW) / 2, Y: (h - 5) / 2, W: boxW, H: 5}
	dst.FillRect(core.Rect{X: box.X + 1, Y: box.Y + 1, W: box.W - 2, H: box.H - 2}, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

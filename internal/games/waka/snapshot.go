package waka

// GameStateType labels the coarse game state in a snapshot.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state with primitive types only, for
// determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Mode          string
	Score         int
	Level         int
	Lives         int
	DotsEaten     int
	DotsRemaining int

	ManX    int
	ManY    int
	ManDir  Direction
	ManNext Direction

	FruitVisible bool
	FruitType    int
	FruitX       int
	FruitY       int

	// GhostData holds 4 ints per ghost: X, Y, Dir, NextDir.
	GhostCount int
	GhostData  []int

	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	dotsEaten, dotsRemaining := 0, 0
	if g.board != nil {
		dotsEaten = g.board.DotsEaten()
		dotsRemaining = g.board.DotsRemaining()
	}

	ghostData := make([]int, len(g.ghosts)*4)
	for i, gh := range g.ghosts {
		idx := i * 4
		ghostData[idx] = gh.Position().X
		ghostData[idx+1] = gh.Position().Y
		ghostData[idx+2] = int(gh.Dir())
		ghostData[idx+3] = int(gh.NextDir())
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Score:         g.score,
		Level:         g.level,
		Lives:         g.lives,
		DotsEaten:     dotsEaten,
		DotsRemaining: dotsRemaining,
		ManX:          g.man.Position().X,
		ManY:          g.man.Position().Y,
		ManDir:        g.man.Dir(),
		ManNext:       g.man.NextDir(),
		FruitVisible:  g.fruit.IsVisible(),
		FruitType:     int(g.fruit.Type()),
		FruitX:        g.fruit.Position().X,
		FruitY:        g.fruit.Position().Y,
		GhostCount:    len(g.ghosts),
		GhostData:     ghostData,
		State:         state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Level)
	h = h*31 + uint64(snap.Lives)
	h = h*31 + uint64(snap.DotsEaten)
	h = h*31 + uint64(snap.ManX)
	h = h*31 + uint64(snap.ManY)
	h = h*31 + uint64(snap.ManDir)
	h = h*31 + uint64(snap.ManNext)
	if snap.FruitVisible {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.FruitType)
	h = h*31 + uint64(snap.GhostCount)
	for _, v := range snap.GhostData {
		h = h*31 + uint64(v)
	}
	return h
}

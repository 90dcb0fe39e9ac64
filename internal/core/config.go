package core

// RuntimeConfig is handed to a game when it is (re)initialized.
// Games derive their board geometry from the screen size and seed
// their RNG from Seed so a run can be replayed exactly.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-visible summary of a game, returned by State().
type GameState struct {
	Score    int
	Level    int
	Lives    int
	GameOver bool
	Paused   bool
}

// EventKind identifies something noteworthy that happened during a tick.
// The platform maps events to side effects the pure game logic must not
// perform itself (sound, score persistence).
type EventKind int

const (
	EventDotEaten EventKind = iota
	EventFruitEaten
	EventLifeLost
	EventLevelCleared
)

// Event carries one EventKind plus an optional payload (points awarded).
type Event struct {
	Kind   EventKind
	Points int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

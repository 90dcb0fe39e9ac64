// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// WakaConfig contains all configuration for the Waka game.
type WakaConfig struct {
	Board    WakaBoard    `yaml:"board"`
	Speed    WakaSpeed    `yaml:"speed"`
	Gameplay WakaGameplay `yaml:"gameplay"`
	Fruit    WakaFruit    `yaml:"fruit"`
	Colors   WakaColors   `yaml:"colors"`
}

// WakaBoard defines the maze lattice: the number of wall cells between
// two corridors, per axis.
type WakaBoard struct {
	ColSpacing int `yaml:"col_spacing"`
	RowSpacing int `yaml:"row_spacing"`
}

// WakaSpeed defines movement pacing. TicksPerCell is how many simulation
// ticks a speed-1.0 entity needs to cross one cell; Man and Ghost are
// speed multipliers.
type WakaSpeed struct {
	TicksPerCell int     `yaml:"ticks_per_cell"`
	Man          float64 `yaml:"man"`
	Ghost        float64 `yaml:"ghost"`
}

// WakaGameplay defines session rules.
type WakaGameplay struct {
	Lives      int `yaml:"lives"`
	GhostCount int `yaml:"ghost_count"`
}

// WakaFruit defines the fruit timing windows and dot thresholds.
type WakaFruit struct {
	VisibleLowerMs  int  `yaml:"visible_lower_ms"`
	VisibleUpperMs  int  `yaml:"visible_upper_ms"`
	ThresholdFirst  int  `yaml:"threshold_first"`
	ThresholdSecond int  `yaml:"threshold_second"`
	TrophyEden      bool `yaml:"trophy_eden"`
	TrophyGoogol    bool `yaml:"trophy_googol"`
}

// WakaColors defines display colors by palette name.
type WakaColors struct {
	Man string `yaml:"man"`
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

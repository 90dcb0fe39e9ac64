package config

import (
	_ "embed"
)

//go:embed defaults/waka.yaml
var defaultWakaYAML []byte

// DefaultWakaConfig returns the default Waka configuration. Kept in sync
// with the embedded defaults/waka.yaml, which is the canonical source.
func DefaultWakaConfig() WakaConfig {
	return WakaConfig{
		Board: WakaBoard{
			ColSpacing: 3,
			RowSpacing: 2,
		},
		Speed: WakaSpeed{
			TicksPerCell: 8,
			Man:          1.0,
			Ghost:        0.8,
		},
		Gameplay: WakaGameplay{
			Lives:      3,
			GhostCount: 4,
		},
		Fruit: WakaFruit{
			VisibleLowerMs:  5000,
			VisibleUpperMs:  9000,
			ThresholdFirst:  70,
			ThresholdSecond: 170,
		},
		Colors: WakaColors{
			Man: "bright-yellow",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "waka", "waka_zen":
		return defaultWakaYAML
	default:
		return nil
	}
}

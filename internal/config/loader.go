package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWaka loads the Waka configuration.
// Search order: customPath -> ~/.waka/configs/waka.yaml -> ./configs/waka.yaml -> embedded default
func LoadWaka(customPath string) (WakaConfig, error) {
	var cfg WakaConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("waka.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/waka.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultWakaYAML, &cfg); err != nil {
		return DefaultWakaConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".waka", "configs", filename)
}

// ApplyWakaPreset adjusts the config for a difficulty preset. An empty or
// unknown preset leaves the config untouched.
func ApplyWakaPreset(cfg *WakaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.GhostCount = 2
		cfg.Speed.Ghost = 0.6
	case DifficultyNormal:
		// Stock settings.
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.GhostCount = 6
		cfg.Speed.Ghost = 1.0
	}
}

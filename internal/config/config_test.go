package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	var fromYAML WakaConfig
	if err := yaml.Unmarshal(defaultWakaYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if fromYAML != DefaultWakaConfig() {
		t.Errorf("embedded YAML and DefaultWakaConfig disagree:\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultWakaConfig())
	}
}

func TestLoadWakaCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
board:
  col_spacing: 5
  row_spacing: 4
gameplay:
  lives: 9
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWaka(path)
	if err != nil {
		t.Fatalf("LoadWaka() failed: %v", err)
	}
	if cfg.Board.ColSpacing != 5 || cfg.Board.RowSpacing != 4 {
		t.Errorf("board spacing = %+v, want 5/4", cfg.Board)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, want 9", cfg.Gameplay.Lives)
	}
}

func TestLoadWakaMissingCustomPathFails(t *testing.T) {
	if _, err := LoadWaka("/no/such/file.yaml"); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadWakaMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWaka(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestApplyWakaPreset(t *testing.T) {
	easy := DefaultWakaConfig()
	ApplyWakaPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= DefaultWakaConfig().Gameplay.Lives {
		t.Error("easy preset should grant more lives")
	}
	if easy.Speed.Ghost >= DefaultWakaConfig().Speed.Ghost {
		t.Error("easy preset should slow ghosts")
	}

	hard := DefaultWakaConfig()
	ApplyWakaPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives >= DefaultWakaConfig().Gameplay.Lives {
		t.Error("hard preset should cut lives")
	}
	if hard.Gameplay.GhostCount <= DefaultWakaConfig().Gameplay.GhostCount {
		t.Error("hard preset should add ghosts")
	}

	normal := DefaultWakaConfig()
	ApplyWakaPreset(&normal, DifficultyNormal)
	if normal != DefaultWakaConfig() {
		t.Error("normal preset should leave stock settings untouched")
	}

	unknown := DefaultWakaConfig()
	ApplyWakaPreset(&unknown, "ludicrous")
	if unknown != DefaultWakaConfig() {
		t.Error("unknown preset should be a no-op")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("waka") == nil || GetDefaultYAML("waka_zen") == nil {
		t.Error("expected embedded YAML for waka modes")
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("expected nil for unknown game")
	}
}

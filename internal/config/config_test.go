package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Maze.Rows != 20 || cfg.Maze.Cols != 20 {
		t.Errorf("expected 20x20 maze, got %dx%d", cfg.Maze.Rows, cfg.Maze.Cols)
	}

	if cfg.Display.CellSize != 25 {
		t.Errorf("expected cell size 25, got %d", cfg.Display.CellSize)
	}

	if w, h := cfg.CanvasSize(); w != 500 || h != 500 {
		t.Errorf("expected 500x500 canvas, got %dx%d", w, h)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")

	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}

	if cfg.Maze.Rows != 20 {
		t.Errorf("expected default rows, got %d", cfg.Maze.Rows)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
maze:
  rows: 31
  cols: 41
  seed: 1234
display:
  mode: tty
logging:
  level: DEBUG
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Maze.Rows != 31 || cfg.Maze.Cols != 41 {
		t.Errorf("expected 31x41, got %dx%d", cfg.Maze.Rows, cfg.Maze.Cols)
	}

	if cfg.Maze.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Maze.Seed)
	}

	if cfg.Display.Mode != ModeTerminal {
		t.Errorf("expected mode tty, got %q", cfg.Display.Mode)
	}

	// Keys missing from the file keep their defaults
	if cfg.Display.CellSize != 25 {
		t.Errorf("expected default cell size 25, got %d", cfg.Display.CellSize)
	}
	if cfg.Display.Title != "Grid Maze" {
		t.Errorf("expected default title, got %q", cfg.Display.Title)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "maze: [rows: 3")

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}

	if cfg == nil || cfg.Maze.Rows != 20 {
		t.Error("expected default config alongside the parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		wantDim bool
	}{
		{"defaults", func(c *Config) {}, false, false},
		{"single cell", func(c *Config) { c.Maze.Rows, c.Maze.Cols = 1, 1 }, false, false},
		{"even dimensions", func(c *Config) { c.Maze.Rows, c.Maze.Cols = 10, 14 }, false, false},
		{"zero rows", func(c *Config) { c.Maze.Rows = 0 }, true, true},
		{"negative cols", func(c *Config) { c.Maze.Cols = -3 }, true, true},
		{"zero cell size", func(c *Config) { c.Display.CellSize = 0 }, true, false},
		{"unknown mode", func(c *Config) { c.Display.Mode = "vr" }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if errors.Is(err, maze.ErrInvalidDimensions) != tt.wantDim {
				t.Errorf("errors.Is(%v, ErrInvalidDimensions) = %v, want %v", err, !tt.wantDim, tt.wantDim)
			}
		})
	}
}

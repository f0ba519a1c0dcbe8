package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Frontend names accepted by DisplayConfig.Mode
const (
	ModeWindow   = "window"
	ModeTerminal = "tty"
)

// Config holds the game configuration. The logging section of the same
// file is read separately by logger.LoadConfig.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Display DisplayConfig `yaml:"display"`
}

// MazeConfig holds the grid settings. Dimensions are fixed for the
// lifetime of the process; every restart uses them.
type MazeConfig struct {
	// Rows and Cols are the grid height and width in cells.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Seed seeds the maze random source. 0 picks a seed from the clock.
	Seed int64 `yaml:"seed"`
}

// DisplayConfig holds frontend settings
type DisplayConfig struct {
	// Mode selects the frontend: "window" or "tty".
	Mode string `yaml:"mode"`

	// CellSize is the edge of one cell in pixels (window mode).
	CellSize int `yaml:"cell_size"`

	// Title is the window title.
	Title string `yaml:"title"`
}

// DefaultConfig returns the reference deployment: a 20x20 maze drawn
// with 25 pixel cells on a 500x500 canvas.
func DefaultConfig() *Config {
	return &Config{
		Maze: MazeConfig{
			Rows: 20,
			Cols: 20,
		},
		Display: DisplayConfig{
			Mode:     ModeWindow,
			CellSize: 25,
			Title:    "Grid Maze",
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file
// yields the defaults; keys absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects configurations the game cannot start with
func (c *Config) Validate() error {
	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return fmt.Errorf("%w: maze %dx%d: %w", ErrInvalidConfig, c.Maze.Rows, c.Maze.Cols, maze.ErrInvalidDimensions)
	}
	if c.Display.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.Display.CellSize)
	}
	switch c.Display.Mode {
	case ModeWindow, ModeTerminal:
	default:
		return fmt.Errorf("%w: unknown display mode %q", ErrInvalidConfig, c.Display.Mode)
	}
	return nil
}

// CanvasSize returns the maze area in pixels
func (c *Config) CanvasSize() (width, height int) {
	return c.Maze.Cols * c.Display.CellSize, c.Maze.Rows * c.Display.CellSize
}

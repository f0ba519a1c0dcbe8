package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lawnchairsociety/gridmaze/internal/board"
	"github.com/lawnchairsociety/gridmaze/internal/config"
	"github.com/lawnchairsociety/gridmaze/internal/game"
	"github.com/lawnchairsociety/gridmaze/internal/logger"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
	"github.com/lawnchairsociety/gridmaze/internal/tty"
	"github.com/lawnchairsociety/gridmaze/internal/ui"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "config.yaml", "Path to config YAML file (maze, display and logging sections)")
	rows := flag.Int("rows", 0, "Maze rows (overrides config)")
	cols := flag.Int("cols", 0, "Maze columns (overrides config)")
	seed := flag.Int64("seed", 0, "Maze seed (default: random based on current time)")
	cellSize := flag.Int("cell", 0, "Cell size in pixels for the window (overrides config)")
	useTTY := flag.Bool("tty", false, "Play in the terminal instead of opening a window")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *rows > 0 {
		cfg.Maze.Rows = *rows
	}
	if *cols > 0 {
		cfg.Maze.Cols = *cols
	}
	if *seed != 0 {
		cfg.Maze.Seed = *seed
	}
	if *cellSize > 0 {
		cfg.Display.CellSize = *cellSize
	}
	if *useTTY {
		cfg.Display.Mode = config.ModeTerminal
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger before any logging. The terminal frontend owns
	// the screen, so console output is turned off there.
	logConfig, err := logger.LoadConfig(*configFile)
	if err != nil {
		log.Printf("Failed to load logging config, using defaults: %v", err)
	}
	if cfg.Display.Mode == config.ModeTerminal {
		logConfig.ConsoleEnabled = false
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Info("Starting Grid Maze", "mode", cfg.Display.Mode, "rows", cfg.Maze.Rows, "cols", cfg.Maze.Cols)

	// Use provided seed or generate from time
	mazeSeed := cfg.Maze.Seed
	if mazeSeed == 0 {
		mazeSeed = time.Now().UnixNano()
		logger.Info("Maze seed selected", "seed", mazeSeed, "random", true)
	} else {
		logger.Info("Maze seed selected", "seed", mazeSeed, "random", false)
	}

	g, err := game.New(cfg.Maze.Rows, cfg.Maze.Cols, maze.NewSource(mazeSeed))
	if err != nil {
		logger.Error("Failed to start game", "error", err)
		os.Exit(1)
	}

	switch cfg.Display.Mode {
	case config.ModeTerminal:
		err = runTerminal(g)
	default:
		err = runWindow(g, cfg)
	}
	if err != nil {
		logger.Error("Game exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Grid Maze stopped")
}

func runWindow(g *game.Game, cfg *config.Config) error {
	layout := board.New(cfg.Maze.Rows, cfg.Maze.Cols, cfg.Display.CellSize)
	app, err := ui.New(g, layout, cfg.Display.Title)
	if err != nil {
		return err
	}
	return app.Run()
}

func runTerminal(g *game.Game) error {
	fd := int(os.Stdin.Fd())
	restore, err := tty.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer restore()

	// Raw mode swallows Ctrl-C as a byte, but a kill or hangup still
	// needs the terminal put back.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		logger.Info("Received signal, restoring terminal", "signal", sig.String())
		restore()
		os.Exit(0)
	}()

	logger.Info("Terminal frontend started")
	return tty.New(g, os.Stdin, os.Stdout).Run()
}

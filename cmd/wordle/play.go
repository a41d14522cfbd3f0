package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/wordle-cli/internal/config"
	"github.com/lox/wordle-cli/internal/game"
	"github.com/lox/wordle-cli/internal/randutil"
	"github.com/lox/wordle-cli/internal/tui"
	"github.com/lox/wordle-cli/internal/words"
)

// PlayCmd runs an interactive round in the terminal
type PlayCmd struct {
	Config      string   `kong:"default='wordle.hcl',help='Path to HCL config file'"`
	Answer      string   `kong:"help='Fix the answer instead of drawing one at random'"`
	MaxAttempts int      `kong:"help='Guess limit (overrides config)'"`
	Guess       []string `kong:"help='Preload prior guesses to resume a round'"`
	Seed        *int64   `kong:"help='Deterministic RNG seed (optional)'"`
	Debug       bool     `kong:"help='Enable debug logging'"`
	LogFile     string   `kong:"help='Debug log file (overrides config)'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.MaxAttempts > 0 {
		cfg.Game.MaxAttempts = c.MaxAttempts
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}

	// Log to a file so the TUI owns the terminal.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level := log.InfoLevel
	if c.Debug || cfg.Log.Level == "debug" {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	rng := randutil.FromTime()
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		rng = randutil.New(*c.Seed)
	}

	g, err := game.New(repo, game.Config{
		MaxAttempts: cfg.Game.MaxAttempts,
		Answer:      c.Answer,
		History:     c.Guess,
		Rng:         rng,
	})
	if err != nil {
		return err
	}
	logger.Info("Starting round", "max_attempts", g.MaxAttempts(), "resumed_guesses", len(c.Guess))

	model := tui.New(g, logger, quartz.NewReal())
	_, err = tea.NewProgram(model).Run()
	return err
}

// loadRepository builds the word repository from configured files,
// falling back to the embedded lists.
func loadRepository(cfg *config.Config) (*words.Repository, error) {
	if cfg.Words != nil && cfg.Words.AnswersFile != "" {
		return words.Load(cfg.Words.AnswersFile, cfg.Words.GuessesFile)
	}
	return words.Default()
}

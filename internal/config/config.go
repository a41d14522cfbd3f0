// Package config loads the optional wordle.hcl configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete file layout. All blocks are optional.
type Config struct {
	Game  *GameSettings  `hcl:"game,block"`
	Words *WordsSettings `hcl:"words,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// GameSettings controls round construction.
type GameSettings struct {
	MaxAttempts int `hcl:"max_attempts,optional"`
}

// WordsSettings points at external word list files. When unset the
// embedded lists are used.
type WordsSettings struct {
	AnswersFile string `hcl:"answers_file,optional"`
	GuessesFile string `hcl:"guesses_file,optional"`
}

// LogSettings controls the debug log written during interactive play.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: &GameSettings{MaxAttempts: 6},
		Log:  &LogSettings{Level: "info", File: "wordle.log"},
	}
}

// Load reads an HCL config file, falling back to Default when the file
// does not exist. Missing blocks and attributes inherit defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	def := Default()
	if cfg.Game == nil {
		cfg.Game = def.Game
	} else if cfg.Game.MaxAttempts <= 0 {
		cfg.Game.MaxAttempts = def.Game.MaxAttempts
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	} else {
		if cfg.Log.Level == "" {
			cfg.Log.Level = def.Log.Level
		}
		if cfg.Log.File == "" {
			cfg.Log.File = def.Log.File
		}
	}

	return &cfg, nil
}

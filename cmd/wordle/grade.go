package main

import (
	"fmt"
	"strings"

	"github.com/lox/wordle-cli/internal/game"
	"github.com/lox/wordle-cli/internal/tui"
)

// GradeCmd grades a single guess against an answer and prints the
// tiles, without starting a round.
type GradeCmd struct {
	Answer string `kong:"arg,help='The answer to grade against'"`
	Guess  string `kong:"arg,help='The guess to grade'"`
}

func (c *GradeCmd) Run() error {
	grades, err := game.Score(c.Answer, c.Guess)
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderTiles(c.Guess, grades))

	names := make([]string, len(grades))
	for i, g := range grades {
		names[i] = g.String()
	}
	fmt.Println(strings.Join(names, ", "))
	return nil
}

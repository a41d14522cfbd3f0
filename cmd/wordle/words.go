package main

import (
	"fmt"

	"github.com/lox/wordle-cli/internal/words"
)

// WordsCmd reports the sizes of the loaded word lists.
type WordsCmd struct {
	AnswersFile string `kong:"help='Answers list file (defaults to the embedded list)'"`
	GuessesFile string `kong:"help='Extra guesses list file'"`
}

func (c *WordsCmd) Run() error {
	var repo *words.Repository
	var err error
	if c.AnswersFile != "" {
		repo, err = words.Load(c.AnswersFile, c.GuessesFile)
	} else {
		repo, err = words.Default()
	}
	if err != nil {
		return err
	}

	answers, allowed := repo.Len()
	fmt.Printf("answers: %d\n", answers)
	fmt.Printf("allowed guesses: %d\n", allowed)
	return nil
}

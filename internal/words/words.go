// Package words holds the word lists a game is played against: the
// answers the secret word is drawn from, and the larger dictionary of
// words accepted as guesses. A Repository is immutable once built and
// safe to share between any number of games.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WordLength is the fixed length of every answer and guess.
const WordLength = 5

var (
	// ErrMalformedWord indicates a word list entry that is not exactly
	// five ASCII letters after normalization.
	ErrMalformedWord = errors.New("malformed word")

	// ErrEmptyRepository indicates there are no answers to draw from.
	ErrEmptyRepository = errors.New("no answers loaded")
)

// MalformedWordError reports the offending entry from a word list.
type MalformedWordError struct {
	Word string
}

func (e *MalformedWordError) Error() string {
	return fmt.Sprintf("%q is not a five-letter word", e.Word)
}

func (e *MalformedWordError) Unwrap() error { return ErrMalformedWord }

// Embedded default lists so the game runs without any configuration.
//
//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/guesses.txt
var embeddedGuesses string

// Repository holds the answer and allowed-guess sets. Answers are kept
// in load order so random selection can index uniformly; the allowed
// set always contains every answer.
type Repository struct {
	answers   []string
	answerSet map[string]struct{}
	allowed   map[string]struct{}
}

// New builds a Repository from an answers list and an extra-guesses
// list. Every entry is normalized to uppercase and must be exactly
// five ASCII letters; a bad entry fails the whole construction with a
// MalformedWordError.
func New(answers, guesses []string) (*Repository, error) {
	r := &Repository{
		answers:   make([]string, 0, len(answers)),
		answerSet: make(map[string]struct{}, len(answers)),
		allowed:   make(map[string]struct{}, len(answers)+len(guesses)),
	}

	for _, raw := range answers {
		w, err := normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("answers list: %w", err)
		}
		if _, dup := r.answerSet[w]; dup {
			continue
		}
		r.answers = append(r.answers, w)
		r.answerSet[w] = struct{}{}
		r.allowed[w] = struct{}{}
	}

	for _, raw := range guesses {
		w, err := normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("guesses list: %w", err)
		}
		r.allowed[w] = struct{}{}
	}

	return r, nil
}

// Default builds a Repository from the embedded word lists.
func Default() (*Repository, error) {
	return New(splitLines(embeddedAnswers), splitLines(embeddedGuesses))
}

// Load reads two newline-delimited word files and builds a Repository.
// An empty guessesPath loads answers only. The files are read
// concurrently since real dictionaries run to thousands of lines.
func Load(answersPath, guessesPath string) (*Repository, error) {
	var answers, guesses []string

	var g errgroup.Group
	g.Go(func() error {
		var err error
		answers, err = readLines(answersPath)
		return err
	})
	if guessesPath != "" {
		g.Go(func() error {
			var err error
			guesses, err = readLines(guessesPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(answers, guesses)
}

// IsValidGuess reports whether word is accepted as a guess. Matching
// is case-insensitive; answers are always valid guesses.
func (r *Repository) IsValidGuess(word string) bool {
	_, ok := r.allowed[strings.ToUpper(strings.TrimSpace(word))]
	return ok
}

// IsValidAnswer reports whether word is in the answers list.
func (r *Repository) IsValidAnswer(word string) bool {
	_, ok := r.answerSet[strings.ToUpper(strings.TrimSpace(word))]
	return ok
}

// RandomAnswer returns a uniformly random answer using the supplied
// RNG. The RNG is injected so rounds can be reproduced from a seed.
func (r *Repository) RandomAnswer(rng *rand.Rand) (string, error) {
	if len(r.answers) == 0 {
		return "", ErrEmptyRepository
	}
	return r.answers[rng.IntN(len(r.answers))], nil
}

// Len returns the number of answers and the total allowed-guess count.
func (r *Repository) Len() (answers, allowed int) {
	return len(r.answers), len(r.allowed)
}

// normalize trims and uppercases a word list entry and validates it is
// exactly WordLength ASCII letters.
func normalize(raw string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(raw))
	if len(w) != WordLength || !isAlpha(w) {
		return "", &MalformedWordError{Word: raw}
	}
	return w, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

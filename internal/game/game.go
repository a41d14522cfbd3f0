// Package game implements the rules of a single Wordle round: guess
// validation against the word repository, two-pass letter grading, and
// the won/lost state machine. A Game is owned by a single goroutine;
// the repository it reads from is immutable and shareable.
package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/wordle-cli/internal/words"
)

// DefaultMaxAttempts is the classic six-guess limit.
const DefaultMaxAttempts = 6

var (
	// ErrInvalidGuess rejects a word that is not in the allowed list.
	// The game state is unchanged.
	ErrInvalidGuess = errors.New("not in word list")

	// ErrInvalidAnswer rejects construction with an answer that is not
	// in the answers list.
	ErrInvalidAnswer = errors.New("answer is not in the answers list")

	// ErrGameOver rejects guesses after the round is won or lost. It
	// wraps ErrInvalidGuess so callers that only check for rejected
	// guesses treat it the same way.
	ErrGameOver = fmt.Errorf("%w: game is already complete", ErrInvalidGuess)
)

// State is the round's position in the state machine.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Config controls construction of a Game. The zero value plays a
// random answer with six attempts.
type Config struct {
	// MaxAttempts is the guess limit; <= 0 means DefaultMaxAttempts.
	MaxAttempts int

	// Answer fixes the secret word. It must be a member of the answers
	// list; leave empty to draw one at random.
	Answer string

	// History replays prior guesses so a round can be resumed. Every
	// entry must be an allowed word.
	History []string

	// Rng is used to draw a random answer. Required when Answer is
	// empty; inject a seeded source for reproducible rounds.
	Rng *rand.Rand
}

// Game holds the state of one round. The answer and attempt limit are
// fixed at construction; history is append-only via SubmitGuess.
type Game struct {
	repo        *words.Repository
	answer      string
	maxAttempts int
	history     []string
}

// New constructs a round against the given repository.
func New(repo *words.Repository, cfg Config) (*Game, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	answer := strings.ToUpper(strings.TrimSpace(cfg.Answer))
	if answer == "" {
		if cfg.Rng == nil {
			return nil, errors.New("no answer supplied and no rng to draw one")
		}
		var err error
		answer, err = repo.RandomAnswer(cfg.Rng)
		if err != nil {
			return nil, err
		}
	} else if !repo.IsValidAnswer(answer) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnswer, cfg.Answer)
	}

	if len(cfg.History) > cfg.MaxAttempts {
		return nil, fmt.Errorf("history has %d guesses but only %d attempts are allowed",
			len(cfg.History), cfg.MaxAttempts)
	}

	g := &Game{
		repo:        repo,
		answer:      answer,
		maxAttempts: cfg.MaxAttempts,
		history:     make([]string, 0, cfg.MaxAttempts),
	}

	for _, raw := range cfg.History {
		w := strings.ToUpper(strings.TrimSpace(raw))
		if !repo.IsValidGuess(w) {
			return nil, fmt.Errorf("history guess %w: %q", ErrInvalidGuess, raw)
		}
		g.history = append(g.history, w)
	}

	return g, nil
}

// SubmitGuess validates word, appends it to the history and returns
// the resulting state. Rejected guesses leave the game untouched.
func (g *Game) SubmitGuess(word string) (State, error) {
	if g.IsComplete() {
		return g.State(), ErrGameOver
	}

	w := strings.ToUpper(strings.TrimSpace(word))
	if !g.repo.IsValidGuess(w) {
		return g.State(), fmt.Errorf("%w: %q", ErrInvalidGuess, word)
	}

	g.history = append(g.history, w)
	return g.State(), nil
}

// Grade scores word against this round's answer. The word does not
// need to have been submitted; the presentation layer uses this to
// re-grade the whole history.
func (g *Game) Grade(word string) ([]Grade, error) {
	return Score(g.answer, word)
}

// State recomputes the round state from the history.
func (g *Game) State() State {
	for _, w := range g.history {
		if w == g.answer {
			return Won
		}
	}
	if len(g.history) >= g.maxAttempts {
		return Lost
	}
	return InProgress
}

// IsComplete reports whether the round is won or lost.
func (g *Game) IsComplete() bool { return g.State() != InProgress }

// IsWon reports whether the answer has been guessed.
func (g *Game) IsWon() bool { return g.State() == Won }

// UsedLetters returns every letter guessed so far, in first-appearance
// order.
func (g *Game) UsedLetters() []rune {
	var used []rune
	seen := [26]bool{}
	for _, w := range g.history {
		for _, r := range w {
			if !seen[r-'A'] {
				seen[r-'A'] = true
				used = append(used, r)
			}
		}
	}
	return used
}

// UnusedLetters returns the alphabet minus UsedLetters, in
// alphabetical order.
func (g *Game) UnusedLetters() []rune {
	seen := [26]bool{}
	for _, w := range g.history {
		for _, r := range w {
			seen[r-'A'] = true
		}
	}
	var unused []rune
	for i := range seen {
		if !seen[i] {
			unused = append(unused, rune('A'+i))
		}
	}
	return unused
}

// History returns a copy of the guesses in play order.
func (g *Game) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// Answer returns the secret word.
func (g *Game) Answer() string { return g.answer }

// MaxAttempts returns the guess limit for this round.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// AttemptsLeft returns how many guesses remain.
func (g *Game) AttemptsLeft() int { return g.maxAttempts - len(g.history) }

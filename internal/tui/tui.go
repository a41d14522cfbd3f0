// Package tui implements the interactive terminal game as a Bubble Tea
// model. It owns presentation only; all rules live in the game
// package.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/wordle-cli/internal/game"
	"github.com/lox/wordle-cli/internal/words"
)

const greeting = `Guess the WORDLE!

Each guess must be a valid five-letter word. Hit enter to submit.

After each guess, the colour of the tiles will change to show how
close your guess was to the word. Type quit or exit to close the game.`

// Model is the Bubble Tea model for one round.
type Model struct {
	game   *game.Game
	logger *log.Logger
	clock  quartz.Clock

	guessInput textinput.Model

	startedAt time.Time
	duration  time.Duration
	errMsg    string
	finished  bool
	quitting  bool
}

// New creates a model for the given round. The clock is injected so
// tests can control the reported round duration.
func New(g *game.Game, logger *log.Logger, clock quartz.Clock) *Model {
	ti := textinput.New()
	ti.Placeholder = "enter a guess"
	ti.Focus()
	ti.CharLimit = words.WordLength
	ti.Width = 20
	ti.Prompt = "> "

	return &Model{
		game:       g,
		logger:     logger.WithPrefix("tui"),
		clock:      clock,
		guessInput: ti,
		startedAt:  clock.Now(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.guessInput, cmd = m.guessInput.Update(msg)
	return m, cmd
}

// submit applies the typed guess to the game.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.guessInput.Value())
	m.guessInput.Reset()
	if raw == "" {
		return m, nil
	}

	if w := strings.ToUpper(raw); w == "QUIT" || w == "EXIT" {
		m.quitting = true
		return m, tea.Quit
	}

	state, err := m.game.SubmitGuess(raw)
	if err != nil {
		m.logger.Debug("Guess rejected", "guess", raw, "error", err)
		m.errMsg = fmt.Sprintf("%s is not a valid five-letter word.", strings.ToUpper(raw))
		return m, nil
	}

	m.errMsg = ""
	m.logger.Info("Guess accepted", "guess", strings.ToUpper(raw), "state", state)

	if m.game.IsComplete() {
		m.finished = true
		m.duration = m.clock.Now().Sub(m.startedAt)
		m.logger.Info("Round complete", "state", state, "duration", m.duration)
		return m, tea.Quit
	}
	return m, nil
}

// View renders the whole round: greeting, example rows, the board so
// far, letter usage and either the input prompt or the final banner.
func (m *Model) View() string {
	if m.quitting && !m.finished {
		return "Goodbye! Thanks for playing!\n"
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(" WORDLE "))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(greeting))
	b.WriteString("\n\n")
	b.WriteString(m.exampleRows())
	b.WriteString("\n")
	b.WriteString(m.board())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	if m.finished {
		b.WriteString(m.banner())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.letterUsage())
	b.WriteString(m.guessInput.View())
	b.WriteString("\n")
	return b.String()
}

// board renders every submitted guess as a row of graded tiles.
func (m *Model) board() string {
	var b strings.Builder
	for _, guess := range m.game.History() {
		grades, err := m.game.Grade(guess)
		if err != nil {
			// History entries are validated, this should not happen.
			m.logger.Error("Failed to grade history entry", "guess", guess, "error", err)
			continue
		}
		b.WriteString(RenderTiles(guess, grades))
		b.WriteString("\n")
	}
	return b.String()
}

// exampleRows mirrors the worked examples shown before the first
// guess: one correct letter, one misplaced, one absent.
func (m *Model) exampleRows() string {
	rows := []struct {
		word    string
		grades  []game.Grade
		explain string
	}{
		{"WEARY", []game.Grade{game.Correct, game.Absent, game.Absent, game.Absent, game.Absent},
			"The letter W is in the word and in the correct spot."},
		{"PILLS", []game.Grade{game.Absent, game.Present, game.Absent, game.Absent, game.Absent},
			"The letter I is in the word but in the wrong spot."},
		{"VAGUE", []game.Grade{game.Absent, game.Absent, game.Absent, game.Absent, game.Absent},
			"Grey letters aren't used in any spots."},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(RenderTiles(row.word, row.grades))
		b.WriteString("  ")
		b.WriteString(InfoStyle.Render(row.explain))
		b.WriteString("\n")
	}
	return b.String()
}

// letterUsage renders the used and unused letter lines.
func (m *Model) letterUsage() string {
	var b strings.Builder
	if used := joinRunes(m.game.UsedLetters()); used != "" {
		b.WriteString(InfoStyle.Render("Used letters:   " + used))
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render("Unused letters: " + joinRunes(m.game.UnusedLetters())))
	b.WriteString("\n")
	return b.String()
}

// banner renders the end-of-round result.
func (m *Model) banner() string {
	elapsed := m.duration.Round(time.Second)
	if m.game.IsWon() {
		return SuccessStyle.Render(
			fmt.Sprintf("Congratulations, you won in %d guesses! (%s)",
				len(m.game.History()), elapsed))
	}
	return ErrorStyle.Render("Better luck next time! The correct word was: ") +
		CorrectStyle.Render(m.game.Answer())
}

// RenderTiles styles each letter of word according to its grade.
func RenderTiles(word string, grades []game.Grade) string {
	word = strings.ToUpper(word)
	tiles := make([]string, 0, len(grades))
	for i, g := range grades {
		letter := string(word[i])
		switch g {
		case game.Correct:
			tiles = append(tiles, CorrectStyle.Render(letter))
		case game.Present:
			tiles = append(tiles, PresentStyle.Render(letter))
		default:
			tiles = append(tiles, AbsentStyle.Render(letter))
		}
	}
	return strings.Join(tiles, " ")
}

func joinRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

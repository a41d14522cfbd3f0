package game

import (
	"fmt"
	"strings"

	"github.com/lox/wordle-cli/internal/words"
)

// Grade is the per-letter outcome of scoring a guess against the
// answer.
type Grade int

const (
	// Absent means the letter gets no credit: either it is not in the
	// answer at all, or every occurrence in the answer has already
	// been consumed by another position.
	Absent Grade = iota

	// Present means the letter is in the answer but at a different
	// position.
	Present

	// Correct means the letter matches the answer at this position.
	Correct
)

func (g Grade) String() string {
	switch g {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Score grades guess against answer, one Grade per letter. Both words
// are normalized to uppercase and must be exactly five ASCII letters.
//
// Scoring is the standard two passes. The first pass marks exact
// matches and reserves their letters; the second pass hands out
// Present from whatever count remains. The order matters: an exact
// match must consume the letter budget before a misplaced occurrence
// of the same letter can, otherwise repeated letters get credited more
// times than they appear in the answer.
func Score(answer, guess string) ([]Grade, error) {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if err := checkWord(answer); err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	if err := checkWord(guess); err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}

	grades := make([]Grade, words.WordLength)

	// Remaining occurrences of each answer letter, net of exact matches.
	var remaining [26]int

	for i := 0; i < words.WordLength; i++ {
		if guess[i] == answer[i] {
			grades[i] = Correct
		} else {
			remaining[answer[i]-'A']++
		}
	}

	for i := 0; i < words.WordLength; i++ {
		if grades[i] == Correct {
			continue
		}
		if j := guess[i] - 'A'; remaining[j] > 0 {
			grades[i] = Present
			remaining[j]--
		}
	}

	return grades, nil
}

func checkWord(w string) error {
	if len(w) != words.WordLength {
		return fmt.Errorf("%q is not %d letters", w, words.WordLength)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return fmt.Errorf("%q contains non-letter characters", w)
		}
	}
	return nil
}

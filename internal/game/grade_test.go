package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   []Grade
	}{
		{
			name:   "guess equals answer is all correct",
			answer: "CRANE",
			guess:  "CRANE",
			want:   []Grade{Correct, Correct, Correct, Correct, Correct},
		},
		{
			name:   "misplaced letter after exact matches",
			answer: "CRANE",
			guess:  "TRACE",
			want:   []Grade{Absent, Correct, Correct, Present, Correct},
		},
		{
			name:   "no letters shared",
			answer: "CRANE",
			guess:  "QUICK",
			want:   []Grade{Absent, Absent, Absent, Present, Absent},
		},
		{
			name:   "repeated guess letters capped by answer counts",
			answer: "ALLOW",
			guess:  "LLAMA",
			want:   []Grade{Present, Correct, Present, Absent, Absent},
		},
		{
			name:   "double answer letter gives two presents at most",
			answer: "GREEN",
			guess:  "EERIE",
			want:   []Grade{Present, Present, Present, Absent, Absent},
		},
		{
			name:   "exact match reserves its letter before presents",
			answer: "ABBEY",
			guess:  "BABES",
			want:   []Grade{Present, Present, Correct, Correct, Absent},
		},
		{
			name:   "lowercase input is normalized",
			answer: "crane",
			guess:  "trace",
			want:   []Grade{Absent, Correct, Correct, Present, Correct},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.answer, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	first, err := Score("ALLOW", "LLAMA")
	require.NoError(t, err)
	second, err := Score("ALLOW", "LLAMA")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
	}{
		{"short guess", "CRANE", "CAT"},
		{"long guess", "CRANE", "CRANES"},
		{"empty guess", "CRANE", ""},
		{"non-letter guess", "CRANE", "CR4NE"},
		{"short answer", "CRAN", "CRANE"},
		{"non-letter answer", "CR-NE", "CRANE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.answer, tt.guess)
			assert.Error(t, err)
		})
	}
}

// Correct+Present marks for any letter never exceed the smaller of its
// occurrence counts in guess and answer.
func TestScoreLetterConservation(t *testing.T) {
	pairs := [][2]string{
		{"ALLOW", "LLAMA"},
		{"GREEN", "EERIE"},
		{"ABBEY", "BABES"},
		{"CRANE", "TRACE"},
		{"LEVEL", "EVENS"},
		{"MAMMA", "AMMAN"},
	}

	for _, pair := range pairs {
		answer, guess := pair[0], pair[1]
		grades, err := Score(answer, guess)
		require.NoError(t, err)
		require.Len(t, grades, 5)

		var credited [26]int
		for i, g := range grades {
			assert.Contains(t, []Grade{Absent, Present, Correct}, g)
			if g != Absent {
				credited[guess[i]-'A']++
			}
		}

		var inAnswer, inGuess [26]int
		for i := 0; i < 5; i++ {
			inAnswer[answer[i]-'A']++
			inGuess[guess[i]-'A']++
		}
		for l := 0; l < 26; l++ {
			limit := min(inAnswer[l], inGuess[l])
			assert.LessOrEqual(t, credited[l], limit,
				"letter %c over-credited for %s vs %s", 'A'+l, guess, answer)
		}
	}
}

func TestGradeString(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "absent", Absent.String())
}

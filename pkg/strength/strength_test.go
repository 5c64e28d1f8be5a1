package strength_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phishguard/guardkit/pkg/strength"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     strength.Strength
	}{
		{
			name:     "empty",
			password: "",
			want: strength.Strength{
				Score: 0,
				Level: strength.LevelNone,
			},
		},
		{
			name:     "length only",
			password: "abcdefgh",
			want: strength.Strength{
				Score:    1,
				Level:    strength.LevelWeak,
				Criteria: strength.Criteria{Length8: true},
			},
		},
		{
			name:     "short but mixed",
			password: "Ab1!",
			want: strength.Strength{
				Score:    3,
				Level:    strength.LevelGood,
				Criteria: strength.Criteria{MixedCase: true, Digit: true, Symbol: true},
			},
		},
		{
			name:     "everything except long length",
			password: "Abcdefgh1!",
			want: strength.Strength{
				Score:    4,
				Level:    strength.LevelStrong,
				Criteria: strength.Criteria{Length8: true, MixedCase: true, Digit: true, Symbol: true},
			},
		},
		{
			name:     "all predicates",
			password: "Abcdefghijk1!",
			want: strength.Strength{
				Score: 5,
				Level: strength.LevelVeryStrong,
				Criteria: strength.Criteria{
					Length8:   true,
					Length12:  true,
					MixedCase: true,
					Digit:     true,
					Symbol:    true,
				},
			},
		},
		{
			name:     "uppercase alone is not mixed case",
			password: "ABCDEFGHIJKL",
			want: strength.Strength{
				Score:    2,
				Level:    strength.LevelFair,
				Criteria: strength.Criteria{Length8: true, Length12: true},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := strength.Evaluate(tc.password)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("strength mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluateMonotonicAcrossAdditions(t *testing.T) {
	// Each step appends characters that satisfy one more predicate; the score
	// must never decrease along the way.
	steps := []string{
		"",
		"abcdefgh",      // length 8
		"abcdefghA",     // mixed case
		"abcdefghA1",    // digit
		"abcdefghA1!",   // symbol
		"abcdefghA1!xy", // length 12
	}

	prev := -1
	for _, password := range steps {
		got := strength.Evaluate(password).Score
		if got < prev {
			t.Fatalf("score decreased at %q: %d -> %d", password, prev, got)
		}
		prev = got
	}
	if prev != 5 {
		t.Fatalf("final password should satisfy all predicates, got %d", prev)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	first := strength.Evaluate("Abcdefgh1!")
	second := strength.Evaluate("Abcdefgh1!")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat evaluation diverged (-first +second):\n%s", diff)
	}
}

func TestLevelForScoreClamps(t *testing.T) {
	if got := strength.LevelForScore(-1); got != strength.LevelNone {
		t.Fatalf("negative score: got %q", got)
	}
	if got := strength.LevelForScore(9); got != strength.LevelVeryStrong {
		t.Fatalf("oversized score: got %q", got)
	}
}

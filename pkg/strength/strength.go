// Package strength scores password quality for the signup meter. The score
// is a count of independently satisfied predicates, so it moves in unit
// steps and never decreases when a password gains a missing trait. It is
// looser than the signup acceptance rules on purpose: the meter gives
// feedback on any candidate, acceptable or not.
package strength

import (
	"strings"
	"unicode/utf8"
)

// Level is the coarse label shown next to the meter.
type Level string

const (
	LevelNone       Level = "None"
	LevelWeak       Level = "Weak"
	LevelFair       Level = "Fair"
	LevelGood       Level = "Good"
	LevelStrong     Level = "Strong"
	LevelVeryStrong Level = "VeryStrong"
)

// Symbols is the character set counted as special, shared with the signup
// password rule.
const Symbols = `!@#$%^&*(),.?":{}|<>`

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"
)

// Criteria reports which predicates a password satisfies. Meter UIs render
// it as a checklist.
type Criteria struct {
	Length8   bool `json:"length8"`
	Length12  bool `json:"length12"`
	MixedCase bool `json:"mixedCase"`
	Digit     bool `json:"digit"`
	Symbol    bool `json:"symbol"`
}

func (c Criteria) count() int {
	score := 0
	for _, ok := range []bool{c.Length8, c.Length12, c.MixedCase, c.Digit, c.Symbol} {
		if ok {
			score++
		}
	}
	return score
}

// Strength is the meter result: the predicate count, its label, and the
// per-predicate breakdown.
type Strength struct {
	Score    int      `json:"score"`
	Level    Level    `json:"level"`
	Criteria Criteria `json:"criteria"`
}

// Evaluate scores a password. Pure function of the input string; identical
// passwords always score identically.
func Evaluate(password string) Strength {
	length := utf8.RuneCountInString(password)
	criteria := Criteria{
		Length8:   length >= 8,
		Length12:  length >= 12,
		MixedCase: strings.ContainsAny(password, upperLetters) && strings.ContainsAny(password, lowerLetters),
		Digit:     strings.ContainsAny(password, digits),
		Symbol:    strings.ContainsAny(password, Symbols),
	}

	score := criteria.count()
	return Strength{
		Score:    score,
		Level:    LevelForScore(score),
		Criteria: criteria,
	}
}

// LevelForScore maps a predicate count onto its label. Counts outside 0..5
// clamp to the nearest label so callers composing their own criteria cannot
// produce an unnamed level.
func LevelForScore(score int) Level {
	switch {
	case score <= 0:
		return LevelNone
	case score == 1:
		return LevelWeak
	case score == 2:
		return LevelFair
	case score == 3:
		return LevelGood
	case score == 4:
		return LevelStrong
	default:
		return LevelVeryStrong
	}
}

// Package password scores password strength for the sign-up form meter.
//
// The score is a UI heuristic, not an entropy estimate.
package password

import "unicode/utf8"

// Strength levels.
const (
	LevelEmpty  = 0
	LevelWeak   = 1
	LevelMedium = 2
	LevelStrong = 3
)

// Result is what the strength meter renders. Color is a theme token.
type Result struct {
	Level int    `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var (
	empty  = Result{Level: LevelEmpty, Label: "Enter a password", Color: "text-muted"}
	weak   = Result{Level: LevelWeak, Label: "Weak", Color: "danger"}
	medium = Result{Level: LevelMedium, Label: "Medium", Color: "warning"}
	strong = Result{Level: LevelStrong, Label: "Strong", Color: "success"}
)

// Score counts the criteria pw meets: length >= 8, length >= 12, a lowercase
// letter, an uppercase letter, a digit, and any other character.
func Score(pw string) int {
	var lower, upper, digit, other bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	n := utf8.RuneCountInString(pw)
	score := 0
	for _, ok := range []bool{n >= 8, n >= 12, lower, upper, digit, other} {
		if ok {
			score++
		}
	}
	return score
}

// Check rates pw. Scores up to 2 are weak, 3-4 medium, 5 and up strong.
func Check(pw string) Result {
	if pw == "" {
		return empty
	}
	switch score := Score(pw); {
	case score <= 2:
		return weak
	case score <= 4:
		return medium
	default:
		return strong
	}
}

package form

import (
	"strings"
	"unicode/utf8"
)

// Strength is the password strength tier shown next to the password field.
type Strength string

const (
	StrengthAbsent Strength = ""
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// MaxStrengthScore is the highest score StrengthScore can return.
const MaxStrengthScore = 6

const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// StrengthScore sums one point per criterion: at least 8 characters, at least
// 12 characters, an upper-case letter, a lower-case letter, a digit and a
// special character.
func StrengthScore(password string) int {
	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	length := utf8.RuneCountInString(password)
	score := 0
	for _, met := range []bool{length >= 8, length >= 12, hasUpper, hasLower, hasDigit, hasSpecial} {
		if met {
			score++
		}
	}
	return score
}

// ClassifyStrength maps a password to its tier. An empty password has no
// indicator. Anything shorter than MinPasswordLength is weak whatever else it
// contains, since it cannot be submitted.
func ClassifyStrength(password string) Strength {
	if password == "" {
		return StrengthAbsent
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return StrengthWeak
	}

	switch score := StrengthScore(password); {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

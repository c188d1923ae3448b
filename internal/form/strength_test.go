package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dukerupert/signup/internal/form"
)

func TestClassifyStrength(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expected    form.Strength
		explanation string
	}{
		{"empty", "", form.StrengthAbsent, "no indicator"},
		{"short mixed", "Pass1", form.StrengthWeak, "shorter than 8 is always weak"},
		{"short everything", "Ab1!xyz", form.StrengthWeak, "7 chars, score 4, capped"},
		{"lowercase only", "abcdefgh", form.StrengthWeak, "len>=8 + lower = 2"},
		{"medium", "Password123", form.StrengthMedium, "len>=8 + upper + lower + digit = 4"},
		{"three points", "password1", form.StrengthMedium, "len>=8 + lower + digit = 3"},
		{"strong", "StrongPass@2024#Secure", form.StrengthStrong, "all six criteria"},
		{"five points", "Strongpass2024", form.StrengthStrong, "len>=8 + len>=12 + upper + lower + digit = 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, form.ClassifyStrength(tt.password), tt.explanation)
		})
	}
}

func TestStrengthScore(t *testing.T) {
	assert.Equal(t, 0, form.StrengthScore(""))
	assert.Equal(t, 3, form.StrengthScore("Pass1"))
	assert.Equal(t, 4, form.StrengthScore("Password123"))
	assert.Equal(t, form.MaxStrengthScore, form.StrengthScore("StrongPass@2024#Secure"))
	assert.Equal(t, 1, form.StrengthScore("\\"), "backslash is a special character")
	assert.Equal(t, 0, form.StrengthScore("é"), "non-ASCII letters score nothing")
}

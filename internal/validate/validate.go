package validate

import (
	"strings"
	"unicode/utf8"
)

// MaxChars is the input bound enforced at entry
const MaxChars = 2400

const emptyInputMessage = "Please enter some text"

// ValidationError is returned for input that must not reach the classifier
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Clamp truncates text to MaxChars characters
func Clamp(text string) string {
	if utf8.RuneCountInString(text) <= MaxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:MaxChars])
}

// Validate rejects text that is empty after trimming. Length is not checked
// here because input is clamped on entry.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Reason: emptyInputMessage}
	}
	return nil
}

// Length returns the character count shown next to the input
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

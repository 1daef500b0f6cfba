package types

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextRule describes the constraints of a validated text value object.
// Modules declare one rule per value object and supply their own sentinel
// errors so callers can match on the precise violation.
type TextRule struct {
	MaxLen  int
	Allowed func(r rune) bool // nil accepts any printable rune

	ErrEmpty   error
	ErrTooLong error
	ErrInvalid error
}

// Apply trims value and checks it against the rule.
func (r TextRule) Apply(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", r.ErrEmpty
	}
	if r.MaxLen > 0 && utf8.RuneCountInString(value) > r.MaxLen {
		return "", r.ErrTooLong
	}
	if !utf8.ValidString(value) {
		return "", r.ErrInvalid
	}
	allowed := r.Allowed
	if allowed == nil {
		allowed = unicode.IsPrint
	}
	for _, c := range value {
		if !allowed(c) {
			return "", r.ErrInvalid
		}
	}
	return value, nil
}

// NameRune accepts letters, dashes and apostrophes, as used for personal names.
func NameRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-' || r == '\''
}

// LabelRune accepts the characters allowed in display labels such as business
// or taxonomy names.
func LabelRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) ||
		strings.ContainsRune("-'&.,()", r)
}

// TextRune accepts printable runes plus line breaks and tabs, as used for
// free-form descriptions.
func TextRune(r rune) bool {
	return unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t'
}

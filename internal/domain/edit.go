package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrRangeOutOfBounds is returned when an edit range does not fit the text.
var ErrRangeOutOfBounds = errors.New("edit range out of bounds")

// EditRange is the span of text an edit replaces, in runes.
type EditRange struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// ValidateEdit reports whether replacement may be committed into current.
// It rejects a second decimal separator, whether already in current or
// repeated within replacement, and any rune that is neither a decimal digit
// nor the separator. The range is not consulted.
func ValidateEdit(current string, _ EditRange, replacement, separator string) bool {
	if separator != "" {
		n := strings.Count(replacement, separator)
		if n > 1 || (n == 1 && strings.Contains(current, separator)) {
			return false
		}
	}

	rest := replacement
	for rest != "" {
		if separator != "" && strings.HasPrefix(rest, separator) {
			rest = rest[len(separator):]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsDigit(r) {
			return false
		}
		rest = rest[size:]
	}
	return true
}

// ApplyEdit replaces the runes covered by r with replacement.
func ApplyEdit(text string, r EditRange, replacement string) (string, error) {
	runes := []rune(text)
	if r.Location < 0 || r.Length < 0 || r.Location+r.Length > len(runes) {
		return "", fmt.Errorf("%w: location %d length %d text length %d",
			ErrRangeOutOfBounds, r.Location, r.Length, len(runes))
	}

	var b strings.Builder
	b.WriteString(string(runes[:r.Location]))
	b.WriteString(replacement)
	b.WriteString(string(runes[r.Location+r.Length:]))
	return b.String(), nil
}

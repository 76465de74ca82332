package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	defaultDecimalSeparator  = "."
	defaultGroupingSeparator = ","
)

// NumberFormat renders and parses decimal numbers for one locale.
// It is built once per session and passed to the conversion engine.
type NumberFormat struct {
	tag               language.Tag
	printer           *message.Printer
	minFractionDigits int
	maxFractionDigits int
	decimal           string
	grouping          string
}

// NewNumberFormat creates a decimal-style format for tag with 0 to 1
// fractional digits. Output always uses Latin digits with the locale's
// separators for the Latin numbering system.
func NewNumberFormat(tag language.Tag) NumberFormat {
	p := message.NewPrinter(latinDigits(tag))
	return NumberFormat{
		tag:               tag,
		printer:           p,
		minFractionDigits: 0,
		maxFractionDigits: 1,
		decimal:           probeDecimalSeparator(p),
		grouping:          probeGroupingSeparator(p),
	}
}

// Tag returns the locale the format was built for.
func (f NumberFormat) Tag() language.Tag { return f.tag }

// DecimalSeparator returns the locale's decimal separator, e.g. "." or ",".
func (f NumberFormat) DecimalSeparator() string { return f.decimal }

// GroupingSeparator returns the locale's grouping separator, or "" when the
// locale does not group digits.
func (f NumberFormat) GroupingSeparator() string { return f.grouping }

// Format renders v with the configured fraction digits.
func (f NumberFormat) Format(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(f.minFractionDigits),
		number.MaxFractionDigits(f.maxFractionDigits),
	))
}

// Parse converts locale-formatted text to a number. Decimal digits of any
// script are accepted. It returns nil for empty or unparsable text rather
// than an error.
func (f NumberFormat) Parse(text string) *float64 {
	s := strings.Map(foldDigit, strings.TrimSpace(text))
	if s == "" {
		return nil
	}
	if f.grouping != "" {
		s = strings.ReplaceAll(s, f.grouping, "")
	}
	if f.decimal != "." {
		if strings.Contains(s, ".") {
			return nil
		}
		s = strings.ReplaceAll(s, f.decimal, ".")
	}
	if !isPlainDecimal(s) {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// isPlainDecimal accepts an optional sign, ASCII digits and at most one '.'.
// strconv.ParseFloat alone would also take exponents, hex floats and "Inf".
func isPlainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	if s == "" || s == "." {
		return false
	}
	dots := 0
	for _, r := range s {
		switch {
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		case r < '0' || r > '9':
			return false
		}
	}
	return true
}

// latinDigits pins the numbering system of tag to "latn".
func latinDigits(tag language.Tag) language.Tag {
	t, err := tag.SetTypeForKey("nu", "latn")
	if err != nil {
		return tag
	}
	return t
}

// foldDigit maps a decimal digit of any script to its ASCII form. Other runes
// are returned unchanged.
func foldDigit(r rune) rune {
	if r <= '9' || !unicode.IsDigit(r) {
		return r
	}
	// Decimal digits are encoded in runs of ten starting at zero.
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return '0' + (r-zero)%10
}

// probeDecimalSeparator formats 1.5 and returns whatever sits between the
// digits.
func probeDecimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if !strings.HasPrefix(s, "1") || !strings.HasSuffix(s, "5") || len(s) < 3 {
		return defaultDecimalSeparator
	}
	return s[1 : len(s)-1]
}

// probeGroupingSeparator formats 1234567 and returns the first run of
// non-digits, which also covers Indian-style grouping (12,34,567).
func probeGroupingSeparator(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1234567))
	if s == "1234567" {
		return ""
	}
	start := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if start <= 0 {
		return defaultGroupingSeparator
	}
	end := strings.IndexFunc(s[start:], func(r rune) bool { return r >= '0' && r <= '9' })
	if end <= 0 {
		return defaultGroupingSeparator
	}
	return s[start : start+end]
}

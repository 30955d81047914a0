package calculator

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "€"

// Decimal orders of magnitude beyond which an amount is not a finite
// float64 (above) or rounds to zero (below).
const (
	maxMagnitude = 308
	minMagnitude = -400
)

// ParseAmount reads the leading number of free-form amount text.
//
// Leading whitespace is skipped, then the longest prefix of the form
// [sign] digits [. digits] [e|E [sign] digits] is parsed; anything after it
// is ignored. Text without a numeric prefix, or whose value is not finite,
// parses as 0. "12.5 EUR" is 12.5, ".5" is 0.5, "abc" and "" are 0.
func ParseAmount(text string) float64 {
	prefix := numericPrefix(strings.TrimLeftFunc(text, unicode.IsSpace))
	if prefix == "" {
		return 0
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil || d.IsZero() {
		return 0
	}
	// Converting to float materializes 10^|exponent|, so values far outside
	// the float64 range are settled from the order of magnitude alone.
	magnitude := int64(d.Exponent()) + int64(d.NumDigits()) - 1
	if magnitude > maxMagnitude || magnitude < minMagnitude {
		return 0
	}
	v := d.InexactFloat64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// numericPrefix returns the longest leading decimal literal of s, normalized
// so that a bare fraction (".5") or trailing point ("5.") is well formed.
// It returns "" when s has no digits before or after an optional point.
func numericPrefix(s string) string {
	i := 0
	var b strings.Builder

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			b.WriteByte('-')
		}
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[intStart:i]

	var fracDigits string
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = s[i+1 : j]
		if intDigits != "" || fracDigits != "" {
			i = j
		}
	}

	if intDigits == "" && fracDigits == "" {
		return ""
	}
	if intDigits == "" {
		intDigits = "0"
	}
	b.WriteString(intDigits)
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}

	// An exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		sign := ""
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			if s[j] == '-' {
				sign = "-"
			}
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			b.WriteByte('e')
			b.WriteString(sign)
			b.WriteString(s[expStart:j])
		}
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// RoundCents rounds v to two decimal places for display.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Saturate keeps a figure finite: infinities become the largest float64 of
// the same sign and NaN becomes 0.
func Saturate(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// FormatMoney renders v with the currency symbol and exactly two decimals,
// e.g. 45 becomes "€45.00".
func FormatMoney(v float64) string {
	v = Saturate(v)
	s := decimal.NewFromFloat(v).StringFixed(2)
	if s == "-0.00" {
		s = "0.00"
	}
	return CurrencySymbol + s
}

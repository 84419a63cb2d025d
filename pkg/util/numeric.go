package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Decimal or scientific notation, no hex, no inf/nan literals
var numericPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumeric reports whether s holds a finite number. Leading and trailing
// whitespace is ignored, scientific notation is accepted, and the whole
// trimmed string must be consumed by the parse ("0 a" is not numeric).
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !numericPattern.MatchString(s) {
		return false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return IsFiniteValue(value)
}

// IsFiniteValue is the numeric counterpart of IsNumeric.
func IsFiniteValue(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// IsInteger reports whether value is finite and has no fractional part.
func IsInteger(value float64) bool {
	return IsFiniteValue(value) && value == math.Trunc(value)
}

// FilterPositiveNumeric keeps digits and the first decimal point. A second
// decimal point and everything after it is dropped.
func FilterPositiveNumeric(value string) string {
	var sb strings.Builder
	for _, c := range value {
		if (c >= '0' && c <= '9') || c == '.' {
			sb.WriteRune(c)
		}
	}
	return truncateSecondDot(sb.String())
}

// FilterNumeric is FilterPositiveNumeric that also keeps a leading minus sign.
// A minus sign after any retained character ends the value: "12-3" -> "12".
func FilterNumeric(value string) string {
	var sb strings.Builder
	for _, c := range value {
		switch {
		case c >= '0' && c <= '9', c == '.':
			sb.WriteRune(c)
		case c == '-':
			if sb.Len() > 0 {
				return truncateSecondDot(sb.String())
			}
			sb.WriteRune(c)
		}
	}
	return truncateSecondDot(sb.String())
}

func truncateSecondDot(s string) string {
	first := strings.IndexByte(s, '.')
	if first < 0 {
		return s
	}
	second := strings.IndexByte(s[first+1:], '.')
	if second < 0 {
		return s
	}
	return s[:first+1+second]
}

// WrapAngle maps an angle in degrees onto ]-180, 180].
func WrapAngle(angle float64) float64 {
	return -(floorMod(-angle+180, 360) - 180)
}

// floorMod returns the remainder with the sign of n, always in [0, n).
func floorMod(x, n float64) float64 {
	m := math.Mod(x, n)
	if m < 0 {
		m += n
	}
	if m >= n {
		m -= n
	}
	return m
}

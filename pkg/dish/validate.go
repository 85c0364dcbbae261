package dish

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength = 3
	MaxNameLength = 25
)

func ValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= MinNameLength && n <= MaxNameLength
}

// ValidCalories accepts integer literals only, "50.0" is rejected.
func ValidCalories(s string) bool {
	_, ok := parseInt(s)
	return ok
}

// ValidPrice accepts any finite integer or decimal number.
func ValidPrice(s string) bool {
	_, ok := parseFloat(s)
	return ok
}

func ValidVegetarian(s string) bool {
	return strings.EqualFold(s, YES) || strings.EqualFold(s, NO)
}

func ValidSpicyLevel(s string, scale SpiceScale) bool {
	l, ok := parseInt(s)
	return ok && scale.Has(l)
}

// parseInt parses a decimal integer literal. Surrounding
// blanks are ignored.
func parseInt(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	return i, err == nil
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// wholeFloat is the magnitude at which every float64 is integral.
const wholeFloat = 1 << 52

// RoundPrice rounds a price to cents.
func RoundPrice(f float64) float64 {
	if math.Abs(f) >= wholeFloat {
		return f
	}
	return math.Round(f*100) / 100
}

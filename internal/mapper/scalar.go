package mapper

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the shortest decimal form of f that parses back to
// the same value, always with a decimal point so it reads as a float.
func FormatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

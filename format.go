package calc

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a value for display. Mathematically integral values render
// with no fractional part and their digits grouped in threes; other values
// render with at most 12 significant digits, with the integer part grouped
// and the fraction attached with the configured decimal separator.
// Scientific notation passes through unchanged. Formatted output fed back
// through Normalize and Parse reproduces the value within the 12-digit
// display precision.
func Format(v float64, opts ...Option) string {
	c := defaultconfig(opts)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == math.Trunc(v) {
		// The 'f' form never uses an exponent, so huge integral values
		// render in full, as the display expects.
		return group(strconv.FormatFloat(v, 'f', -1, 64), c.group)
	}
	text := strconv.FormatFloat(v, 'g', 12, 64)
	if strings.ContainsAny(text, "eE") {
		return text
	}
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	intpart, fracpart, _ := strings.Cut(text, ".")
	if intpart == "" {
		intpart = "0"
	}
	s := sign + group(intpart, c.group)
	if fracpart != "" {
		dec := "."
		if c.comma {
			dec = ","
		}
		s += dec + fracpart
	}
	return s
}

// group inserts the separator between every three digits, counting from the
// right. A leading sign passes through ungrouped.
func group(digits string, sep rune) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

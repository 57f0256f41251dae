package calc

import (
	"strings"
	"unicode"
)

// Option configures normalization and formatting. Which decimal and grouping
// characters the display uses is the front end's choice, so the same options
// apply to Normalize, Format, and Evaluate.
type Option interface {
	option(config) config
}

type (
	commaopt struct{}
	groupopt rune
)

// config holds the separator configuration. The zero value is not useful;
// use defaultconfig.
type config struct {
	// comma indicates that the display uses a decimal comma.
	comma bool
	// group is the rune grouping integer digits in formatted output.
	group rune
}

func defaultconfig(opts []Option) config {
	c := config{group: ' '}
	for _, opt := range opts {
		c = opt.option(c)
	}
	return c
}

// DecimalComma configures the decimal separator to be a comma, as the
// display convention in comma-decimal locales. Normalize rewrites commas to
// periods and Format renders the fractional separator as a comma.
func DecimalComma() Option {
	return commaopt{}
}

func (commaopt) option(c config) config {
	c.comma = true
	return c
}

// GroupSeparator sets the rune that groups integer digits in formatted
// output. The default is the no-break space. The separator should be a
// whitespace rune so that formatted output survives Normalize.
func GroupSeparator(r rune) Option {
	return groupopt(r)
}

func (o groupopt) option(c config) config {
	c.group = rune(o)
	return c
}

// Normalize produces a parseable expression from raw display text. All
// whitespace is removed, and under DecimalComma each comma becomes a period.
// An expression that normalizes to the empty string evaluates to 0.
func Normalize(src string, opts ...Option) string {
	c := defaultconfig(opts)
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range src {
		switch {
		case unicode.IsSpace(r):
			continue
		case c.comma && r == ',':
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Evaluate is a shortcut to normalize, parse, and evaluate an expression.
// An expression that is empty after normalization evaluates to 0; this is
// the documented behavior for a cleared display, not an error.
func Evaluate(src string, opts ...Option) (float64, error) {
	s := Normalize(src, opts...)
	if s == "" {
		return 0, nil
	}
	e, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

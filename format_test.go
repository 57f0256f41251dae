package calc_test

import (
	"math"
	"testing"

	"github.com/rechner-app/calc"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		opts []calc.Option
		want string
	}{
		{"zero", 0, nil, "0"},
		{"small-int", 14, nil, "14"},
		{"three-digits", 999, nil, "999"},
		{"four-digits", 1000, nil, "1 000"},
		{"grouped", 1234567, nil, "1 234 567"},
		{"neg-grouped", -1234567, nil, "-1 234 567"},
		{"huge-int", 1e21, nil, "1 000 000 000 000 000 000 000"},
		{"fraction", 0.5, nil, "0.5"},
		{"neg-fraction", -0.25, nil, "-0.25"},
		{"grouped-fraction", 12345.6789, nil, "12 345.6789"},
		{"sci-small", 1.5e-7, nil, "1.5e-07"},
		{"sci-large", 1234567890123.5, nil, "1.23456789012e+12"},
		{"twelve-digits", 1.23456789012345, nil, "1.23456789012"},
		{"comma", 1234.5, []calc.Option{calc.DecimalComma()}, "1 234,5"},
		{"space-sep", 1234567.5, []calc.Option{calc.GroupSeparator(' ')}, "1 234 567.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := calc.Format(c.v, c.opts...); got != c.want {
				t.Errorf("Format(%g) = %q, want %q", c.v, got, c.want)
			}
		})
	}
}

// TestFormatRoundTrip checks that a formatted result fed back through
// normalization and parsing reproduces the value within the 12-digit
// display precision.
func TestFormatRoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 14, -999, 1000, 1234567, -1234567,
		0.5, -0.25, 3.14159265358979, 12345.6789, -987654.321,
		1.5e-7, -2.5e-8, 1234567890123.5, 1e15, 1e21, -1e21,
		0.1 + 0.2, 1.0 / 3.0,
	}
	for _, opts := range [][]calc.Option{nil, {calc.DecimalComma()}, {calc.GroupSeparator(' ')}} {
		for _, v := range values {
			s := calc.Format(v, opts...)
			got, err := calc.Evaluate(s, opts...)
			if err != nil {
				t.Errorf("Format(%g) = %q failed to re-evaluate: %v", v, s, err)
				continue
			}
			if got == v {
				continue
			}
			if math.Abs(got-v) > math.Abs(v)*1e-11 {
				t.Errorf("round trip of %g through %q gave %g", v, s, got)
			}
		}
	}
}

package calc_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rechner-app/calc"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"empty", "", 0},
		{"blank", "  \t ", 0},
		{"num", "1", 1},
		{"real", "1.5", 1.5},
		{"leading-dot", ".5", 0.5},
		{"exp-form", "2.5e2", 250},
		{"plus", "+4", 4},
		{"neg", "-4", -4},
		{"stacked-signs", "--4", 4},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"pow", "2**3", 8},
		{"pow-right", "4**3**2", 262144},
		{"pow-neg-base", "-2**2", -4},
		{"pow-neg-exp", "2**-2", 0.25},
		{"mod", "7%3", 1},
		{"mod-neg-dividend", "-7%3", 2},
		{"mod-neg-divisor", "7%-3", -2},
		{"mod-real", "7.5%2", 1.5},
		{"spaces", " 2 + 3 ", 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := calc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if v != c.want {
				t.Errorf("%q evaluated wrong: want %g, got %g", c.src, c.want, v)
			}
		})
	}
}

func TestEvaluateDecimalComma(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"comma", "1,5", 1.5},
		{"comma-add", "1,5+2,25", 3.75},
		{"period-still-works", "1.5+1", 2.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := calc.Evaluate(c.src, calc.DecimalComma())
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if v != c.want {
				t.Errorf("%q evaluated wrong: want %g, got %g", c.src, c.want, v)
			}
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"div", "1/0"},
		{"div-expr", "2/(3-3)"},
		{"mod", "5%0"},
		{"div-neg-zero", "1/-0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := calc.Evaluate(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g without error", c.src, v)
			}
			var dz *calc.DivisionByZeroError
			if !errors.As(err, &dz) {
				t.Errorf("%q gave %#v, not DivisionByZeroError", c.src, err)
			}
		})
	}
}

func TestEvaluateDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"neg-base-frac-exp", "(-1)**0.5"},
		{"neg-base-frac-exp-paren", "(0-2)**(1/2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := calc.Evaluate(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g without error", c.src, v)
			}
			var de *calc.DomainError
			if !errors.As(err, &de) {
				t.Errorf("%q gave %#v, not DomainError", c.src, err)
			}
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"ident", "abc"},
		{"call", "sqrt(2)"},
		{"assign", "x=1"},
		{"comparison", "1<2"},
		{"list", "[1,2]"},
		{"unclosed", "(2+3"},
		{"empty-parens", "()"},
		{"dangling-op", "2+"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := calc.Evaluate(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g without error", c.src, v)
			}
			var input calc.InputError
			if !errors.As(err, &input) {
				t.Errorf("%q gave %#v, which is not an InputError", c.src, err)
			}
		})
	}
}

func TestEvaluateOverflow(t *testing.T) {
	// Overflow saturates to an infinity without error; NaN never escapes.
	v, err := calc.Evaluate("1e308*10")
	if err != nil {
		t.Fatalf("overflow errored: %v", err)
	}
	if !math.IsInf(v, 1) {
		t.Errorf("overflow gave %g, not +Inf", v)
	}
	v, err = calc.Evaluate("1e999-1e999")
	if err == nil {
		t.Errorf("inf-inf evaluated to %g without error", v)
	}
	var de *calc.DomainError
	if err != nil && !errors.As(err, &de) {
		t.Errorf("inf-inf gave %#v, not DomainError", err)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Evaluate("(2+3)*4**2-1/8"); err != nil {
			b.Fatal(err)
		}
	}
}

func Example() {
	v, _ := calc.Evaluate("2+3*4")
	fmt.Println(calc.Format(v))
	v, _ = calc.Evaluate("1,5*2", calc.DecimalComma())
	fmt.Println(calc.Format(v, calc.DecimalComma()))

	// Output:
	// 14
	// 3
}

package calc

import "math"

// Derived single-argument transforms that front ends apply to an evaluated
// result. They are not part of the expression grammar.

// Reciprocal returns 1/x. Zero fails with DivisionByZeroError.
func Reciprocal(x float64) (float64, error) {
	if x == 0 {
		return 0, &DivisionByZeroError{Op: "1/x"}
	}
	return 1 / x, nil
}

// Sqrt returns the square root of x. A negative argument fails with
// DomainError.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &DomainError{X: x, Op: "sqrt"}
	}
	return math.Sqrt(x), nil
}

// Square returns x squared.
func Square(x float64) float64 {
	return x * x
}

// Percent returns x divided by 100.
func Percent(x float64) float64 {
	return x / 100
}

// Package calc implements a restricted arithmetic-expression evaluator for
// calculator front ends.
//
// The grammar is deliberately small: decimal literals, unary + and -, the
// binary operators + - * / % and ** (exponentiation), and parentheses.
// There are no variables, functions, comparisons, or assignments; input
// containing anything else fails with a classified error rather than being
// handed to a general-purpose evaluator. "-2**2" is -4: the leading sign
// wraps the exponentiation.
//
// Evaluation is a pure function from string to float64 or error. The
// package keeps no state between calls, so concurrent evaluations are
// independent. Normalize prepares raw display text (whitespace, decimal
// comma) and Format renders results back into display form such that a
// formatted result re-evaluates to the same value within display precision.
package calc

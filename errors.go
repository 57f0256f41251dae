package calc

import "strconv"

// Errors fall into two classes. Errors implementing InputError describe
// input that does not match the expression grammar: the malformed-expression
// class. DivisionByZeroError, DomainError, and UnsupportedNodeError describe
// legal input whose evaluation is undefined. All errors are returned to the
// immediate caller; nothing is retried, recovered, or logged.

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// OperatorError is an error indicating an operator token in a position where
// the grammar does not allow it. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the offending token.
	Col int
	// Left is the opening parenthesis.
	Left string
	// Right is the mismatched closing parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token where the grammar required the
// expression to end. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the unexpected token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression where a
// value was required. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that could not be
// converted to a value. The lexer validates literal shape, so this is
// normally unreachable. It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal text.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*LexError)(nil)
)

// DivisionByZeroError is an error from dividing by exactly zero, whether by
// /, %, or the reciprocal transform.
type DivisionByZeroError struct {
	// Op is the operation that divided, "/", "%", or "1/x".
	Op string
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero in " + err.Op
}

// DomainError is an error from an operation whose argument is outside its
// real domain, such as the square root of a negative number or a negative
// base raised to a fractional exponent.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Op is the operation.
	Op string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Op
}

// UnsupportedNodeError is an error from evaluating a syntax-tree node
// outside the supported literal and operator kinds. The parser cannot build
// such a tree, but the evaluator enforces the boundary anyway.
type UnsupportedNodeError struct {
	// Kind describes the rejected node.
	Kind string
}

func (err *UnsupportedNodeError) Error() string {
	return "unsupported construct: " + err.Kind
}

package calc

import (
	"errors"
	"strconv"
	"strings"
)

// expr    := term (('+' | '-') term)*
// term    := factor (('*' | '/' | '%') factor)*
// factor  := ('+' | '-') factor | primary ('**' factor)?
// primary := NUMBER | '(' expr ')'
//
// ** is right-associative. A leading sign wraps the exponentiation, so
// -2**2 parses as -(2**2).

// Expr is a parsed expression. It holds only numeric literals and the
// supported operators and retains no evaluation state.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses a normalized expression. Input that does not match the
// expression grammar, including identifiers, function calls, and comparison
// or assignment operators, fails with an InputError.
func Parse(src string) (*Expr, error) {
	scan := lex(strings.NewReader(src))
	n, err := parseexpr(scan)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, "")
	}
	return &Expr{n: n}, nil
}

// parseexpr parses a full subexpression: terms joined by + and -. It pushes
// the last token it scans, including EOF.
func parseexpr(scan *lexer) (*node, error) {
	n, err := parseterm(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp {
			scan.push(tok)
			return n, nil
		}
		var kind nodeKind
		switch tok.text {
		case "+":
			kind = nodeAdd
		case "-":
			kind = nodeSub
		default:
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseterm(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parseterm parses factors joined by *, /, and %.
func parseterm(scan *lexer) (*node, error) {
	n, err := parsefactor(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp {
			scan.push(tok)
			return n, nil
		}
		var kind nodeKind
		switch tok.text {
		case "*":
			kind = nodeMul
		case "/":
			kind = nodeDiv
		case "%":
			kind = nodeMod
		default:
			scan.push(tok)
			return n, nil
		}
		rhs, err := parsefactor(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parsefactor parses an optionally signed primary with an optional
// right-associative exponent. The sign recurses so that stacked signs like
// --2 parse, and it applies outside the exponent.
func parsefactor(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp {
		switch tok.text {
		case "+":
			rhs, err := parsefactor(scan)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeNop, left: rhs}, nil
		case "-":
			rhs, err := parsefactor(scan)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeNeg, left: rhs}, nil
		default:
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
	}
	scan.push(tok)
	n, err := parseprimary(scan)
	if err != nil {
		return nil, err
	}
	tok, err = scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && tok.text == "**" {
		rhs, err := parsefactor(scan)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodePow, left: n, right: rhs}, nil
	}
	scan.push(tok)
	return n, nil
}

// parseprimary parses a numeric literal or a parenthesized subexpression.
func parseprimary(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer validates literal shape, but enforce it here too.
			return nil, &NumberError{Col: tok.pos, Text: tok.text}
		}
		// Out-of-range literals saturate to an infinity, which ParseFloat
		// already returned in v.
		return &node{kind: nodeNum, text: tok.text, num: v}, nil
	case tokenOpen:
		n, err := parseexpr(scan)
		if err != nil {
			return nil, err
		}
		if end := scan.must(); end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, tok.text)
		}
		return n, nil
	case tokenOp:
		return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is the bracket the expression
// should have closed, or the empty string at top level.
func itShouldNotHaveEndedThisWay(tok lexToken, open string) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: open, Right: ""}
	case tokenClose:
		return &BracketError{Col: tok.pos, Left: open, Right: tok.text}
	default:
		// A number or operator where the expression should have ended.
		return &TokenError{Col: tok.pos, Token: tok.text}
	}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

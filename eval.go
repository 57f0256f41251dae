package calc

import "math"

// Eval reduces the expression to a value. Operands evaluate left before
// right. Division or modulo by exactly zero fails with DivisionByZeroError,
// and operations leaving the real domain fail with DomainError; overflow
// saturates to an infinity without error.
func (e *Expr) Eval() (float64, error) {
	v, err := e.n.eval()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		// NaN is never returned as a result.
		return 0, &DomainError{X: v, Op: "arithmetic"}
	}
	return v, nil
}

// eval reduces a node to its value.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeNop:
		return n.left.eval()
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return binary(n.kind, l, r)
	default:
		return 0, &UnsupportedNodeError{Kind: n.kind.String()}
	}
}

func binary(kind nodeKind, l, r float64) (float64, error) {
	switch kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "/"}
		}
		// Guard against inf/inf, which has no defined quotient.
		if math.IsInf(l, 0) && math.IsInf(r, 0) {
			return 0, &DomainError{X: r, Op: "/"}
		}
		return l / r, nil
	case nodeMod:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "%"}
		}
		m := math.Mod(l, r)
		if math.IsNaN(m) {
			return 0, &DomainError{X: l, Op: "%"}
		}
		// math.Mod follows the dividend's sign; the calculator follows the
		// divisor's.
		if m != 0 && (m < 0) != (r < 0) {
			m += r
		}
		return m, nil
	case nodePow:
		v := math.Pow(l, r)
		if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) {
			// Negative base with fractional exponent.
			return 0, &DomainError{X: l, Op: "**"}
		}
		return v, nil
	default:
		return 0, &UnsupportedNodeError{Kind: kind.String()}
	}
}

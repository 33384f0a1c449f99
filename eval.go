package arith

import (
	"errors"
	"math"
	"strconv"
)

// Eval evaluates the expression. Children are evaluated left before right.
// Division by a divisor equal to zero is an error of type
// *DivisionByZeroError; every other operation follows IEEE-754, so overflow
// produces infinities and e.g. (-8)^0.5 produces NaN.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			if r == 0 {
				return 0, &DivisionByZeroError{Dividend: l}
			}
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src string) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// ErrEval is the category of errors that occur while evaluating a parsed
// expression. Every such error matches it with errors.Is.
var ErrEval = errors.New("evaluation error")

// DivisionByZeroError is an error from dividing by zero or negative zero.
type DivisionByZeroError struct {
	// Dividend is the value of the left operand.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + " / 0"
}

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrEval
}

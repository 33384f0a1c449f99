package arith

// precedence is the binding power of an operator. Higher values bind more
// tightly.
type precedence int8

const (
	precNone precedence = iota
	precAddSub
	precMulDiv
	precPower
	precNegative
)

func (p precedence) String() string {
	switch p {
	case precNone:
		return "None"
	case precAddSub:
		return "AddSub"
	case precMulDiv:
		return "MulDiv"
	case precPower:
		return "Power"
	case precNegative:
		return "Negative"
	default:
		return "precedence(?)"
	}
}

// prec gets the binding power of a token as a binary operator. Tokens which
// are not binary operators, including tokenEOF, have precNone.
func (k tokenKind) prec() precedence {
	switch k {
	case tokenAdd, tokenSub:
		return precAddSub
	case tokenMul, tokenDiv:
		return precMulDiv
	case tokenCaret:
		return precPower
	default:
		return precNone
	}
}

// rprec is the precedence at which the right operand of a binary operator is
// parsed. Exponentiation parses its right operand one level lower so that it
// is right-associative: 2^3^2 is 2^(3^2).
func (k tokenKind) rprec() precedence {
	if k == tokenCaret {
		return precMulDiv
	}
	return k.prec()
}

// binop gets the node kind for a binary operator token. If the token is not a
// binary operator, the result is nodeNone.
func (k tokenKind) binop() nodeKind {
	switch k {
	case tokenAdd:
		return nodeAdd
	case tokenSub:
		return nodeSub
	case tokenMul:
		return nodeMul
	case tokenDiv:
		return nodeDiv
	case tokenCaret:
		return nodePow
	default:
		return nodeNone
	}
}

package arith

import "strconv"

// Expr = num | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')' | '(' Expr ')' '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | '(' Expr ')' '(' Expr ')'
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// parser holds the lexer and a single token of lookahead.
type parser struct {
	scan *lexer
	cur  token
}

// Parse parses an expression so it can be evaluated. src must not contain
// whitespace; any rune other than digits, '.', and the runes in Operators is
// an error.
func Parse(src string) (*Expr, error) {
	p := parser{scan: lex(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.expr(precNone)
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenEOF {
		return nil, p.unexpected("operator or end of input")
	}
	return &Expr{n: n}, nil
}

// advance scans the next token into the lookahead.
func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// expect checks that the lookahead is of the given kind and advances past it.
func (p *parser) expect(k tokenKind, text string) error {
	if p.cur.kind != k {
		return p.unexpected(strconv.Quote(text))
	}
	return p.advance()
}

func (p *parser) unexpected(want string) error {
	return &TokenError{Col: p.cur.pos, Expected: want, Found: p.cur.describe()}
}

// expr parses an atom followed by any binary operators that bind more tightly
// than min.
func (p *parser) expr(min precedence) (*node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.cur.kind.prec() > min {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.expr(op.rprec())
		if err != nil {
			return nil, err
		}
		n = &node{kind: op.binop(), left: n, right: rhs}
	}
	return n, nil
}

// atom parses a number, a negation, or a parenthesized subexpression.
func (p *parser) atom() (*node, error) {
	switch tok := p.cur; tok.kind {
	case tokenNum:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, num: tok.num}, nil
	case tokenSub:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.expr(precNegative)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: x}, nil
	case tokenOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.expr(precNone)
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenClose, ")"); err != nil {
			return nil, err
		}
		if p.cur.kind == tokenOpen {
			// (a)(b) -> (a) * (b)
			// Only a bracketed group may be followed by another one; 2(3)
			// is still an error.
			rhs, err := p.expr(precMulDiv)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeMul, left: x, right: rhs}, nil
		}
		return x, nil
	default:
		return nil, p.unexpected(`number, "-", or "("`)
	}
}

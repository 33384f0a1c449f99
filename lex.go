package arith

import (
	"errors"
	"strconv"
	"strings"
)

type token struct {
	kind tokenKind
	// text is the source text of the token. It is empty for tokenEOF.
	text string
	// num is the value of a tokenNum.
	num float64
	// pos is the column of the first rune of the token, starting from 1.
	pos int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// describe renders the token for error messages.
func (t token) describe() string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input. The lexer returns it forever
	// once the input is exhausted.
	tokenEOF
	// tokenNum is a decimal number literal.
	tokenNum

	tokenAdd
	tokenSub
	tokenMul
	tokenDiv
	tokenCaret
	tokenOpen
	tokenClose
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenAdd:   "Add",
	tokenSub:   "Sub",
	tokenMul:   "Mul",
	tokenDiv:   "Div",
	tokenCaret: "Caret",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are lexed as single-rune tokens, in the
// same order as the kinds in opkinds.
const Operators = "+-*/^()"

var opkinds = [...]tokenKind{tokenAdd, tokenSub, tokenMul, tokenDiv, tokenCaret, tokenOpen, tokenClose}

type lexer struct {
	src  *strings.Reader
	buf  strings.Builder
	rune int
}

// lex creates a lexer over src. Whitespace is not skipped; callers strip it
// before lexing.
func lex(src string) *lexer {
	return &lexer{
		src:  strings.NewReader(src),
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
// The only possible error is io.EOF.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of input, the result
// is a tokenEOF token, no matter how many times next is called.
func (l *lexer) next() (token, error) {
	tok := token{pos: l.rune}
	r, err := l.readRune()
	if err != nil {
		tok.kind = tokenEOF
		return tok, nil
	}
	if '0' <= r && r <= '9' || r == '.' {
		l.unreadRune()
		return l.scanNum(tok)
	}
	if k := strings.IndexRune(Operators, r); k >= 0 {
		tok.kind = opkinds[k]
		tok.text = Operators[k : k+1]
		return tok, nil
	}
	return tok, &TokenError{Col: tok.pos, Found: strconv.QuoteRune(r)}
}

// scanNum scans digits and at most one decimal point. A second decimal point
// ends the literal.
func (l *lexer) scanNum(tok token) (token, error) {
	defer l.buf.Reset()
	var dot bool
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		switch {
		case '0' <= r && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			l.unreadRune()
			break scan
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	f, err := strconv.ParseFloat(text, 64)
	// Too many digits overflows to infinity, which is still a number.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token{pos: tok.pos}, &NumberError{Col: tok.pos, Text: text}
	}
	tok.kind = tokenNum
	tok.text = text
	tok.num = f
	return tok, nil
}

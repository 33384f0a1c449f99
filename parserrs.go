package arith

import (
	"errors"
	"strconv"
)

// ErrParse is the category of errors resulting from invalid input. Every
// error returned by Parse matches it with errors.Is.
var ErrParse = errors.New("parse error")

// TokenError is an error indicating a token that cannot appear where it was
// found. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Expected describes what the parser wanted instead. It is empty if the
	// input contains a character that is not part of any token.
	Expected string
	// Found describes the offending token.
	Found string
}

func (err *TokenError) Error() string {
	if err.Expected == "" {
		return errpos(err.Col, "unexpected character "+err.Found)
	}
	return errpos(err.Col, "expected "+err.Expected+", found "+err.Found)
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Is(target error) bool {
	return target == ErrParse
}

// NumberError is an error indicating a number literal that does not denote a
// number, e.g. a lone decimal point. It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal as scanned.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Is(target error) bool {
	return target == ErrParse
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*NumberError)(nil)
)

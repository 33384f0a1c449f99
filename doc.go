// Package arith implements a calculator for single-line infix arithmetic.
//
// Expressions contain decimal numbers, the binary operators + - * / and ^,
// unary negation, and parentheses. "^" is exponentiation and is
// right-associative, so "2^3^2" is "2^(3^2)". Negation binds more tightly than
// any binary operator: "-2^2" is "(-2)^2". Two bracketed groups written next
// to each other are multiplied, so "(2)(3)" is 6, but "2(3)" is an error.
//
// Input must not contain whitespace. Parsing fails on the first invalid token
// with an error matching ErrParse, and evaluation fails on division by zero
// with an error matching ErrEval. Results are float64.
//
// Parsing and evaluation are recursive, so the maximum nesting depth of an
// expression is limited by the goroutine stack.
package arith

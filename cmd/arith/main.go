// Command arith evaluates infix arithmetic expressions.
//
// With no arguments, arith reads expressions from standard input, one per
// line, and prints the value of each. Whitespace within a line is ignored. An
// invalid expression is reported and the session continues with the next
// line; the session ends at the end of input.
//
// "arith eval EXPR..." evaluates each argument instead.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/arith"
)

var greeting = []string{
	"Hello! Welcome to Arithmetic expression evaluator.",
	"You can calculate value for expression such as 2*3+(4-5)+2^3/4.",
	"Allowed numbers: positive, negative and decimals.",
	"Supported operations: Add, Subtract, Multiply, Divide, PowerOf(^).",
	"Enter your arithmetic expression below:",
}

// styles holds the output styles bound to one writer. Styling is dropped
// entirely when the writer is not a terminal.
type styles struct {
	title  lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6")),
		result: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		err:    r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// session is an interactive read-evaluate-print loop. Every line is evaluated
// independently.
type session struct {
	in    *bufio.Reader
	out   io.Writer
	log   zerolog.Logger
	style styles
	greet bool
}

func newSession(in io.Reader, out io.Writer, log zerolog.Logger, cfg REPLConfig) *session {
	return &session{
		in:    bufio.NewReader(in),
		out:   out,
		log:   log.With().Str("component", "repl").Logger(),
		style: newStyles(out, cfg.Color),
		greet: cfg.Greeting,
	}
}

// run reads and evaluates lines until the end of input. Invalid expressions
// are reported and do not end the loop; the only error is a read failure.
func (s *session) run() error {
	if s.greet {
		for _, line := range greeting {
			fmt.Fprintln(s.out, s.style.title.Render(line))
		}
	}
	for n := 1; ; n++ {
		line, err := s.in.ReadString('\n')
		if line != "" {
			s.line(n, line)
		}
		if errors.Is(err, io.EOF) {
			s.log.Debug().Int("lines", n-1).Msg("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// line evaluates and reports a single input line.
func (s *session) line(n int, line string) {
	src := stripSpace(line)
	if src == "" {
		return
	}
	r, err := evaluate(s.log.With().Int("line", n).Logger(), src)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n %v\n\n", s.style.err.Render("Error in evaluating expression. Please enter valid expression"), err)
		return
	}
	fmt.Fprintf(s.out, "The computed number is %s\n\n", s.style.result.Render(formatNumber(r)))
}

// evaluate parses and evaluates a whitespace-free expression, logging each
// stage.
func evaluate(log zerolog.Logger, src string) (float64, error) {
	a, err := arith.Parse(src)
	if err != nil {
		ev := log.Debug().Err(err).Str("expr", src)
		var ie arith.InputError
		if errors.As(err, &ie) {
			ev = ev.Int("col", ie.Pos())
		}
		ev.Msg("parse failed")
		return 0, err
	}
	log.Debug().Str("expr", src).Stringer("ast", a).Msg("parsed")
	r, err := a.Eval()
	if err != nil {
		log.Debug().Err(err).Str("expr", src).Msg("evaluation failed")
		return 0, err
	}
	return r, nil
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// formatNumber renders x in the shortest decimal form without an exponent.
func formatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

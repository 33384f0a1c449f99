package arith_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "0.25", 0.25},
		{"leading-dot", ".5", 0.5},
		{"trailing-dot", "2.", 2},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"pow", "4^3^2", 262144},
		{"precedence", "2+3*4", 14},
		{"paren", "(2+3)*4", 20},
		{"pow-right-assoc", "2^3^2", 512},
		{"neg-binds-tighter-than-pow", "-2^2", 4},
		{"neg-of-pow", "-(2^2)", -4},
		{"neg-exponent", "2^-2", 0.25},
		{"neg-neg", "--3", 3},
		{"adjacent", "(2)(3)", 6},
		{"adjacent-three", "(2)(3)(4)", 24},
		{"adjacent-add", "(1+1)(2+2)-1", 7},
		{"mixed", "2*3+(4-5)+2^3/4", 7},
		{"zero-dividend", "0/5", 0},
		{"sqrt", "16^0.5", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arith.Parse(c.src)
			require.NoError(t, err, "%q failed to parse", c.src)
			r, err := a.Eval()
			require.NoError(t, err, "evaluating %q", c.src)
			assert.Equal(t, c.r, r, "evaluating %q as %v", c.src, a)
			// The shortcut must agree.
			s, err := arith.Eval(c.src)
			require.NoError(t, err)
			assert.Equal(t, r, s)
		})
	}
}

func TestEvalIEEE(t *testing.T) {
	r, err := arith.Eval("(0-8)^0.5")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r), "want NaN, got %g", r)

	r, err = arith.Eval("10^400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(r, 1), "want +Inf, got %g", r)

	r, err = arith.Eval("-0")
	require.NoError(t, err)
	assert.True(t, r == 0 && math.Signbit(r), "want -0, got %g", r)
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		dividend float64
	}{
		{"one", "1/0", 1},
		{"zero", "0/0", 0},
		{"neg-zero", "1/-0", 1},
		{"expr-zero", "6/(2-2)", 6},
		{"decimal-zero", "3/0.0", 3},
		{"nested", "1+(2/(1-1))*3", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// The outcome is the same every time.
			for i := 0; i < 3; i++ {
				r, err := arith.Eval(c.src)
				require.Error(t, err, "%q evaluated to %g", c.src, r)
				assert.Zero(t, r)
				assert.ErrorIs(t, err, arith.ErrEval)
				assert.False(t, errors.Is(err, arith.ErrParse))
				var de *arith.DivisionByZeroError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, c.dividend, de.Dividend)
				assert.Contains(t, err.Error(), "division by zero")
			}
		})
	}
}

func TestEvalRejectsMalformed(t *testing.T) {
	for _, src := range []string{"2+", "(2+3", "2..3", "", ".", "2 + 3", "1/x", "(2)3", "2(3)"} {
		r, err := arith.Eval(src)
		if !assert.Error(t, err, "%q evaluated to %g", src, r) {
			continue
		}
		assert.ErrorIs(t, err, arith.ErrParse, "evaluating %q", src)
		var ie arith.InputError
		assert.ErrorAs(t, err, &ie, "evaluating %q", src)
	}
}

func TestNumRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.1, math.Pi, -1e300, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		r, err := arith.Num(x).Eval()
		require.NoError(t, err)
		assert.Equal(t, x, r)
	}
}

func TestEvalIdempotent(t *testing.T) {
	const src = "1.1^2.2/3.3-(4.4)(5.5)^-0.5"
	a, err := arith.Parse(src)
	require.NoError(t, err)
	first, err := a.Eval()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := a.Eval()
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first), math.Float64bits(again))
		fresh, err := arith.Eval(src)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first), math.Float64bits(fresh))
	}
}

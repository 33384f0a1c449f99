package arith_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("1/0")
	f.Add("-2^2")
	f.Add("(1)(2)(3)")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := arith.Eval(s)
		if err != nil {
			if !errors.Is(err, arith.ErrParse) && !errors.Is(err, arith.ErrEval) {
				t.Errorf("Eval(%q) returned an uncategorized error: %v", s, err)
			}
			return
		}
		q, err := arith.Eval(s)
		if err != nil {
			t.Fatalf("Eval(%q) failed only the second time: %v", s, err)
		}
		if math.Float64bits(r) != math.Float64bits(q) {
			t.Errorf("Eval(%q) gave %g then %g", s, r, q)
		}
	})
}

package arith_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("2*3+(4-5)+2^3/4")
	f.Add("(2)(3)")
	f.Add("2..3")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := arith.Parse(s)
		if err != nil {
			if !errors.Is(err, arith.ErrParse) {
				t.Errorf("Parse(%q) returned an uncategorized error: %v", s, err)
			}
			return
		}
		if a == nil {
			t.Errorf("Parse(%q) returned neither an expression nor an error", s)
		}
	})
}

package expansion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcut/expansion"
)

// TestSubmodularize checks the corrected quadruples, including the
// textbook violation (5,0,0,5).
func TestSubmodularize(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d int64
		wa, wb, wc int64
	}{
		{"Violation", 5, 0, 0, 5, 2, 4, 3},
		{"AlreadySubmodular", 0, 3, 3, 0, 0, 3, 3},
		{"Boundary", 2, 1, 1, 0, 2, 1, 1},
		{"DeltaOne", 1, 0, 0, 0, 1, 1, 0},
		{"DeltaTwo", 1, 0, 0, 1, 1, 2, 0},
		{"NegativeResult", 1, 0, 0, 10, -2, 5, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b, c := expansion.Submodularize(tc.a, tc.b, tc.c, tc.d)
			require.Equal(t, []int64{tc.wa, tc.wb, tc.wc}, []int64{a, b, c})
			require.LessOrEqual(t, a+tc.d, b+c)
		})
	}
}

// TestSubmodularize_Exact verifies that any correction lands exactly on
// a'+d == b'+c'.
func TestSubmodularize_Exact(t *testing.T) {
	for a := int64(0); a < 8; a++ {
		for b := int64(0); b < 8; b++ {
			for c := int64(0); c < 8; c++ {
				for d := int64(0); d < 8; d++ {
					na, nb, nc := expansion.Submodularize(a, b, c, d)
					if a+d <= b+c {
						require.Equal(t, []int64{a, b, c}, []int64{na, nb, nc})
						continue
					}
					require.Equal(t, na+d, nb+nc)
					require.LessOrEqual(t, na, a)
					require.GreaterOrEqual(t, nb, b)
					require.GreaterOrEqual(t, nc, c)
				}
			}
		}
	}
}

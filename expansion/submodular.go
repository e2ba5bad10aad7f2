package expansion

// Submodularize corrects the pairwise table of one edge for an expansion
// move, where a = V(α,α), b = V(α,l_q), c = V(l_p,α) and d = V(l_p,l_q).
//
// If a+d <= b+c the table is returned unchanged. Otherwise the excess
// delta = a+d-b-c is moved off a and onto b and c in thirds:
//
//	a' = a - delta/3
//	c' = c + delta/3
//	b' = b + delta - 2·(delta/3)
//
// after which a'+d == b'+c' holds exactly, and the edge is representable by
// a cut. The correction changes the energy the move optimizes, so moves on
// non-metric costs are approximate.
func Submodularize(a, b, c, d int64) (int64, int64, int64) {
	if a+d <= b+c {
		return a, b, c
	}
	delta := a + d - b - c
	third := delta / 3
	return a - third, b + delta - 2*third, c + third
}

// Package expansion minimizes multi-label energies on regular grids with
// alpha-expansion moves.
//
// An energy assigns every site a label in [0, labels) and sums
//
//	E(f) = Σ_s Data(s, f_s) + Σ_(p,q) Smooth(e_pq, f_p, f_q)
//
// over the sites and the undirected neighbor relations of a topology.Grid,
// with the costs supplied by a cost.Model.
//
// # Moves
//
// For a candidate label α, an expansion move lets every site either keep its
// current label or switch to α. The best such move is a minimum s-t cut of a
// graph with one node per site: a node on the Source side adopts α, a node
// on the Sink side keeps its label. Pairwise terms that cannot be represented
// exactly (A+D > B+C) are corrected first, see Submodularize; on metric
// smoothness costs no correction is needed and every move is optimal.
//
// # Driver
//
// A Driver owns the labeling and runs sweeps of moves over all labels, in
// index order or in a seeded random order, until a sweep stops lowering the
// energy or a cycle limit is reached:
//
//	g, _ := topology.New2D(64, 64)
//	model, _ := cost.NewTable(g.Sites(), 8, data, cost.Potts(8, 20))
//	d, _ := expansion.New(g, 8, model, expansion.WithSeed(7))
//	res := d.PerformRandom()
//	labels := d.Labeling()
//
// A sweep that does not lower the energy is rolled back, so the energy never
// increases across cycles and Perform is idempotent once converged.
//
// The min-cut backend is any CutGraph; the default is a flow.GridGraph using
// Dinic's algorithm. Drivers are not safe for concurrent use.
package expansion

// Package gridcut labels regular 2D and 3D grids by minimizing a multi-label
// energy with alpha-expansion.
//
// The energy of a labeling f is
//
//	E(f) = Σ_p D(p, f_p) + Σ_{(p,q)} V(p, q, f_p, f_q)
//
// summed over every site p and every neighbor relation (p,q) of the grid.
// Each expansion move asks one binary question of every site (adopt label
// alpha, or keep the current label) and answers all of them at once with a
// minimum s-t cut.
//
// What lives where:
//
//	topology/    grid shapes, connectivity (4/8 in 2D, 6/26 in 3D), edges, regions
//	cost/        data and smoothness cost models: tables, callbacks, Potts, truncated
//	flow/        max-flow/min-cut (Dinic, Edmonds–Karp, Ford–Fulkerson) and GridGraph
//	expansion/   the alpha-expansion driver, energy evaluation and Submodularize
//	config/      TOML problem files and synthetic problem generation
//	cmd/gridcut  the command-line front end
//
// Quick start:
//
//	g, _ := topology.New2D(64, 48)
//	model, _ := cost.NewTable(g.Sites(), 3, data, cost.Potts(3, 5))
//	d, _ := expansion.New(g, 3, model)
//	res := d.Perform() // res.Energy, res.Converged
//	labels := d.Labeling()
//
// Install the command with:
//
//	go install github.com/katalvlaran/gridcut/cmd/gridcut@latest
package gridcut

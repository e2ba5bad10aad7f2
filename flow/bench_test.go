package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/topology"
)

// fillRandom writes uniform capacities into every terminal and neighbor arc.
func fillRandom(gg *flow.GridGraph, g *topology.Grid, r *rand.Rand) {
	for i := 0; i < g.Sites(); i++ {
		gg.SetTerminalCapacity(i, int64(r.Intn(100)), int64(r.Intn(100)))
	}
	g.ForEachEdge(func(e topology.Edge) {
		off := g.Offsets()[e.Dir]
		gg.SetNeighborCapacity(e.From, off, int64(r.Intn(40)))
		gg.SetNeighborCapacity(e.To, off.Neg(), int64(r.Intn(40)))
	})
}

// BenchmarkGridGraph measures each algorithm on 2D and 3D grids of
// increasing size. Capacities are reset and refilled every iteration,
// the way the expansion moves use the graph.
func BenchmarkGridGraph(b *testing.B) {
	cases := []struct {
		name    string
		w, h, d int
		conn    topology.Connectivity
	}{
		{"2D_32x32", 32, 32, 1, topology.Conn4},
		{"2D_64x64", 64, 64, 1, topology.Conn4},
		{"3D_12x12x12", 12, 12, 12, topology.Conn26},
	}
	for _, tc := range cases {
		g, err := topology.New(tc.w, tc.h, tc.d, tc.conn)
		if err != nil {
			b.Fatal(err)
		}
		for _, alg := range algorithms {
			b.Run(tc.name+"/"+alg.String(), func(b *testing.B) {
				gg := flow.NewGridGraph(g, alg)
				r := rand.New(rand.NewSource(42))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					gg.Reset()
					fillRandom(gg, g, r)
					gg.ComputeMaxFlow()
				}
			})
		}
	}
}

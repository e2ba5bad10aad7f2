package flow_test

import (
	"fmt"

	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/topology"
)

////////////////////////////////////////////////////////////////////////////////
// Network Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleNetwork_MaxFlow shows a two-path network.
// Graph:
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
//
// Expected flow: 2 through a + 2 through b ⇒ 4
func ExampleNetwork_MaxFlow() {
	nw := flow.NewNetwork(2, 4)
	s, t := nw.Source(), nw.Sink()
	nw.AddArc(s, 0, 3)
	nw.AddArc(0, t, 2)
	nw.AddArc(s, 1, 2)
	nw.AddArc(1, t, 3)

	for _, alg := range []flow.Algorithm{flow.Dinic, flow.EdmondsKarp, flow.FordFulkerson} {
		nw.Reset()
		nw.SetCapacity(0, 3)
		nw.SetCapacity(2, 2)
		nw.SetCapacity(4, 2)
		nw.SetCapacity(6, 3)
		fmt.Println(alg, nw.MaxFlow(alg))
	}
	// Output:
	// dinic 4
	// edmonds-karp 4
	// ford-fulkerson 4
}

////////////////////////////////////////////////////////////////////////////////
// GridGraph Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph segments a 3×1 strip: the left cell prefers the source,
// the right cell the sink, and a cheap link lets the middle follow the left.
func ExampleGridGraph() {
	g, _ := topology.New2D(3, 1)
	gg := flow.NewGridGraph(g, flow.Dinic)

	gg.SetTerminalCapacity(gg.NodeID(0, 0, 0), 9, 0)
	gg.SetTerminalCapacity(gg.NodeID(2, 0, 0), 0, 9)
	for x := 0; x < 2; x++ {
		id := gg.NodeID(x, 0, 0)
		gg.SetNeighborCapacity(id, topology.Offset{DX: 1}, int64(4-3*x))
	}

	fmt.Println("flow:", gg.ComputeMaxFlow())
	side := make([]bool, 3)
	for x := range side {
		side[x] = gg.Segment(gg.NodeID(x, 0, 0)) == flow.Source
	}
	fmt.Println(side)
	// Output:
	// flow: 1
	// [true true false]
}

package flow

import (
	"fmt"

	"github.com/katalvlaran/gridcut/topology"
)

// GridGraph binds a topology.Grid to a Network: one node per site, one
// terminal arc pair per node and one neighbor arc pair per grid edge, all
// laid out once at construction.
//
// Terminal capacities follow the usual two-terminal convention: the source
// capacity of a node is paid when the node ends on the Sink side, its sink
// capacity when it ends on the Source side.
type GridGraph struct {
	grid *topology.Grid
	net  *Network
	alg  Algorithm

	srcArc  []int // source→node arc per node
	sinkArc []int // node→sink arc per node
	edgeArc []int // forward arc per edge slot, -1 when the slot leaves the grid
}

// NewGridGraph lays out the network for g. Capacities start at zero.
// Complexity: O(V + E) time and memory.
func NewGridGraph(g *topology.Grid, alg Algorithm) *GridGraph {
	sites := g.Sites()
	edges := g.EdgeCount()
	net := NewNetwork(sites, 2*sites+edges)

	gg := &GridGraph{
		grid:    g,
		net:     net,
		alg:     alg,
		srcArc:  make([]int, sites),
		sinkArc: make([]int, sites),
		edgeArc: make([]int, g.EdgeSlots()),
	}
	for i := range gg.edgeArc {
		gg.edgeArc[i] = -1
	}
	for v := 0; v < sites; v++ {
		gg.srcArc[v] = net.AddArc(net.Source(), v, 0)
		gg.sinkArc[v] = net.AddArc(v, net.Sink(), 0)
	}
	g.ForEachEdge(func(e topology.Edge) {
		gg.edgeArc[e.Index] = net.AddArc(e.From, e.To, 0)
	})

	return gg
}

// Grid returns the topology the graph was built for.
func (gg *GridGraph) Grid() *topology.Grid { return gg.grid }

// Network exposes the underlying network, e.g. to inspect flows.
func (gg *GridGraph) Network() *Network { return gg.net }

// Reset clears all capacities and the previous cut.
func (gg *GridGraph) Reset() { gg.net.Reset() }

// NodeID returns the node of the site at (x,y,z).
func (gg *GridGraph) NodeID(x, y, z int) int {
	return gg.grid.Index(x, y, z)
}

// SetTerminalCapacity sets the terminal arcs of node id. Only the difference
// between the two capacities affects the cut, so both are lowered by their
// minimum before being stored; this also admits a negative value on one side.
// The constant removed is not part of ComputeMaxFlow's result.
func (gg *GridGraph) SetTerminalCapacity(id int, source, sink int64) {
	m := min(source, sink)
	gg.net.SetCapacity(gg.srcArc[id], source-m)
	gg.net.SetCapacity(gg.sinkArc[id], sink-m)
}

// SetNeighborCapacity sets the capacity of the arc leaving node id along off.
// off may be a forward offset of the grid or the negation of one. Panics if
// off is not a neighbor direction or the neighbor lies outside the grid.
func (gg *GridGraph) SetNeighborCapacity(id int, off topology.Offset, c int64) {
	dir, forward, ok := gg.grid.Direction(off)
	if !ok {
		panic(fmt.Sprintf("flow: offset %+v is not a %s-connected direction", off, gg.grid.Conn))
	}
	from, reverse := id, 0
	if !forward {
		x, y, z := gg.grid.Coordinate(id)
		x, y, z = x+off.DX, y+off.DY, z+off.DZ
		if !gg.grid.InBounds(x, y, z) {
			panic(fmt.Sprintf("flow: node %d has no neighbor along %+v", id, off))
		}
		from, reverse = gg.grid.Index(x, y, z), 1
	}
	a := gg.edgeArc[gg.grid.EdgeIndex(from, dir)]
	if a < 0 {
		panic(fmt.Sprintf("flow: node %d has no neighbor along %+v", id, off))
	}
	gg.net.SetCapacity(a+reverse, c)
}

// ComputeMaxFlow runs the configured algorithm and marks the cut.
func (gg *GridGraph) ComputeMaxFlow() int64 {
	return gg.net.MaxFlow(gg.alg)
}

// Segment returns the cut side of node id after ComputeMaxFlow.
func (gg *GridGraph) Segment(id int) Segment {
	return gg.net.Segment(id)
}

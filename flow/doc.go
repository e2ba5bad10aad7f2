// Package flow computes maximum flows and minimum s-t cuts on integer-indexed
// networks, and binds such a network to a regular grid so that binary
// labeling problems can be solved as cuts.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search for any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed.
//
//   - Memory: O(V) explicit DFS stack.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V) queue and parent table.
//
//   - Dinic (default)
//
//   - Method: BFS level graph + blocking flow with current-arc iterators.
//
//   - Time:   O(V² · E); far better on the shallow networks built over grids.
//
//   - Memory: O(V) levels, iterators and recursion depth bounded by the level count.
//
// # Network
//
// A Network has inner nodes 0..n-1 plus two terminals, Source() = n and
// Sink() = n+1. Arcs are added in reciprocal pairs (a, a^1), so the residual
// of the reverse direction is always one XOR away:
//
//	nw := flow.NewNetwork(2, 4)
//	nw.AddArc(nw.Source(), 0, 3)
//	nw.AddArc(0, 1, 2)
//	nw.AddArc(1, nw.Sink(), 5)
//	f := nw.MaxFlow(flow.Dinic) // 2
//
// After MaxFlow, Segment(v) reports the side of the minimum cut: Source for
// the nodes still reachable from the source in the residual network, Sink for
// everything else. Ties therefore resolve toward the sink.
//
// Reset zeroes capacities and flow while keeping every arc, so the same
// network serves repeated cuts over one shape without reallocating.
//
// # GridGraph
//
// GridGraph lays a Network over a topology.Grid: one node per site, one
// terminal pair per node and one arc pair per neighbor relation. Capacities
// are addressed by site and offset, in either direction of a relation:
//
//	gg := flow.NewGridGraph(grid, flow.Dinic)
//	gg.SetTerminalCapacity(id, 4, 1)
//	gg.SetNeighborCapacity(id, topology.Offset{DX: 1}, 2)
//	gg.ComputeMaxFlow()
//	side := gg.Segment(id)
//
// # Errors
//
//	ErrUnknownAlgorithm - ParseAlgorithm was given an unrecognized name.
//	CapacityError       - panic value for a negative arc capacity.
//
// Networks are not safe for concurrent use.
package flow

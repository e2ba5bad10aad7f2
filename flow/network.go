package flow

// Network is a directed capacitated graph over int node ids with two
// terminal nodes. Arcs are created in pairs: arc 2k runs u→v and arc 2k+1
// is its reciprocal v→u, so a^1 is always the reverse of a.
//
// The structure is built once; Reset clears capacities and flow without
// releasing memory, so one Network can serve many cut computations over the
// same shape.
//
// A Network is not safe for concurrent use.
type Network struct {
	n      int
	source int
	sink   int

	to   []int   // head of each arc
	cap  []int64 // capacity as set by the caller
	res  []int64 // residual capacity
	adj  [][]int // outgoing arc ids per node
	side []bool  // source side after MaxFlow

	// scratch reused by every algorithm
	level  []int
	iter   []int
	parent []int
	stamp  []int
	epoch  int
	queue  []int
	stack  []int
}

// NewNetwork allocates a network with n inner nodes (ids 0..n-1) plus the
// terminals Source() = n and Sink() = n+1. arcHint preallocates room for
// that many arc pairs.
// Complexity: O(n + arcHint).
func NewNetwork(n, arcHint int) *Network {
	total := n + 2
	return &Network{
		n:      n,
		source: n,
		sink:   n + 1,
		to:     make([]int, 0, 2*arcHint),
		cap:    make([]int64, 0, 2*arcHint),
		res:    make([]int64, 0, 2*arcHint),
		adj:    make([][]int, total),
		side:   make([]bool, total),
		level:  make([]int, total),
		iter:   make([]int, total),
		parent: make([]int, total),
		stamp:  make([]int, total),
		queue:  make([]int, 0, total),
	}
}

// Nodes returns the number of inner nodes.
func (nw *Network) Nodes() int { return nw.n }

// Source returns the id of the source terminal.
func (nw *Network) Source() int { return nw.source }

// Sink returns the id of the sink terminal.
func (nw *Network) Sink() int { return nw.sink }

// Arcs returns the number of arcs, reciprocals included.
func (nw *Network) Arcs() int { return len(nw.to) }

// AddArc creates the arc pair u→v (capacity c) and v→u (capacity 0) and
// returns the id of the forward arc. Panics with CapacityError if c < 0.
func (nw *Network) AddArc(u, v int, c int64) int {
	a := len(nw.to)
	nw.to = append(nw.to, v, u)
	nw.cap = append(nw.cap, 0, 0)
	nw.res = append(nw.res, 0, 0)
	nw.adj[u] = append(nw.adj[u], a)
	nw.adj[v] = append(nw.adj[v], a+1)
	nw.SetCapacity(a, c)
	return a
}

// SetCapacity overwrites the capacity of arc a and resets its residual.
// Call it before MaxFlow; mixing it with a computed flow leaves the pair
// inconsistent until Reset. Panics with CapacityError if c < 0.
func (nw *Network) SetCapacity(a int, c int64) {
	if c < 0 {
		panic(CapacityError{Arc: a, Cap: c})
	}
	nw.cap[a] = c
	nw.res[a] = c
}

// Capacity returns the capacity last set on arc a.
func (nw *Network) Capacity(a int) int64 { return nw.cap[a] }

// Flow returns the flow carried by arc a after MaxFlow.
func (nw *Network) Flow(a int) int64 {
	f := nw.cap[a] - nw.res[a]
	if f < 0 {
		return 0
	}
	return f
}

// Reset zeroes every capacity, residual and cut flag, keeping the arcs.
// Complexity: O(V + E).
func (nw *Network) Reset() {
	for i := range nw.cap {
		nw.cap[i] = 0
		nw.res[i] = 0
	}
	for i := range nw.side {
		nw.side[i] = false
	}
}

// MaxFlow computes a maximum flow from Source() to Sink() with alg, then
// marks the minimum cut. It returns the value of the flow pushed by this call.
//
// Complexity:
//
//	Dinic:         O(V²·E).
//	EdmondsKarp:   O(V·E²).
//	FordFulkerson: O(E·F), F the flow value.
func (nw *Network) MaxFlow(alg Algorithm) int64 {
	var total int64
	switch alg {
	case EdmondsKarp:
		total = nw.edmondsKarp()
	case FordFulkerson:
		total = nw.fordFulkerson()
	default:
		total = nw.dinic()
	}
	nw.markSourceSide()
	return total
}

// Segment reports the cut side of node v after MaxFlow.
func (nw *Network) Segment(v int) Segment {
	if nw.side[v] {
		return Source
	}
	return Sink
}

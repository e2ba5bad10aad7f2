package expansion

import (
	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/topology"
)

// CutGraph is the min-cut backend an expansion move is solved with. Node
// ids come from NodeID; terminal and neighbor capacities are written after
// Reset, the cut is computed once, and Segment is read back per node.
//
// SetTerminalCapacity receives (keep, alpha): the cost paid when the node
// ends on the Sink side (keeps its label) and on the Source side (adopts α).
// SetNeighborCapacity sets the arc leaving id along off, paid when id ends
// on the Source side and its neighbor on the Sink side. All capacities the
// driver writes are non-negative.
type CutGraph interface {
	Reset()
	NodeID(x, y, z int) int
	SetTerminalCapacity(id int, keep, alpha int64)
	SetNeighborCapacity(id int, off topology.Offset, cap int64)
	ComputeMaxFlow() int64
	Segment(id int) flow.Segment
}

// expand runs one expansion move for label alpha on the current labeling,
// relabeling in place every site that the cut moves to alpha.
//
// Steps:
//  1. Reset the cut graph and clear the terminal accumulators.
//  2. Data terms: a site labeled l != α pays data(s,l) to keep, data(s,α) to switch.
//  3. Pairwise terms per undirected relation (p,q), by how many endpoints hold α.
//  4. Write the accumulated terminal pairs, lowered by their common minimum.
//  5. Compute the cut and relabel the Source side.
//
// Complexity: O(V·d) plus one max-flow.
func (d *Driver) expand(alpha int) {
	d.cut.Reset()
	clear(d.keep)
	clear(d.alpha)

	for s, l := range d.labeling {
		if l != alpha {
			d.keep[s] = d.model.Data(s, l)
			d.alpha[s] = d.model.Data(s, alpha)
		}
	}

	offsets := d.grid.Offsets()
	for s := range d.labeling {
		d.edges = d.grid.Neighbors(s, d.edges)
		for _, e := range d.edges {
			lp, lq := d.labeling[e.From], d.labeling[e.To]
			switch {
			case lp != alpha && lq != alpha:
				d.addPair(e, offsets[e.Dir], alpha, lp, lq)
			case lp != alpha:
				d.keep[e.From] += d.model.Smooth(e, lp, alpha)
				d.alpha[e.From] += d.model.Smooth(e, alpha, alpha)
			case lq != alpha:
				d.keep[e.To] += d.model.Smooth(e, alpha, lq)
				d.alpha[e.To] += d.model.Smooth(e, alpha, alpha)
			}
		}
	}

	for s := range d.labeling {
		k, a := d.keep[s], d.alpha[s]
		m := min(k, a)
		if k != m || a != m {
			d.cut.SetTerminalCapacity(d.nodes[s], k-m, a-m)
		}
	}

	d.cut.ComputeMaxFlow()

	for s, l := range d.labeling {
		if l != alpha && d.cut.Segment(d.nodes[s]) == flow.Source {
			d.labeling[s] = alpha
		}
	}
}

// addPair reduces the pairwise table of an edge whose endpoints both hold
// labels other than alpha.
func (d *Driver) addPair(e topology.Edge, off topology.Offset, alpha, lp, lq int) {
	p, q := e.From, e.To
	vd := d.model.Smooth(e, lp, lq)
	va, vb, vc := Submodularize(
		d.model.Smooth(e, alpha, alpha),
		d.model.Smooth(e, alpha, lq),
		d.model.Smooth(e, lp, alpha),
		vd,
	)

	d.keep[p] += vd
	d.alpha[p] += va
	b, c := vb-va, vc-vd

	switch {
	case b < 0:
		d.keep[p] -= b
		d.alpha[q] -= b
		d.cut.SetNeighborCapacity(d.nodes[q], off.Neg(), b+c)
	case c < 0:
		d.alpha[p] -= c
		d.keep[q] -= c
		d.cut.SetNeighborCapacity(d.nodes[p], off, b+c)
	default:
		d.cut.SetNeighborCapacity(d.nodes[p], off, b)
		d.cut.SetNeighborCapacity(d.nodes[q], off.Neg(), c)
	}
}

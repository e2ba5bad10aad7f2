package cost

import (
	"fmt"

	"github.com/katalvlaran/gridcut/topology"
)

// DataTable stores sites×labels unary costs, values[site*labels+label].
type DataTable struct {
	sites  int
	labels int
	values []int64
}

// NewDataTable deep-copies values into a DataTable.
// Returns ErrLabelCount, ErrDimension or ErrNegativeCost on invalid input.
// Complexity: O(sites×labels).
func NewDataTable(sites, labels int, values []int64) (DataTable, error) {
	if labels < 1 {
		return DataTable{}, ErrLabelCount
	}
	if sites < 0 || len(values) != sites*labels {
		return DataTable{}, fmt.Errorf("%w: data has %d entries, want %d×%d", ErrDimension, len(values), sites, labels)
	}
	if i, ok := firstNegative(values); ok {
		return DataTable{}, fmt.Errorf("%w: data[%d] = %d", ErrNegativeCost, i, values[i])
	}
	cp := make([]int64, len(values))
	copy(cp, values)

	return DataTable{sites: sites, labels: labels, values: cp}, nil
}

// Data returns the unary cost of label at site.
func (d DataTable) Data(site, label int) int64 {
	return d.values[site*d.labels+label]
}

// Sites returns the number of sites covered by the table.
func (d DataTable) Sites() int { return d.sites }

// Labels returns the number of labels covered by the table.
func (d DataTable) Labels() int { return d.labels }

// Table pairs a DataTable with one smoothness matrix shared by all edges.
type Table struct {
	DataTable
	smooth []int64
}

// NewTable builds a Table. smooth must hold labels×labels entries,
// smooth[l1*labels+l2].
func NewTable(sites, labels int, data, smooth []int64) (*Table, error) {
	dt, err := NewDataTable(sites, labels, data)
	if err != nil {
		return nil, err
	}
	if err = checkMatrix(smooth, labels); err != nil {
		return nil, err
	}
	cp := make([]int64, len(smooth))
	copy(cp, smooth)

	return &Table{DataTable: dt, smooth: cp}, nil
}

// Smooth returns the shared pairwise cost; the edge is ignored.
func (t *Table) Smooth(_ topology.Edge, l1, l2 int) int64 {
	return t.smooth[l1*t.labels+l2]
}

// EdgeTable pairs a DataTable with one smoothness matrix per directed edge
// index, for spatially varying smoothness.
type EdgeTable struct {
	DataTable
	smooth [][]int64
}

// NewEdgeTable builds an EdgeTable for grid g. smooth must have
// g.EdgeSlots() entries; slots whose neighbor falls outside the grid may be
// nil, every other slot needs labels×labels entries. Matrices are not
// copied: several slots commonly share one backing slice.
func NewEdgeTable(g *topology.Grid, labels int, data []int64, smooth [][]int64) (*EdgeTable, error) {
	dt, err := NewDataTable(g.Sites(), labels, data)
	if err != nil {
		return nil, err
	}
	if len(smooth) != g.EdgeSlots() {
		return nil, fmt.Errorf("%w: %d edge matrices, want %d", ErrDimension, len(smooth), g.EdgeSlots())
	}
	var bad error
	g.ForEachEdge(func(e topology.Edge) {
		if bad != nil {
			return
		}
		if err := checkMatrix(smooth[e.Index], labels); err != nil {
			bad = fmt.Errorf("edge %d: %w", e.Index, err)
		}
	})
	if bad != nil {
		return nil, bad
	}

	return &EdgeTable{DataTable: dt, smooth: smooth}, nil
}

// Smooth returns the pairwise cost stored for e.Index.
func (t *EdgeTable) Smooth(e topology.Edge, l1, l2 int) int64 {
	return t.smooth[e.Index][l1*t.labels+l2]
}

// Func pairs a DataTable with an on-demand SmoothFunc.
type Func struct {
	DataTable
	fn SmoothFunc
}

// NewFunc builds a Func model. The function's output is trusted.
func NewFunc(sites, labels int, data []int64, fn SmoothFunc) (*Func, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	dt, err := NewDataTable(sites, labels, data)
	if err != nil {
		return nil, err
	}

	return &Func{DataTable: dt, fn: fn}, nil
}

// Smooth evaluates the function on the edge endpoints.
func (f *Func) Smooth(e topology.Edge, l1, l2 int) int64 {
	return f.fn(e.From, e.To, l1, l2)
}

func checkMatrix(m []int64, labels int) error {
	if len(m) != labels*labels {
		return fmt.Errorf("%w: smoothness has %d entries, want %d×%d", ErrDimension, len(m), labels, labels)
	}
	if i, ok := firstNegative(m); ok {
		return fmt.Errorf("%w: smooth[%d] = %d", ErrNegativeCost, i, m[i])
	}
	return nil
}

func firstNegative(v []int64) (int, bool) {
	for i, c := range v {
		if c < 0 {
			return i, true
		}
	}
	return -1, false
}

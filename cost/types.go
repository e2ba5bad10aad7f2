package cost

import (
	"errors"

	"github.com/katalvlaran/gridcut/topology"
)

// Sentinel errors for cost model construction.
var (
	// ErrLabelCount indicates a label count smaller than one.
	ErrLabelCount = errors.New("cost: label count must be at least 1")
	// ErrDimension indicates a table whose length does not match its shape.
	ErrDimension = errors.New("cost: table length does not match dimensions")
	// ErrNegativeCost indicates a negative table entry.
	ErrNegativeCost = errors.New("cost: costs must be non-negative")
	// ErrNilFunc indicates a missing smoothness function.
	ErrNilFunc = errors.New("cost: smoothness function is nil")
)

// Model is the energy contract consumed by move construction and energy
// evaluation.
type Model interface {
	// Data returns the cost of assigning label to site.
	Data(site, label int) int64
	// Smooth returns the cost of l1 at e.From next to l2 at e.To.
	Smooth(e topology.Edge, l1, l2 int) int64
}

// SmoothFunc computes the pairwise cost of l1 at site1 next to l2 at site2.
// It must be pure: equal inputs yield equal outputs.
type SmoothFunc func(site1, site2, l1, l2 int) int64

package cost

import (
	"fmt"

	"github.com/katalvlaran/gridcut/topology"
)

// Potts returns the labels×labels matrix with 0 on the diagonal and weight
// elsewhere. Panics if labels < 1 or weight < 0.
// Complexity: O(labels²).
func Potts(labels int, weight int64) []int64 {
	mustShape("Potts", labels, weight)
	m := make([]int64, labels*labels)
	for a := 0; a < labels; a++ {
		for b := 0; b < labels; b++ {
			if a != b {
				m[a*labels+b] = weight
			}
		}
	}
	return m
}

// TruncatedLinear returns weight*min(|a-b|, trunc). A trunc <= 0 disables
// truncation.
func TruncatedLinear(labels int, weight, trunc int64) []int64 {
	mustShape("TruncatedLinear", labels, weight)
	m := make([]int64, labels*labels)
	for a := 0; a < labels; a++ {
		for b := 0; b < labels; b++ {
			d := int64(a - b)
			if d < 0 {
				d = -d
			}
			if trunc > 0 && d > trunc {
				d = trunc
			}
			m[a*labels+b] = weight * d
		}
	}
	return m
}

// TruncatedQuadratic returns weight*min((a-b)², trunc). A trunc <= 0
// disables truncation. Untruncated or not, it is not a metric, so expansion
// moves on it go through the submodularity correction.
func TruncatedQuadratic(labels int, weight, trunc int64) []int64 {
	mustShape("TruncatedQuadratic", labels, weight)
	m := make([]int64, labels*labels)
	for a := 0; a < labels; a++ {
		for b := 0; b < labels; b++ {
			d := int64(a - b)
			d *= d
			if trunc > 0 && d > trunc {
				d = trunc
			}
			m[a*labels+b] = weight * d
		}
	}
	return m
}

// EdgeWeightFn returns a non-negative multiplier for one grid edge, e.g. a
// contrast or texture similarity between its endpoints.
type EdgeWeightFn func(e topology.Edge) int64

// WeightedPotts builds per-edge Potts matrices for g, scaling the label
// disagreement penalty on each edge by weight(e). The result is ready for
// NewEdgeTable; out-of-grid slots stay nil.
// Panics if labels < 1, weight is nil or weight returns a negative value.
// Complexity: O(E×labels²).
func WeightedPotts(g *topology.Grid, labels int, weight EdgeWeightFn) [][]int64 {
	if weight == nil {
		panic("cost: WeightedPotts: weight function is nil")
	}
	out := make([][]int64, g.EdgeSlots())
	cache := make(map[int64][]int64)
	g.ForEachEdge(func(e topology.Edge) {
		w := weight(e)
		m, ok := cache[w]
		if !ok {
			m = Potts(labels, w)
			cache[w] = m
		}
		out[e.Index] = m
	})
	return out
}

// Penalty maps an observation and a candidate label to a unary cost.
type Penalty func(observed int64, label int) int64

// AbsDiff penalizes |observed - label|.
func AbsDiff(observed int64, label int) int64 {
	d := observed - int64(label)
	if d < 0 {
		return -d
	}
	return d
}

// SquaredDiff penalizes (observed - label)².
func SquaredDiff(observed int64, label int) int64 {
	d := observed - int64(label)
	return d * d
}

// DataFromObservations builds a flat sites×labels data table where site i
// pays scale*penalty(obs[i], label) for label. Panics if labels < 1,
// scale < 0 or penalty is nil.
func DataFromObservations(obs []int64, labels int, penalty Penalty, scale int64) []int64 {
	mustShape("DataFromObservations", labels, scale)
	if penalty == nil {
		panic("cost: DataFromObservations: penalty is nil")
	}
	out := make([]int64, len(obs)*labels)
	for i, o := range obs {
		for l := 0; l < labels; l++ {
			out[i*labels+l] = scale * penalty(o, l)
		}
	}
	return out
}

// IsMetric reports whether the labels×labels matrix m is a metric: zero
// exactly on the diagonal, symmetric, and obeying the triangle inequality.
// Every expansion move over a metric is exactly representable by a cut.
// Complexity: O(labels³).
func IsMetric(m []int64, labels int) bool {
	if len(m) != labels*labels {
		return false
	}
	at := func(a, b int) int64 { return m[a*labels+b] }
	for a := 0; a < labels; a++ {
		for b := 0; b < labels; b++ {
			v := at(a, b)
			if (a == b) != (v == 0) || v < 0 || v != at(b, a) {
				return false
			}
			for c := 0; c < labels; c++ {
				if v > at(a, c)+at(c, b) {
					return false
				}
			}
		}
	}
	return true
}

func mustShape(fn string, labels int, scale int64) {
	if labels < 1 {
		panic(fmt.Sprintf("cost: %s: labels must be ≥ 1, got %d", fn, labels))
	}
	if scale < 0 {
		panic(fmt.Sprintf("cost: %s: weight must be ≥ 0, got %d", fn, scale))
	}
}

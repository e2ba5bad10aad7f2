package cost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/topology"
)

func TestPotts(t *testing.T) {
	require.Equal(t, []int64{0, 4, 4, 4, 0, 4, 4, 4, 0}, cost.Potts(3, 4))
	require.True(t, cost.IsMetric(cost.Potts(3, 4), 3))
}

func TestTruncatedLinear(t *testing.T) {
	m := cost.TruncatedLinear(4, 3, 2)
	require.Equal(t, int64(0), m[0*4+0])
	require.Equal(t, int64(3), m[0*4+1])
	require.Equal(t, int64(6), m[0*4+2])
	require.Equal(t, int64(6), m[0*4+3], "truncated at 2")
	require.True(t, cost.IsMetric(m, 4))
}

func TestTruncatedQuadratic(t *testing.T) {
	m := cost.TruncatedQuadratic(4, 1, 0)
	require.Equal(t, int64(9), m[0*4+3])
	require.False(t, cost.IsMetric(m, 4), "squared distance breaks the triangle inequality")

	m = cost.TruncatedQuadratic(4, 2, 4)
	require.Equal(t, int64(8), m[0*4+3])
}

func TestIsMetric_Rejects(t *testing.T) {
	require.False(t, cost.IsMetric([]int64{0, 1, 2, 0}, 2), "asymmetric")
	require.False(t, cost.IsMetric([]int64{1, 1, 1, 0}, 2), "non-zero diagonal")
	require.False(t, cost.IsMetric([]int64{0, 0, 0, 0}, 2), "zero off-diagonal")
	require.False(t, cost.IsMetric([]int64{0, 1}, 2), "wrong length")
}

func TestBuildersPanic(t *testing.T) {
	require.Panics(t, func() { cost.Potts(0, 1) })
	require.Panics(t, func() { cost.TruncatedLinear(2, -1, 0) })
	require.Panics(t, func() { cost.DataFromObservations([]int64{1}, 2, nil, 1) })
	g, _ := topology.New2D(2, 2)
	require.Panics(t, func() { cost.WeightedPotts(g, 2, nil) })
}

func TestWeightedPotts(t *testing.T) {
	g, err := topology.New2D(2, 2)
	require.NoError(t, err)
	m := cost.WeightedPotts(g, 2, func(e topology.Edge) int64 { return int64(e.Dir + 1) })
	require.Len(t, m, g.EdgeSlots())

	require.Equal(t, []int64{0, 1, 1, 0}, m[g.EdgeIndex(0, 0)])
	require.Equal(t, []int64{0, 2, 2, 0}, m[g.EdgeIndex(0, 1)])
	require.Nil(t, m[g.EdgeIndex(3, 0)], "bottom-right corner has no +x neighbor")

	_, err = cost.NewEdgeTable(g, 2, make([]int64, 8), m)
	require.NoError(t, err)
}

func TestDataFromObservations(t *testing.T) {
	data := cost.DataFromObservations([]int64{0, 2}, 3, cost.AbsDiff, 2)
	require.Equal(t, []int64{0, 2, 4, 4, 2, 0}, data)

	data = cost.DataFromObservations([]int64{3}, 2, cost.SquaredDiff, 1)
	require.Equal(t, []int64{9, 4}, data)
}

package expansion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/topology"
)

// randomData returns sites×labels costs in [0, maxCost).
func randomData(r *rand.Rand, sites, labels int, maxCost int) []int64 {
	data := make([]int64, sites*labels)
	for i := range data {
		data[i] = int64(r.Intn(maxCost))
	}
	return data
}

// randomLabeling returns a uniformly random labeling.
func randomLabeling(r *rand.Rand, sites, labels int) []int {
	out := make([]int, sites)
	for i := range out {
		out[i] = r.Intn(labels)
	}
	return out
}

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, w, h, d int, conn topology.Connectivity) *topology.Grid {
	t.Helper()
	g, err := topology.New(w, h, d, conn)
	require.NoError(t, err)
	return g
}

// mustTable builds a shared-matrix model or fails the test.
func mustTable(t testing.TB, sites, labels int, data, smooth []int64) *cost.Table {
	t.Helper()
	m, err := cost.NewTable(sites, labels, data, smooth)
	require.NoError(t, err)
	return m
}

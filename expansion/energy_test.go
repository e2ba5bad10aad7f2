package expansion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/expansion"
	"github.com/katalvlaran/gridcut/topology"
)

// TestTotalEnergy_AllZeroClosedForm compares a fresh labeling against
// Σ data(s,0) + edges·V(0,0).
func TestTotalEnergy_AllZeroClosedForm(t *testing.T) {
	for _, conn := range []topology.Connectivity{topology.Conn4, topology.Conn8, topology.Conn6, topology.Conn26} {
		depth := 1
		if conn.Is3D() {
			depth = 3
		}
		g := mustGrid(t, 4, 3, depth, conn)
		labels := 3
		r := rand.New(rand.NewSource(int64(conn) + 1))
		data := randomData(r, g.Sites(), labels, 50)
		smooth := []int64{
			3, 1, 4,
			1, 5, 9,
			2, 6, 5,
		}
		model := mustTable(t, g.Sites(), labels, data, smooth)

		var want int64
		for s := 0; s < g.Sites(); s++ {
			want += data[s*labels]
		}
		want += int64(g.EdgeCount()) * smooth[0]

		d, err := expansion.New(g, labels, model)
		require.NoError(t, err)
		require.Equal(t, want, d.Energy(), "conn %s", conn)
		require.Equal(t, want, expansion.TotalEnergy(g, model, make([]int, g.Sites())))
	}
}

// TestTotalEnergy_Split checks that data and smoothness parts add up and
// that each undirected relation is counted once.
func TestTotalEnergy_Split(t *testing.T) {
	g := mustGrid(t, 2, 2, 1, topology.Conn4)
	data := []int64{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
	}
	model := mustTable(t, 4, 2, data, cost.Potts(2, 10))
	labels := []int{0, 1, 1, 0}

	require.Equal(t, int64(1+4+6+7), expansion.DataEnergy(model, labels))
	// 4 relations, every one of them disagrees
	require.Equal(t, int64(40), expansion.SmoothEnergy(g, model, labels))
	require.Equal(t, int64(58), expansion.TotalEnergy(g, model, labels))
}

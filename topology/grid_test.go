package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcut/topology"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty grids and mismatched connectivities.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h, d int
		conn    topology.Connectivity
		err     error
	}{
		{"ZeroWidth", 0, 3, 1, topology.Conn4, topology.ErrEmptyGrid},
		{"NegativeDepth", 2, 2, -1, topology.Conn26, topology.ErrEmptyGrid},
		{"Conn4WithDepth", 2, 2, 2, topology.Conn4, topology.ErrConnectivity},
		{"Conn8WithDepth", 2, 2, 3, topology.Conn8, topology.ErrConnectivity},
		{"Unknown", 2, 2, 1, topology.Connectivity(42), topology.ErrConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := topology.New(tc.w, tc.h, tc.d, tc.conn)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestDirections checks the forward offset count of every connectivity.
func TestDirections(t *testing.T) {
	cases := []struct {
		conn topology.Connectivity
		d    int
		want int
	}{
		{topology.Conn4, 1, 2},
		{topology.Conn8, 1, 4},
		{topology.Conn6, 2, 3},
		{topology.Conn26, 2, 13},
	}
	for _, tc := range cases {
		t.Run(tc.conn.String(), func(t *testing.T) {
			g, err := topology.New(3, 3, tc.d, tc.conn)
			require.NoError(t, err)
			require.Equal(t, tc.want, g.Directions())
			require.Len(t, g.Offsets(), tc.want)
		})
	}
}

// TestParseConnectivity round-trips every connectivity through its name.
func TestParseConnectivity(t *testing.T) {
	for _, c := range []topology.Connectivity{topology.Conn4, topology.Conn8, topology.Conn6, topology.Conn26} {
		got, err := topology.ParseConnectivity(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	_, err := topology.ParseConnectivity("18")
	require.ErrorIs(t, err, topology.ErrConnectivity)
}

//----------------------------------------------------------------------------//
// Indexing
//----------------------------------------------------------------------------//

// TestIndexCoordinateRoundTrip walks a 3D grid and checks the bijection.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := topology.New3D(4, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 24, g.Sites())

	want := 0
	for z := 0; z < g.Depth; z++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				site := g.Index(x, y, z)
				require.Equal(t, want, site, "row-major order at (%d,%d,%d)", x, y, z)
				gx, gy, gz := g.Coordinate(site)
				require.Equal(t, []int{x, y, z}, []int{gx, gy, gz})
				want++
			}
		}
	}
}

// TestInBounds checks a handful of in- and out-of-range coordinates.
func TestInBounds(t *testing.T) {
	g, err := topology.New2D(3, 2)
	require.NoError(t, err)

	require.True(t, g.InBounds(0, 0, 0))
	require.True(t, g.InBounds(2, 1, 0))
	require.False(t, g.InBounds(-1, 0, 0))
	require.False(t, g.InBounds(3, 0, 0))
	require.False(t, g.InBounds(0, 2, 0))
	require.False(t, g.InBounds(0, 0, 1))
}

//----------------------------------------------------------------------------//
// Neighbors and edges
//----------------------------------------------------------------------------//

// TestNeighbors_BoundaryOmitted verifies that out-of-range offsets are dropped.
func TestNeighbors_BoundaryOmitted(t *testing.T) {
	g, err := topology.New2D(3, 2)
	require.NoError(t, err)

	// Bottom-right corner has no forward neighbors.
	require.Empty(t, g.Neighbors(g.Index(2, 1, 0), nil))

	// Right column keeps only +y.
	edges := g.Neighbors(g.Index(2, 0, 0), nil)
	require.Len(t, edges, 1)
	require.Equal(t, 1, edges[0].Dir)
	require.Equal(t, g.Index(2, 1, 0), edges[0].To)
	require.Equal(t, g.EdgeIndex(2, 1), edges[0].Index)

	_, ok := g.Neighbor(g.Index(2, 0, 0), 0)
	require.False(t, ok)
}

// TestInteriorVoxel26 checks that an interior voxel has 13 distinct forward
// directions and, together with the reverse relations, all 26 neighbors.
func TestInteriorVoxel26(t *testing.T) {
	g, err := topology.New3D(3, 3, 3)
	require.NoError(t, err)
	center := g.Index(1, 1, 1)

	forward := g.Neighbors(center, make([]topology.Edge, 0, g.Directions()))
	require.Len(t, forward, 13)

	seen := make(map[int]bool)
	for _, e := range forward {
		require.False(t, seen[e.To], "duplicate neighbor %d", e.To)
		seen[e.To] = true
	}
	g.ForEachEdge(func(e topology.Edge) {
		if e.To == center {
			require.False(t, seen[e.From], "neighbor %d reached twice", e.From)
			seen[e.From] = true
		}
	})
	require.Len(t, seen, 26)
	require.False(t, seen[center])
}

// lattice26 is the closed-form undirected edge count of a 26-connected lattice.
func lattice26(w, h, d int) int {
	axis := (w-1)*h*d + w*(h-1)*d + w*h*(d-1)
	face := 2 * ((w-1)*(h-1)*d + (w-1)*h*(d-1) + w*(h-1)*(d-1))
	body := 4 * (w - 1) * (h - 1) * (d - 1)
	return axis + face + body
}

// TestEdgeCount compares EdgeCount, ForEachEdge and the closed-form formulas.
func TestEdgeCount(t *testing.T) {
	cases := []struct {
		name    string
		w, h, d int
		conn    topology.Connectivity
		want    int
	}{
		{"Conn4_2x1", 2, 1, 1, topology.Conn4, 1},
		{"Conn4_2x2", 2, 2, 1, topology.Conn4, 4},
		{"Conn4_5x4", 5, 4, 1, topology.Conn4, 4*4 + 5*3},
		{"Conn8_3x3", 3, 3, 1, topology.Conn8, 2*3 + 3*2 + 2*2*2},
		{"Conn6_3x3x3", 3, 3, 3, topology.Conn6, 3 * 2 * 3 * 3},
		{"Conn26_3x3x3", 3, 3, 3, topology.Conn26, lattice26(3, 3, 3)},
		{"Conn26_4x5x6", 4, 5, 6, topology.Conn26, lattice26(4, 5, 6)},
		{"Conn26_1x1x1", 1, 1, 1, topology.Conn26, 0},
		{"Conn26_2x1x1", 2, 1, 1, topology.Conn26, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := topology.New(tc.w, tc.h, tc.d, tc.conn)
			require.NoError(t, err)
			require.Equal(t, tc.want, g.EdgeCount())

			visited := 0
			pairs := make(map[[2]int]bool)
			g.ForEachEdge(func(e topology.Edge) {
				visited++
				a, b := min(e.From, e.To), max(e.From, e.To)
				require.False(t, pairs[[2]int{a, b}], "edge %d-%d visited twice", a, b)
				pairs[[2]int{a, b}] = true
				require.Equal(t, g.EdgeIndex(e.From, e.Dir), e.Index)
			})
			require.Equal(t, tc.want, visited)
		})
	}
}

// TestDirection resolves forward, reverse and unknown offsets.
func TestDirection(t *testing.T) {
	g, err := topology.New3D(2, 2, 2)
	require.NoError(t, err)

	d, fwd, ok := g.Direction(topology.Offset{DX: -1, DY: 1, DZ: 1})
	require.True(t, ok)
	require.True(t, fwd)
	require.Equal(t, 9, d)

	d, fwd, ok = g.Direction(topology.Offset{DX: 1, DY: -1, DZ: -1})
	require.True(t, ok)
	require.False(t, fwd)
	require.Equal(t, 9, d)

	_, _, ok = g.Direction(topology.Offset{DX: 2})
	require.False(t, ok)
}

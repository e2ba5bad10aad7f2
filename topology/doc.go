// Package topology describes regular 2D and 3D grids as sets of sites joined
// by directed neighbor offsets, the shape every expansion move is built on.
//
// What:
//
//   - Grid maps (x, y, z) coordinates to a row-major site index and back.
//   - Each connectivity keeps one representative offset per undirected
//     neighbor relation, so walking every site's forward offsets visits each
//     edge exactly once.
//   - Edges carry a stable index site*Directions()+dir, used by per-edge
//     smoothness tables.
//
// Connectivities:
//
//   - Conn4  (2D):  2 directions, (1,0) (0,1).
//   - Conn8  (2D):  4 directions, adds the two forward diagonals.
//   - Conn6  (3D):  3 axis directions.
//   - Conn26 (3D): 13 directions covering the full 26-neighborhood.
//
// Offsets that would leave the grid are omitted, never reported as errors.
//
// Complexity:
//
//   - Index, Coordinate, Neighbor: O(1).
//   - ForEachEdge:                 O(W×H×D×d), d = Directions().
//   - EdgeCount:                   O(d), closed form per direction.
//
// Errors:
//
//   - ErrEmptyGrid:     a dimension is smaller than one.
//   - ErrConnectivity:  unknown connectivity, or a 2D connectivity with depth > 1.
package topology

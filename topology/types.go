package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology construction.
var (
	// ErrEmptyGrid indicates a width, height or depth smaller than one.
	ErrEmptyGrid = errors.New("topology: grid dimensions must be at least 1x1x1")
	// ErrConnectivity indicates an unknown connectivity or one that does not fit the grid depth.
	ErrConnectivity = errors.New("topology: connectivity does not match grid dimensionality")
)

// Connectivity selects the neighbor relation of a grid.
type Connectivity int

const (
	// Conn4 is the 2D four-neighbor relation (N, E, S, W).
	Conn4 Connectivity = iota
	// Conn8 is the 2D eight-neighbor relation, diagonals included.
	Conn8
	// Conn6 is the 3D six-neighbor relation along the axes.
	Conn6
	// Conn26 is the full 3D 26-neighbor relation.
	Conn26
)

// String returns the neighbor count of c, e.g. "26".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	case Conn6:
		return "6"
	case Conn26:
		return "26"
	default:
		return "unknown"
	}
}

// ParseConnectivity maps "4", "8", "6" or "26" to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4":
		return Conn4, nil
	case "8":
		return Conn8, nil
	case "6":
		return Conn6, nil
	case "26":
		return Conn26, nil
	}
	return 0, fmt.Errorf("%w: unknown connectivity %q", ErrConnectivity, s)
}

// Is3D reports whether c relates sites across z-slices.
func (c Connectivity) Is3D() bool {
	return c == Conn6 || c == Conn26
}

// Offset is a directed step from a site to one of its neighbors.
type Offset struct {
	DX, DY, DZ int
}

// Neg returns the opposite step.
func (o Offset) Neg() Offset {
	return Offset{DX: -o.DX, DY: -o.DY, DZ: -o.DZ}
}

// Edge is one directed neighbor relation (From, To) realized through
// direction Dir. Index = From*Directions()+Dir identifies it uniquely.
type Edge struct {
	Index int
	Dir   int
	From  int
	To    int
}

// Forward offsets per connectivity. The 26-neighbor order is the one used by
// per-edge smoothness tables, so it must not be reshuffled.
var (
	offsets4 = []Offset{{1, 0, 0}, {0, 1, 0}}
	offsets8 = []Offset{{1, 0, 0}, {0, 1, 0}, {1, -1, 0}, {1, 1, 0}}
	offsets6 = []Offset{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	offsets26 = []Offset{
		{1, 0, 0},
		{0, 1, 0},
		{1, -1, 0},
		{1, 1, 0},
		{0, 0, 1},
		{0, -1, 1},
		{0, 1, 1},
		{-1, 0, 1},
		{-1, -1, 1},
		{-1, 1, 1},
		{1, 0, 1},
		{1, -1, 1},
		{1, 1, 1},
	}
)

// Grid is an immutable regular lattice of Width×Height×Depth sites.
// Depth is 1 for 2D grids.
type Grid struct {
	Width, Height, Depth int
	Conn                 Connectivity
	offsets              []Offset
	plane                int
}

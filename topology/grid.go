package topology

import "fmt"

// New constructs a Grid of the given dimensions and connectivity.
// Returns ErrEmptyGrid if any dimension is < 1 and ErrConnectivity if a 2D
// connectivity is combined with depth > 1 or conn is unknown.
// Complexity: O(1).
func New(width, height, depth int, conn Connectivity) (*Grid, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrEmptyGrid, width, height, depth)
	}
	var offs []Offset
	switch conn {
	case Conn4:
		offs = offsets4
	case Conn8:
		offs = offsets8
	case Conn6:
		offs = offsets6
	case Conn26:
		offs = offsets26
	default:
		return nil, fmt.Errorf("%w: unknown connectivity %d", ErrConnectivity, int(conn))
	}
	if !conn.Is3D() && depth != 1 {
		return nil, fmt.Errorf("%w: Conn%s needs depth 1, got %d", ErrConnectivity, conn, depth)
	}

	return &Grid{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Conn:    conn,
		offsets: offs,
		plane:   width * height,
	}, nil
}

// New2D returns a four-connected width×height grid.
func New2D(width, height int) (*Grid, error) {
	return New(width, height, 1, Conn4)
}

// New3D returns a 26-connected width×height×depth grid.
func New3D(width, height, depth int) (*Grid, error) {
	return New(width, height, depth, Conn26)
}

// Sites returns the number of cells in the grid.
func (g *Grid) Sites() int {
	return g.plane * g.Depth
}

// Directions returns the number of forward offsets per site (2, 4, 3 or 13).
func (g *Grid) Directions() int {
	return len(g.offsets)
}

// Offsets returns the forward offsets. The slice is shared; do not modify it.
func (g *Grid) Offsets() []Offset {
	return g.offsets
}

// InBounds reports whether (x,y,z) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < g.Depth
}

// Index maps (x,y,z) to the row-major site index (z*Height+y)*Width+x.
// The caller guarantees InBounds(x,y,z).
func (g *Grid) Index(x, y, z int) int {
	return z*g.plane + y*g.Width + x
}

// Coordinate converts a site index back to (x,y,z).
func (g *Grid) Coordinate(site int) (x, y, z int) {
	z = site / g.plane
	rem := site - z*g.plane
	return rem % g.Width, rem / g.Width, z
}

// EdgeIndex returns the per-edge index of direction dir leaving site.
// It is defined for every (site, dir) pair, including ones whose neighbor
// lies outside the grid.
func (g *Grid) EdgeIndex(site, dir int) int {
	return site*len(g.offsets) + dir
}

// EdgeSlots returns Sites()*Directions(), the length of a per-edge table.
func (g *Grid) EdgeSlots() int {
	return g.Sites() * len(g.offsets)
}

// Neighbor returns the site reached from site along direction dir, and false
// when that step leaves the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(site, dir int) (int, bool) {
	x, y, z := g.Coordinate(site)
	o := g.offsets[dir]
	nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
	if !g.InBounds(nx, ny, nz) {
		return -1, false
	}
	return g.Index(nx, ny, nz), true
}

// Neighbors appends to buf[:0] the in-bounds forward edges of site and
// returns the result. Passing a buffer with capacity Directions() avoids
// allocation.
func (g *Grid) Neighbors(site int, buf []Edge) []Edge {
	buf = buf[:0]
	x, y, z := g.Coordinate(site)
	for d, o := range g.offsets {
		nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
		if !g.InBounds(nx, ny, nz) {
			continue
		}
		buf = append(buf, Edge{
			Index: site*len(g.offsets) + d,
			Dir:   d,
			From:  site,
			To:    g.Index(nx, ny, nz),
		})
	}
	return buf
}

// ForEachEdge calls fn once per undirected neighbor relation, in site order
// and then direction order.
// Complexity: O(W×H×D×d).
func (g *Grid) ForEachEdge(fn func(e Edge)) {
	dirs := len(g.offsets)
	site := 0
	for z := 0; z < g.Depth; z++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				for d, o := range g.offsets {
					nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
					if !g.InBounds(nx, ny, nz) {
						continue
					}
					fn(Edge{Index: site*dirs + d, Dir: d, From: site, To: g.Index(nx, ny, nz)})
				}
				site++
			}
		}
	}
}

// EdgeCount returns the number of undirected neighbor relations in the grid.
// Complexity: O(d).
func (g *Grid) EdgeCount() int {
	total := 0
	for _, o := range g.offsets {
		total += span(g.Width, o.DX) * span(g.Height, o.DY) * span(g.Depth, o.DZ)
	}
	return total
}

// Direction resolves off against the forward offsets. It returns the
// direction index and forward=true when off is itself a forward offset, or
// forward=false when off is the negation of one. ok is false otherwise.
func (g *Grid) Direction(off Offset) (dir int, forward, ok bool) {
	neg := off.Neg()
	for d, o := range g.offsets {
		if o == off {
			return d, true, true
		}
		if o == neg {
			return d, false, true
		}
	}
	return -1, false, false
}

// span counts positions p in [0,n) with p+delta also in [0,n).
func span(n, delta int) int {
	if delta < 0 {
		delta = -delta
	}
	if delta >= n {
		return 0
	}
	return n - delta
}

package topology

// Region is a maximal set of sites that share one label and are linked
// through neighbor relations of the grid.
type Region struct {
	Label int
	Sites []int // BFS discovery order, starting from the smallest site
}

// Regions partitions the sites into connected regions of equal label under
// g's connectivity, following relations in both directions. Regions are
// returned in order of their smallest site. len(labels) must be g.Sites().
//
// Time:   O(V·d).
// Memory: O(V) for visited flags and output.
func (g *Grid) Regions(labels []int) []Region {
	seen := make([]bool, g.Sites())
	queue := make([]int, 0, 64)
	var regions []Region

	for start := range labels {
		if seen[start] {
			continue
		}
		label := labels[start]
		seen[start] = true
		queue = append(queue[:0], start)

		for qi := 0; qi < len(queue); qi++ {
			x, y, z := g.Coordinate(queue[qi])
			for _, o := range g.offsets {
				for _, step := range [2]Offset{o, o.Neg()} {
					nx, ny, nz := x+step.DX, y+step.DY, z+step.DZ
					if !g.InBounds(nx, ny, nz) {
						continue
					}
					v := g.Index(nx, ny, nz)
					if !seen[v] && labels[v] == label {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}

		sites := make([]int, len(queue))
		copy(sites, queue)
		regions = append(regions, Region{Label: label, Sites: sites})
	}
	return regions
}

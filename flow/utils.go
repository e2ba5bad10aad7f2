package flow

// markSourceSide recomputes nw.side by a BFS from the source over arcs with
// positive residual capacity. After a maximum flow this is the source set of
// the minimum cut with the fewest nodes.
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: reuses nw.queue.
func (nw *Network) markSourceSide() {
	for i := range nw.side {
		nw.side[i] = false
	}
	queue := nw.queue[:0]
	queue = append(queue, nw.source)
	nw.side[nw.source] = true
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.adj[u] {
			v := nw.to[a]
			if nw.res[a] > 0 && !nw.side[v] {
				nw.side[v] = true
				queue = append(queue, v)
			}
		}
	}
	nw.queue = queue
}

// bfsLevels fills nw.level with BFS distances from the source in the
// residual network (-1 when unreachable) and reports whether the sink was
// reached.
func (nw *Network) bfsLevels() bool {
	for i := range nw.level {
		nw.level[i] = -1
	}
	queue := nw.queue[:0]
	queue = append(queue, nw.source)
	nw.level[nw.source] = 0
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.adj[u] {
			v := nw.to[a]
			if nw.res[a] > 0 && nw.level[v] < 0 {
				nw.level[v] = nw.level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	nw.queue = queue
	return nw.level[nw.sink] >= 0
}

// augment pushes the bottleneck of the path recorded in nw.parent (arc used
// to enter each node) from the sink back to the source, and returns it.
func (nw *Network) augment() int64 {
	bottleneck := int64(-1)
	for v := nw.sink; v != nw.source; {
		a := nw.parent[v]
		if bottleneck < 0 || nw.res[a] < bottleneck {
			bottleneck = nw.res[a]
		}
		v = nw.to[a^1]
	}
	for v := nw.sink; v != nw.source; {
		a := nw.parent[v]
		nw.res[a] -= bottleneck
		nw.res[a^1] += bottleneck
		v = nw.to[a^1]
	}
	return bottleneck
}

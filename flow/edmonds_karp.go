package flow

// edmondsKarp computes a maximum flow by augmenting along shortest residual
// paths found with BFS.
//
// Complexity: O(V·E²).
// Memory:     O(V) scratch, reused across calls.
func (nw *Network) edmondsKarp() int64 {
	var maxFlow int64
	for nw.bfsParents() {
		maxFlow += nw.augment()
	}
	return maxFlow
}

// bfsParents records in nw.parent the arc through which BFS first reached
// every node, and reports whether the sink was reached.
func (nw *Network) bfsParents() bool {
	nw.epoch++
	queue := nw.queue[:0]
	queue = append(queue, nw.source)
	nw.stamp[nw.source] = nw.epoch
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.adj[u] {
			v := nw.to[a]
			if nw.res[a] <= 0 || nw.stamp[v] == nw.epoch {
				continue
			}
			nw.stamp[v] = nw.epoch
			nw.parent[v] = a
			if v == nw.sink {
				nw.queue = queue
				return true
			}
			queue = append(queue, v)
		}
	}
	nw.queue = queue
	return false
}

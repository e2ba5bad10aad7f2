package flow

// fordFulkerson computes a maximum flow by augmenting along any residual
// path found with an explicit-stack DFS. Capacities are integral, so it
// terminates after at most F augmentations.
//
// Complexity: O(E·F), F the maximum flow value.
// Memory:     O(V) scratch, reused across calls.
func (nw *Network) fordFulkerson() int64 {
	var maxFlow int64
	for nw.dfsParents() {
		maxFlow += nw.augment()
	}
	return maxFlow
}

// dfsParents searches depth-first for a residual source→sink path, filling
// nw.parent like bfsParents.
func (nw *Network) dfsParents() bool {
	nw.epoch++
	stack := nw.stack[:0]
	stack = append(stack, nw.source)
	nw.stamp[nw.source] = nw.epoch
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range nw.adj[u] {
			v := nw.to[a]
			if nw.res[a] <= 0 || nw.stamp[v] == nw.epoch {
				continue
			}
			nw.stamp[v] = nw.epoch
			nw.parent[v] = a
			if v == nw.sink {
				nw.stack = stack
				return true
			}
			stack = append(stack, v)
		}
	}
	nw.stack = stack
	return false
}

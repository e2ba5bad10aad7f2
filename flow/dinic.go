package flow

import "math"

// dinic computes a maximum flow with Dinic's algorithm (level graph +
// blocking flows), adapted to the array-backed residual network.
//
// Steps:
//  1. BFS from the source to assign levels; stop when the sink is unreachable.
//  2. Reset the current-arc iterators.
//  3. Repeatedly push single paths through the level graph with DFS until
//     no path remains (a blocking flow), then go back to 1.
//
// Complexity:
//
//	Time:   O(V²·E) in general, far less on grid-shaped networks.
//	Memory: O(V) scratch, reused across calls.
func (nw *Network) dinic() int64 {
	var maxFlow int64
	for nw.bfsLevels() {
		for i := range nw.iter {
			nw.iter[i] = 0
		}
		for {
			pushed := nw.dinicPush(nw.source, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
		}
	}
	return maxFlow
}

// dinicPush sends at most limit units from u toward the sink along arcs that
// climb exactly one level, advancing u's current arc past dead ends.
func (nw *Network) dinicPush(u int, limit int64) int64 {
	if u == nw.sink {
		return limit
	}
	for ; nw.iter[u] < len(nw.adj[u]); nw.iter[u]++ {
		a := nw.adj[u][nw.iter[u]]
		v := nw.to[a]
		if nw.res[a] <= 0 || nw.level[v] != nw.level[u]+1 {
			continue
		}
		send := limit
		if nw.res[a] < send {
			send = nw.res[a]
		}
		if pushed := nw.dinicPush(v, send); pushed > 0 {
			nw.res[a] -= pushed
			nw.res[a^1] += pushed
			return pushed
		}
	}
	return 0
}

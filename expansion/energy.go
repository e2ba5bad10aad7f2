package expansion

import (
	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/topology"
)

// DataEnergy sums model.Data over every site of labels.
// Complexity: O(V).
func DataEnergy(model cost.Model, labels []int) int64 {
	var e int64
	for s, l := range labels {
		e += model.Data(s, l)
	}
	return e
}

// SmoothEnergy sums model.Smooth once per undirected neighbor relation of g,
// using the same edge indices the moves use.
// Complexity: O(V·d).
func SmoothEnergy(g *topology.Grid, model cost.Model, labels []int) int64 {
	var e int64
	g.ForEachEdge(func(edge topology.Edge) {
		e += model.Smooth(edge, labels[edge.From], labels[edge.To])
	})
	return e
}

// TotalEnergy returns DataEnergy + SmoothEnergy. labels must hold one valid
// label per site of g.
func TotalEnergy(g *topology.Grid, model cost.Model, labels []int) int64 {
	return DataEnergy(model, labels) + SmoothEnergy(g, model, labels)
}

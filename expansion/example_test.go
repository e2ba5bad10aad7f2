package expansion_test

import (
	"fmt"

	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/expansion"
	"github.com/katalvlaran/gridcut/topology"
)

// ExampleDriver_Perform denoises a 5×1 strip of observed intensities. The
// spike at x=2 costs more in disagreement with both neighbors than it saves
// in data cost, so the expansion flattens it.
func ExampleDriver_Perform() {
	g, _ := topology.New2D(5, 1)
	obs := []int64{0, 0, 2, 0, 0}
	data := cost.DataFromObservations(obs, 3, cost.AbsDiff, 4)
	model, _ := cost.NewTable(g.Sites(), 3, data, cost.Potts(3, 5))

	d, _ := expansion.New(g, 3, model)
	_ = d.SetLabeling([]int{0, 0, 2, 0, 0})
	res := d.Perform()
	fmt.Println(d.Labeling())
	fmt.Println(res.InitialEnergy, "->", res.Energy, "in", res.Cycles, "cycles")
	// Output:
	// [0 0 0 0 0]
	// 10 -> 8 in 2 cycles
}

// ExampleSubmodularize corrects a pairwise table that rewards agreeing on α
// less than it rewards keeping two different labels.
func ExampleSubmodularize() {
	a, b, c := expansion.Submodularize(5, 0, 0, 5)
	fmt.Println(a, b, c, a+5 <= b+c)
	// Output:
	// 2 4 3 true
}

package expansion

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/topology"
)

// State is the lifecycle position of a Driver.
type State int

const (
	// Idle: no run in progress and the labeling is not known to be converged.
	Idle State = iota
	// Running: a Perform call is sweeping.
	Running
	// Converged: the last sweep did not lower the energy. A new labeling
	// returns the driver to Idle.
	Converged
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Converged:
		return "converged"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result summarizes one Perform call.
type Result struct {
	Cycles        int   // sweeps run, the final non-improving one included
	InitialEnergy int64 // energy before the first sweep
	Energy        int64 // energy of the labeling left in the driver
	Converged     bool  // false when the cycle limit stopped the run
}

// sizedModel is implemented by the table-backed cost models; New uses it to
// check the model against the grid.
type sizedModel interface {
	Sites() int
	Labels() int
}

// Driver runs alpha-expansion on one grid and cost model. It owns the
// labeling and every buffer a move needs, all sized once in New.
type Driver struct {
	grid   *topology.Grid
	labels int
	model  cost.Model
	cut    CutGraph
	rng    *rand.Rand
	logger *log.Logger
	state  State

	labeling []int
	snapshot []int
	order    []int
	nodes    []int // cut graph node per site

	keep  []int64 // terminal accumulators, cleared per move
	alpha []int64
	edges []topology.Edge
}

// New builds a driver with every site labeled 0.
// Returns ErrNilInput, ErrLabelCount or ErrSiteCount on invalid input.
// Complexity: O(V·d) for the cut graph layout.
func New(g *topology.Grid, labels int, model cost.Model, opts ...Option) (*Driver, error) {
	if g == nil || model == nil {
		return nil, ErrNilInput
	}
	if labels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLabelCount, labels)
	}
	if sm, ok := model.(sizedModel); ok {
		if sm.Labels() != labels {
			return nil, fmt.Errorf("%w: model has %d labels, want %d", ErrLabelCount, sm.Labels(), labels)
		}
		if sm.Sites() != g.Sites() {
			return nil, fmt.Errorf("%w: model has %d sites, grid has %d", ErrSiteCount, sm.Sites(), g.Sites())
		}
	}
	o := gatherOptions(opts)

	sites := g.Sites()
	d := &Driver{
		grid:     g,
		labels:   labels,
		model:    model,
		cut:      o.newCut(g),
		rng:      o.rng,
		logger:   o.logger,
		labeling: make([]int, sites),
		snapshot: make([]int, sites),
		order:    make([]int, labels),
		nodes:    make([]int, sites),
		keep:     make([]int64, sites),
		alpha:    make([]int64, sites),
		edges:    make([]topology.Edge, 0, g.Directions()),
	}
	for s := range d.nodes {
		d.nodes[s] = d.cut.NodeID(g.Coordinate(s))
	}
	return d, nil
}

// Grid returns the topology the driver works on.
func (d *Driver) Grid() *topology.Grid { return d.grid }

// Labels returns the label count.
func (d *Driver) Labels() int { return d.labels }

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// SetLabels assigns label to every site and returns the driver to Idle.
func (d *Driver) SetLabels(label int) error {
	if label < 0 || label >= d.labels {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrLabelRange, label, d.labels)
	}
	for s := range d.labeling {
		d.labeling[s] = label
	}
	d.state = Idle
	return nil
}

// SetLabeling copies labeling into the driver and returns it to Idle. The
// caller keeps ownership of its slice. On error the driver is unchanged.
func (d *Driver) SetLabeling(labeling []int) error {
	if len(labeling) != len(d.labeling) {
		return fmt.Errorf("%w: got %d, want %d", ErrLabelingLength, len(labeling), len(d.labeling))
	}
	for s, l := range labeling {
		if l < 0 || l >= d.labels {
			return fmt.Errorf("%w: site %d has %d, want [0,%d)", ErrLabelRange, s, l, d.labels)
		}
	}
	copy(d.labeling, labeling)
	d.state = Idle
	return nil
}

// Labeling returns a copy of the current labeling.
func (d *Driver) Labeling() []int {
	out := make([]int, len(d.labeling))
	copy(out, d.labeling)
	return out
}

// Label returns the label of site.
func (d *Driver) Label(site int) int { return d.labeling[site] }

// LabelAt returns the label of the site at (x,y,z).
func (d *Driver) LabelAt(x, y, z int) int { return d.labeling[d.grid.Index(x, y, z)] }

// Energy evaluates the current labeling.
// Complexity: O(V·d).
func (d *Driver) Energy() int64 {
	return TotalEnergy(d.grid, d.model, d.labeling)
}

// Perform sweeps the labels in index order until convergence.
func (d *Driver) Perform() Result { return d.perform(0, false) }

// PerformCycles is Perform with at most maxCycles sweeps; maxCycles <= 0
// means no limit.
func (d *Driver) PerformCycles(maxCycles int) Result { return d.perform(maxCycles, false) }

// PerformRandom sweeps the labels in a fresh random order every cycle until
// convergence.
func (d *Driver) PerformRandom() Result { return d.perform(0, true) }

// PerformRandomCycles is PerformRandom with at most maxCycles sweeps.
func (d *Driver) PerformRandomCycles(maxCycles int) Result { return d.perform(maxCycles, true) }

// perform runs sweeps until one fails to lower the energy or maxCycles
// sweeps have run. A failed sweep is rolled back to the snapshot taken
// before it.
func (d *Driver) perform(maxCycles int, random bool) Result {
	d.state = Running
	current := d.Energy()
	res := Result{InitialEnergy: current, Energy: current}
	d.logger.Debug("expansion started",
		"sites", len(d.labeling), "labels", d.labels, "energy", current, "random", random, "max_cycles", maxCycles)

	for cycle := 1; maxCycles <= 0 || cycle <= maxCycles; cycle++ {
		copy(d.snapshot, d.labeling)
		identityOrder(d.order)
		if random {
			shuffleInts(d.order, d.rng)
		}
		for _, alpha := range d.order {
			d.expand(alpha)
		}

		next := d.Energy()
		res.Cycles = cycle
		d.logger.Debug("cycle", "cycle", cycle, "energy", next, "order", d.order)

		if next >= current {
			copy(d.labeling, d.snapshot)
			d.state = Converged
			res.Energy = current
			res.Converged = true
			d.logger.Info("expansion converged", "cycles", cycle, "energy", current, "initial", res.InitialEnergy)
			return res
		}
		current = next
	}

	d.state = Idle
	res.Energy = current
	d.logger.Debug("expansion stopped at cycle limit", "cycles", res.Cycles, "energy", current)
	return res
}

package expansion

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/topology"
)

const (
	panicNilRand     = "expansion: WithRand: source must be non-nil"
	panicNilLogger   = "expansion: WithLogger: logger must be non-nil"
	panicNilCutGraph = "expansion: WithCutGraph: factory must be non-nil"
	panicAlgorithm   = "expansion: WithAlgorithm: unknown max-flow algorithm"
)

// CutGraphFactory builds a CutGraph for a grid. It is called once per
// Driver; the graph is then reset and refilled for every move.
type CutGraphFactory func(g *topology.Grid) CutGraph

// Option configures a Driver. Options panic on nonsensical values.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *log.Logger
	newCut CutGraphFactory
}

// WithSeed seeds the random visitation order. Seed 0 selects the default
// seed, so two drivers built without this option also agree.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rngFromSeed(seed)
	}
}

// WithRand uses r for random visitation orders. r must not be shared with
// other goroutines while the driver runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithLogger sends per-cycle debug records and convergence info records to
// logger. Drivers log nothing by default.
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}
	return func(o *options) {
		o.logger = logger
	}
}

// WithCutGraph replaces the default min-cut backend.
func WithCutGraph(factory CutGraphFactory) Option {
	if factory == nil {
		panic(panicNilCutGraph)
	}
	return func(o *options) {
		o.newCut = factory
	}
}

// WithAlgorithm keeps the default flow.GridGraph backend but selects its
// max-flow algorithm.
func WithAlgorithm(alg flow.Algorithm) Option {
	switch alg {
	case flow.Dinic, flow.EdmondsKarp, flow.FordFulkerson:
	default:
		panic(panicAlgorithm)
	}
	return WithCutGraph(func(g *topology.Grid) CutGraph {
		return flow.NewGridGraph(g, alg)
	})
}

// gatherOptions applies opts over the defaults: seed defaultRNGSeed, a
// discarding logger and a Dinic flow.GridGraph.
func gatherOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(0)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.newCut == nil {
		o.newCut = func(g *topology.Grid) CutGraph {
			return flow.NewGridGraph(g, flow.Dinic)
		}
	}
	return o
}

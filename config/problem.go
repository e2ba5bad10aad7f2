package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridcut/cost"
	"github.com/katalvlaran/gridcut/expansion"
	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/topology"
)

// ErrInvalidProblem wraps every decoding and validation failure.
var ErrInvalidProblem = errors.New("config: invalid problem")

// Problem is the decoded form of a problem file.
type Problem struct {
	Grid   Grid   `toml:"grid"`
	Labels Labels `toml:"labels"`
	Data   Data   `toml:"data"`
	Smooth Smooth `toml:"smooth"`
	Solve  Solve  `toml:"solve"`
}

// Grid is the [grid] section. Depth defaults to 1; connectivity defaults to
// "4" for flat grids and "26" otherwise.
type Grid struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Depth        int    `toml:"depth"`
	Connectivity string `toml:"connectivity"`
}

// Labels is the [labels] section. InitialLabeling, when present, overrides
// Initial and must hold one label per site.
type Labels struct {
	Count           int   `toml:"count"`
	Initial         int   `toml:"initial"`
	InitialLabeling []int `toml:"initial_labeling,omitempty"`
}

// Data is the [data] section: either a flat sites×labels cost table, or one
// observation per site turned into costs with Penalty ("abs" or "squared")
// times Scale (default 1).
type Data struct {
	Costs        []int64 `toml:"costs,omitempty"`
	Observations []int64 `toml:"observations,omitempty"`
	Penalty      string  `toml:"penalty"`
	Scale        int64   `toml:"scale"`
}

// Smooth is the [smooth] section. Kind is one of "potts" (default),
// "linear", "quadratic", "table" or "none". Truncation applies to linear
// and quadratic; Matrix holds labels×labels entries for "table".
type Smooth struct {
	Kind       string  `toml:"kind"`
	Weight     int64   `toml:"weight"`
	Truncation int64   `toml:"truncation"`
	Matrix     []int64 `toml:"matrix,omitempty"`
}

// Solve is the [solve] section. MaxCycles <= 0 means until convergence.
type Solve struct {
	MaxCycles int    `toml:"max_cycles"`
	Random    bool   `toml:"random"`
	Seed      int64  `toml:"seed"`
	Algorithm string `toml:"algorithm"`
}

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	var p Problem
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return finish(&p, md)
}

// Encode writes p as TOML to w. The output decodes back to an equal Problem.
func (p *Problem) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Decode reads and validates a problem from r.
func Decode(r io.Reader) (*Problem, error) {
	var p Problem
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return finish(&p, md)
}

func finish(p *Problem, md toml.MetaData) (*Problem, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidProblem, strings.Join(keys, ", "))
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Problem) applyDefaults() {
	if p.Grid.Depth == 0 {
		p.Grid.Depth = 1
	}
	if p.Grid.Connectivity == "" {
		p.Grid.Connectivity = "4"
		if p.Grid.Depth > 1 {
			p.Grid.Connectivity = "26"
		}
	}
	if p.Data.Penalty == "" {
		p.Data.Penalty = "abs"
	}
	if p.Data.Scale == 0 {
		p.Data.Scale = 1
	}
	if p.Smooth.Kind == "" {
		p.Smooth.Kind = "potts"
	}
}

// Validate checks the problem for consistency without building anything
// expensive. Load and Decode call it.
func (p *Problem) Validate() error {
	g, err := p.Topology()
	if err != nil {
		return err
	}
	sites, labels := g.Sites(), p.Labels.Count
	if labels < 1 {
		return fmt.Errorf("%w: labels.count must be at least 1, got %d", ErrInvalidProblem, labels)
	}
	if p.Labels.Initial < 0 || p.Labels.Initial >= labels {
		return fmt.Errorf("%w: labels.initial %d not in [0,%d)", ErrInvalidProblem, p.Labels.Initial, labels)
	}
	if n := len(p.Labels.InitialLabeling); n > 0 && n != sites {
		return fmt.Errorf("%w: labels.initial_labeling has %d entries, want %d", ErrInvalidProblem, n, sites)
	}
	for s, l := range p.Labels.InitialLabeling {
		if l < 0 || l >= labels {
			return fmt.Errorf("%w: labels.initial_labeling[%d] = %d not in [0,%d)", ErrInvalidProblem, s, l, labels)
		}
	}

	switch {
	case len(p.Data.Costs) > 0 && len(p.Data.Observations) > 0:
		return fmt.Errorf("%w: data.costs and data.observations are exclusive", ErrInvalidProblem)
	case len(p.Data.Costs) > 0:
		if len(p.Data.Costs) != sites*labels {
			return fmt.Errorf("%w: data.costs has %d entries, want %d×%d", ErrInvalidProblem, len(p.Data.Costs), sites, labels)
		}
		if err := nonNegative("data.costs", p.Data.Costs); err != nil {
			return err
		}
	case len(p.Data.Observations) > 0:
		if len(p.Data.Observations) != sites {
			return fmt.Errorf("%w: data.observations has %d entries, want %d", ErrInvalidProblem, len(p.Data.Observations), sites)
		}
		if _, err := p.penalty(); err != nil {
			return err
		}
		if p.Data.Scale < 0 {
			return fmt.Errorf("%w: data.scale must be non-negative", ErrInvalidProblem)
		}
	default:
		return fmt.Errorf("%w: data needs costs or observations", ErrInvalidProblem)
	}

	if p.Smooth.Weight < 0 {
		return fmt.Errorf("%w: smooth.weight must be non-negative", ErrInvalidProblem)
	}
	switch p.Smooth.Kind {
	case "potts", "linear", "quadratic", "none":
	case "table":
		if len(p.Smooth.Matrix) != labels*labels {
			return fmt.Errorf("%w: smooth.matrix has %d entries, want %d×%d", ErrInvalidProblem, len(p.Smooth.Matrix), labels, labels)
		}
		if err := nonNegative("smooth.matrix", p.Smooth.Matrix); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown smooth.kind %q", ErrInvalidProblem, p.Smooth.Kind)
	}

	if _, err := flow.ParseAlgorithm(p.Solve.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return nil
}

// Topology builds the grid of the [grid] section.
func (p *Problem) Topology() (*topology.Grid, error) {
	conn, err := topology.ParseConnectivity(p.Grid.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	g, err := topology.New(p.Grid.Width, p.Grid.Height, p.Grid.Depth, conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return g, nil
}

// SmoothMatrix returns the shared labels×labels smoothness matrix.
func (p *Problem) SmoothMatrix() []int64 {
	labels, w := p.Labels.Count, p.Smooth.Weight
	switch p.Smooth.Kind {
	case "linear":
		return cost.TruncatedLinear(labels, w, p.Smooth.Truncation)
	case "quadratic":
		return cost.TruncatedQuadratic(labels, w, p.Smooth.Truncation)
	case "table":
		return p.Smooth.Matrix
	case "none":
		return make([]int64, labels*labels)
	default:
		return cost.Potts(labels, w)
	}
}

// Model builds the cost model for grid g.
func (p *Problem) Model(g *topology.Grid) (*cost.Table, error) {
	data := p.Data.Costs
	if len(p.Data.Observations) > 0 {
		pen, err := p.penalty()
		if err != nil {
			return nil, err
		}
		data = cost.DataFromObservations(p.Data.Observations, p.Labels.Count, pen, p.Data.Scale)
	}
	m, err := cost.NewTable(g.Sites(), p.Labels.Count, data, p.SmoothMatrix())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return m, nil
}

// Options returns the driver options of the [solve] section.
func (p *Problem) Options() ([]expansion.Option, error) {
	alg, err := flow.ParseAlgorithm(p.Solve.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return []expansion.Option{expansion.WithSeed(p.Solve.Seed), expansion.WithAlgorithm(alg)}, nil
}

// Build assembles a driver holding the initial labeling. extra options are
// applied after the ones derived from the file.
func (p *Problem) Build(extra ...expansion.Option) (*expansion.Driver, error) {
	g, err := p.Topology()
	if err != nil {
		return nil, err
	}
	model, err := p.Model(g)
	if err != nil {
		return nil, err
	}
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	d, err := expansion.New(g, p.Labels.Count, model, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if len(p.Labels.InitialLabeling) > 0 {
		err = d.SetLabeling(p.Labels.InitialLabeling)
	} else {
		err = d.SetLabels(p.Labels.Initial)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	return d, nil
}

func (p *Problem) penalty() (cost.Penalty, error) {
	switch p.Data.Penalty {
	case "abs":
		return cost.AbsDiff, nil
	case "squared":
		return cost.SquaredDiff, nil
	}
	return nil, fmt.Errorf("%w: unknown data.penalty %q", ErrInvalidProblem, p.Data.Penalty)
}

func nonNegative(key string, v []int64) error {
	for i, c := range v {
		if c < 0 {
			return fmt.Errorf("%w: %s[%d] = %d is negative", ErrInvalidProblem, key, i, c)
		}
	}
	return nil
}

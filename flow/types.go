package flow

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("flow: unknown max-flow algorithm")

// CapacityError reports a negative capacity written to an arc. It is raised
// as a panic: capacities come from cost reductions that are non-negative by
// construction, so a negative value is a programmer error.
type CapacityError struct {
	Arc int
	Cap int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d: %d", e.Arc, e.Cap)
}

// Algorithm selects the augmenting strategy used by Network.MaxFlow.
type Algorithm int

const (
	// Dinic builds BFS level graphs and saturates them with blocking flows.
	Dinic Algorithm = iota
	// EdmondsKarp augments along shortest (fewest-arc) residual paths.
	EdmondsKarp
	// FordFulkerson augments along any residual path found by DFS.
	FordFulkerson
)

// String returns the canonical name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Dinic:
		return "dinic"
	case EdmondsKarp:
		return "edmonds-karp"
	case FordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name ("dinic", "edmonds-karp", "ford-fulkerson") to
// an Algorithm. The empty string selects Dinic.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", "dinic":
		return Dinic, nil
	case "edmonds-karp", "ek":
		return EdmondsKarp, nil
	case "ford-fulkerson", "ff":
		return FordFulkerson, nil
	}
	return Dinic, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Segment names the side of the minimum cut a node ends up on.
type Segment int

const (
	// Source is the side reachable from the source in the final residual network.
	Source Segment = iota
	// Sink is every other node.
	Sink
)

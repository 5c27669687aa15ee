package journey

import (
	"github.com/paulmach/orb/geo"

	"github.com/urbanmove/journeyquery/journey/graph"
)

// Heuristic estimates a lower bound (seconds) on the remaining cost from a
// state to the search target. Estimates must never exceed the true cost or
// the search loses optimality.
type Heuristic interface {
	EstimateRemainingCost(current *State, target graph.Vertex) float64
}

// HeuristicFactory picks a heuristic for one search. Injection keeps
// reversed and re-optimized searches on their own strategies without
// touching the context.
type HeuristicFactory interface {
	ForSearch(opt *Options) Heuristic
}

// EuclideanHeuristic divides the great-circle distance to the target by a
// fixed speed ceiling.
type EuclideanHeuristic struct {
	Speed float64
}

func (h EuclideanHeuristic) EstimateRemainingCost(current *State, target graph.Vertex) float64 {
	return geo.Distance(current.Vertex.Point(), target.Point()) / h.Speed
}

// TrivialHeuristic estimates zero, degrading the search to Dijkstra. Used
// when no admissible estimate is available.
type TrivialHeuristic struct{}

func (TrivialHeuristic) EstimateRemainingCost(*State, graph.Vertex) float64 { return 0 }

type defaultHeuristicFactory struct{}

func (defaultHeuristicFactory) ForSearch(opt *Options) Heuristic {
	if opt.Modes.UsesTransit() {
		// vehicles can cover the remaining distance much faster than walking
		return EuclideanHeuristic{Speed: MAX_TRANSIT_SPEED}
	}
	return EuclideanHeuristic{Speed: opt.SpeedUpperBound}
}

var heuristicFactory HeuristicFactory = defaultHeuristicFactory{}

// SetHeuristicFactory swaps the factory consulted by new contexts. Not safe
// to call while searches are being constructed.
func SetHeuristicFactory(f HeuristicFactory) {
	if f == nil {
		f = defaultHeuristicFactory{}
	}
	heuristicFactory = f
}

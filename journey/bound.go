package journey

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/urbanmove/journeyquery/journey/graph"
)

// SearchTree is the driver's shortest-path tree. The strategies here accept
// it to match the driver's call sites but never inspect it.
type SearchTree interface{}

// TargetBound prunes a goal-directed search using states that already
// reached the real destination. It is consumed by the search loop as a
// predicate pair: ShouldContinueSearch collects arrivals at the real target
// ("bounders"), ShouldSkipResult discards candidate states that provably, or
// under the labeled heuristic margin, cannot beat a collected bounder.
type TargetBound struct {
	realTarget        graph.Vertex
	realTargetPoint   orb.Point
	targetNearestStop float64

	// boundingStates are coarser-search states handed in by the caller as
	// extra pruning evidence. They are carried for the caller's benefit but
	// not consulted by the skip predicate: cutting branches on them made
	// searches slower, likely because the cut branches no longer dominate
	// others.
	boundingStates []*State
	bounders       []*State

	// TimeRatioPrune enables the elapsed-time margin cut: a branch whose
	// optimistic elapsed time is more than TIME_RATIO_BOUND times a known
	// solution's is discarded even when not strictly dominated. This is NOT
	// admissible; it trades a small chance of missing a pathological win
	// for a large search-space reduction. Disable it when provable
	// optimality matters.
	TimeRatioPrune bool
}

// NewTargetBound builds the strategy pair for one search toward realTarget.
// bounders may carry known full solutions from an earlier pass; nil starts
// empty.
func NewTargetBound(realTarget graph.Vertex, boundingStates, bounders []*State) *TargetBound {
	if bounders == nil {
		bounders = make([]*State, 0)
	}
	return &TargetBound{
		realTarget:        realTarget,
		realTargetPoint:   realTarget.Point(),
		targetNearestStop: realTarget.DistanceToNearestTransitStop(),
		boundingStates:    boundingStates,
		bounders:          bounders,
		TimeRatioPrune:    true,
	}
}

// ShouldContinueSearch never terminates the search itself; it records every
// state that reached the real destination so later skip checks get tighter.
func (tb *TargetBound) ShouldContinueSearch(origin, target graph.Vertex, current *State, tree SearchTree, opt *Options) bool {
	if current.Vertex == tb.realTarget {
		tb.bounders = append(tb.bounders, current)
	}
	return true
}

// Bounders returns the states collected so far that reached the real
// destination.
func (tb *TargetBound) Bounders() []*State { return tb.bounders }

// ShouldSkipResult reports whether the candidate state can be discarded
// without affecting which optimal paths the search can still find (modulo
// the labeled TimeRatioPrune margin).
func (tb *TargetBound) ShouldSkipResult(origin, target graph.Vertex, parent, current *State, tree SearchTree, opt *Options) bool {
	targetDistance := geo.Distance(tb.realTargetPoint, current.Vertex.Point())
	remainingWalk := opt.MaxWalkDistance - current.WalkDistance

	var minWalk, minTime float64
	if targetDistance > remainingWalk {
		// walking straight there busts the budget, so the path must ride
		// transit: walk to a boardable stop here, and from a stop near the
		// destination, paying at least one boarding delay
		minWalk = current.Vertex.DistanceToNearestTransitStop() + tb.targetNearestStop
		minTime = opt.BoardSlack
	} else {
		minWalk = targetDistance
	}
	if minWalk > remainingWalk {
		return true
	}

	optimisticDistance := current.WalkDistance + minWalk
	// non-walking remainder at the fastest conceivable vehicle, walking
	// remainder at this state's own ceiling
	minTime += (targetDistance-minWalk)/MAX_TRANSIT_SPEED + minWalk/current.SpeedUpperBound()
	stateTime := float64(current.Time) + minTime - float64(opt.Instant)

	for _, bounder := range tb.bounders {
		if optimisticDistance > bounder.WalkDistance && float64(current.Time)+minTime > float64(bounder.Time) {
			// this path won't win on either time or distance
			return true
		}
		if tb.TimeRatioPrune {
			bounderTime := float64(bounder.Time - opt.Instant)
			if bounderTime*TIME_RATIO_BOUND < stateTime {
				return true
			}
		}
	}
	return false
}

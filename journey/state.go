package journey

import "github.com/urbanmove/journeyquery/journey/graph"

// State is one search label produced by the external search loop. This core
// only reads it: the current vertex, the arrival time there (seconds since
// epoch), the walk distance spent so far, and the options in effect for the
// label (the speed ceiling can differ per state when fares or modes differ
// along the path).
type State struct {
	Vertex       graph.Vertex
	Time         int64
	WalkDistance float64
	Options      *Options
}

// SpeedUpperBound is the walking speed ceiling for this state.
func (s *State) SpeedUpperBound() float64 {
	if s.Options != nil && s.Options.SpeedUpperBound > 0 {
		return s.Options.SpeedUpperBound
	}
	return PERSON_SPEED
}

package journey

import (
	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"

	"github.com/urbanmove/journeyquery/journey/graph"
)

var validate = validator.New()

// Place is one endpoint descriptor: either the label of a stable graph
// vertex or a free coordinate to snap onto the street network.
type Place struct {
	Vertex string
	Point  *orb.Point
	Name   string
}

func (p Place) defined() bool {
	return p.Vertex != "" || p.Point != nil
}

func (p Place) lookupSpec(o *Options) graph.LookupSpec {
	return graph.LookupSpec{
		Label:           p.Vertex,
		Point:           p.Point,
		MaxSnapDistance: o.MaxSnapDistance,
	}
}

// ModeSet is the requested travel modes. Walk-only searches skip all
// calendar coverage requirements.
type ModeSet struct {
	Walk    bool
	Transit bool
}

func (m ModeSet) UsesTransit() bool { return m.Transit }

// Options are the immutable-for-one-search query parameters. Once a
// SearchContext has cached service days against Instant, the same Options
// value must not be reused for a different instant or concurrently for
// another search.
type Options struct {
	From          Place
	To            Place
	Intermediates []Place

	// ArriveBy swaps origin and target: the search starts at the user's
	// destination and terminates at their departure point.
	ArriveBy bool
	// Instant is the query time in seconds since the epoch.
	Instant int64 `validate:"gt=0"`

	Modes      ModeSet
	Wheelchair bool

	// MaxWalkDistance is the total walk budget in meters.
	MaxWalkDistance float64 `validate:"gte=0"`
	// SpeedUpperBound is the walking speed ceiling (m/s) for this search.
	SpeedUpperBound float64 `validate:"gt=0"`
	// BoardSlack is the fixed time cost (seconds) paid at every boarding.
	BoardSlack float64 `validate:"gte=0"`
	// MaxSnapDistance limits free-coordinate endpoint snapping (meters).
	MaxSnapDistance float64 `validate:"gte=0"`
}

func DefaultOptions() *Options {
	return &Options{
		Modes:           ModeSet{Walk: true, Transit: true},
		MaxWalkDistance: 2000,
		SpeedUpperBound: PERSON_SPEED,
		BoardSlack:      120,
		MaxSnapDistance: graph.DEFAULT_SNAP_DISTANCE,
	}
}

func (o *Options) Validate() error {
	if !o.From.defined() || !o.To.defined() {
		return ErrEmptyPlace
	}
	for _, p := range o.Intermediates {
		if !p.defined() {
			return ErrEmptyPlace
		}
	}
	return validate.Struct(o)
}

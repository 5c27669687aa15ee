package journey_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmove/journeyquery/journey"
	"github.com/urbanmove/journeyquery/journey/graph"
)

func TestEuclideanHeuristic(t *testing.T) {
	a := graph.NewIntersection("a", orb.Point{13.4000, 52.5200})
	b := graph.NewIntersection("b", orb.Point{13.4030, 52.5200})
	state := &journey.State{Vertex: a}

	d := geo.Distance(a.Point(), b.Point())
	h := journey.EuclideanHeuristic{Speed: 2}
	assert.InDelta(t, d/2, h.EstimateRemainingCost(state, b), 1e-9)

	assert.Zero(t, journey.TrivialHeuristic{}.EstimateRemainingCost(state, b))
}

func TestDefaultFactorySelection(t *testing.T) {
	g := newTestNetwork(true)

	ctx, err := journey.NewSearchContext(g, testOptions(), false)
	require.NoError(t, err)
	defer ctx.Destroy()
	assert.Equal(t, journey.EuclideanHeuristic{Speed: journey.MAX_TRANSIT_SPEED}, ctx.Heuristic)

	opt := testOptions()
	opt.Modes = journey.ModeSet{Walk: true}
	opt.SpeedUpperBound = 1.4
	walkCtx, err := journey.NewSearchContext(g, opt, false)
	require.NoError(t, err)
	defer walkCtx.Destroy()
	assert.Equal(t, journey.EuclideanHeuristic{Speed: 1.4}, walkCtx.Heuristic)
}

type trivialFactory struct{}

func (trivialFactory) ForSearch(*journey.Options) journey.Heuristic {
	return journey.TrivialHeuristic{}
}

func TestHeuristicFactoryOverride(t *testing.T) {
	journey.SetHeuristicFactory(trivialFactory{})
	defer journey.SetHeuristicFactory(nil)

	g := newTestNetwork(true)
	ctx, err := journey.NewSearchContext(g, testOptions(), false)
	require.NoError(t, err)
	defer ctx.Destroy()
	assert.Equal(t, journey.TrivialHeuristic{}, ctx.Heuristic)

	// nil restores the default
	journey.SetHeuristicFactory(nil)
	ctx2, err := journey.NewSearchContext(g, testOptions(), false)
	require.NoError(t, err)
	defer ctx2.Destroy()
	assert.Equal(t, journey.EuclideanHeuristic{Speed: journey.MAX_TRANSIT_SPEED}, ctx2.Heuristic)
}

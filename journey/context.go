package journey

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"

	"github.com/urbanmove/journeyquery/journey/calendar"
	"github.com/urbanmove/journeyquery/journey/graph"
)

// SearchContext binds one query to the shared network for the duration of
// one search: resolved (possibly temporary) endpoint vertices, the cached
// service-day windows, the transfer table and the heuristic. It owns the
// temporary graph state it caused and must be destroyed exactly once when
// the search is over; a context whose construction fails cleans up after
// itself.
type SearchContext struct {
	Options *Options
	Network Network

	// FromVertex/ToVertex follow the user's view of the trip;
	// Origin/Target follow the search's view (swapped when ArriveBy).
	FromVertex graph.Vertex
	ToVertex   graph.Vertex
	Origin     graph.Vertex
	Target     graph.Vertex

	Intermediates []graph.Vertex
	ServiceDays   []ServiceDay
	Transfers     *graph.TransferTable
	Heuristic     Heuristic

	calendarService *calendar.Service
	serviceDates    *xsync.MapOf[calendar.ServiceID, map[calendar.Date]struct{}]
}

// NewSearchContext resolves the query endpoints against the network and
// prepares the per-search caches. withServiceDays controls whether the
// yesterday/today/tomorrow service windows are populated immediately;
// reversed-search clones that inherit them pass false.
//
// On error every temporary vertex/edge already attached is detached before
// returning, so failed constructions never leak into the shared graph.
func NewSearchContext(net Network, opt *Options, withServiceDays bool) (*SearchContext, error) {
	ctx := &SearchContext{
		Options:      opt,
		Network:      net,
		serviceDates: xsync.NewMapOf[calendar.ServiceID, map[calendar.Date]struct{}](),
	}
	var err error
	defer func() {
		if err != nil {
			ctx.Destroy()
		}
	}()

	ctx.FromVertex = net.VertexForPlace(opt.From.lookupSpec(opt), nil)
	ctx.ToVertex = net.VertexForPlace(opt.To.lookupSpec(opt), ctx.FromVertex)
	if opt.ArriveBy {
		ctx.Origin, ctx.Target = ctx.ToVertex, ctx.FromVertex
	} else {
		ctx.Origin, ctx.Target = ctx.FromVertex, ctx.ToVertex
	}
	if err = ctx.checkEndpointVertices(); err != nil {
		return nil, err
	}
	if err = ctx.findIntermediateVertices(); err != nil {
		return nil, err
	}

	if data := net.CalendarData(); data != nil {
		ctx.calendarService = calendar.NewService(data)
	}
	ctx.Transfers = net.TransferTable()
	if withServiceDays {
		ctx.setServiceDays()
	}
	ctx.Heuristic = heuristicFactory.ForSearch(opt)

	if opt.Modes.UsesTransit() && !net.CoversInstant(opt.Instant) {
		// the user wants a path through the transit network, but the
		// instant is outside the dates covered by the service calendar
		err = &TransitCoverageError{Instant: opt.Instant}
		return nil, err
	}
	return ctx, nil
}

func (c *SearchContext) checkEndpointVertices() error {
	notFound := make([]string, 0, 2)
	if c.FromVertex == nil {
		notFound = append(notFound, "from")
	}
	if c.ToVertex == nil {
		notFound = append(notFound, "to")
	}
	if len(notFound) > 0 {
		return &EndpointsNotFoundError{Labels: notFound}
	}
	return nil
}

func (c *SearchContext) findIntermediateVertices() error {
	if len(c.Options.Intermediates) == 0 {
		return nil
	}
	notFound := make([]string, 0)
	for i, place := range c.Options.Intermediates {
		v := c.Network.VertexForPlace(place.lookupSpec(c.Options), c.FromVertex)
		if v == nil {
			notFound = append(notFound, fmt.Sprintf("intermediate.%d", i))
			continue
		}
		c.Intermediates = append(c.Intermediates, v)
	}
	if len(notFound) > 0 {
		return &EndpointsNotFoundError{Labels: notFound}
	}
	return nil
}

// setServiceDays caches the service windows for yesterday, today and
// tomorrow relative to the query instant, per operator, deduplicated: on a
// DST-shifted day two of the probes can land in the same window.
func (c *SearchContext) setServiceDays() {
	t := c.Options.Instant
	c.ServiceDays = make([]ServiceDay, 0, 3*len(c.Network.Agencies()))
	if c.calendarService == nil {
		log.Warn("graph has no calendar data, transit will never be boarded")
		return
	}
	for _, agency := range c.Network.Agencies() {
		for _, probe := range []int64{t - SEC_IN_DAY, t, t + SEC_IN_DAY} {
			day := NewServiceDay(probe, c.calendarService, agency)
			if !lo.ContainsBy(c.ServiceDays, day.Equal) {
				c.ServiceDays = append(c.ServiceDays, day)
			}
		}
	}
}

// IsAccessible checks the resolved endpoints against the wheelchair
// requirement. Vertex kinds that carry no accessibility information pass by
// default.
func (c *SearchContext) IsAccessible() bool {
	if !c.Options.Wheelchair {
		return true
	}
	return isWheelchairAccessible(c.Origin) && isWheelchairAccessible(c.Target)
}

func isWheelchairAccessible(v graph.Vertex) bool {
	if a, ok := v.(graph.WheelchairAware); ok {
		return a.WheelchairAccessible()
	}
	return true
}

// ServiceRunsOn reports whether the service is active on date. The full
// date set per service is fetched once and memoized for the search. Without
// calendar data it always reports false: the constructor already warned and
// transit is simply never boardable.
func (c *SearchContext) ServiceRunsOn(id calendar.ServiceID, date calendar.Date) bool {
	if c.calendarService == nil {
		return false
	}
	dates, _ := c.serviceDates.LoadOrCompute(id, func() map[calendar.Date]struct{} {
		return c.calendarService.ActiveDatesFor(id)
	})
	_, ok := dates[date]
	return ok
}

// Destroy tears the context down, detaching the temporary edges attached to
// the origin, target and intermediate vertices, and returns how many were
// removed. It must be called exactly once when the search is over; after a
// correct teardown further calls return 0.
func (c *SearchContext) Destroy() int {
	vertices := append([]graph.Vertex{c.Origin, c.Target}, c.Intermediates...)
	return lo.SumBy(vertices, func(v graph.Vertex) int {
		if v == nil {
			return 0
		}
		return v.RemoveTemporaryEdges()
	})
}

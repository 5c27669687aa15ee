package graph

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
	"github.com/tidwall/rtree"

	"github.com/urbanmove/journeyquery/journey/calendar"
)

// LookupSpec describes one place to resolve: either a stable vertex label or
// a free coordinate to snap onto the street network.
type LookupSpec struct {
	Label string
	Point *orb.Point
	// MaxSnapDistance limits coordinate snapping; 0 means
	// DEFAULT_SNAP_DISTANCE.
	MaxSnapDistance float64
}

// Graph is the shared, mostly immutable transportation network. Permanent
// structure is frozen by Build; afterwards the only mutation is attaching
// and detaching temporary endpoint vertices, guarded by an RBMutex. Whole
// searches that could race on the same region must still be serialized by
// the caller.
type Graph struct {
	mu *xsync.RBMutex

	vertices map[string]Vertex
	agencies []string

	transfers    *TransferTable
	calendarData *calendar.Data
	timezone     *time.Location

	// permanent snap candidates and transit stops, populated by Build
	index     rtree.RTreeG[Vertex]
	stopIndex rtree.RTreeG[*TransitStop]
	built     bool

	// arena of live temporary edges; every entry is owned by exactly one
	// search context and removed by its teardown
	tempEdges map[*Edge]struct{}
	tempSeq   int
}

func NewGraph() *Graph {
	return &Graph{
		mu:        xsync.NewRBMutex(),
		vertices:  make(map[string]Vertex),
		timezone:  time.UTC,
		tempEdges: make(map[*Edge]struct{}),
	}
}

/* builders, to be called before Build */

func (g *Graph) AddIntersection(label string, p orb.Point) *Intersection {
	v := NewIntersection(label, p)
	g.register(v)
	return v
}

func (g *Graph) AddTransitStop(label string, p orb.Point, wheelchairBoarding bool) *TransitStop {
	v := NewTransitStop(label, p, wheelchairBoarding)
	g.register(v)
	return v
}

func (g *Graph) register(v Vertex) {
	c := v.core()
	c.g = g
	if _, ok := g.vertices[c.label]; ok {
		log.Warnf("vertex %s registered twice, overwriting", c.label)
	}
	g.vertices[c.label] = v
}

// AddEdge adds a permanent directed edge. A negative distance means
// "compute from the endpoint coordinates".
func (g *Graph) AddEdge(from, to Vertex, distance float64) *Edge {
	if distance < 0 {
		distance = geo.Distance(from.Point(), to.Point())
	}
	return link(from, to, distance, false)
}

// Connect adds permanent edges in both directions.
func (g *Graph) Connect(a, b Vertex, distance float64) {
	g.AddEdge(a, b, distance)
	g.AddEdge(b, a, distance)
}

func (g *Graph) AddAgency(id string) {
	g.agencies = append(g.agencies, id)
}

func (g *Graph) SetTransferTable(t *TransferTable) {
	g.transfers = t
}

func (g *Graph) SetCalendarData(d *calendar.Data) {
	g.calendarData = d
}

func (g *Graph) SetTimezone(loc *time.Location) {
	g.timezone = loc
}

// Build freezes the permanent structure: fills the spatial indexes and
// precomputes every vertex's distance to the nearest transit stop.
func (g *Graph) Build() {
	stops := 0
	for _, v := range g.vertices {
		p := v.Point()
		g.index.Insert([2]float64{p.Lon(), p.Lat()}, [2]float64{p.Lon(), p.Lat()}, v)
		if s, ok := v.(*TransitStop); ok {
			g.stopIndex.Insert([2]float64{p.Lon(), p.Lat()}, [2]float64{p.Lon(), p.Lat()}, s)
			stops++
		}
	}
	if stops == 0 {
		log.Warn("graph has no transit stops, every stop distance is infinite")
	}
	for _, v := range g.vertices {
		if _, ok := v.(*TransitStop); ok {
			v.core().SetDistanceToNearestTransitStop(0)
			continue
		}
		v.core().SetDistanceToNearestTransitStop(g.nearestStopDistance(v.Point()))
	}
	g.built = true
}

/* Network surface */

// VertexForPlace resolves a place to a vertex, synthesizing a temporary
// StreetLocation for free coordinates. relativeTo is the already-resolved
// counterpart endpoint, included as an extra snap candidate so paired
// endpoints can share street geometry. Returns nil when nothing resolves.
func (g *Graph) VertexForPlace(spec LookupSpec, relativeTo Vertex) Vertex {
	if spec.Label != "" {
		t := g.mu.RLock()
		defer g.mu.RUnlock(t)
		return g.vertices[spec.Label]
	}
	if spec.Point == nil {
		return nil
	}
	radius := spec.MaxSnapDistance
	if radius <= 0 {
		radius = DEFAULT_SNAP_DISTANCE
	}
	best, bestDist := g.nearestVertex(*spec.Point, radius, relativeTo)
	if best == nil {
		log.Debugf("no vertex within %.0fm of %v", radius, *spec.Point)
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.tempSeq++
	loc := NewStreetLocation(fmt.Sprintf("street-loc-%d", g.tempSeq), *spec.Point, true)
	loc.core().g = g
	loc.core().SetDistanceToNearestTransitStop(g.nearestStopDistance(*spec.Point))
	g.tempEdges[link(loc, best, bestDist, true)] = struct{}{}
	g.tempEdges[link(best, loc, bestDist, true)] = struct{}{}
	return loc
}

func (g *Graph) Agencies() []string {
	ids := lo.Uniq(g.agencies)
	sort.Strings(ids)
	return ids
}

// TransferTable never returns nil; an absent table is a valid no-op table.
func (g *Graph) TransferTable() *TransferTable {
	if g.transfers == nil {
		return NewTransferTable()
	}
	return g.transfers
}

func (g *Graph) CalendarData() *calendar.Data {
	return g.calendarData
}

// CoversInstant reports whether the instant falls inside the service
// calendar's coverage window. Without calendar data nothing is covered.
func (g *Graph) CoversInstant(instant int64) bool {
	if g.calendarData == nil {
		return false
	}
	first, last, ok := g.calendarData.Coverage()
	if !ok {
		return false
	}
	d := calendar.DateOf(time.Unix(instant, 0).In(g.timezone))
	return !d.Before(first) && !d.After(last)
}

func (g *Graph) Timezone() *time.Location {
	return g.timezone
}

/* diagnostics */

func (g *Graph) Vertex(label string) Vertex {
	t := g.mu.RLock()
	defer g.mu.RUnlock(t)
	return g.vertices[label]
}

// TemporaryEdgeCount counts temporary edges still attached to the graph.
// After every context is destroyed it must be 0; tests use it to catch
// missing teardown.
func (g *Graph) TemporaryEdgeCount() int {
	t := g.mu.RLock()
	defer g.mu.RUnlock(t)
	return len(g.tempEdges)
}

/* spatial helpers */

// queryBox returns an rtree search box of the given radius around p.
func queryBox(p orb.Point, radius float64) (min, max [2]float64) {
	dLat := radius / METERS_PER_DEGREE
	dLon := radius / (METERS_PER_DEGREE * math.Cos(p.Lat()*math.Pi/180))
	min = [2]float64{p.Lon() - dLon, p.Lat() - dLat}
	max = [2]float64{p.Lon() + dLon, p.Lat() + dLat}
	return
}

func (g *Graph) nearestVertex(p orb.Point, radius float64, extra Vertex) (Vertex, float64) {
	var best Vertex
	bestDist := radius
	min, max := queryBox(p, radius)
	g.index.Search(min, max, func(_, _ [2]float64, v Vertex) bool {
		if d := geo.Distance(p, v.Point()); d <= bestDist {
			best, bestDist = v, d
		}
		return true
	})
	if extra != nil {
		if d := geo.Distance(p, extra.Point()); d <= bestDist {
			best, bestDist = extra, d
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestDist
}

func (g *Graph) nearestStopDistance(p orb.Point) float64 {
	nearest := math.Inf(1)
	min, max := queryBox(p, MAX_STOP_SEARCH_DISTANCE)
	g.stopIndex.Search(min, max, func(_, _ [2]float64, s *TransitStop) bool {
		if d := geo.Distance(p, s.Point()); d < nearest {
			nearest = d
		}
		return true
	})
	return nearest
}

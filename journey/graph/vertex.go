package graph

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/samber/lo"
)

// Vertex is one node of the transportation network. The concrete kind
// (transit stop, street location, intersection) decides extra capabilities
// such as accessibility reporting.
type Vertex interface {
	Label() string
	Point() orb.Point
	// DistanceToNearestTransitStop is a lower bound on the walk (in meters)
	// to any boardable stop, precomputed at build time.
	DistanceToNearestTransitStop() float64
	// Temporary vertices are synthesized per search and must not outlive it.
	Temporary() bool
	Outgoing() []*Edge
	Incoming() []*Edge
	// RemoveTemporaryEdges detaches every temporary edge touching this
	// vertex from both of its endpoints and returns how many were removed.
	RemoveTemporaryEdges() int

	core() *vertexCore
}

// WheelchairAware is implemented by vertex kinds that carry their own
// accessibility information. Kinds without it are accessible by default.
type WheelchairAware interface {
	WheelchairAccessible() bool
}

// Edge is a directed connection between two vertices. Temporary edges are
// owned by the search that attached them.
type Edge struct {
	from, to  Vertex
	distance  float64
	temporary bool
}

func (e *Edge) From() Vertex      { return e.from }
func (e *Edge) To() Vertex        { return e.to }
func (e *Edge) Distance() float64 { return e.distance }
func (e *Edge) Temporary() bool   { return e.temporary }

func (e *Edge) detach() {
	fc := e.from.core()
	fc.out = lo.Without(fc.out, e)
	tc := e.to.core()
	tc.in = lo.Without(tc.in, e)
	for _, c := range []*vertexCore{fc, tc} {
		if c.g != nil {
			delete(c.g.tempEdges, e)
		}
	}
}

// link attaches a new edge to both endpoints' adjacency lists.
func link(from, to Vertex, distance float64, temporary bool) *Edge {
	e := &Edge{from: from, to: to, distance: distance, temporary: temporary}
	fc := from.core()
	fc.out = append(fc.out, e)
	tc := to.core()
	tc.in = append(tc.in, e)
	return e
}

type vertexCore struct {
	label       string
	point       orb.Point
	nearestStop float64

	out []*Edge
	in  []*Edge

	// owning graph, nil for standalone vertices; gives access to the
	// shared lock and the temporary-edge arena
	g *Graph
}

func (c *vertexCore) Label() string                         { return c.label }
func (c *vertexCore) Point() orb.Point                      { return c.point }
func (c *vertexCore) DistanceToNearestTransitStop() float64 { return c.nearestStop }
func (c *vertexCore) Temporary() bool                       { return false }
func (c *vertexCore) core() *vertexCore                     { return c }

func (c *vertexCore) Outgoing() []*Edge { return c.out }
func (c *vertexCore) Incoming() []*Edge { return c.in }

// SetDistanceToNearestTransitStop overrides the precomputed stop distance.
// Build sets it for every registered vertex; tests set it directly.
func (c *vertexCore) SetDistanceToNearestTransitStop(d float64) { c.nearestStop = d }

func (c *vertexCore) RemoveTemporaryEdges() int {
	if c.g != nil {
		c.g.mu.Lock()
		defer c.g.mu.Unlock()
	}
	n := 0
	for _, e := range append([]*Edge{}, c.out...) {
		if e.temporary {
			e.detach()
			n++
		}
	}
	for _, e := range append([]*Edge{}, c.in...) {
		if e.temporary {
			e.detach()
			n++
		}
	}
	return n
}

// TransitStop is a scheduled-transit boarding point.
type TransitStop struct {
	vertexCore
	wheelchairBoarding bool
}

func NewTransitStop(label string, p orb.Point, wheelchairBoarding bool) *TransitStop {
	return &TransitStop{
		vertexCore:         vertexCore{label: label, point: p, nearestStop: 0},
		wheelchairBoarding: wheelchairBoarding,
	}
}

func (s *TransitStop) WheelchairAccessible() bool { return s.wheelchairBoarding }

// StreetLocation is an ad-hoc point on the street network, synthesized for a
// free-coordinate endpoint and linked to its snap target with temporary
// edges.
type StreetLocation struct {
	vertexCore
	accessible bool
}

func NewStreetLocation(label string, p orb.Point, accessible bool) *StreetLocation {
	return &StreetLocation{
		vertexCore: vertexCore{label: label, point: p, nearestStop: math.Inf(1)},
		accessible: accessible,
	}
}

func (s *StreetLocation) Temporary() bool            { return true }
func (s *StreetLocation) WheelchairAccessible() bool { return s.accessible }

// Intersection is a plain street-network node.
type Intersection struct {
	vertexCore
}

func NewIntersection(label string, p orb.Point) *Intersection {
	return &Intersection{vertexCore: vertexCore{label: label, point: p, nearestStop: math.Inf(1)}}
}

package journey

import (
	"time"

	"github.com/urbanmove/journeyquery/journey/calendar"
	"github.com/urbanmove/journeyquery/journey/graph"
)

// Network is the graph surface this core consumes. *graph.Graph implements
// it; other storage backends can as well.
type Network interface {
	// VertexForPlace resolves a place descriptor, synthesizing temporary
	// vertices/edges for free coordinates. relativeTo carries the already
	// resolved counterpart endpoint. Returns nil when nothing resolves.
	VertexForPlace(spec graph.LookupSpec, relativeTo graph.Vertex) graph.Vertex
	Agencies() []string
	// TransferTable may be empty but never nil.
	TransferTable() *graph.TransferTable
	// CalendarData is nil when the graph carries no service calendar.
	CalendarData() *calendar.Data
	CoversInstant(instant int64) bool
	Timezone() *time.Location
}

var _ Network = (*graph.Graph)(nil)

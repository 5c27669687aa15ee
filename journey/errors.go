package journey

import (
	"fmt"
	"strings"
)

// EndpointsNotFoundError aggregates every endpoint that failed to resolve to
// a graph vertex, so a caller sees all bad inputs at once. Labels are
// "from", "to" and "intermediate.<i>".
type EndpointsNotFoundError struct {
	Labels []string
}

func (e *EndpointsNotFoundError) Error() string {
	return fmt.Sprintf("vertex not found: %s", strings.Join(e.Labels, ", "))
}

// TransitCoverageError means transit-eligible modes were requested for an
// instant outside the calendar's coverage window.
type TransitCoverageError struct {
	Instant int64
}

func (e *TransitCoverageError) Error() string {
	return fmt.Sprintf("transit requested but instant %d is outside the covered date range", e.Instant)
}

package graph

const (
	// Snap radius for free-coordinate endpoints (m).
	DEFAULT_SNAP_DISTANCE = 500.0

	// Search radius when precomputing the distance from a vertex to the
	// nearest transit stop (m). Vertices with no stop inside it get +Inf.
	MAX_STOP_SEARCH_DISTANCE = 3000.0

	// Meters per degree of latitude, used to size rtree query boxes.
	METERS_PER_DEGREE = 111320.0
)

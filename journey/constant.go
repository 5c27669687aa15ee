package journey

import "errors"

const (
	// Seconds per nominal day, used to find the yesterday/today/tomorrow
	// service windows. DST-shifted days are handled by deduplication, not
	// by adjusting this constant.
	SEC_IN_DAY = 24 * 60 * 60

	// Default walking speed ceiling (m/s).
	PERSON_SPEED = 1.1

	// Fastest plausible vehicle speed in the network (m/s), used as the
	// optimistic transit speed in remaining-cost lower bounds.
	MAX_TRANSIT_SPEED = 120 / 3.6

	// Margin of the elapsed-time prune: branches whose optimistic elapsed
	// time exceeds a known solution's by more than this factor are cut.
	TIME_RATIO_BOUND = 1.5
)

var (
	// A place needs either a vertex label or a coordinate.
	ErrEmptyPlace = errors.New("place needs a vertex label or a coordinate")
)

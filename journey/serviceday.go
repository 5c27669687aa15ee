package journey

import (
	"fmt"
	"time"

	"github.com/urbanmove/journeyquery/journey/calendar"
)

// ServiceDay caches which of one operator's services run on one
// midnight-to-midnight window. Day-window construction is hit at every
// transit boarding, so a search computes its three windows once up front
// instead of redoing the date arithmetic per boarding.
type ServiceDay struct {
	Agency string

	date       calendar.Date
	start, end int64
	running    map[calendar.ServiceID]struct{}
}

// NewServiceDay builds the window of the day containing instant in the
// agency's local time zone. On DST transition days the window is 23 or 25
// hours long.
func NewServiceDay(instant int64, cs *calendar.Service, agency string) ServiceDay {
	loc := cs.Timezone(agency)
	date := calendar.DateOf(time.Unix(instant, 0).In(loc))
	running := make(map[calendar.ServiceID]struct{})
	for _, id := range cs.ServicesOn(agency, date) {
		running[id] = struct{}{}
	}
	return ServiceDay{
		Agency:  agency,
		date:    date,
		start:   date.Time(loc).Unix(),
		end:     date.AddDays(1).Time(loc).Unix(),
		running: running,
	}
}

// Equal is identity by (operator, window); the cached service set is
// derived from those.
func (sd ServiceDay) Equal(o ServiceDay) bool {
	return sd.Agency == o.Agency && sd.start == o.start && sd.end == o.end
}

// Runs reports whether the service runs on this day.
func (sd ServiceDay) Runs(id calendar.ServiceID) bool {
	_, ok := sd.running[id]
	return ok
}

func (sd ServiceDay) Date() calendar.Date { return sd.date }

// Window returns the [start, end) epoch-second bounds of the day.
func (sd ServiceDay) Window() (start, end int64) { return sd.start, sd.end }

// SecondsSinceMidnight converts an epoch instant to seconds after this
// day's first instant; negative before the window.
func (sd ServiceDay) SecondsSinceMidnight(instant int64) int64 {
	return instant - sd.start
}

func (sd ServiceDay) String() string {
	return fmt.Sprintf("%s/%s [%d services]", sd.Agency, sd.date, len(sd.running))
}

package calendar

import (
	"fmt"
	"time"
)

// ServiceID identifies one scheduled service (a set of trips that run on the
// same calendar dates) within an operator's feed.
type ServiceID string

// Date is a calendar day without a time zone. Comparisons are value
// comparisons; converting to an instant requires an operator time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar day containing t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns local midnight at the start of the date in loc.
// Midnight here means the first instant of the day, which on DST
// transition days is not always 00:00 wall clock plus 24h from the
// previous one.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

type serviceEntry struct {
	agency string
	dates  map[Date]struct{}
}

// Data is the static service calendar: which dates every service runs on,
// which operator owns it, and per-operator time zones. It is built once when
// the graph is loaded and treated as immutable afterwards.
type Data struct {
	services  map[ServiceID]*serviceEntry
	timezones map[string]*time.Location

	// coverage window, maintained incrementally by AddService
	first, last Date
	hasDates    bool
}

func NewData() *Data {
	return &Data{
		services:  make(map[ServiceID]*serviceEntry),
		timezones: make(map[string]*time.Location),
	}
}

// AddService records that service id of the given agency runs on dates.
// Repeated calls for the same id merge the date sets.
func (d *Data) AddService(id ServiceID, agency string, dates ...Date) {
	e, ok := d.services[id]
	if !ok {
		e = &serviceEntry{agency: agency, dates: make(map[Date]struct{})}
		d.services[id] = e
	}
	for _, date := range dates {
		e.dates[date] = struct{}{}
		if !d.hasDates {
			d.first, d.last = date, date
			d.hasDates = true
			continue
		}
		if date.Before(d.first) {
			d.first = date
		}
		if date.After(d.last) {
			d.last = date
		}
	}
}

// SetTimezone sets the operator's local time zone, used to find the
// midnight-to-midnight window of a service day.
func (d *Data) SetTimezone(agency string, loc *time.Location) {
	d.timezones[agency] = loc
}

// Coverage returns the first and last date with any active service.
// ok is false when the calendar is empty.
func (d *Data) Coverage() (first, last Date, ok bool) {
	return d.first, d.last, d.hasDates
}

// Service is the query handle over calendar Data, analogous to the
// transfer table: cheap to construct per search, stateless itself.
type Service struct {
	data *Data
}

func NewService(data *Data) *Service {
	return &Service{data: data}
}

// ActiveDatesFor returns the full set of dates on which the service runs.
// The returned map is shared; callers must not modify it.
func (s *Service) ActiveDatesFor(id ServiceID) map[Date]struct{} {
	if e, ok := s.data.services[id]; ok {
		return e.dates
	}
	return nil
}

// ServicesOn returns the ids of the agency's services active on date.
func (s *Service) ServicesOn(agency string, date Date) []ServiceID {
	ids := make([]ServiceID, 0)
	for id, e := range s.data.services {
		if e.agency != agency {
			continue
		}
		if _, ok := e.dates[date]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Timezone returns the agency's local time zone, falling back to UTC when
// the feed did not declare one.
func (s *Service) Timezone(agency string) *time.Location {
	if loc, ok := s.data.timezones[agency]; ok {
		return loc
	}
	return time.UTC
}

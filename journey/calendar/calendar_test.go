package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/urbanmove/journeyquery/journey/calendar"
)

func TestDate(t *testing.T) {
	d := calendar.NewDate(2024, time.March, 5)
	assert.Equal(t, "20240305", d.String())
	assert.Equal(t, calendar.NewDate(2024, time.March, 6), d.AddDays(1))
	assert.Equal(t, calendar.NewDate(2024, time.February, 29), d.AddDays(-5))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))

	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)
	midnight := d.Time(loc)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, d, calendar.DateOf(midnight))
	assert.Equal(t, d, calendar.DateOf(midnight.Add(23*time.Hour)))
}

func TestDataAndService(t *testing.T) {
	data := calendar.NewData()
	mon := calendar.NewDate(2024, time.June, 3)
	tue := mon.AddDays(1)
	data.AddService("wk", "metro", mon, tue)
	data.AddService("sat", "metro", calendar.NewDate(2024, time.June, 8))
	data.AddService("ferry-1", "ferry", mon)

	first, last, ok := data.Coverage()
	assert.True(t, ok)
	assert.Equal(t, mon, first)
	assert.Equal(t, calendar.NewDate(2024, time.June, 8), last)

	cs := calendar.NewService(data)
	dates := cs.ActiveDatesFor("wk")
	assert.Len(t, dates, 2)
	assert.Contains(t, dates, mon)
	assert.Nil(t, cs.ActiveDatesFor("missing"))

	assert.ElementsMatch(t, []calendar.ServiceID{"wk"}, cs.ServicesOn("metro", tue))
	assert.ElementsMatch(t, []calendar.ServiceID{"wk"}, cs.ServicesOn("metro", mon))
	assert.ElementsMatch(t, []calendar.ServiceID{"ferry-1"}, cs.ServicesOn("ferry", mon))
	assert.Empty(t, cs.ServicesOn("metro", mon.AddDays(10)))
}

func TestEmptyCoverage(t *testing.T) {
	data := calendar.NewData()
	_, _, ok := data.Coverage()
	assert.False(t, ok)
}

func TestTimezoneFallback(t *testing.T) {
	data := calendar.NewData()
	loc, _ := time.LoadLocation("America/New_York")
	data.SetTimezone("mta", loc)
	cs := calendar.NewService(data)
	assert.Equal(t, loc, cs.Timezone("mta"))
	assert.Equal(t, time.UTC, cs.Timezone("unknown"))
}

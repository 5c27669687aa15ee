package journey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/urbanmove/journeyquery/journey"
	"github.com/urbanmove/journeyquery/journey/calendar"
)

func newCalendarService() *calendar.Service {
	data := calendar.NewData()
	data.SetTimezone("metro", berlin)
	data.AddService("m-wk", "metro",
		calendar.NewDate(2024, time.June, 3),
		calendar.NewDate(2025, time.March, 30),
		calendar.NewDate(2025, time.October, 26))
	return calendar.NewService(data)
}

func TestServiceDayWindow(t *testing.T) {
	cs := newCalendarService()
	instant := time.Date(2024, time.June, 3, 15, 30, 0, 0, berlin).Unix()
	sd := journey.NewServiceDay(instant, cs, "metro")

	assert.Equal(t, "metro", sd.Agency)
	assert.Equal(t, calendar.NewDate(2024, time.June, 3), sd.Date())
	start, end := sd.Window()
	assert.Equal(t, int64(86400), end-start)
	assert.Equal(t, int64(15*3600+30*60), sd.SecondsSinceMidnight(instant))
	assert.True(t, sd.Runs("m-wk"))
	assert.False(t, sd.Runs("other"))
}

func TestServiceDayDSTWindows(t *testing.T) {
	cs := newCalendarService()

	// spring forward: 23 hour day
	short := journey.NewServiceDay(
		time.Date(2025, time.March, 30, 12, 0, 0, 0, berlin).Unix(), cs, "metro")
	start, end := short.Window()
	assert.Equal(t, int64(23*3600), end-start)
	assert.True(t, short.Runs("m-wk"))

	// fall back: 25 hour day
	long := journey.NewServiceDay(
		time.Date(2025, time.October, 26, 12, 0, 0, 0, berlin).Unix(), cs, "metro")
	start, end = long.Window()
	assert.Equal(t, int64(25*3600), end-start)
}

func TestServiceDayEquality(t *testing.T) {
	cs := newCalendarService()
	morning := time.Date(2024, time.June, 3, 8, 0, 0, 0, berlin).Unix()
	evening := time.Date(2024, time.June, 3, 22, 0, 0, 0, berlin).Unix()
	nextDay := time.Date(2024, time.June, 4, 8, 0, 0, 0, berlin).Unix()

	a := journey.NewServiceDay(morning, cs, "metro")
	b := journey.NewServiceDay(evening, cs, "metro")
	c := journey.NewServiceDay(nextDay, cs, "metro")
	d := journey.NewServiceDay(morning, cs, "tram")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

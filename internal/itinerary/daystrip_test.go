package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/trip-itinerary/pkg/dateutil"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func stripDays(from, to time.Time) []time.Time {
	return dateutil.EnumerateDays(from, to)
}

func findCell(t *testing.T, cells []DayCell, date time.Time) DayCell {
	t.Helper()
	for _, c := range cells {
		if dateutil.IsSameDay(c.Date, date) {
			return c
		}
	}
	t.Fatalf("no cell for %s", date.Format("2006-01-02"))
	return DayCell{}
}

func TestDayStripStayExcludesCheckoutDay(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{
				ID:       "2",
				Name:     "Hotel Gracery",
				CheckIn:  time.Date(2025, 5, 1, 15, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 5, 4, 11, 0, 0, 0, time.UTC),
			},
		},
	}

	cells := ComputeDayStrip(stripDays(day(2025, 5, 1), day(2025, 5, 5)), e)

	d1 := findCell(t, cells, day(2025, 5, 1))
	require.Len(t, d1.Accommodations, 1)
	assert.Equal(t, SpanStart, d1.Accommodations[0].Status)
	assert.Equal(t, 3, d1.Accommodations[0].Duration)

	d2 := findCell(t, cells, day(2025, 5, 2))
	require.Len(t, d2.Accommodations, 1)
	assert.Equal(t, SpanMiddle, d2.Accommodations[0].Status)

	d3 := findCell(t, cells, day(2025, 5, 3))
	require.Len(t, d3.Accommodations, 1)
	assert.Equal(t, SpanEnd, d3.Accommodations[0].Status)

	d4 := findCell(t, cells, day(2025, 5, 4))
	assert.Empty(t, d4.Accommodations)
}

func TestDayStripOneNightStayIsSingle(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "3", Name: "Ryokan", CheckIn: day(2025, 5, 6), CheckOut: day(2025, 5, 7)},
		},
	}

	cells := ComputeDayStrip(stripDays(day(2025, 5, 6), day(2025, 5, 7)), e)

	d6 := findCell(t, cells, day(2025, 5, 6))
	require.Len(t, d6.Accommodations, 1)
	assert.Equal(t, SpanSingle, d6.Accommodations[0].Status)
	assert.Equal(t, 1, d6.Accommodations[0].Duration)

	d7 := findCell(t, cells, day(2025, 5, 7))
	assert.Empty(t, d7.Accommodations)
}

func TestDayStripPassIncludesEndDay(t *testing.T) {
	e := &Entities{
		Passes: []PassSpan{
			{ID: "10", Name: "JR Pass", Start: day(2025, 5, 1), End: day(2025, 5, 3)},
		},
	}

	cells := ComputeDayStrip(stripDays(day(2025, 5, 1), day(2025, 5, 4)), e)

	d1 := findCell(t, cells, day(2025, 5, 1))
	require.Len(t, d1.Passes, 1)
	assert.Equal(t, SpanStart, d1.Passes[0].Status)
	assert.Equal(t, 3, d1.Passes[0].Duration)

	d3 := findCell(t, cells, day(2025, 5, 3))
	require.Len(t, d3.Passes, 1)
	assert.Equal(t, SpanEnd, d3.Passes[0].Status)

	d4 := findCell(t, cells, day(2025, 5, 4))
	assert.Empty(t, d4.Passes)
}

func TestDayStripSingleDayDestination(t *testing.T) {
	e := &Entities{
		Destinations: []DestinationSpan{
			{ID: "dest-Nara-0", City: "Nara", Start: day(2025, 5, 9), End: day(2025, 5, 9)},
		},
	}

	cells := ComputeDayStrip(stripDays(day(2025, 5, 8), day(2025, 5, 10)), e)

	d9 := findCell(t, cells, day(2025, 5, 9))
	require.Len(t, d9.Destinations, 1)
	assert.Equal(t, SpanSingle, d9.Destinations[0].Status)
	assert.Equal(t, 0, d9.Destinations[0].Duration)

	assert.Empty(t, findCell(t, cells, day(2025, 5, 8)).Destinations)
	assert.Empty(t, findCell(t, cells, day(2025, 5, 10)).Destinations)
}

func TestDayStripFlightOnDepartureDayOnly(t *testing.T) {
	e := &Entities{
		Flights: []FlightEvent{
			{
				ID:        "flight-7-leg-1",
				Airline:   "Qatar",
				Departure: time.Date(2025, 5, 1, 21, 0, 0, 0, time.UTC),
				Arrival:   time.Date(2025, 5, 2, 14, 0, 0, 0, time.UTC),
				Leg:       true,
			},
		},
	}

	cells := ComputeDayStrip(stripDays(day(2025, 5, 1), day(2025, 5, 2)), e)

	d1 := findCell(t, cells, day(2025, 5, 1))
	require.Len(t, d1.Flights, 1)
	assert.Equal(t, "Qatar", d1.Flights[0].Title)

	d2 := findCell(t, cells, day(2025, 5, 2))
	assert.Empty(t, d2.Flights)
}

func TestDayStripFlightTitleFallback(t *testing.T) {
	e := &Entities{
		Flights: []FlightEvent{
			{ID: "flight-3", Departure: day(2025, 5, 10)},
		},
	}

	cells := ComputeDayStrip(stripDays(day(2025, 5, 10), day(2025, 5, 10)), e)

	require.Len(t, cells[0].Flights, 1)
	assert.Equal(t, "Vuelo", cells[0].Flights[0].Title)
}

func TestDayStripEmptyEntities(t *testing.T) {
	cells := ComputeDayStrip(stripDays(day(2025, 5, 1), day(2025, 5, 3)), &Entities{})

	require.Len(t, cells, 3)
	for _, c := range cells {
		assert.NotNil(t, c.Accommodations)
		assert.Empty(t, c.Accommodations)
		assert.NotNil(t, c.Passes)
		assert.NotNil(t, c.Flights)
		assert.NotNil(t, c.Destinations)
		assert.NotNil(t, c.Activities)
	}
}

func TestDayStripIsIdempotent(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "2", Name: "Hotel", CheckIn: day(2025, 5, 1), CheckOut: day(2025, 5, 4)},
		},
		Passes: []PassSpan{
			{ID: "10", Name: "JR Pass", Start: day(2025, 5, 1), End: day(2025, 5, 3)},
		},
	}
	days := stripDays(day(2025, 5, 1), day(2025, 5, 5))

	a := ComputeDayStrip(days, e)
	b := ComputeDayStrip(days, e)

	assert.Equal(t, a, b)
}

package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayDetailCheckoutBeforeCheckinInGroup(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "20", Name: "Hotel Kioto", CheckIn: time.Date(2025, 5, 4, 15, 0, 0, 0, time.UTC), CheckOut: time.Date(2025, 5, 8, 11, 0, 0, 0, time.UTC)},
			{ID: "19", Name: "Hotel Tokyo", CheckIn: time.Date(2025, 5, 1, 15, 0, 0, 0, time.UTC), CheckOut: time.Date(2025, 5, 4, 11, 0, 0, 0, time.UTC)},
		},
	}

	events := ComputeDayDetail(day(2025, 5, 4), e)

	require.Len(t, events, 1)
	group := events[0]
	assert.Equal(t, EventTransitionGroup, group.Type)
	assert.Equal(t, "Alojamiento", group.Title)

	require.Len(t, group.Items, 2)
	assert.Equal(t, EventCheckOut, group.Items[0].Type)
	assert.Equal(t, "acc-out-19", group.Items[0].ID)
	assert.Equal(t, EventCheckIn, group.Items[1].Type)
	assert.Equal(t, "acc-in-20", group.Items[1].ID)

	// The group inherits the first member's timestamp.
	assert.Equal(t, group.Items[0].Date, group.Date)
}

func TestDayDetailOvernightOnlyOnInteriorDays(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "5", Name: "Ryokan Nara", City: "Nara", CheckIn: day(2025, 6, 1), CheckOut: day(2025, 6, 6)},
		},
	}

	hasOvernight := func(d time.Time) bool {
		for _, ev := range ComputeDayDetail(d, e) {
			if ev.Type == EventStayNight {
				return true
			}
		}
		return false
	}

	assert.False(t, hasOvernight(day(2025, 6, 1)), "check-in day")
	assert.True(t, hasOvernight(day(2025, 6, 2)))
	assert.True(t, hasOvernight(day(2025, 6, 3)))
	assert.True(t, hasOvernight(day(2025, 6, 4)))
	assert.True(t, hasOvernight(day(2025, 6, 5)), "last night before checkout")
	assert.False(t, hasOvernight(day(2025, 6, 6)), "checkout day")
}

func TestDayDetailOvernightRow(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "5", Name: "Ryokan Nara", City: "Nara", CheckIn: day(2025, 6, 1), CheckOut: day(2025, 6, 6)},
		},
	}

	events := ComputeDayDetail(day(2025, 6, 3), e)

	require.Len(t, events, 1)
	assert.Equal(t, "acc-stay-5", events[0].ID)
	assert.Equal(t, "Noche en Ryokan Nara", events[0].Title)
	assert.Equal(t, "Nara", events[0].Subtitle)
	assert.True(t, events[0].Sticky)
}

func TestDayDetailOneNightStayHasNoOvernight(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "6", Name: "Capsule", CheckIn: day(2025, 6, 10), CheckOut: day(2025, 6, 11)},
		},
	}

	for d := 10; d <= 11; d++ {
		for _, ev := range ComputeDayDetail(day(2025, 6, d), e) {
			assert.NotEqual(t, EventStayNight, ev.Type)
		}
	}
}

func TestDayDetailOrdering(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "5", Name: "Ryokan", City: "Nara", CheckIn: day(2025, 6, 1), CheckOut: day(2025, 6, 6)},
		},
		Passes: []PassSpan{
			{ID: "10", Name: "JR Pass", Start: day(2025, 6, 1), End: day(2025, 6, 7)},
		},
		Flights: []FlightEvent{
			{ID: "flight-2", Airline: "Peach", Departure: time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)},
		},
		Timeline: []TimelineItem{
			{ID: "activity-4", Kind: KindActivity, Title: "Todai-ji", Time: time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC)},
		},
		Expenses: []TimelineItem{
			{ID: "expense-8", Kind: KindExpense, Title: "Ramen", Time: time.Date(2025, 6, 3, 13, 0, 0, 0, time.UTC)},
		},
	}

	events := ComputeDayDetail(day(2025, 6, 3), e)

	require.Len(t, events, 5)
	assert.Equal(t, EventStayNight, events[0].Type)
	// No transitions today, so no group node; undated rows come next.
	assert.Equal(t, EventPassActive, events[1].Type)
	assert.Equal(t, EventFlight, events[2].Type)
	assert.Equal(t, "activity-4", events[3].ID)
	assert.Equal(t, "expense-8", events[4].ID)
}

func TestDayDetailTimedRowsAscending(t *testing.T) {
	e := &Entities{
		Timeline: []TimelineItem{
			{ID: "transport-1-leg-0", Kind: KindTransport, Title: "Tokyo ➝ Kioto", Time: time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)},
			{ID: "activity-4", Kind: KindActivity, Title: "Mercado", Time: time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)},
		},
		Tasks: []TimelineItem{
			{ID: "task-2", Kind: KindTask, Title: "Recoger pases", Subtitle: "Tarea", Time: time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)},
		},
	}

	events := ComputeDayDetail(day(2025, 6, 3), e)

	require.Len(t, events, 3)
	assert.Equal(t, "activity-4", events[0].ID)
	assert.Equal(t, "task-2", events[1].ID)
	assert.Equal(t, "transport-1-leg-0", events[2].ID)
}

func TestDayDetailFlightRow(t *testing.T) {
	e := &Entities{
		Flights: []FlightEvent{
			{
				ID:          "flight-7-leg-1",
				Airline:     "Qatar",
				Origin:      "DOH",
				Destination: "NRT",
				Departure:   time.Date(2025, 5, 1, 21, 0, 0, 0, time.UTC),
				Arrival:     time.Date(2025, 5, 2, 14, 0, 0, 0, time.UTC),
				Leg:         true,
			},
		},
	}

	events := ComputeDayDetail(day(2025, 5, 1), e)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "DOH ➝ NRT", ev.Title)
	assert.Equal(t, "Qatar", ev.Subtitle)
	assert.Equal(t, "21:00 - 14:00", ev.Time)
	assert.Equal(t, "+1", ev.DayDiff)
	assert.True(t, ev.Date.IsZero())
}

func TestDayDetailSingleFlightRow(t *testing.T) {
	e := &Entities{
		Flights: []FlightEvent{
			{ID: "flight-3", Departure: time.Date(2025, 5, 10, 8, 30, 0, 0, time.UTC)},
		},
	}

	events := ComputeDayDetail(day(2025, 5, 10), e)

	require.Len(t, events, 1)
	assert.Equal(t, "Vuelo", events[0].Title)
	assert.Equal(t, "? ➝ ?", events[0].Subtitle)
	assert.Equal(t, "08:30", events[0].Time)
	assert.Empty(t, events[0].DayDiff)
}

func TestDayDetailPassValiditySubtitle(t *testing.T) {
	e := &Entities{
		Passes: []PassSpan{
			{ID: "10", Name: "JR Pass", Start: day(2025, 5, 1), End: day(2025, 5, 7)},
		},
	}

	events := ComputeDayDetail(day(2025, 5, 4), e)

	require.Len(t, events, 1)
	assert.Equal(t, "pass-active-10", events[0].ID)
	assert.Equal(t, "Pase activo: JR Pass", events[0].Title)
	assert.Equal(t, "Válido hasta 07 may", events[0].Subtitle)
	assert.True(t, events[0].Sticky)

	assert.Empty(t, ComputeDayDetail(day(2025, 5, 8), e))
}

func TestDayDetailEmptyDay(t *testing.T) {
	events := ComputeDayDetail(day(2025, 5, 1), &Entities{})
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestDayDetailIsIdempotent(t *testing.T) {
	e := &Entities{
		Stays: []StaySpan{
			{ID: "19", Name: "Hotel Tokyo", CheckIn: day(2025, 5, 1), CheckOut: day(2025, 5, 4)},
			{ID: "20", Name: "Hotel Kioto", CheckIn: day(2025, 5, 4), CheckOut: day(2025, 5, 8)},
		},
		Passes: []PassSpan{
			{ID: "10", Name: "JR Pass", Start: day(2025, 5, 1), End: day(2025, 5, 7)},
		},
	}

	a := ComputeDayDetail(day(2025, 5, 4), e)
	b := ComputeDayDetail(day(2025, 5, 4), e)

	assert.Equal(t, a, b)
}

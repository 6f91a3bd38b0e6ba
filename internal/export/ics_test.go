package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/username/trip-itinerary/internal/itinerary"
	"github.com/username/trip-itinerary/internal/trip"
)

func TestCalendarSerializesTrip(t *testing.T) {
	tr := trip.Trip{ID: "1", Name: "Japón 2025"}
	ent := &itinerary.Entities{
		Flights: []itinerary.FlightEvent{
			{
				ID:          "flight-7-leg-0",
				Airline:     "Qatar",
				Origin:      "MAD",
				Destination: "DOH",
				Departure:   time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
				Arrival:     time.Date(2025, 5, 1, 19, 0, 0, 0, time.UTC),
				Leg:         true,
			},
		},
		Stays: []itinerary.StaySpan{
			{ID: "2", Name: "Hotel Gracery", City: "Tokyo",
				CheckIn:  time.Date(2025, 5, 1, 15, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 5, 4, 11, 0, 0, 0, time.UTC)},
		},
		Passes: []itinerary.PassSpan{
			{ID: "10", Name: "JR Pass",
				Start: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC)},
		},
	}

	out := NewExporter(zap.NewNop()).Calendar(tr, ent)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "UID:flight-7-leg-0@trip-itinerary")
	assert.Contains(t, out, "SUMMARY:Qatar: MAD ➝ DOH")
	assert.Contains(t, out, "SUMMARY:Hotel Gracery")
	assert.Contains(t, out, "LOCATION:Tokyo")
	// The pass's inclusive end becomes an exclusive all-day DTEND.
	assert.Contains(t, out, "20250508")
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
}

func TestCalendarEmptyTrip(t *testing.T) {
	out := NewExporter(nil).Calendar(trip.Trip{Name: "Vacío"}, &itinerary.Entities{})

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}

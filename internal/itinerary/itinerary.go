package itinerary

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/trip-itinerary/internal/trip"
	"github.com/username/trip-itinerary/pkg/dateutil"
)

// defaultTripLength is the assumed duration when a trip has no end date.
const defaultTripLength = 14

// Itinerary owns one trip snapshot, its normalized entities and the
// selected-day cursor. It is the single entry point the commands talk to.
type Itinerary struct {
	data     *trip.Data
	entities *Entities
	selected time.Time
	logger   *zap.Logger
}

// New normalizes the snapshot once and positions the cursor on the trip's
// first day.
func New(data *trip.Data, logger *zap.Logger) (*Itinerary, error) {
	if data == nil {
		return nil, fmt.Errorf("trip data is nil")
	}
	if data.Trip.StartDate.IsZero() {
		return nil, fmt.Errorf("trip %s has no start date", data.Trip.ID)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	it := &Itinerary{
		data:     data,
		entities: Normalize(data, logger),
		selected: dateutil.StartOfDay(data.Trip.StartDate.Time),
		logger:   logger,
	}

	logger.Info("Itinerary initialized",
		zap.String("trip_id", data.Trip.ID.String()),
		zap.String("trip", data.Trip.Name),
		zap.Int("days", len(it.TripDays())))

	return it, nil
}

// Trip returns the raw trip record.
func (it *Itinerary) Trip() trip.Trip {
	return it.data.Trip
}

// Entities exposes the normalized snapshot for export and rendering.
func (it *Itinerary) Entities() *Entities {
	return it.entities
}

// Expenses returns the raw expense records, amounts included, for the
// spending history view.
func (it *Itinerary) Expenses() []trip.Expense {
	return it.data.Expenses
}

// TripDays returns the trip's day axis, start through end inclusive. A
// missing or inverted end date falls back to two weeks after the start.
func (it *Itinerary) TripDays() []time.Time {
	start := it.data.Trip.StartDate.Time
	end := it.data.Trip.EndDate.Time
	if it.data.Trip.EndDate.IsZero() || dateutil.DaysBetween(start, end) < 0 {
		end = start.AddDate(0, 0, defaultTripLength)
	}
	return dateutil.EnumerateDays(start, end)
}

// SelectDate moves the cursor. Dates outside the trip range are accepted;
// the views simply come back empty for them.
func (it *Itinerary) SelectDate(date time.Time) {
	it.selected = dateutil.StartOfDay(date)
	it.logger.Debug("Selected day changed",
		zap.String("date", it.selected.Format("2006-01-02")))
}

// SelectedDate returns the current cursor position.
func (it *Itinerary) SelectedDate() time.Time {
	return it.selected
}

// DayStrip lays every normalized entity over the trip's day axis.
func (it *Itinerary) DayStrip() []DayCell {
	return ComputeDayStrip(it.TripDays(), it.entities)
}

// DayDetail returns the ordered event list for the selected day.
func (it *Itinerary) DayDetail() []Event {
	return ComputeDayDetail(it.selected, it.entities)
}

// DayDetailFor returns the ordered event list for an arbitrary day without
// moving the cursor.
func (it *Itinerary) DayDetailFor(date time.Time) []Event {
	return ComputeDayDetail(date, it.entities)
}

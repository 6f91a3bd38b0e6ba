package itinerary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/username/trip-itinerary/internal/trip"
	"github.com/username/trip-itinerary/pkg/currency"
	"github.com/username/trip-itinerary/pkg/dateutil"
)

// Normalize converts the raw sub-record collections into the canonical
// shapes the layout engines understand. Records missing a required date are
// excluded with a debug log, never an error; spans whose end precedes their
// start are dropped the same way (no upstream validation guarantees
// ordering).
func Normalize(data *trip.Data, logger *zap.Logger) *Entities {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Entities{
		Flights:      normalizeFlights(data.Flights, logger),
		Stays:        normalizeStays(data.Stays, logger),
		Passes:       normalizePasses(data.Transports, logger),
		Destinations: normalizeDestinations(data.Trip.Destinations, logger),
		Timeline:     normalizeTimeline(data.Transports, data.Activities, logger),
		Tasks:        normalizeTasks(data.Tasks, logger),
		Expenses:     normalizeExpenses(data.Expenses, logger),
	}

	logger.Debug("Trip entities normalized",
		zap.Int("flights", len(e.Flights)),
		zap.Int("stays", len(e.Stays)),
		zap.Int("passes", len(e.Passes)),
		zap.Int("destinations", len(e.Destinations)),
		zap.Int("timeline", len(e.Timeline)),
		zap.Int("tasks", len(e.Tasks)),
		zap.Int("expenses", len(e.Expenses)))

	return e
}

// normalizeFlights expands multi-leg flights into one event per leg. A
// flight with legs contributes nothing from its own date fields.
func normalizeFlights(flights []trip.Flight, logger *zap.Logger) []FlightEvent {
	out := make([]FlightEvent, 0, len(flights))

	for _, f := range flights {
		if len(f.Legs) > 0 {
			for i, leg := range f.Legs {
				if leg.Departure.IsZero() {
					logger.Debug("Skipping flight leg without departure",
						zap.String("flight", f.ID.String()),
						zap.Int("leg", i))
					continue
				}
				out = append(out, FlightEvent{
					ID:          fmt.Sprintf("flight-%s-leg-%d", f.ID, i),
					Airline:     leg.Airline,
					Origin:      leg.Origin,
					Destination: leg.Destination,
					Departure:   leg.Departure.Time,
					Arrival:     leg.Arrival.Time,
					Leg:         true,
				})
			}
			continue
		}

		if f.Departure.IsZero() {
			logger.Debug("Skipping flight without departure",
				zap.String("flight", f.ID.String()))
			continue
		}
		out = append(out, FlightEvent{
			ID:          fmt.Sprintf("flight-%s", f.ID),
			Airline:     f.Airline,
			Origin:      f.Origin,
			Destination: f.Destination,
			Departure:   f.Departure.Time,
			Arrival:     f.Arrival.Time,
		})
	}

	return out
}

func normalizeStays(stays []trip.Stay, logger *zap.Logger) []StaySpan {
	out := make([]StaySpan, 0, len(stays))

	for _, s := range stays {
		if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
			logger.Debug("Skipping stay without check-in/check-out",
				zap.String("stay", s.ID.String()))
			continue
		}
		if dateutil.DaysBetween(s.CheckIn.Time, s.CheckOut.Time) < 0 {
			logger.Debug("Skipping stay with inverted date range",
				zap.String("stay", s.ID.String()))
			continue
		}
		out = append(out, StaySpan{
			ID:       s.ID.String(),
			Name:     s.Name,
			City:     s.City,
			CheckIn:  s.CheckIn.Time,
			CheckOut: s.CheckOut.Time,
		})
	}

	return out
}

func normalizePasses(transports []trip.Transport, logger *zap.Logger) []PassSpan {
	out := make([]PassSpan, 0)

	for _, t := range transports {
		if t.Category != trip.CategoryPass {
			continue
		}
		if t.StartDate.IsZero() || t.EndDate.IsZero() {
			logger.Debug("Skipping pass without validity range",
				zap.String("pass", t.ID.String()))
			continue
		}
		if dateutil.DaysBetween(t.StartDate.Time, t.EndDate.Time) < 0 {
			logger.Debug("Skipping pass with inverted date range",
				zap.String("pass", t.ID.String()))
			continue
		}
		out = append(out, PassSpan{
			ID:    t.ID.String(),
			Name:  t.Name,
			Start: t.StartDate.Time,
			End:   t.EndDate.Time,
		})
	}

	return out
}

func normalizeDestinations(destinations []trip.Destination, logger *zap.Logger) []DestinationSpan {
	out := make([]DestinationSpan, 0, len(destinations))

	for _, d := range destinations {
		if d.StartDate.IsZero() || d.EndDate.IsZero() {
			logger.Debug("Skipping destination without date range",
				zap.String("city", d.City))
			continue
		}
		if dateutil.DaysBetween(d.StartDate.Time, d.EndDate.Time) < 0 {
			logger.Debug("Skipping destination with inverted date range",
				zap.String("city", d.City))
			continue
		}
		start := dateutil.StartOfDay(d.StartDate.Time)
		out = append(out, DestinationSpan{
			ID:    fmt.Sprintf("dest-%s-%d", d.City, start.Unix()),
			City:  d.City,
			Start: d.StartDate.Time,
			End:   d.EndDate.Time,
		})
	}

	return out
}

// normalizeTimeline flattens trayecto transport legs and activities into
// point events for the detail view (and the strip's activity markers).
func normalizeTimeline(transports []trip.Transport, activities []trip.Activity, logger *zap.Logger) []TimelineItem {
	out := make([]TimelineItem, 0)

	for _, t := range transports {
		if t.Category != trip.CategoryRoute {
			continue
		}
		for i, leg := range t.Legs {
			if leg.Departure.IsZero() {
				logger.Debug("Skipping transport leg without departure",
					zap.String("transport", t.ID.String()),
					zap.Int("leg", i))
				continue
			}
			out = append(out, TimelineItem{
				ID:       fmt.Sprintf("transport-%s-leg-%d", t.ID, i),
				Kind:     KindTransport,
				Title:    fmt.Sprintf("%s ➝ %s", leg.Origin, leg.Destination),
				Subtitle: leg.Mode,
				Time:     leg.Departure.Time,
			})
		}
	}

	for _, a := range activities {
		if a.Date.IsZero() {
			logger.Debug("Skipping activity without date",
				zap.String("activity", a.ID.String()))
			continue
		}
		out = append(out, TimelineItem{
			ID:       fmt.Sprintf("activity-%s", a.ID),
			Kind:     KindActivity,
			Title:    a.Name,
			Subtitle: a.Type,
			Time:     a.Date.Time,
		})
	}

	return out
}

func normalizeTasks(tasks []trip.Task, logger *zap.Logger) []TimelineItem {
	out := make([]TimelineItem, 0, len(tasks))

	for _, t := range tasks {
		if t.DueDate.IsZero() {
			logger.Debug("Skipping task without due date",
				zap.String("task", t.ID.String()))
			continue
		}
		out = append(out, TimelineItem{
			ID:       fmt.Sprintf("task-%s", t.ID),
			Kind:     KindTask,
			Title:    t.Title,
			Subtitle: "Tarea",
			Time:     t.DueDate.Time,
		})
	}

	return out
}

func normalizeExpenses(expenses []trip.Expense, logger *zap.Logger) []TimelineItem {
	out := make([]TimelineItem, 0, len(expenses))

	for _, ex := range expenses {
		if ex.Date.IsZero() {
			logger.Debug("Skipping expense without date",
				zap.String("expense", ex.ID.String()))
			continue
		}
		out = append(out, TimelineItem{
			ID:       fmt.Sprintf("expense-%s", ex.ID),
			Kind:     KindExpense,
			Title:    ex.Concept,
			Subtitle: fmt.Sprintf("%s • %s", currency.Format(ex.Amount, ex.Currency), ex.Category),
			Time:     ex.Date.Time,
		})
	}

	return out
}

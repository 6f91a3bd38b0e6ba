// Package export serializes a normalized trip into an iCalendar feed so the
// itinerary can be overlaid on any regular calendar client.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/username/trip-itinerary/internal/itinerary"
	"github.com/username/trip-itinerary/internal/trip"
)

// Exporter builds ICS calendars from normalized trip entities.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new Exporter instance
func NewExporter(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

// Calendar renders the whole trip as an ICS calendar. Timed records become
// timed VEVENTs; span records become all-day events with the usual ICS
// exclusive DTEND (a stay's checkout day is already exclusive, pass and
// destination ends gain one day).
func (e *Exporter) Calendar(t trip.Trip, ent *itinerary.Entities) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//trip-itinerary//ES")
	cal.SetXWRCalName(t.Name)

	now := time.Now()

	for _, f := range ent.Flights {
		ev := cal.AddEvent(uid(f.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(f.Departure)
		if !f.Arrival.IsZero() {
			ev.SetEndAt(f.Arrival)
		}
		summary := f.Airline
		if summary == "" {
			summary = "Vuelo"
		}
		if f.Origin != "" || f.Destination != "" {
			summary = fmt.Sprintf("%s: %s ➝ %s", summary, f.Origin, f.Destination)
		}
		ev.SetSummary(summary)
	}

	for _, s := range ent.Stays {
		ev := cal.AddEvent(uid("stay-" + s.ID))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(s.CheckIn)
		ev.SetAllDayEndAt(s.CheckOut)
		ev.SetSummary(s.Name)
		if s.City != "" {
			ev.SetLocation(s.City)
		}
	}

	for _, p := range ent.Passes {
		ev := cal.AddEvent(uid("pass-" + p.ID))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(p.Start)
		ev.SetAllDayEndAt(p.End.AddDate(0, 0, 1))
		ev.SetSummary(p.Name)
	}

	for _, d := range ent.Destinations {
		ev := cal.AddEvent(uid(d.ID))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(d.Start)
		ev.SetAllDayEndAt(d.End.AddDate(0, 0, 1))
		ev.SetSummary(d.City)
	}

	for _, item := range ent.Timeline {
		ev := cal.AddEvent(uid(item.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(item.Time)
		ev.SetSummary(item.Title)
		if item.Subtitle != "" {
			ev.SetDescription(item.Subtitle)
		}
	}

	e.logger.Info("Trip exported to ICS",
		zap.String("trip", t.Name),
		zap.Int("events", len(cal.Events())))

	return cal.Serialize()
}

func uid(id string) string {
	return id + "@trip-itinerary"
}

package itinerary

import (
	"time"

	"github.com/username/trip-itinerary/pkg/dateutil"
)

// SpanMatch is one span entity active on one day cell, classified by its
// position inside the span.
type SpanMatch struct {
	ID         string
	Title      string
	Type       Kind
	Status     SpanStatus
	Duration   int
	Icon       string
	ColorClass string
}

// PointMatch is a point entity (flight departure, activity) on a day cell.
type PointMatch struct {
	ID         string
	Title      string
	Type       Kind
	Icon       string
	ColorClass string
}

// DayCell is one entry of the day-strip: one calendar day with independent
// lists of the entities active on it.
type DayCell struct {
	Date           time.Time
	Accommodations []SpanMatch
	Passes         []SpanMatch
	Flights        []PointMatch
	Destinations   []SpanMatch
	Activities     []PointMatch
}

// ComputeDayStrip lays the normalized entities over the given day axis,
// one DayCell per day. Flights attach to their departure day only; span
// kinds follow their own end-inclusivity rule (see SpanStatus).
func ComputeDayStrip(days []time.Time, e *Entities) []DayCell {
	cells := make([]DayCell, 0, len(days))

	for _, day := range days {
		dayDate := dateutil.StartOfDay(day)
		cell := DayCell{
			Date:           dayDate,
			Accommodations: []SpanMatch{},
			Passes:         []SpanMatch{},
			Flights:        []PointMatch{},
			Destinations:   []SpanMatch{},
			Activities:     []PointMatch{},
		}

		for _, s := range e.Stays {
			start := dateutil.StartOfDay(s.CheckIn)
			end := dateutil.StartOfDay(s.CheckOut)

			// The checkout day is excluded from the bar.
			if dayDate.Before(start) || !dayDate.Before(end) {
				continue
			}

			duration := dateutil.DaysBetween(start, end)
			status := SpanMiddle
			switch {
			case duration == 1:
				status = SpanSingle
			case dateutil.IsSameDay(dayDate, start):
				status = SpanStart
			case dateutil.IsSameDay(dayDate, end.AddDate(0, 0, -1)):
				status = SpanEnd
			}

			cell.Accommodations = append(cell.Accommodations, SpanMatch{
				ID:         s.ID,
				Title:      s.Name,
				Type:       KindStay,
				Status:     status,
				Duration:   duration,
				Icon:       IconBed,
				ColorClass: "bg-slate-800 text-white",
			})
		}

		for _, p := range e.Passes {
			start := dateutil.StartOfDay(p.Start)
			end := dateutil.StartOfDay(p.End)

			if dayDate.Before(start) || dayDate.After(end) {
				continue
			}

			// Passes are inclusive of the end date, so duration is diff + 1.
			duration := dateutil.DaysBetween(start, end) + 1
			status := SpanMiddle
			switch {
			case dateutil.IsSameDay(start, end):
				status = SpanSingle
			case dateutil.IsSameDay(dayDate, start):
				status = SpanStart
			case dateutil.IsSameDay(dayDate, end):
				status = SpanEnd
			}

			cell.Passes = append(cell.Passes, SpanMatch{
				ID:         p.ID,
				Title:      p.Name,
				Type:       KindPass,
				Status:     status,
				Duration:   duration,
				Icon:       IconTicket,
				ColorClass: "bg-green-600 text-white",
			})
		}

		for _, f := range e.Flights {
			if !dateutil.IsSameDay(f.Departure, dayDate) {
				continue
			}
			title := f.Airline
			if title == "" {
				title = "Vuelo"
			}
			cell.Flights = append(cell.Flights, PointMatch{
				ID:    f.ID,
				Title: title,
				Type:  KindFlight,
				Icon:  IconPlane,
			})
		}

		for _, d := range e.Destinations {
			start := dateutil.StartOfDay(d.Start)
			end := dateutil.StartOfDay(d.End)

			if dayDate.Before(start) || dayDate.After(end) {
				continue
			}

			// A same-day destination has duration 0 and renders as single.
			duration := dateutil.DaysBetween(start, end)
			status := SpanMiddle
			switch {
			case duration == 0:
				status = SpanSingle
			case dateutil.IsSameDay(dayDate, start):
				status = SpanStart
			case dateutil.IsSameDay(dayDate, end):
				status = SpanEnd
			}

			cell.Destinations = append(cell.Destinations, SpanMatch{
				ID:         d.ID,
				Title:      d.City,
				Type:       KindDestination,
				Status:     status,
				Duration:   duration,
				Icon:       IconMapPin,
				ColorClass: "bg-emerald-100 text-emerald-800 border-emerald-200 border",
			})
		}

		for _, item := range e.Timeline {
			if item.Kind != KindActivity || !dateutil.IsSameDay(item.Time, dayDate) {
				continue
			}
			cell.Activities = append(cell.Activities, PointMatch{
				ID:         item.ID,
				Title:      item.Title,
				Type:       KindActivity,
				Icon:       IconTicket,
				ColorClass: "bg-purple-100 text-purple-700",
			})
		}

		cells = append(cells, cell)
	}

	return cells
}

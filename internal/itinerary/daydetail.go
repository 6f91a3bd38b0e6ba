package itinerary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/username/trip-itinerary/pkg/dateutil"
)

// EventType discriminates the detail-view event categories.
type EventType string

const (
	EventFlight          EventType = "flight"
	EventCheckIn         EventType = "accommodation_checkin"
	EventCheckOut        EventType = "accommodation_checkout"
	EventStayNight       EventType = "accommodation_stay"
	EventPassActive      EventType = "transport_pass_active"
	EventTransport       EventType = "transport"
	EventActivity        EventType = "activity"
	EventTask            EventType = "task"
	EventExpense         EventType = "expense"
	EventTransitionGroup EventType = "accommodation_transition_group"
)

// Event is one presentation-ready row of the day-detail list. Date is zero
// for rows without a comparable timestamp (sticky passes, flight rows);
// such rows sort as epoch zero, ahead of timed rows, never dropped.
type Event struct {
	ID         string
	Type       EventType
	Date       time.Time
	Title      string
	Subtitle   string
	Time       string
	DayDiff    string
	Icon       string
	ColorClass string
	Priority   bool
	Sticky     bool
	Items      []Event // transition group members
}

// ComputeDayDetail collects every event relevant to the selected day and
// orders them for presentation:
//
//  1. overnight-stay rows (sticky, at most one per stay)
//  2. one synthetic transition group wrapping check-outs before check-ins
//  3. everything else, stable-sorted ascending by timestamp; rows without
//     a timestamp keep epoch zero and therefore surface right below the
//     transition group (sticky passes first, then flight rows, in
//     insertion order)
func ComputeDayDetail(selected time.Time, e *Entities) []Event {
	current := dateutil.StartOfDay(selected)
	events := make([]Event, 0)

	// 1. Flights (leg-expanded) departing on the selected day.
	for _, f := range e.Flights {
		if !dateutil.IsSameDay(f.Departure, current) {
			continue
		}

		timeStr := dateutil.FormatTime(f.Departure)
		dayDiff := ""
		if !f.Arrival.IsZero() {
			timeStr += " - " + dateutil.FormatTime(f.Arrival)
			dayDiff = dateutil.SignedDayOffsetLabel(dateutil.DaysBetween(f.Departure, f.Arrival))
		}

		ev := Event{
			ID:         f.ID,
			Type:       EventFlight,
			Time:       timeStr,
			DayDiff:    dayDiff,
			Icon:       IconPlane,
			ColorClass: "bg-blue-100 text-blue-600",
		}
		if f.Leg {
			ev.Title = fmt.Sprintf("%s ➝ %s", f.Origin, f.Destination)
			ev.Subtitle = f.Airline
		} else {
			ev.Title = f.Airline
			if ev.Title == "" {
				ev.Title = "Vuelo"
			}
			ev.Subtitle = fmt.Sprintf("%s ➝ %s", orUnknown(f.Origin), orUnknown(f.Destination))
		}
		events = append(events, ev)
	}

	// 2. Stays: check-in/check-out transitions plus the overnight row.
	for _, s := range e.Stays {
		checkInDay := dateutil.StartOfDay(s.CheckIn)
		checkOutDay := dateutil.StartOfDay(s.CheckOut)

		if dateutil.IsSameDay(checkInDay, current) {
			events = append(events, Event{
				ID:         "acc-in-" + s.ID,
				Type:       EventCheckIn,
				Date:       s.CheckIn,
				Title:      "Check-in: " + s.Name,
				Subtitle:   "Entrada al alojamiento",
				Time:       dateutil.FormatTime(s.CheckIn),
				Icon:       IconBed,
				ColorClass: "bg-indigo-100 text-indigo-700",
				Priority:   true,
			})
		}

		if dateutil.IsSameDay(checkOutDay, current) {
			events = append(events, Event{
				ID:         "acc-out-" + s.ID,
				Type:       EventCheckOut,
				Date:       s.CheckOut,
				Title:      "Check-out: " + s.Name,
				Subtitle:   "Salida del alojamiento",
				Time:       dateutil.FormatTime(s.CheckOut),
				Icon:       IconBed,
				ColorClass: "bg-orange-100 text-orange-700",
				Priority:   true,
			})
		}

		// Overnight rows exist only for the strictly interior days of a
		// stay spanning more than one night.
		nights := dateutil.DaysBetween(checkInDay, checkOutDay)
		if nights > 1 {
			stayStart := checkInDay.AddDate(0, 0, 1)
			stayEnd := checkOutDay.AddDate(0, 0, -1)

			if !stayStart.After(stayEnd) && !current.Before(stayStart) && !current.After(stayEnd) {
				subtitle := s.City
				if subtitle == "" {
					subtitle = "Alojamiento"
				}
				events = prepend(events, Event{
					ID:         "acc-stay-" + s.ID,
					Type:       EventStayNight,
					Date:       current,
					Title:      "Noche en " + s.Name,
					Subtitle:   subtitle,
					Icon:       IconMoon,
					ColorClass: "bg-slate-800 text-white",
					Sticky:     true,
				})
			}
		}
	}

	// 3. Active passes: sticky, no timestamp.
	for _, p := range e.Passes {
		start := dateutil.StartOfDay(p.Start)
		end := dateutil.StartOfDay(p.End)

		if current.Before(start) || current.After(end) {
			continue
		}
		events = prepend(events, Event{
			ID:         "pass-active-" + p.ID,
			Type:       EventPassActive,
			Title:      "Pase activo: " + p.Name,
			Subtitle:   "Válido hasta " + dateutil.FormatShortDate(end),
			Icon:       IconTicket,
			ColorClass: "bg-green-100 text-green-700",
			Sticky:     true,
		})
	}

	// 4. Remaining timeline items (transport legs, activities).
	for _, item := range e.Timeline {
		if !dateutil.IsSameDay(item.Time, current) {
			continue
		}

		icon, colorClass := timelinePresentation(item.Kind)
		events = append(events, Event{
			ID:         item.ID,
			Type:       EventType(item.Kind),
			Date:       item.Time,
			Title:      item.Title,
			Subtitle:   item.Subtitle,
			Time:       dateutil.FormatTime(item.Time),
			Icon:       icon,
			ColorClass: colorClass,
		})
	}

	// 5. Tasks due on the selected day.
	for _, t := range e.Tasks {
		if !dateutil.IsSameDay(t.Time, current) {
			continue
		}
		events = append(events, Event{
			ID:         t.ID,
			Type:       EventTask,
			Date:       t.Time,
			Title:      t.Title,
			Subtitle:   t.Subtitle,
			Time:       dateutil.FormatTime(t.Time),
			Icon:       IconCheckSquare,
			ColorClass: "bg-yellow-100 text-yellow-600",
		})
	}

	// 6. Expenses dated on the selected day.
	for _, ex := range e.Expenses {
		if !dateutil.IsSameDay(ex.Time, current) {
			continue
		}
		events = append(events, Event{
			ID:         ex.ID,
			Type:       EventExpense,
			Date:       ex.Time,
			Title:      ex.Title,
			Subtitle:   ex.Subtitle,
			Time:       dateutil.FormatTime(ex.Time),
			Icon:       IconBanknote,
			ColorClass: "bg-red-50 text-red-600",
		})
	}

	// Post-process: pull accommodation events out of the working list to
	// enforce the layout rules.
	stayEvents := make([]Event, 0)
	transitionEvents := make([]Event, 0)
	otherEvents := make([]Event, 0)
	for _, ev := range events {
		switch {
		case ev.Type == EventStayNight:
			stayEvents = append(stayEvents, ev)
		case ev.Type == EventCheckIn || ev.Type == EventCheckOut:
			transitionEvents = append(transitionEvents, ev)
		case !strings.HasPrefix(string(ev.Type), "accommodation_"):
			otherEvents = append(otherEvents, ev)
		}
	}

	// A guest checks out of one place before checking into the next.
	sort.SliceStable(transitionEvents, func(i, j int) bool {
		return transitionEvents[i].Type == EventCheckOut && transitionEvents[j].Type == EventCheckIn
	})

	sort.SliceStable(otherEvents, func(i, j int) bool {
		return sortKey(otherEvents[i]) < sortKey(otherEvents[j])
	})

	final := make([]Event, 0, len(events)+1)
	final = append(final, stayEvents...)

	if len(transitionEvents) > 0 {
		final = append(final, Event{
			ID:         fmt.Sprintf("acc-group-%d", current.Unix()),
			Type:       EventTransitionGroup,
			Date:       transitionEvents[0].Date,
			Title:      "Alojamiento",
			Icon:       IconBed,
			ColorClass: "bg-slate-100 text-slate-500",
			Items:      transitionEvents,
		})
	}

	final = append(final, otherEvents...)
	return final
}

// sortKey returns the comparable timestamp of an event; rows without one
// sort as epoch zero instead of being dropped.
func sortKey(ev Event) int64 {
	if ev.Date.IsZero() {
		return 0
	}
	return ev.Date.Unix()
}

func timelinePresentation(kind Kind) (icon, colorClass string) {
	switch kind {
	case KindTransport:
		return IconTrain, "bg-green-100 text-green-600"
	case KindActivity:
		return IconTicket, "bg-purple-100 text-purple-600"
	default:
		// Unrecognized categories fall back to the generic bucket.
		return IconTicket, "bg-gray-100 text-gray-600"
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func prepend(events []Event, ev Event) []Event {
	return append([]Event{ev}, events...)
}

package render

import (
	"time"

	"github.com/fatih/color"

	"github.com/username/trip-itinerary/internal/itinerary"
	"github.com/username/trip-itinerary/pkg/dateutil"
)

func dayHeader(date time.Time) string {
	return dateutil.FormatLongDate(date)
}

// DayDetail renders the ordered event list of one day. Group nodes indent
// their members one level.
func (r *Renderer) DayDetail(date time.Time, events []itinerary.Event) {
	header := color.New(color.Bold, color.Underline)
	r.println(header.Sprint(dayHeader(date)))

	if len(events) == 0 {
		faint := color.New(color.Faint, color.Italic)
		r.println(faint.Sprint("  sin eventos"))
		r.println()
		return
	}

	for _, ev := range events {
		if ev.Type == itinerary.EventTransitionGroup {
			r.printEvent(ev, "  ")
			for _, item := range ev.Items {
				r.printEvent(item, "    ")
			}
			continue
		}
		r.printEvent(ev, "  ")
	}
	r.println()
}

func (r *Renderer) printEvent(ev itinerary.Event, indent string) {
	line := indent + glyph(ev.Icon) + " " + ev.Title
	if ev.Time != "" {
		line += "  " + ev.Time
		if ev.DayDiff != "" {
			line += ev.DayDiff
		}
	}
	r.println(styled(ev.ColorClass, line))

	if ev.Subtitle != "" {
		faint := color.New(color.Faint)
		r.println(faint.Sprint(indent + "  " + ev.Subtitle))
	}
}

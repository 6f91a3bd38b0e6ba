package render

import (
	"strings"

	"github.com/gosuri/uitable"

	"github.com/username/trip-itinerary/internal/itinerary"
	"github.com/username/trip-itinerary/pkg/dateutil"
)

// spanGlyph marks a span's position within its bar on the strip.
func spanGlyph(status itinerary.SpanStatus) string {
	switch status {
	case itinerary.SpanSingle:
		return "◆"
	case itinerary.SpanStart:
		return "├─"
	case itinerary.SpanEnd:
		return "─┤"
	default:
		return "──"
	}
}

func spanCell(matches []itinerary.SpanMatch) string {
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		label := spanGlyph(m.Status)
		if m.Status == itinerary.SpanStart || m.Status == itinerary.SpanSingle {
			label += " " + m.Title
		}
		parts = append(parts, styled(m.ColorClass, label))
	}
	return strings.Join(parts, " ")
}

func pointCell(matches []itinerary.PointMatch) string {
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, styled(m.ColorClass, glyph(m.Icon)+" "+m.Title))
	}
	return strings.Join(parts, " ")
}

// Strip renders the whole trip as one row per day with the active spans and
// point events of that day.
func (r *Renderer) Strip(cells []itinerary.DayCell, selected func(d itinerary.DayCell) bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DÍA", "ALOJAMIENTO", "PASES", "VUELOS", "DESTINO", "ACTIVIDADES")

	for _, cell := range cells {
		dayLabel := dateutil.FormatShortDate(cell.Date) + " " + dateutil.DayName(cell.Date)
		if selected != nil && selected(cell) {
			dayLabel = "▶ " + dayLabel
		} else {
			dayLabel = "  " + dayLabel
		}

		tbl.AddRow(
			dayLabel,
			spanCell(cell.Accommodations),
			spanCell(cell.Passes),
			pointCell(cell.Flights),
			spanCell(cell.Destinations),
			pointCell(cell.Activities),
		)
	}

	r.println(tbl)
}

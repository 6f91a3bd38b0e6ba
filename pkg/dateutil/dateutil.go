package dateutil

import (
	"fmt"
	"time"
)

// All helpers in this package treat timestamps as naive local wall-clock
// values: day-level math ignores the time-of-day and the location, and no
// timezone conversion is ever applied.

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsSameDay returns true if two dates are on the same calendar day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysBetween returns the signed number of whole calendar days from `from`
// to `to` (positive when `to` is later). Time-of-day is ignored.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// EnumerateDays returns one date per calendar day in [start, end] inclusive,
// in ascending order. Returns nil when end is before start.
func EnumerateDays(start, end time.Time) []time.Time {
	n := DaysBetween(start, end)
	if n < 0 {
		return nil
	}

	days := make([]time.Time, 0, n+1)
	first := StartOfDay(start)
	for i := 0; i <= n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// SignedDayOffsetLabel returns "+N" for positive day offsets and the empty
// string otherwise. Used to annotate arrivals that cross midnight.
func SignedDayOffsetLabel(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return ""
}

// ParseDate parses a date string in the formats the upstream API is known
// to emit. Timestamps carrying a zone offset are reinterpreted as naive
// wall-clock values (the offset is dropped, not applied).
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	formats := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.000",
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05.000Z07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			// Drop any parsed offset: keep the wall-clock reading.
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparsable date: %q", dateStr)
}

// FormatTime formats the time-of-day as HH:MM
func FormatTime(date time.Time) string {
	return date.Format("15:04")
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// --- Spanish locale labels (the product ships in Spanish) ---

var spanishMonthsLong = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishMonthsShort = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// DayLabel returns the day-of-month label for the day-strip header, e.g. "5"
func DayLabel(date time.Time) string {
	return fmt.Sprintf("%d", date.Day())
}

// DayName returns the full Spanish weekday name, e.g. "lunes"
func DayName(date time.Time) string {
	return spanishWeekdays[int(date.Weekday())]
}

// MonthLabel returns the abbreviated Spanish month name, e.g. "may"
func MonthLabel(date time.Time) string {
	return spanishMonthsShort[int(date.Month())-1]
}

// FormatShortDate formats a date as "05 may" (day + abbreviated month)
func FormatShortDate(date time.Time) string {
	return fmt.Sprintf("%02d %s", date.Day(), MonthLabel(date))
}

// FormatLongDate formats a date as "Lunes, 5 de mayo de 2025", matching the
// grouped-list headers of the product UI (capitalized first letter)
func FormatLongDate(date time.Time) string {
	name := []rune(DayName(date))
	capitalized := string(name[0]-32) + string(name[1:])
	return fmt.Sprintf("%s, %d de %s de %d",
		capitalized, date.Day(), spanishMonthsLong[int(date.Month())-1], date.Year())
}

// IsToday returns true if the date falls on today
func IsToday(date time.Time) bool {
	return IsSameDay(date, time.Now())
}

// IsYesterday returns true if the date falls on yesterday
func IsYesterday(date time.Time) bool {
	return IsSameDay(date, time.Now().AddDate(0, 0, -1))
}

// RelativeDayLabel returns "Hoy", "Ayer" or the short date
func RelativeDayLabel(date time.Time) string {
	if IsToday(date) {
		return "Hoy"
	}
	if IsYesterday(date) {
		return "Ayer"
	}
	return FormatShortDate(date)
}

// Package itinerary is the day-layout engine: it normalizes heterogeneous
// trip sub-records into canonical span/point shapes, lays them out over the
// trip's day axis (day-strip) and aggregates the ordered event list for a
// selected day (day-detail). All computation is pure: identical inputs
// yield structurally identical outputs, and no input is ever mutated.
package itinerary

import "time"

// Kind discriminates the canonical entity categories.
type Kind string

const (
	KindFlight      Kind = "flight"
	KindStay        Kind = "accommodation"
	KindPass        Kind = "pass"
	KindDestination Kind = "destination"
	KindTransport   Kind = "transport"
	KindActivity    Kind = "activity"
	KindTask        Kind = "task"
	KindExpense     Kind = "expense"
)

// SpanStatus classifies a span entity's position relative to one day cell.
// The renderer draws continuous bars from these, so the start/end semantics
// must hold exactly per kind (stays exclude the checkout day, passes and
// destinations include their end day).
type SpanStatus string

const (
	SpanSingle SpanStatus = "single"
	SpanStart  SpanStatus = "start"
	SpanMiddle SpanStatus = "middle"
	SpanEnd    SpanStatus = "end"
)

// Icon kinds carried on output rows so the rendering layer picks glyphs
// without re-deriving business rules.
const (
	IconPlane       = "plane"
	IconTrain       = "train"
	IconBed         = "bed-double"
	IconTicket      = "ticket"
	IconBanknote    = "banknote"
	IconCheckSquare = "check-square"
	IconMoon        = "moon"
	IconMapPin      = "map-pin"
)

// FlightEvent is a leg-expanded flight departure. Multi-leg flights yield
// one FlightEvent per leg; the parent flight's own dates are then unused.
type FlightEvent struct {
	ID          string
	Airline     string
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time // zero when unknown
	Leg         bool
}

// StaySpan is a lodging stay. CheckOut is exclusive for span math: a
// one-night stay occupies exactly one day cell.
type StaySpan struct {
	ID       string
	Name     string
	City     string
	CheckIn  time.Time
	CheckOut time.Time
}

// PassSpan is a transport pass, valid on every day of [Start, End]
// inclusive — the end day counts, unlike a stay's checkout day.
type PassSpan struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// DestinationSpan is a city span, both dates inclusive; a same-day span has
// duration zero.
type DestinationSpan struct {
	ID    string
	City  string
	Start time.Time
	End   time.Time
}

// TimelineItem is any remaining point-in-time record: transport legs,
// activities, tasks and expenses, already carrying presentation text.
type TimelineItem struct {
	ID       string
	Kind     Kind
	Title    string
	Subtitle string
	Time     time.Time
}

// Entities is the canonical, normalized snapshot both engines consume.
type Entities struct {
	Flights      []FlightEvent
	Stays        []StaySpan
	Passes       []PassSpan
	Destinations []DestinationSpan
	Timeline     []TimelineItem // transport legs + activities
	Tasks        []TimelineItem
	Expenses     []TimelineItem
}

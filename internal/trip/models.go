package trip

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/username/trip-itinerary/pkg/dateutil"
)

// FlexibleID handles both string and number IDs from the API.
// Directus returns ID fields inconsistently:
// - Sometimes as number: 42
// - Sometimes as UUID string: "9f3c2a1e-..."
// This type automatically converts both formats to string
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler for FlexibleID
func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	// Try to unmarshal as string first
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}

	// Try as number
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexibleID(strconv.FormatInt(n, 10))
		return nil
	}

	return fmt.Errorf("FlexibleID: cannot unmarshal %s", string(b))
}

// MarshalJSON implements json.Marshaler for FlexibleID
func (f FlexibleID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String returns string representation
func (f FlexibleID) String() string {
	return string(f)
}

// NaiveTime is a timestamp interpreted as naive local wall-clock time.
// The API stores dates both as "2025-05-18" and "2025-05-18T14:30:00"
// (occasionally with a zone offset that must be ignored, not applied).
// A null or empty value unmarshals to the zero time.
type NaiveTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for NaiveTime
func (t *NaiveTime) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := dateutil.ParseDate(*s)
	if err != nil {
		// Malformed dates degrade to "missing" rather than failing the
		// whole payload; the record is then excluded from the views.
		t.Time = time.Time{}
		return nil
	}

	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for NaiveTime
func (t NaiveTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(t.Format("2006-01-02T15:04:05"))
}

// --- Raw sub-records, mirroring the upstream collections ---

// Trip is the viajes record with its embedded destination spans.
type Trip struct {
	ID          FlexibleID    `json:"id"`
	Name        string        `json:"nombre"`
	StartDate   NaiveTime     `json:"fecha_inicio"`
	EndDate     NaiveTime     `json:"fecha_fin"`
	Status      string        `json:"status"`
	DailyBudget float64       `json:"presupuesto_diario"`
	Currency    string        `json:"moneda"`
	Destinations []Destination `json:"destinos"`
}

// Destination is one city span inside a trip.
type Destination struct {
	City      string    `json:"ciudad"`
	StartDate NaiveTime `json:"fecha_inicio"`
	EndDate   NaiveTime `json:"fecha_fin"`
}

// FlightLeg is one segment of a multi-leg flight (escalas).
type FlightLeg struct {
	Origin       string    `json:"origen"`
	Destination  string    `json:"destino"`
	Airline      string    `json:"aerolinea"`
	FlightNumber string    `json:"numero_vuelo"`
	Terminal     string    `json:"terminal"`
	Departure    NaiveTime `json:"fecha_salida"`
	Arrival      NaiveTime `json:"fecha_llegada"`
}

// Flight is a vuelos record. When Legs is non-empty the flight's own
// departure/arrival fields are ignored by the itinerary views.
type Flight struct {
	ID           FlexibleID  `json:"id"`
	TripID       FlexibleID  `json:"viaje_id"`
	Origin       string      `json:"origen"`
	Destination  string      `json:"destino"`
	Departure    NaiveTime   `json:"fecha_salida"`
	Arrival      NaiveTime   `json:"fecha_llegada"`
	Airline      string      `json:"aerolinea"`
	FlightNumber string      `json:"numero_vuelo"`
	Terminal     string      `json:"terminal"`
	Legs         []FlightLeg `json:"escalas"`
	BookingCode  string      `json:"codigo_reserva"`
	Price        float64     `json:"precio"`
	Currency     string      `json:"moneda"`
}

// Stay is an alojamientos record. CheckOut is exclusive for span math but
// the checkout event itself belongs to the checkout day.
type Stay struct {
	ID          FlexibleID `json:"id"`
	TripID      FlexibleID `json:"viaje_id"`
	Name        string     `json:"nombre"`
	Address     string     `json:"direccion"`
	CheckIn     NaiveTime  `json:"fecha_entrada"`
	CheckOut    NaiveTime  `json:"fecha_salida"`
	City        string     `json:"ciudad"`
	Prefecture  string     `json:"prefectura"`
	Price       float64    `json:"precio"`
	Currency    string     `json:"moneda"`
	PayStatus   string     `json:"estado_pago"`
	BookingCode string     `json:"codigo_reserva"`
}

// TransportLeg is one segment of a trayecto transport.
type TransportLeg struct {
	Origin      string    `json:"origen"`
	Destination string    `json:"destino"`
	Mode        string    `json:"medio"`
	Departure   NaiveTime `json:"fecha_salida"`
	Arrival     NaiveTime `json:"fecha_llegada"`
	Notes       string    `json:"notas"`
}

// Transport category values.
const (
	CategoryPass  = "pase"
	CategoryRoute = "trayecto"
)

// Transport is a transportes record: either a date-ranged pass (pase) or a
// point-to-point route with legs (trayecto).
type Transport struct {
	ID        FlexibleID     `json:"id"`
	TripID    FlexibleID     `json:"viaje_id"`
	Name      string         `json:"nombre"`
	Category  string         `json:"categoria"`
	StartDate NaiveTime      `json:"fecha_inicio"`
	EndDate   NaiveTime      `json:"fecha_fin"`
	Legs      []TransportLeg `json:"escalas"`
	Price     float64        `json:"precio"`
	Currency  string         `json:"moneda"`
	PassID    FlexibleID     `json:"pase_id"`
}

// Activity is an actividades record, a point-in-time event.
type Activity struct {
	ID        FlexibleID `json:"id"`
	TripID    FlexibleID `json:"viaje_id"`
	Name      string     `json:"nombre"`
	Date      NaiveTime  `json:"fecha"`
	Type      string     `json:"tipo"`
	Price     float64    `json:"precio"`
	Currency  string     `json:"moneda"`
	PayStatus string     `json:"estado_pago"`
}

// Insurance is a seguros record. Insurance never appears in the itinerary
// views but travels with the rest of the trip snapshot.
type Insurance struct {
	ID             FlexibleID `json:"id"`
	TripID         FlexibleID `json:"viaje_id"`
	Company        string     `json:"compania"`
	Type           string     `json:"tipo"`
	PolicyNumber   string     `json:"numero_poliza"`
	EmergencyPhone string     `json:"telefono_urgencias"`
	StartDate      NaiveTime  `json:"fecha_inicio"`
	EndDate        NaiveTime  `json:"fecha_fin"`
	Price          float64    `json:"precio"`
	Currency       string     `json:"moneda"`
}

// Task is a tareas record with an optional due timestamp.
type Task struct {
	ID      FlexibleID `json:"id"`
	TripID  FlexibleID `json:"viaje_id"`
	Title   string     `json:"title"`
	DueDate NaiveTime  `json:"due_date"`
	Status  string     `json:"status"`
}

// Expense is a gastos record.
type Expense struct {
	ID       FlexibleID `json:"id"`
	TripID   FlexibleID `json:"viaje_id"`
	Concept  string     `json:"concepto"`
	Amount   float64    `json:"monto"`
	Currency string     `json:"moneda"`
	Category string     `json:"categoria"`
	Date     NaiveTime  `json:"fecha"`
}

// Data is a read-only snapshot of every sub-record collection for one trip.
// The itinerary engine consumes it as-is and never mutates it.
type Data struct {
	Trip       Trip        `json:"trip"`
	Flights    []Flight    `json:"vuelos"`
	Stays      []Stay      `json:"alojamientos"`
	Transports []Transport `json:"transportes"`
	Activities []Activity  `json:"actividades"`
	Insurances []Insurance `json:"seguros"`
	Tasks      []Task      `json:"tareas"`
	Expenses   []Expense   `json:"gastos"`
}

package trip

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
)

// APISource fetches trip sub-records from the Directus-style REST API the
// travel planner is backed by. Every collection endpoint answers with a
// {"data": ...} envelope.
type APISource struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPISource creates a new API trip source
func NewAPISource(baseURL, token string, logger *zap.Logger) *APISource {
	return &APISource{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// FetchTrip loads the trip record plus every sub-record collection
func (s *APISource) FetchTrip(tripID string) (*Data, error) {
	data := &Data{}

	if err := s.doRequest(fmt.Sprintf("/items/viajes/%s", url.PathEscape(tripID)), nil, &data.Trip); err != nil {
		return nil, fmt.Errorf("failed to fetch trip %s: %w", tripID, err)
	}

	collections := []struct {
		name string
		sort string
		dst  interface{}
	}{
		{"vuelos", "fecha_salida", &data.Flights},
		{"alojamientos", "fecha_entrada", &data.Stays},
		{"transportes", "fecha_inicio", &data.Transports},
		{"actividades", "fecha", &data.Activities},
		{"seguros", "", &data.Insurances},
		{"tareas", "due_date", &data.Tasks},
		{"gastos", "fecha", &data.Expenses},
	}

	for _, col := range collections {
		q := url.Values{}
		q.Set("filter[viaje_id][_eq]", tripID)
		if col.sort != "" {
			q.Set("sort", col.sort)
		}

		if err := s.doRequest("/items/"+col.name, q, col.dst); err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", col.name, err)
		}
	}

	s.logger.Info("Trip snapshot fetched",
		zap.String("trip_id", tripID),
		zap.Int("flights", len(data.Flights)),
		zap.Int("stays", len(data.Stays)),
		zap.Int("transports", len(data.Transports)),
		zap.Int("activities", len(data.Activities)),
		zap.Int("tasks", len(data.Tasks)),
		zap.Int("expenses", len(data.Expenses)))

	return data, nil
}

// doRequest executes a GET against the API and unwraps the data envelope
func (s *APISource) doRequest(path string, query url.Values, result interface{}) error {
	reqURL := s.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(respBody, &envelope); err != nil {
			return fmt.Errorf("failed to parse response envelope: %w", err)
		}
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("failed to parse response data: %w", err)
		}
	}

	return nil
}

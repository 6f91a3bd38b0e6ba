package trip

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAPISourceFetchTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/items/viajes/1":
			w.Write([]byte(`{"data": {"id": 1, "nombre": "Japón 2025", "fecha_inicio": "2025-05-01", "fecha_fin": "2025-05-15"}}`))
		case "/items/vuelos":
			assert.Equal(t, "1", r.URL.Query().Get("filter[viaje_id][_eq]"))
			assert.Equal(t, "fecha_salida", r.URL.Query().Get("sort"))
			w.Write([]byte(`{"data": [{"id": 7, "aerolinea": "Iberia", "fecha_salida": "2025-05-01T10:00:00"}]}`))
		default:
			w.Write([]byte(`{"data": []}`))
		}
	}))
	defer server.Close()

	source := NewAPISource(server.URL, "test-token", zap.NewNop())

	data, err := source.FetchTrip("1")
	require.NoError(t, err)
	assert.Equal(t, "Japón 2025", data.Trip.Name)
	require.Len(t, data.Flights, 1)
	assert.Equal(t, "Iberia", data.Flights[0].Airline)
}

func TestAPISourceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": [{"message": "forbidden"}]}`, http.StatusForbidden)
	}))
	defer server.Close()

	source := NewAPISource(server.URL, "", zap.NewNop())

	_, err := source.FetchTrip("1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

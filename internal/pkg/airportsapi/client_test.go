package airportsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
	"github.com/google/go-cmp/cmp"
)

const directoryFixture = `{
	"GRU": {"iata": "GRU", "city": "Sao Paulo", "lat": -23.432075, "lon": -46.469511, "state": "SP"},
	"JFK": {"iata": "JFK", "city": "New York", "lat": 40.641766, "lon": -73.780968, "state": "NY"}
}`

func newTestClient(url string, maxRetries int) *Client {
	return NewClient(Config{
		BaseURL:    url,
		Login:      "login",
		Password:   "secret",
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
	})
}

func TestClient_FetchAirports(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if login, password, ok := r.BasicAuth(); !ok || login != "login" || password != "secret" {
				t.Errorf("missing or wrong basic auth")
			}

			_, _ = w.Write([]byte(directoryFixture))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL, 0).FetchAirports(context.Background())
		if err != nil {
			t.Fatalf("FetchAirports() returned error: %v", err)
		}

		want := map[string]airport.Record{
			"GRU": {IATA: "GRU", City: "Sao Paulo", State: "SP", Lat: -23.432075, Lon: -46.469511},
			"JFK": {IATA: "JFK", City: "New York", State: "NY", Lat: 40.641766, Lon: -73.780968},
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("FetchAirports() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("recovers_after_transient_failure", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			_, _ = w.Write([]byte(directoryFixture))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL, 2).FetchAirports(context.Background())
		if err != nil {
			t.Fatalf("FetchAirports() returned error: %v", err)
		}

		if attempts != 2 {
			t.Fatalf("expected 2 attempts, got %d", attempts)
		}

		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("retries_exhausted", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, 1).FetchAirports(context.Background())
		if !errors.Is(err, ErrDirectoryUnavailable) {
			t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
		}

		if attempts != 2 {
			t.Fatalf("expected 2 attempts, got %d", attempts)
		}
	})

	t.Run("invalid_json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`["not", "a", "mapping"]`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, 0).FetchAirports(context.Background())
		if !errors.Is(err, ErrDirectoryUnavailable) {
			t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
		}
	})
}

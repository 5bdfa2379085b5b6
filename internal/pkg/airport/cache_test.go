package airport

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

var gru = Record{
	IATA:  "GRU",
	City:  "Sao Paulo",
	State: "SP",
	Lat:   -23.432075,
	Lon:   -46.469511,
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	return data
}

func TestDirectoryCache_PutAll_Closure(t *testing.T) {
	putAllRequest := func(records map[string]Record, ttl time.Duration,
		mockSetup func(m *MockRedisClient), want bool,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewDirectoryCache(m, 24*time.Hour)

			got := c.PutAll(context.Background(), records, ttl)
			if got != want {
				t.Fatalf("PutAll() = %v, want %v", got, want)
			}
		}
	}

	records := map[string]Record{"GRU": gru}

	t.Run("success", putAllRequest(records, 24*time.Hour, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "airports:data:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "airports:by_iata:v1:GRU", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "airports:last_sync:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
	}, true))

	t.Run("zero_ttl_uses_default", putAllRequest(records, 0, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "airports:data:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "airports:by_iata:v1:GRU", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "airports:last_sync:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
	}, true))

	// bulk write failure is fatal: no individual entries, no sync marker
	t.Run("bulk_write_failure", putAllRequest(records, 24*time.Hour, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "airports:data:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("", redis.ErrClosed))
	}, false))

	t.Run("individual_write_failure_tolerated", putAllRequest(records, 24*time.Hour, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "airports:data:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
		m.On("Set", mock.Anything, "airports:by_iata:v1:GRU", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("", redis.ErrClosed))
		m.On("Set", mock.Anything, "airports:last_sync:v1", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
	}, true))
}

func TestDirectoryCache_GetByIATA_Closure(t *testing.T) {
	getRequest := func(code string, mockSetup func(t *testing.T, m *MockRedisClient),
		want Record, wantOK bool,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(t, m)
			c := NewDirectoryCache(m, 24*time.Hour)

			got, ok := c.GetByIATA(context.Background(), code)
			if ok != wantOK {
				t.Fatalf("GetByIATA() ok = %v, want %v", ok, wantOK)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("GetByIATA() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("individual_hit", getRequest("GRU", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:GRU").
			Return(redis.NewStringResult(string(mustJSON(t, gru)), nil))
	}, gru, true))

	t.Run("case_insensitive_lookup", getRequest(" gru ", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:GRU").
			Return(redis.NewStringResult(string(mustJSON(t, gru)), nil))
	}, gru, true))

	t.Run("bulk_fallback_with_backfill", getRequest("GRU", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:GRU").
			Return(redis.NewStringResult("", redis.Nil))
		m.On("Get", mock.Anything, "airports:data:v1").
			Return(redis.NewStringResult(string(mustJSON(t, map[string]Record{"GRU": gru})), nil))
		m.On("Set", mock.Anything, "airports:by_iata:v1:GRU", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
	}, gru, true))

	t.Run("unknown_airport", getRequest("ZZZ", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:ZZZ").
			Return(redis.NewStringResult("", redis.Nil))
		m.On("Get", mock.Anything, "airports:data:v1").
			Return(redis.NewStringResult(string(mustJSON(t, map[string]Record{"GRU": gru})), nil))
	}, Record{}, false))

	t.Run("empty_directory", getRequest("GRU", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:GRU").
			Return(redis.NewStringResult("", redis.Nil))
		m.On("Get", mock.Anything, "airports:data:v1").
			Return(redis.NewStringResult("", redis.Nil))
	}, Record{}, false))

	// store failures look exactly like misses to the caller
	t.Run("store_error_masked", getRequest("GRU", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:GRU").
			Return(redis.NewStringResult("", redis.ErrClosed))
		m.On("Get", mock.Anything, "airports:data:v1").
			Return(redis.NewStringResult("", redis.ErrClosed))
	}, Record{}, false))

	t.Run("corrupt_individual_entry_falls_back", getRequest("GRU", func(t *testing.T, m *MockRedisClient) {
		m.On("Get", mock.Anything, "airports:by_iata:v1:GRU").
			Return(redis.NewStringResult("{not json", nil))
		m.On("Get", mock.Anything, "airports:data:v1").
			Return(redis.NewStringResult(string(mustJSON(t, map[string]Record{"GRU": gru})), nil))
		m.On("Set", mock.Anything, "airports:by_iata:v1:GRU", mock.Anything, 24*time.Hour).
			Return(redis.NewStatusResult("OK", nil))
	}, gru, true))
}

func TestDirectoryCache_GetAll(t *testing.T) {
	t.Run("corrupt_snapshot_is_a_miss", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, "airports:data:v1").
			Return(redis.NewStringResult("{not json", nil))

		c := NewDirectoryCache(m, 24*time.Hour)
		if _, ok := c.GetAll(context.Background()); ok {
			t.Fatal("expected miss for corrupt snapshot")
		}
	})
}

func TestDirectoryCache_Clear(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Del", mock.Anything, "airports:data:v1", "airports:last_sync:v1").
		Return(redis.NewIntResult(2, nil))
	m.On("Scan", mock.Anything, uint64(0), "airports:by_iata:v1:*", int64(500)).
		Return(redis.NewScanCmdResult([]string{"airports:by_iata:v1:GRU", "airports:by_iata:v1:JFK"}, 0, nil))
	m.On("Del", mock.Anything, "airports:by_iata:v1:GRU", "airports:by_iata:v1:JFK").
		Return(redis.NewIntResult(2, nil))

	c := NewDirectoryCache(m, 24*time.Hour)
	if err := c.Clear(context.Background()); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
}

func TestDirectoryCache_LastSync(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Get", mock.Anything, "airports:last_sync:v1").
		Return(redis.NewStringResult("2026-08-30T03:00:00Z", nil))

	c := NewDirectoryCache(m, 24*time.Hour)
	ts, ok := c.LastSync(context.Background())
	if !ok {
		t.Fatal("expected last sync timestamp")
	}

	want := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("LastSync() = %v, want %v", ts, want)
	}
}

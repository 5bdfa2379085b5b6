package load_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Stats struct {
	Succeeded   int
	RateLimited int
	Failed      int
}

func (s *Stats) Add(other Stats) {
	s.Succeeded += other.Succeeded
	s.RateLimited += other.RateLimited
	s.Failed += other.Failed
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func clearRedis(t *testing.T, ctx context.Context, rdb *redis.Client) {
	err := rdb.FlushDB(ctx).Err()
	require.NoError(t, err, "Failed to flush Redis")
}

func syncAirports(ctx context.Context, appHost string) error {
	req, err := http.NewRequestWithContext(ctx, "POST", appHost+"/api/v1/airports/sync", nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sync bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	return nil
}

func searchFlights(ctx context.Context, appHost string, criteria dto.SearchRequest) (Stats, error) {
	query := url.Values{
		"origin":         {criteria.Origin},
		"destination":    {criteria.Destination},
		"departure_date": {criteria.DepartureDate},
		"return_date":    {criteria.ReturnDate},
	}

	req, err := http.NewRequestWithContext(ctx, "GET",
		appHost+"/api/v1/flights/search?"+query.Encode(), nil)
	if err != nil {
		return Stats{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return Stats{RateLimited: 1}, nil
	case http.StatusBadGateway:
		return Stats{Failed: 1}, nil
	case http.StatusOK:
	default:
		body, _ := io.ReadAll(resp.Body)
		return Stats{}, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	var r dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Stats{}, err
	}

	if len(r.Combinations) == 0 {
		return Stats{Failed: 1}, nil
	}

	return Stats{Succeeded: 1}, nil
}

func TestRoundTripSearchLoad(t *testing.T) {
	appHost := getEnv("APP_HOST", "http://localhost:8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "redis123")

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	departure := time.Now().AddDate(0, 0, 10).Format(dto.DateLayout)
	returnDate := time.Now().AddDate(0, 0, 20).Format(dto.DateLayout)

	criteria := dto.SearchRequest{
		Origin:        "GRU",
		Destination:   "GIG",
		DepartureDate: departure,
		ReturnDate:    returnDate,
	}

	t.Run("Directory Sync Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)

		require.NoError(t, syncAirports(ctx, appHost))

		resp, err := http.Get(appHost + "/api/v1/airports/GRU")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Concurrent Search Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)
		require.NoError(t, syncAirports(ctx, appHost))

		vus := 5
		stats := runScenario(t, ctx, appHost, criteria, vus)

		assert.Equal(t, 0, stats.Failed)
		assert.Greater(t, stats.Succeeded, 0)
	})

	t.Run("Rate Limit Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)
		require.NoError(t, syncAirports(ctx, appHost))

		vus := 20
		stats := runScenario(t, ctx, appHost, criteria, vus)

		fmt.Printf("Rate Limit Test Result: Succeeded = %d, Rate Limited = %d, Failed = %d\n",
			stats.Succeeded, stats.RateLimited, stats.Failed)
		assert.Greater(t, stats.RateLimited, 0, "Should have triggered rate limits with 20 concurrent requests")
	})
}

func runScenario(t *testing.T, ctx context.Context, appHost string, criteria dto.SearchRequest, vus int) Stats {
	var wg sync.WaitGroup
	var mu sync.Mutex
	scenarioStats := Stats{}

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats, err := searchFlights(ctx, appHost, criteria)
			if err != nil {
				t.Errorf("VU %d failed: %v", id, err)
				return
			}
			mu.Lock()
			scenarioStats.Add(stats)
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	return scenarioStats
}

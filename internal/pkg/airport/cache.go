package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys are versioned so a schema change can roll out next to old
// entries.
const (
	bulkKey      = "airports:data:v1"
	byIATAPrefix = "airports:by_iata:v1"
	lastSyncKey  = "airports:last_sync:v1"

	clearScanCount = 500
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// DirectoryCache is a two-tier airport directory: a bulk snapshot of
// the whole directory plus one entry per IATA code. Lookups hit the
// per-code entry first and fall back to the snapshot, backfilling the
// per-code entry on the way out. Store failures never escape: every
// operation degrades to a miss or a false return, so callers treat a
// broken store and an empty directory the same way.
type DirectoryCache struct {
	redis      RedisClient
	defaultTTL time.Duration
}

func NewDirectoryCache(redis RedisClient, defaultTTL time.Duration) *DirectoryCache {
	return &DirectoryCache{
		redis:      redis,
		defaultTTL: defaultTTL,
	}
}

func individualKey(iata string) string {
	return fmt.Sprintf("%s:%s", byIATAPrefix, iata)
}

// PutAll writes the bulk snapshot, then best-effort one entry per
// record, then the last-sync timestamp. If the bulk write fails the
// whole call fails and no individual entries are written; individual
// write failures are logged and tolerated.
func (c *DirectoryCache) PutAll(ctx context.Context, records map[string]Record, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	data, err := json.Marshal(records)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal airport directory", slog.String("error", err.Error()))
		return false
	}

	if err := c.redis.Set(ctx, bulkKey, data, ttl).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to cache airport directory", slog.String("error", err.Error()))
		return false
	}

	cached := 0
	for iata, record := range records {
		blob, err := json.Marshal(record)
		if err != nil {
			slog.WarnContext(ctx, "failed to marshal airport record",
				slog.String("iata", iata), slog.String("error", err.Error()))
			continue
		}

		if err := c.redis.Set(ctx, individualKey(iata), blob, ttl).Err(); err != nil {
			slog.WarnContext(ctx, "failed to cache individual airport",
				slog.String("iata", iata), slog.String("error", err.Error()))
			continue
		}
		cached++
	}

	if err := c.redis.Set(ctx, lastSyncKey, time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to record last sync time", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "cached airport directory",
		slog.Int("airports", len(records)), slog.Int("individual_entries", cached))

	return true
}

// GetAll returns the bulk snapshot. A store error or an undecodable
// snapshot is reported as a plain miss.
func (c *DirectoryCache) GetAll(ctx context.Context) (map[string]Record, bool) {
	data, err := c.redis.Get(ctx, bulkKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.ErrorContext(ctx, "failed to read airport directory", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var records map[string]Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.ErrorContext(ctx, "failed to decode airport directory", slog.String("error", err.Error()))
		return nil, false
	}

	return records, true
}

// GetByIATA resolves one airport. The per-code entry is the cheap
// path; on a miss the bulk snapshot is consulted and, on a hit, the
// per-code entry is restored with the default TTL. The backfilled
// entry may outlive the snapshot it came from.
func (c *DirectoryCache) GetByIATA(ctx context.Context, code string) (Record, bool) {
	iata := NormalizeIATA(code)
	key := individualKey(iata)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
			slog.WarnContext(ctx, "failed to decode cached airport, falling back to snapshot",
				slog.String("iata", iata), slog.String("error", err.Error()))
		} else {
			return record, true
		}
	} else if err != redis.Nil {
		slog.ErrorContext(ctx, "failed to read individual airport",
			slog.String("iata", iata), slog.String("error", err.Error()))
	}

	records, ok := c.GetAll(ctx)
	if !ok {
		return Record{}, false
	}

	record, ok := records[iata]
	if !ok {
		slog.DebugContext(ctx, "airport not found in directory", slog.String("iata", iata))
		return Record{}, false
	}

	if blob, err := json.Marshal(record); err == nil {
		if err := c.redis.Set(ctx, key, blob, c.defaultTTL).Err(); err != nil {
			slog.WarnContext(ctx, "failed to backfill individual airport",
				slog.String("iata", iata), slog.String("error", err.Error()))
		}
	}

	return record, true
}

// LastSync returns the timestamp recorded by the most recent PutAll.
func (c *DirectoryCache) LastSync(ctx context.Context) (time.Time, bool) {
	val, err := c.redis.Get(ctx, lastSyncKey).Result()
	if err != nil {
		return time.Time{}, false
	}

	ts, err := time.Parse(time.RFC3339, val)
	if err != nil {
		slog.WarnContext(ctx, "invalid last sync timestamp in cache", slog.String("value", val))
		return time.Time{}, false
	}

	return ts, true
}

// Clear removes both tiers and the last-sync marker.
func (c *DirectoryCache) Clear(ctx context.Context) error {
	if err := c.redis.Del(ctx, bulkKey, lastSyncKey).Err(); err != nil {
		return fmt.Errorf("delete directory keys: %w", err)
	}

	var cursor uint64
	for {
		keys, next, err := c.redis.Scan(ctx, cursor, byIATAPrefix+":*", clearScanCount).Result()
		if err != nil {
			return fmt.Errorf("scan individual airport keys: %w", err)
		}

		if len(keys) > 0 {
			if err := c.redis.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete individual airport keys: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

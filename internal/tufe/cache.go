package tufe

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/ustaoglu/kiracap/internal/model"
	"github.com/ustaoglu/kiracap/internal/validate"
	"golang.org/x/sync/singleflight"
)

// nowFunc is the clock used for TTL decisions (injectable for tests).
var nowFunc = time.Now

// Fetcher is the single authoritative index source.
type Fetcher interface {
	FetchYear(ctx context.Context, year int) (float64, error)
}

// Cache is the cache-aside store for yearly TÜFE values: memory first, then
// disk, then exactly one coalesced fetch from the official source.
// Automatic records carry a TTL; manual overrides never expire and are
// never replaced by automatic writes.
type Cache struct {
	memory       *gocache.Cache
	store        *Store
	client       Fetcher
	ttl          time.Duration
	fetchTimeout time.Duration
	flight       singleflight.Group

	// writeMu serializes record commits so an automatic write can check
	// for a manual override and apply atomically. Reads and fetches stay
	// lock-free; only the brief commit section contends.
	writeMu sync.Mutex
}

// NewCache creates a cache over the given source and persistent store.
func NewCache(client Fetcher, store *Store, ttl, fetchTimeout time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	return &Cache{
		memory:       gocache.New(ttl, 10*time.Minute),
		store:        store,
		client:       client,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
	}
}

func cacheKey(year int) string { return strconv.Itoa(year) }

// Get returns the active record for a year, fetching from the official
// source at most once across concurrent callers. ok=false means the value
// is unavailable this call and manual entry is the recovery path; it is
// never an error, and no alternate source is ever consulted.
//
// A caller whose context ends while a coalesced fetch is in flight gets the
// unavailable outcome, but the fetch itself keeps running and populates the
// cache for future callers.
func (c *Cache) Get(ctx context.Context, year int) (model.TufeRecord, bool) {
	if rec, ok := c.lookup(year); ok {
		return rec, true
	}

	ch := c.flight.DoChan(cacheKey(year), func() (interface{}, error) {
		// Re-check under the flight: a concurrent fetch may have landed.
		if rec, ok := c.lookup(year); ok {
			return rec, nil
		}
		return c.fetch(year)
	})

	select {
	case <-ctx.Done():
		return model.TufeRecord{}, false
	case res := <-ch:
		if res.Err != nil {
			return model.TufeRecord{}, false
		}
		return res.Val.(model.TufeRecord), true
	}
}

// Peek returns the cached record for a year without triggering a fetch.
func (c *Cache) Peek(year int) (model.TufeRecord, bool) {
	return c.lookup(year)
}

// SetManual records a user-supplied value for a year. Manual records never
// expire and supersede any automatic record regardless of recency.
func (c *Cache) SetManual(year int, value float64) error {
	if err := validate.ValidateTufeValue(value); err != nil {
		return err
	}
	rec := model.TufeRecord{
		Year:      year,
		Value:     value,
		Source:    model.SourceManual,
		FetchedAt: nowFunc().UTC(),
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.memory.Set(cacheKey(year), rec, gocache.NoExpiration)
	return c.store.Save(rec)
}

// lookup checks memory then disk, promoting disk hits to memory. Expired
// automatic records are treated as absent.
func (c *Cache) lookup(year int) (model.TufeRecord, bool) {
	now := nowFunc()
	if v, ok := c.memory.Get(cacheKey(year)); ok {
		rec := v.(model.TufeRecord)
		if !rec.Expired(now) {
			return rec, true
		}
		c.memory.Delete(cacheKey(year))
	}
	if rec, ok := c.store.Load(year); ok && !rec.Expired(now) {
		c.putMemory(rec)
		return rec, true
	}
	return model.TufeRecord{}, false
}

// fetch performs the single fetch attempt and persists a successful result.
// It runs on a detached context: an abandoned caller must not cancel a
// fetch other waiters are coalescing on.
func (c *Cache) fetch(year int) (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	value, err := c.client.FetchYear(ctx, year)
	if err != nil {
		return nil, err
	}

	now := nowFunc().UTC()
	expires := now.Add(c.ttl)
	rec := model.TufeRecord{
		Year:      year,
		Value:     value,
		Source:    model.SourceOfficialAPI,
		FetchedAt: now,
		ExpiresAt: &expires,
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	// A manual override entered while the fetch was in flight is terminal:
	// the fetched value is discarded and the override served instead.
	if existing, ok := c.lookup(year); ok && existing.Manual() {
		return existing, nil
	}
	c.putMemory(rec)
	if err := c.store.Save(rec); err != nil {
		// The value is still served from memory this run.
		fmt.Fprintf(os.Stderr, "Warning: persist TÜFE record for %d: %v\n", year, err)
	}
	return rec, nil
}

func (c *Cache) putMemory(rec model.TufeRecord) {
	ttl := gocache.DefaultExpiration
	if rec.ExpiresAt == nil {
		ttl = gocache.NoExpiration
	}
	c.memory.Set(cacheKey(rec.Year), rec, ttl)
}

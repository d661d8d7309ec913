// Package pagecache caches assembled search pages in a key-value store
// so repeated identical queries skip matching and ranking entirely.
package pagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/deskhub-cloud/deskhub/internal/db"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/request"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/result"
)

// DefaultKeyPrefix namespaces cache keys in a shared Redis.
const DefaultKeyPrefix = "deskhub:page_cache:"

// store is the consumer interface for the page cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache stores serialized result pages with a short TTL. Entries are
// keyed by the full normalized request, so any facet or pagination
// change is a distinct entry.
type Cache struct {
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a page cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	s store,
	prefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Cache{
		store:      s,
		prefix:     prefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns a cached page for the request. Any read or decode failure
// is a miss; staleness is bounded by the TTL alone.
func (c *Cache) Get(ctx context.Context, req *request.Request) (result.Page, bool) {
	key := c.cacheKey(req)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached page", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return result.Page{}, false
	}

	page, err := decodePage(data)
	if err != nil {
		c.logger.Warn("Failed to parse cached page", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return result.Page{}, false
	}

	c.incCache("hit")
	return page, true
}

// Put stores a page. Failures are logged and swallowed: the cache never
// breaks a search.
func (c *Cache) Put(ctx context.Context, req *request.Request, page result.Page) {
	key := c.cacheKey(req)

	data, err := encodePage(page)
	if err != nil {
		c.logger.Warn("Failed to encode page for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache page", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the full normalized request so equal queries collide
// and nothing else does.
func (c *Cache) cacheKey(req *request.Request) string {
	f := req.Filters()
	canonical := fmt.Sprintf("%s|%s|%s|%s|%t|%t|%d|%d",
		req.Query(), f.ContentType(), f.Period(), f.Author(),
		f.WithAnalysis(), f.HighRating(), req.Page(), req.PageSize())
	h := sha256.Sum256([]byte(canonical))
	return c.prefix + hex.EncodeToString(h[:])
}

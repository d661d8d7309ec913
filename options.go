package deskhub

import (
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain"
)

// clientConfig holds Client construction parameters.
type clientConfig struct {
	rnd            domain.Rand
	clock          func() time.Time
	simulatedDelay time.Duration

	cacheAddrs    []string
	cacheUsername string
	cachePassword string
	cacheDB       int
	cacheTTL      time.Duration
}

// Option configures a Client.
type Option func(*clientConfig)

// WithRand sets the random source for synthesized data. Pass a fixed
// seed for reproducible output.
func WithRand(rnd domain.Rand) Option {
	return func(c *clientConfig) { c.rnd = rnd }
}

// WithClock sets the clock for candidate timestamps and time labels.
func WithClock(now func() time.Time) Option {
	return func(c *clientConfig) { c.clock = now }
}

// WithSimulatedDelay makes searches sleep before answering, like a
// remote backend would.
func WithSimulatedDelay(d time.Duration) Option {
	return func(c *clientConfig) { c.simulatedDelay = d }
}

// WithRedisCache enables the Redis page cache.
func WithRedisCache(addrs ...string) Option {
	return func(c *clientConfig) { c.cacheAddrs = addrs }
}

// WithRedisAuth sets cache credentials.
func WithRedisAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.cacheUsername = username
		c.cachePassword = password
	}
}

// WithRedisDB selects the cache database index.
func WithRedisDB(db int) Option {
	return func(c *clientConfig) { c.cacheDB = db }
}

// WithCacheTTL overrides the page cache TTL (default 30s).
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) { c.cacheTTL = ttl }
}

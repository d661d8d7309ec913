// Package deskhub is the embeddable SDK: the same search, analytics and
// currency engines the HTTP API serves, wired in-process.
package deskhub

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/deskhub-cloud/deskhub/internal/db/redis"
	"github.com/deskhub-cloud/deskhub/internal/domain"
	"github.com/deskhub-cloud/deskhub/internal/repository/demo"
	"github.com/deskhub-cloud/deskhub/internal/repository/pagecache"
	analyticsuc "github.com/deskhub-cloud/deskhub/internal/usecase/analytics"
	currencyuc "github.com/deskhub-cloud/deskhub/internal/usecase/currency"
	dashboarduc "github.com/deskhub-cloud/deskhub/internal/usecase/dashboard"
	searchuc "github.com/deskhub-cloud/deskhub/internal/usecase/search"
	suggestuc "github.com/deskhub-cloud/deskhub/internal/usecase/suggest"
)

const defaultCacheTTL = 30 * time.Second
const defaultReadinessTimeout = 10 * time.Second

// Client is the deskhub SDK entry point.
type Client struct {
	store        *dbRedis.Store
	searchSvc    *searchuc.Service
	suggestSvc   *suggestuc.Service
	analyticsSvc *analyticsuc.Service
	currencySvc  *currencyuc.Service
	dashboardSvc *dashboarduc.Service
	now          func() time.Time
}

// New creates a deskhub Client. Without options it runs fully
// in-process with live randomness and no cache.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		rnd:      domain.NewRand(),
		clock:    time.Now,
		cacheTTL: defaultCacheTTL,
	}
	for _, o := range opts {
		o(cfg)
	}

	var store *dbRedis.Store
	if len(cfg.cacheAddrs) > 0 {
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Username: cfg.cacheUsername,
			Password: cfg.cachePassword,
			DB:       cfg.cacheDB,
		})
		if err != nil {
			return nil, fmt.Errorf("deskhub: create cache store: %w", err)
		}
		if err := s.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("deskhub: cache not ready: %w", err)
		}
		store = s
	}

	catalog := demo.New().WithClock(cfg.clock)

	searchSvc := searchuc.New(catalog).
		WithClock(cfg.clock).
		WithSimulatedDelay(cfg.simulatedDelay)
	if store != nil {
		cache := pagecache.New(store, "", cfg.cacheTTL, nil, zap.NewNop())
		searchSvc = searchSvc.WithCache(cache)
	}

	analyticsSvc := analyticsuc.New(cfg.rnd).WithClock(cfg.clock)
	currencySvc := currencyuc.New(catalog, cfg.rnd)
	dashboardSvc := dashboarduc.New(catalog, currencySvc, analyticsSvc, cfg.rnd)

	return &Client{
		store:        store,
		searchSvc:    searchSvc,
		suggestSvc:   suggestuc.New(catalog),
		analyticsSvc: analyticsSvc,
		currencySvc:  currencySvc,
		dashboardSvc: dashboardSvc,
		now:          cfg.clock,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Search starts a fluent search query.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{client: c}
}

// Suggest returns autocomplete phrases for a query.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	phrases, err := c.suggestSvc.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("deskhub: suggest: %w", err)
	}
	return phrases, nil
}

// Analytics synthesizes the metric series for a period of 7, 14 or 30 days.
func (c *Client) Analytics(ctx context.Context, days int) (Analytics, error) {
	ds, err := c.analyticsSvc.Generate(ctx, days)
	if err != nil {
		return Analytics{}, fmt.Errorf("deskhub: analytics: %w", err)
	}
	return analyticsFromDataset(&ds), nil
}

// Rates returns the current currency rate table.
func (c *Client) Rates(ctx context.Context) ([]Rate, error) {
	table, err := c.currencySvc.Rates(ctx)
	if err != nil {
		return nil, fmt.Errorf("deskhub: rates: %w", err)
	}
	rates := table.Rates()
	out := make([]Rate, 0, len(rates))
	for _, r := range rates {
		out = append(out, Rate{Code: r.Code(), Value: r.Value(), Delta: r.Delta()})
	}
	return out, nil
}

// Convert converts a user-typed amount between two currencies.
// Unparseable amounts and unknown codes yield Available == false, not
// an error.
func (c *Client) Convert(ctx context.Context, amount, from, to string) (Conversion, error) {
	conv, err := c.currencySvc.Convert(ctx, amount, from, to)
	if err != nil {
		return Conversion{}, fmt.Errorf("deskhub: convert: %w", err)
	}
	return Conversion{
		Result:    conv.Result(),
		CrossRate: conv.CrossRate(),
		Available: conv.Available(),
	}, nil
}

// Dashboard assembles the home screen aggregate.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	sum, err := c.dashboardSvc.Summary(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("deskhub: dashboard: %w", err)
	}

	d := Dashboard{
		Weather: Weather{
			City:        sum.Weather.City,
			TempC:       sum.Weather.TempC,
			Description: sum.Weather.Description,
			WindKmh:     sum.Weather.WindKmh,
			Humidity:    sum.Weather.Humidity,
		},
		Rates:  make([]Rate, 0, len(sum.Rates)),
		Events: make([]Event, 0, len(sum.Events)),
		Items:  make([]Item, 0, len(sum.Items)),
		Stats: Stats{
			Documents:       sum.Stats.Documents,
			AIOps:           sum.Stats.AIOps,
			TimeSavedHours:  sum.Stats.TimeSavedHours,
			AccuracyPercent: sum.Stats.AccuracyPercent,
		},
	}
	for _, r := range sum.Rates {
		d.Rates = append(d.Rates, Rate{Code: r.Code(), Value: r.Value(), Delta: r.Delta()})
	}
	for _, e := range sum.Events {
		d.Events = append(d.Events, Event{Time: e.Time, Title: e.Title})
	}
	for i := range sum.Items {
		d.Items = append(d.Items, itemFromCandidate(&sum.Items[i], c.now()))
	}
	return d, nil
}

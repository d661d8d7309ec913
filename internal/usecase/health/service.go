package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// CachePinger checks connectivity of the page cache backend.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Service coordinates health checks. The service itself is stateless
// and always up; the page cache is the only external component.
type Service struct {
	cache CachePinger
}

// New creates a Service. cache can be nil when caching is disabled.
func New(cache CachePinger) *Service {
	return &Service{cache: cache}
}

// Check runs health checks against all components. A failing cache
// degrades the service but never takes it down: search works without it.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{
		"search": CheckOK,
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

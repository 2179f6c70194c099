package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type databasePinger interface {
	Ping(ctx context.Context) (time.Duration, error)
}

type cachePinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

// HealthStatus is the liveness report.
type HealthStatus struct {
	ServerTime           string `json:"server_time"`
	DatabaseConnection   bool   `json:"database_connection"`
	DatabaseResponseTime string `json:"database_response_time"`
	CacheConnection      *bool  `json:"cache_connection,omitempty"`
}

// HealthService reports dependency state.
type HealthService struct {
	db      databasePinger
	cache   cachePinger
	logger  *zap.Logger
	now     func() time.Time
	timeout time.Duration
}

// NewHealthService constructs the health service. cache may be nil.
func NewHealthService(db databasePinger, cache cachePinger, logger *zap.Logger) *HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{db: db, cache: cache, logger: logger, now: time.Now, timeout: 2 * time.Second}
}

// Check probes the database and, when configured, the cache. It never fails;
// dependency problems are reported in the status.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	status := HealthStatus{ServerTime: s.now().UTC().Format(time.RFC3339)}

	elapsed, err := s.db.Ping(ctx)
	status.DatabaseResponseTime = elapsed.String()
	status.DatabaseConnection = err == nil
	if err != nil {
		s.logger.Warn("database health check failed", zap.Error(err))
	}

	if s.cache != nil && s.cache.Enabled() {
		ok := true
		if err := s.cache.Ping(ctx); err != nil {
			s.logger.Warn("cache health check failed", zap.Error(err))
			ok = false
		}
		status.CacheConnection = &ok
	}
	return status
}

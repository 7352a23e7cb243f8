package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
)

// HousekeepingService periodically deletes token rows that expired longer
// ago than Retention. Expired tokens are already rejected before their row
// is consulted, so purging them does not change any validation outcome.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Now       func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewHousekeepingService(s store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	return &HousekeepingService{
		Store:     s,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		Now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start launches the worker. It returns immediately.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop blocks until an in-flight purge has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Purge(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Purge(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Purge runs one cleanup pass over both token tables and returns the number
// of rows deleted. A failure on one table does not skip the other.
func (s *HousekeepingService) Purge(ctx context.Context) int64 {
	cutoff := s.Now().UTC().Add(-s.Retention)

	var total int64
	for _, kind := range []domain.TokenKind{domain.AccessToken, domain.RefreshToken} {
		n, err := store.TokensOf(s.Store, kind).DeleteExpiredTokens(ctx, cutoff)
		if err != nil {
			s.Logger.Error("failed to delete expired tokens", "kind", kind, "error", err)
			continue
		}
		total += n
	}

	s.Logger.Info("housekeeping cleanup completed", "deleted", total, "cutoff", cutoff)
	return total
}

package workers

import (
	"context"
	"time"

	"github.com/arenacast/backend/internal/cache"
	"github.com/arenacast/backend/internal/logger"
)

// CacheSweeper periodically evicts expired entries from the view cache so
// that invalidated-but-never-reread views do not accumulate.
type CacheSweeper struct {
	views    *cache.ViewCache
	interval time.Duration
	logger   *logger.Logger
}

// NewCacheSweeper constructs a sweeper that runs every interval.
func NewCacheSweeper(views *cache.ViewCache, interval time.Duration, logger *logger.Logger) *CacheSweeper {
	return &CacheSweeper{
		views:    views,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It blocks until ctx is cancelled.
func (s *CacheSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("cache sweeper stopped")
			return
		case <-ticker.C:
			if evicted := s.views.Sweep(); evicted > 0 {
				s.logger.Debug().Int("evicted", evicted).Msg("swept expired cached views")
			}
		}
	}
}

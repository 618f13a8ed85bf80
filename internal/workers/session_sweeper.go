package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-library-api/internal/logger"
)

const defaultSweepInterval = time.Minute

// SessionSweeper periodically purges expired OAuth sessions.
type SessionSweeper struct {
	purger   ExpiredSessionPurger
	interval time.Duration
	group    *Workers

	logger *logger.Logger
}

// NewSessionSweeper returns a worker purging purger every interval. Its
// goroutine is tracked by group so that shutdown can wait for it.
func NewSessionSweeper(purger ExpiredSessionPurger, interval time.Duration, group *Workers, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		purger:   purger,
		interval: interval,
		group:    group,
		logger:   logger,
	}
}

// Run implements [Worker].
func (s *SessionSweeper) Run(ctx context.Context) {
	s.group.Go(func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("session sweeper stopped")
				return
			case now := <-ticker.C:
				s.sweep(ctx, now)
			}
		}
	})
}

func (s *SessionSweeper) sweep(ctx context.Context, now time.Time) {
	if _, err := s.purger.DeleteExpired(s.logger.WithContext(ctx), now); err != nil {
		s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("purging expired sessions failed")
	}
}

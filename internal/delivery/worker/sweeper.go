// Package worker runs background jobs next to the HTTP delivery.
package worker

import (
	"context"
	"log/slog"
	"time"

	"authgate/config"
	"authgate/internal/delivery"
	"authgate/internal/usecase"

	"go.uber.org/fx"
)

type sessionSweeper struct {
	uc       usecase.SessionUsecase
	logger   *slog.Logger
	interval time.Duration
	enabled  bool
	done     chan struct{}
}

// SweeperParams holds dependencies for the expired-session sweeper.
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Session usecase.SessionUsecase
}

// NewSessionSweeper purges expired server-held sessions on a fixed interval.
// It idles when sessions are signed JWTs, since nothing is stored.
func NewSessionSweeper(params SweeperParams) delivery.Delivery {
	s := newSessionSweeper(params.Session, params.Logger, params.Cfg.Session.CleanupInterval,
		params.Cfg.Session.Strategy == config.SessionStrategyDatabase)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newSessionSweeper(uc usecase.SessionUsecase, logger *slog.Logger, interval time.Duration, enabled bool) *sessionSweeper {
	return &sessionSweeper{
		uc:       uc,
		logger:   logger,
		interval: interval,
		enabled:  enabled,
		done:     make(chan struct{}),
	}
}

// Serve blocks until ctx is done or the application stops.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.uc.CleanupExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("Failed to clean up expired sessions", slog.Any("error", err))

		return
	}

	if removed > 0 {
		s.logger.Info("Expired sessions removed", slog.Int("count", removed))
	}
}

func (s *sessionSweeper) stop(context.Context) error {
	s.logger.Info("Stopping session sweeper")
	close(s.done)

	return nil
}

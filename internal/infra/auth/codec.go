package auth

import (
	"authgate/config"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
)

// NewSessionCodec picks the codec for the configured session strategy.
func NewSessionCodec(cfg *config.Config, sessions repository.SessionRepository) (service.SessionCodec, error) {
	switch cfg.Session.Strategy {
	case config.SessionStrategyJWT:
		return NewJWTSessionCodec(cfg)
	case config.SessionStrategyDatabase:
		return NewStoreSessionCodec(cfg, sessions)
	default:
		return nil, errors.Errorf("unknown session strategy %q", cfg.Session.Strategy)
	}
}

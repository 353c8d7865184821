package postgres

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *repository.StoredSession) error {
	if err := repo.db.WithContext(ctx).Create(fromSessionDomain(session)).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	return nil
}

func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*repository.StoredSession, error) {
	var sessionM model.SessionModel

	err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) UpdateExpiry(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ?", tokenHash).
		Update("expires_at", expiresAt)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session expiry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.SessionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(m *model.SessionModel) *repository.StoredSession {
	return &repository.StoredSession{
		ID:        m.ID,
		TokenHash: m.TokenHash,
		Token: entity.SessionToken{
			UserID:    m.UserID,
			Username:  m.Username,
			Email:     m.Email,
			Verified:  m.Verified,
			Provider:  entity.ProviderType(m.Provider),
			SessionID: m.ID,
			IssuedAt:  m.IssuedAt,
			ExpiresAt: m.ExpiresAt,
		},
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromSessionDomain(s *repository.StoredSession) *model.SessionModel {
	return &model.SessionModel{
		ID:        s.ID,
		TokenHash: s.TokenHash,
		UserID:    s.Token.UserID,
		Username:  s.Token.Username,
		Email:     s.Token.Email,
		Verified:  s.Token.Verified,
		Provider:  s.Token.Provider.String(),
		IssuedAt:  s.Token.IssuedAt,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"
)

// DirectoryUsecase resolves the user behind an authentication attempt.
type DirectoryUsecase interface {
	// AuthorizeCredentials returns the verified user whose username or email is creds.Identifier
	// and whose password matches.
	AuthorizeCredentials(ctx context.Context, creds entity.Credentials) (*entity.User, error)

	// ReconcileOAuth returns the user owning profile.Email, creating a verified one on first sight.
	ReconcileOAuth(ctx context.Context, profile *entity.OAuthProfile) (*entity.User, error)
}

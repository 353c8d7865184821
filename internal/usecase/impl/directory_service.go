// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	connector repository.Connector
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	Connector repository.Connector
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		connector: params.Connector,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthorizeCredentials checks, in order: the user exists, the account is verified, the password matches.
// Each failure is its own error kind; the verified check runs before the password is compared.
func (srv *directoryService) AuthorizeCredentials(ctx context.Context, creds entity.Credentials) (*entity.User, error) {
	if err := srv.connector.Ensure(ctx); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByIdentifier(ctx, creds.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Credential sign-in for unknown identifier")

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !user.Verified {
		srv.log(ctx).Info("Credential sign-in for unverified account", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrAccountNotVerified
	}

	// Accounts created through OAuth have no password; the credential form cannot match them.
	if !user.HasPassword() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	ok, err := srv.hasher.Compare(creds.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// ReconcileOAuth returns the user that owns profile.Email, creating it on first sign-in.
// An existing user is returned untouched.
func (srv *directoryService) ReconcileOAuth(ctx context.Context, profile *entity.OAuthProfile) (*entity.User, error) {
	if err := srv.connector.Ensure(ctx); err != nil {
		return nil, err
	}

	if profile == nil || profile.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("oauth profile has no email")
	}

	user, err := srv.findByEmail(ctx, profile.Email)
	if err != nil || user != nil {
		return user, err
	}

	newUser := &entity.User{
		Username: profile.DefaultUsername(),
		Email:    profile.Email,
		Verified: true,
	}

	err = srv.userRepo.Create(ctx, newUser)
	if err == nil {
		srv.log(ctx).Info("Provisioned user from OAuth sign-in",
			slog.String("userID", newUser.ID.String()),
			slog.String("provider", profile.Provider.String()),
		)

		return newUser, nil
	}

	if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return nil, errors.Wrap(err, "failed to create user")
	}

	// Lost a race with a concurrent first sign-in for the same email.
	user, findErr := srv.findByEmail(ctx, profile.Email)
	if findErr != nil {
		return nil, findErr
	}
	if user == nil {
		// The conflict was on the username, not the email.
		return nil, err
	}

	return user, nil
}

// findByEmail returns (nil, nil) when no user has email.
func (srv *directoryService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	directory   usecase.DirectoryUsecase
	registry    service.ProviderRegistry
	codec       service.SessionCodec
	sessionRepo repository.SessionRepository
	signInPage  string
	logger      *slog.Logger
	now         func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Directory   usecase.DirectoryUsecase
	Registry    service.ProviderRegistry
	Codec       service.SessionCodec
	SessionRepo repository.SessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		directory:   params.Directory,
		registry:    params.Registry,
		codec:       params.Codec,
		sessionRepo: params.SessionRepo,
		signInPage:  params.Config.Pages.SignIn,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignInWithCredentials authorizes creds against the directory and issues a session.
func (srv *sessionService) SignInWithCredentials(ctx context.Context, creds entity.Credentials) (*usecase.SignInOutput, error) {
	user, err := srv.directory.AuthorizeCredentials(ctx, creds)
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, &entity.AuthEvent{User: user, Provider: entity.ProviderTypeCredentials})
}

// SignInWithOAuth resolves the grant with the provider, reconciles the profile and issues a session.
// An ID token takes precedence over an authorization code.
func (srv *sessionService) SignInWithOAuth(ctx context.Context, input usecase.OAuthSignInInput) (*usecase.SignInOutput, error) {
	if !input.Provider.IsOAuth() {
		return nil, domainerrors.ErrProviderNotFound.WithDetails(input.Provider.String())
	}

	provider, err := srv.registry.OAuth(input.Provider)
	if err != nil {
		return nil, err
	}

	var profile *entity.OAuthProfile
	switch {
	case input.IDToken != "":
		verifier, ok := provider.(service.IDTokenVerifier)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails(input.Provider.String() + " does not accept id tokens")
		}
		profile, err = verifier.VerifyIDToken(ctx, input.IDToken)
	case input.Code != "":
		profile, err = provider.Exchange(ctx, input.Code)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("code or id_token is required")
	}
	if err != nil {
		srv.log(ctx).Warn("OAuth grant rejected",
			slog.String("provider", input.Provider.String()),
			slog.Any("error", err),
		)

		return nil, err
	}
	if profile == nil {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("provider returned no profile")
	}
	profile.Provider = input.Provider

	user, err := srv.directory.ReconcileOAuth(ctx, profile)
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, &entity.AuthEvent{User: user, Provider: input.Provider})
}

func (srv *sessionService) issue(ctx context.Context, event *entity.AuthEvent) (*usecase.SignInOutput, error) {
	token := enrichToken(nil, event)

	raw, err := srv.codec.Encode(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Session issued",
		slog.String("userID", token.UserID),
		slog.String("provider", token.Provider.String()),
	)

	return &usecase.SignInOutput{
		Token:   raw,
		Expires: token.ExpiresAt,
		Session: sessionViewOf(token),
	}, nil
}

// GetSession returns the view of rawToken. Absent, malformed and expired tokens yield the
// default view without an error.
func (srv *sessionService) GetSession(ctx context.Context, rawToken string) (*entity.SessionView, error) {
	if rawToken == "" {
		return &entity.SessionView{}, nil
	}

	token, err := srv.codec.Decode(ctx, rawToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			srv.log(ctx).Debug("Ignoring unusable session token", slog.Any("error", err))

			return &entity.SessionView{}, nil
		}

		return nil, errors.Wrap(err, "failed to read session")
	}

	return sessionViewOf(token), nil
}

// RefreshSession extends rawToken's lifetime. Identity fields are carried over unchanged.
func (srv *sessionService) RefreshSession(ctx context.Context, rawToken string) (*usecase.SignInOutput, error) {
	token, err := srv.codec.Decode(ctx, rawToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to read session")
	}

	token = enrichToken(token, nil)

	raw, err := srv.codec.Renew(ctx, rawToken, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return &usecase.SignInOutput{
		Token:   raw,
		Expires: token.ExpiresAt,
		Session: sessionViewOf(token),
	}, nil
}

// SignOut revokes rawToken where the strategy can.
func (srv *sessionService) SignOut(ctx context.Context, rawToken string) error {
	if err := srv.codec.Revoke(ctx, rawToken); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}

// CleanupExpiredSessions deletes expired server-held sessions. Client-held tokens need no cleanup.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	if srv.codec.Strategy() != config.SessionStrategyDatabase {
		return 0, nil
	}

	deleted, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}

	return int(deleted), nil
}

// Configuration returns the public authentication configuration.
func (srv *sessionService) Configuration() usecase.SessionConfiguration {
	return usecase.SessionConfiguration{
		Providers:  srv.registry.Providers(),
		SignInPage: srv.signInPage,
		Strategy:   srv.codec.Strategy(),
		MaxAge:     srv.codec.MaxAge(),
	}
}

// sessionViewOf builds the default view a token yields (email and expiry) and projects the
// identity fields over it.
func sessionViewOf(token *entity.SessionToken) *entity.SessionView {
	view := &entity.SessionView{}
	if token != nil {
		view.User.Email = token.Email
		if !token.ExpiresAt.IsZero() {
			expires := token.ExpiresAt
			view.Expires = &expires
		}
	}

	return projectSession(view, token)
}

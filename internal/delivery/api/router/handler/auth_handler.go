// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"authgate/internal/delivery/api/response"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CredentialsSignInRequest is the body of POST /auth/signin/credentials.
type CredentialsSignInRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"`
}

// OAuthSignInRequest is the body of POST /auth/signin/:provider.
type OAuthSignInRequest struct {
	Code    string `json:"code"`
	IDToken string `json:"id_token"`
}

// SignInResponse is returned by every endpoint that issues a session token.
type SignInResponse struct {
	Token   string              `json:"token"`
	Expires time.Time           `json:"expires"`
	Session *entity.SessionView `json:"session"`
}

// ProvidersResponse is the public authentication configuration.
type ProvidersResponse struct {
	Providers     []entity.ProviderDescriptor `json:"providers"`
	SignInPage    string                      `json:"signInPage"`
	Strategy      string                      `json:"strategy"`
	MaxAgeSeconds int64                       `json:"maxAge"`
}

// AuthHandler serves the sign-in, session and sign-out endpoints.
type AuthHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Providers lists the enabled authentication methods.
func (h *AuthHandler) Providers(c echo.Context) error {
	cfg := h.uc.Configuration()

	return response.Success(c, http.StatusOK, ProvidersResponse{
		Providers:     cfg.Providers,
		SignInPage:    cfg.SignInPage,
		Strategy:      cfg.Strategy,
		MaxAgeSeconds: int64(cfg.MaxAge / time.Second),
	})
}

// SignInWithCredentials handles POST /auth/signin/credentials.
func (h *AuthHandler) SignInWithCredentials(c echo.Context) error {
	var req CredentialsSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.CodeValidationFailed, "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignInWithCredentials(c.Request().Context(), entity.Credentials{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		h.log(c).Info("Credential sign-in rejected", slog.String("code", domainerrors.KindOf(err)))

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSignInResponse(output))
}

// SignInWithOAuth handles POST /auth/signin/:provider.
func (h *AuthHandler) SignInWithOAuth(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))
	if !provider.IsOAuth() {
		return errors.WithStack(domainerrors.ErrProviderNotFound.WithDetails(provider.String()))
	}

	var req OAuthSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.CodeValidationFailed, "Invalid sign-in input")
	}

	output, err := h.uc.SignInWithOAuth(c.Request().Context(), usecase.OAuthSignInInput{
		Provider: provider,
		Code:     req.Code,
		IDToken:  req.IDToken,
	})
	if err != nil {
		h.log(c).Info("OAuth sign-in rejected",
			slog.String("provider", provider.String()),
			slog.String("code", domainerrors.KindOf(err)),
		)

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSignInResponse(output))
}

// Session returns the session view for the bearer token; absent or invalid tokens yield the default view.
func (h *AuthHandler) Session(c echo.Context) error {
	view, err := h.uc.GetSession(c.Request().Context(), deliverycontext.GetSessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RefreshSession re-issues the bearer token with a new expiry.
func (h *AuthHandler) RefreshSession(c echo.Context) error {
	output, err := h.uc.RefreshSession(c.Request().Context(), deliverycontext.GetSessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSignInResponse(output))
}

// SignOut ends the session held by the bearer token.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context(), deliverycontext.GetSessionToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

func (h *AuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

func toSignInResponse(output *usecase.SignInOutput) SignInResponse {
	return SignInResponse{
		Token:   output.Token,
		Expires: output.Expires,
		Session: output.Session,
	}
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "authgate/internal/delivery/api/middleware"
	"authgate/internal/delivery/api/validator"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(uc, logger)
	session := apimiddleware.NewSessionMiddleware()

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	e.GET("/auth/providers", h.Providers)
	e.POST("/auth/signin/credentials", h.SignInWithCredentials)
	e.POST("/auth/signin/:provider", h.SignInWithOAuth)
	e.GET("/auth/session", h.Session, session.Extract)
	e.POST("/auth/session/refresh", h.RefreshSession, session.Require)
	e.POST("/auth/signout", h.SignOut, session.Require)

	return e, uc
}

func do(e *echo.Echo, method, path, body, bearer string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func sampleOutput() *usecase.SignInOutput {
	expires := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	return &usecase.SignInOutput{
		Token:   "issued-token",
		Expires: expires,
		Session: &entity.SessionView{
			User:    entity.SessionUser{ID: "user-1", Username: "alice", Verified: true},
			Expires: &expires,
		},
	}
}

func TestAuthHandler_Providers(t *testing.T) {
	e, uc := newTestServer(t)
	uc.EXPECT().Configuration().Return(usecase.SessionConfiguration{
		Providers: []entity.ProviderDescriptor{
			{ID: entity.ProviderTypeCredentials, Name: "Credentials", Kind: entity.ProviderKindCredentials},
			{ID: entity.ProviderTypeGitHub, Name: "GitHub", Kind: entity.ProviderKindOAuth},
		},
		SignInPage: "/signin",
		Strategy:   "jwt",
		MaxAge:     24 * time.Hour,
	})

	rec, env := do(e, http.MethodGet, "/auth/providers", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got ProvidersResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "/signin", got.SignInPage)
	assert.Equal(t, "jwt", got.Strategy)
	assert.Equal(t, int64(86400), got.MaxAgeSeconds)
	assert.Len(t, got.Providers, 2)
}

func TestAuthHandler_SignInWithCredentials(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().
			SignInWithCredentials(mock.Anything, entity.Credentials{Identifier: "alice", Password: "s3cret"}).
			Return(sampleOutput(), nil)

		rec, env := do(e, http.MethodPost, "/auth/signin/credentials", `{"identifier":"alice","password":"s3cret"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got SignInResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "issued-token", got.Token)
		assert.Equal(t, "user-1", got.Session.User.ID)
	})

	t.Run("missing identifier fails validation", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := do(e, http.MethodPost, "/auth/signin/credentials", `{"password":"s3cret"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.CodeValidationFailed, env.Error.Code)
	})

	t.Run("empty password still reaches the directory", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().
			SignInWithCredentials(mock.Anything, entity.Credentials{Identifier: "alice", Password: ""}).
			Return(nil, domainerrors.ErrAccountNotVerified)

		rec, env := do(e, http.MethodPost, "/auth/signin/credentials", `{"identifier":"alice"}`, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.CodeAccountNotVerified, env.Error.Code)
		assert.Equal(t, "Please verify your account before login", env.Error.Message)
	})

	t.Run("credential errors keep their literal message", func(t *testing.T) {
		tests := []struct {
			err        error
			wantStatus int
			wantCode   string
			wantMsg    string
		}{
			{domainerrors.ErrUserNotFound, http.StatusUnauthorized, domainerrors.CodeUserNotFound, "No user found with this email"},
			{domainerrors.ErrAccountNotVerified, http.StatusForbidden, domainerrors.CodeAccountNotVerified, "Please verify your account before login"},
			{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Wrong password"},
		}

		for _, tt := range tests {
			t.Run(tt.wantCode, func(t *testing.T) {
				e, uc := newTestServer(t)
				uc.EXPECT().SignInWithCredentials(mock.Anything, mock.Anything).Return(nil, tt.err)

				rec, env := do(e, http.MethodPost, "/auth/signin/credentials", `{"identifier":"alice","password":"x"}`, "")
				assert.Equal(t, tt.wantStatus, rec.Code)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				assert.Equal(t, tt.wantMsg, env.Error.Message)
			})
		}
	})
}

func TestAuthHandler_SignInWithOAuth(t *testing.T) {
	t.Run("google id token", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().
			SignInWithOAuth(mock.Anything, usecase.OAuthSignInInput{Provider: entity.ProviderTypeGoogle, IDToken: "raw-id-token"}).
			Return(sampleOutput(), nil)

		rec, _ := do(e, http.MethodPost, "/auth/signin/google", `{"id_token":"raw-id-token"}`, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("github code", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().
			SignInWithOAuth(mock.Anything, usecase.OAuthSignInInput{Provider: entity.ProviderTypeGitHub, Code: "gh-code"}).
			Return(nil, domainerrors.ErrOAuthFailed)

		rec, env := do(e, http.MethodPost, "/auth/signin/github", `{"code":"gh-code"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerrors.CodeOAuthFailed, env.Error.Code)
	})

	t.Run("unknown provider", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := do(e, http.MethodPost, "/auth/signin/twitter", `{"code":"x"}`, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.CodeProviderNotFound, env.Error.Code)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("without token returns default view", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().GetSession(mock.Anything, "").Return(&entity.SessionView{}, nil)

		rec, env := do(e, http.MethodGet, "/auth/session", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.SessionView
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Empty(t, got.User.ID)
	})

	t.Run("with token projects session", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().GetSession(mock.Anything, "tok").Return(sampleOutput().Session, nil)

		rec, env := do(e, http.MethodGet, "/auth/session", "", "tok")
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.SessionView
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "alice", got.User.Username)
		assert.True(t, got.User.Verified)
	})
}

func TestAuthHandler_RefreshAndSignOut(t *testing.T) {
	t.Run("refresh requires bearer", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := do(e, http.MethodPost, "/auth/session/refresh", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerrors.CodeUnauthorized, env.Error.Code)
	})

	t.Run("refresh re-issues", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().RefreshSession(mock.Anything, "tok").Return(sampleOutput(), nil)

		rec, _ := do(e, http.MethodPost, "/auth/session/refresh", "", "tok")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sign out", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().SignOut(mock.Anything, "tok").Return(nil)

		rec, _ := do(e, http.MethodPost, "/auth/signout", "", "tok")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

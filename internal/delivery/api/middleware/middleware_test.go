package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"authgate/internal/delivery/api/response"
	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestSessionMiddleware_Extract(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc.def", want: "abc.def"},
		{name: "missing header", header: "", want: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "empty token", header: "Bearer   ", want: ""},
	}

	m := NewSessionMiddleware()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.header)

			var got string
			err := m.Extract(func(c echo.Context) error {
				got = deliverycontext.GetSessionToken(c)

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionMiddleware_Require(t *testing.T) {
	m := NewSessionMiddleware()
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, rec := newContext("Bearer token-1")
	require.NoError(t, m.Require(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = newContext("")
	err := m.Require(next)(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "credential error keeps literal message",
			err:         errors.Wrap(domainerrors.ErrInvalidCredentials, "authorize credentials"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    domainerrors.CodeInvalidCredentials,
			wantMessage: "Wrong password",
		},
		{
			name:        "not verified",
			err:         domainerrors.ErrAccountNotVerified,
			wantStatus:  http.StatusForbidden,
			wantCode:    domainerrors.CodeAccountNotVerified,
			wantMessage: "Please verify your account before login",
		},
		{
			name:        "validation details are exposed",
			err:         domainerrors.ErrValidationFailed.WithDetails("Password required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.CodeValidationFailed,
			wantMessage: "Invalid input",
			wantDetails: "Password required",
		},
		{
			name:        "echo error",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "req-abc-123", keep: true},
		{name: "missing id generated", incoming: ""},
		{name: "id with newline replaced", incoming: "req\ninjected"},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var fromCtx string
			err := m.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	run := func(debug bool, path string, handler echo.HandlerFunc) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer secret-token")
		c := echo.New().NewContext(req, httptest.NewRecorder())
		_ = m.Handle(handler)(c)

		return buf.String()
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	fail := func(echo.Context) error { return domainerrors.ErrInvalidCredentials }

	assert.Empty(t, run(false, "/auth/session", ok))
	assert.Contains(t, run(true, "/auth/session", ok), "status=200")

	out := run(false, "/auth/signin/credentials", fail)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=401")
	assert.NotContains(t, out, "secret-token")

	assert.Empty(t, run(true, "/health", ok))
}

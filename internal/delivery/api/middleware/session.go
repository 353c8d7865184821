package middleware

import (
	"strings"

	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// SessionMiddleware lifts the bearer session token off the Authorization header.
type SessionMiddleware struct{}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Extract stores the bearer token when one is present and never rejects the request.
func (m *SessionMiddleware) Extract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if raw, ok := bearerToken(c); ok {
			deliverycontext.SetSessionToken(c, raw)
		}

		return next(c)
	}
}

// Require rejects requests without a bearer token with ErrUnauthorized.
func (m *SessionMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("bearer token is missing"))
		}

		deliverycontext.SetSessionToken(c, raw)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	raw := strings.TrimSpace(authHeader[len(bearerPrefix):])

	return raw, raw != ""
}

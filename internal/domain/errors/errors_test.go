package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInvalidCredentials.WithDetails("bcrypt mismatch")
	wrapped := errors.Wrap(detailed, "credential sign-in")

	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))
	assert.False(t, errors.Is(wrapped, ErrUserNotFound))
	assert.Equal(t, "Wrong password", detailed.Message())
	assert.Equal(t, "bcrypt mismatch", detailed.Details())
	assert.Equal(t, "Wrong password: bcrypt mismatch", detailed.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "user not found", err: errors.Wrap(ErrUserNotFound, "lookup"), want: CodeUserNotFound},
		{name: "not verified", err: ErrAccountNotVerified, want: CodeAccountNotVerified},
		{name: "malformed hash", err: errors.WithStack(ErrMalformedHash), want: CodeMalformedHash},
		{name: "database", err: NewDatabaseExecuteError(stderrors.New("boom"), "create"), want: "DATABASE_EXECUTE_FAILED"},
		{name: "plain", err: stderrors.New("plain"), want: CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestCredentialErrorsHaveDistinctStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrUserNotFound.HTTPCode())
	assert.Equal(t, http.StatusForbidden, ErrAccountNotVerified.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, ErrMalformedHash.HTTPCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "find user")

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "database execution failed")
}

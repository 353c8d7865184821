package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "authgate/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionSweeper_DisabledReturnsImmediately(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	s := newSessionSweeper(uc, discardLogger(), time.Millisecond, false)

	assert.NoError(t, s.Serve(context.Background()))
}

func TestSessionSweeper_SweepsUntilStopped(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	swept := make(chan struct{}, 1)
	uc.EXPECT().CleanupExpiredSessions(mock.Anything).
		Run(func(context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(2, nil)

	s := newSessionSweeper(uc, discardLogger(), time.Millisecond, true)

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweeper never ran")
	}

	assert.NoError(t, s.stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSessionSweeper_ErrorIsLogged(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	uc.EXPECT().CleanupExpiredSessions(mock.Anything).Return(0, errors.New("db down")).Once()

	s := newSessionSweeper(uc, discardLogger(), time.Hour, true)
	s.sweep(context.Background())
}

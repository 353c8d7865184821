package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("duplicate key is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, errors.Wrap(gorm.ErrDuplicatedKey, "insert"))
		assert.Empty(t, buf.String())
	})

	t.Run("request-scoped logger is used", func(t *testing.T) {
		l, _ := newBufferedGormLogger(false)
		var scoped bytes.Buffer
		reqCtx := deliverycontext.WithLogger(ctx, slog.New(slog.NewTextHandler(&scoped, nil)).With("request_id", "req-9"))

		l.Trace(reqCtx, time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, scoped.String(), "request_id=req-9")
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedGormLogger(true)
	filter, ok := l.(interface {
		ParamsFilter(ctx context.Context, sql string, params ...any) (string, []any)
	})
	require.True(t, ok)

	sql, params := filter.ParamsFilter(context.Background(), "SELECT * FROM users WHERE password_hash = $1", "$2a$10$secret")
	assert.Equal(t, "SELECT * FROM users WHERE password_hash = $1", sql)
	assert.Nil(t, params)
}

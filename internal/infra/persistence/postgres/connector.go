package postgres

import (
	"context"

	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pingConnector checks the pool before each authentication flow.
type pingConnector struct {
	db *gorm.DB
}

// NewConnector is the constructor for pingConnector.
func NewConnector(db *gorm.DB) repository.Connector {
	return &pingConnector{db: db}
}

// Ensure pings the database. database/sql reconnects on its own, so a successful
// ping is all the setup a flow needs; repeated calls are cheap.
func (c *pingConnector) Ensure(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(domainerrors.ErrDirectoryUnavailable.WithDetails(err.Error()), "failed to get sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(domainerrors.ErrDirectoryUnavailable.WithDetails(err.Error()), "failed to ping user directory")
	}

	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/dquintero/hr-records/internal/config"
	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/migrations"
)

// Storages aggregates the repositories backing the application: the
// credential store and the employee record store.
type Storages struct {
	UserRepository     UserRepository
	EmployeeRepository EmployeeRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations,
// and wires the repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		EmployeeRepository: NewEmployeeRepository(db, log),
	}, nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/klwxsrx/adoption-portal/pkg/log"
	"github.com/klwxsrx/adoption-portal/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(migrations ...sql.Migrations)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

// MustRegister executes the pending migrations of every source right away.
func (s *sqlMigrations) MustRegister(migrations ...sql.Migrations) {
	for _, m := range migrations {
		err := sql.NewMigration(s.db, m, s.logger).Execute(s.ctx)
		if err != nil {
			panic(fmt.Errorf("execute migrations: %w", err))
		}
	}
}

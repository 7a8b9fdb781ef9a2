package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/adoption-portal/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

type (
	Migrations interface {
		IDs() ([]string, error)
		SQL(id string) (string, error)
	}

	fsMigrations struct {
		fs fs.ReadDirFS
	}
)

// FSMigrations treats every file at the root of the filesystem as a migration. Files are
// applied in lexical order of their names.
func FSMigrations(migrations fs.ReadDirFS) Migrations {
	return fsMigrations{migrations}
}

func (m fsMigrations) IDs() ([]string, error) {
	entries, err := m.fs.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}

	sort.Strings(result)
	return result, nil
}

func (m fsMigrations) SQL(id string) (string, error) {
	content, err := fs.ReadFile(m.fs, id)
	if err != nil {
		return "", err
	}

	return string(content), nil
}

type Migration struct {
	db         Database
	migrations Migrations
	logger     log.Logger
}

func NewMigration(db Database, migrations Migrations, logger log.Logger) *Migration {
	return &Migration{db, migrations, logger}
}

// Execute applies pending migrations, each in its own transaction. Concurrent instances
// are serialized with an advisory lock, so a migration runs once.
func (m *Migration) Execute(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	ids, err := m.migrations.IDs()
	if err != nil {
		return fmt.Errorf("get migration ids: %w", err)
	}

	for _, id := range ids {
		err = m.perform(ctx, id)
		if err != nil {
			return fmt.Errorf("migration %s: %w", id, err)
		}
	}

	return nil
}

func (m *Migration) perform(ctx context.Context, id string) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	performed, err := m.process(ctx, tx, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	if performed {
		m.logger.WithField("migrationID", id).Info(ctx, "migration executed")
	}
	return nil
}

func (m *Migration) process(ctx context.Context, tx ClientTx, id string) (bool, error) {
	err := withTransactionLevelLock(ctx, migrationLock, tx)
	if err != nil {
		return false, err
	}

	var exists bool
	err = tx.GetContext(ctx, &exists, `select exists(select 1 from migration where id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check migration: %w", err)
	}
	if exists {
		return false, nil
	}

	migrationSQL, err := m.migrations.SQL(id)
	if err != nil {
		return false, fmt.Errorf("read migration: %w", err)
	}
	if strings.TrimSpace(migrationSQL) == "" {
		return false, errors.New("empty migration")
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = tx.ExecContext(ctx, query)
		if err != nil {
			return false, err
		}
	}

	_, err = tx.ExecContext(ctx, `insert into migration values ($1)`, id)
	if err != nil {
		return false, fmt.Errorf("create migration record: %w", err)
	}

	return true, nil
}

package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	pkgsql "github.com/klwxsrx/adoption-portal/pkg/sql"
	pkgtime "github.com/klwxsrx/adoption-portal/pkg/time"
)

const credentialTable = "credential"

type Store struct {
	client pkgsql.Client
	clock  pkgtime.Clock
}

func NewStore(client pkgsql.Client, clock pkgtime.Clock) *Store {
	return &Store{
		client: client,
		clock:  clock,
	}
}

func (s *Store) Get(ctx context.Context, key auth.Key) (auth.Token, bool, error) {
	query, args, err := sq.
		Select("token").
		From(credentialTable).
		Where(sq.Eq{"key": string(key)}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build query: %w", err)
	}

	var token string
	err = s.client.GetContext(ctx, &token, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credential %s: %w", key, err)
	}

	return auth.Token(token), true, nil
}

func (s *Store) Set(ctx context.Context, key auth.Key, token auth.Token) error {
	query, args, err := sq.
		Insert(credentialTable).
		Columns("key", "token", "updated_at").
		Values(string(key), string(token), s.clock.Now(ctx)).
		Suffix("on conflict (key) do update set token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("store credential %s: %w", key, err)
	}

	return nil
}

func (s *Store) Remove(ctx context.Context, key auth.Key) error {
	query, args, err := sq.
		Delete(credentialTable).
		Where(sq.Eq{"key": string(key)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove credential %s: %w", key, err)
	}

	return nil
}

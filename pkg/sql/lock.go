package sql

import (
	"context"
	"fmt"
	"hash/fnv"
)

func withTransactionLevelLock(ctx context.Context, name string, tx ClientTx) error {
	_, err := tx.ExecContext(ctx, "select pg_advisory_xact_lock($1)", getLockIDByName(name))
	if err != nil {
		return fmt.Errorf("get lock for %s: %w", name, err)
	}

	return nil
}

func getLockIDByName(name string) int64 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(name))
	return int64(hash.Sum64())
}

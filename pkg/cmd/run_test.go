package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/adoption-portal/pkg/cmd"
	"github.com/klwxsrx/adoption-portal/pkg/log"
)

func TestRun_StopsWhenAwaiterCompletes(t *testing.T) {
	listener := func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}
	awaiter := func(context.Context) error {
		return nil
	}

	err := cmd.Run(context.Background(), log.New(log.LevelDisabled), listener, awaiter)
	assert.NoError(t, err)
}

func TestRun_ReturnsJobError(t *testing.T) {
	errListen := errors.New("address already in use")
	listener := func(context.Context) error {
		return errListen
	}
	awaiter := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	err := cmd.Run(context.Background(), log.New(log.LevelDisabled), listener, awaiter)
	assert.ErrorIs(t, err, errListen)
}

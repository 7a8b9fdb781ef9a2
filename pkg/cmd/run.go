package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/adoption-portal/pkg/log"
	"github.com/klwxsrx/adoption-portal/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run blocks until the first job returns. A job returning nil (like the signal awaiter)
// stops the others without it being reported as an error.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")

	group := worker.NewFailFastGroup(ctx)
	for _, job := range jobs {
		group.Do(func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		})
	}

	err := group.Wait()
	if errors.Is(err, errCompleted) {
		return nil
	}

	return err
}

package worker

import (
	"context"
	"sync"
)

type Group interface {
	Do(ContextJob)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	wg        sync.WaitGroup

	errOnce sync.Once
	err     error
}

// NewFailFastGroup cancels the context passed to every job as soon as one of them fails.
// Wait returns the first error.
func NewFailFastGroup(ctx context.Context) Group {
	ctx, cancel := context.WithCancel(ctx)
	return &group{
		ctx:       ctx,
		ctxCancel: cancel,
	}
}

func (g *group) Do(job ContextJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		err := job(g.ctx)
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.err = err
			g.ctxCancel()
		})
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.ctxCancel()
	return g.err
}

package enrich

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loop runs its sub-stages a fixed number of times, passing the iteration
// index down so each run writes iteration-scoped keys. The count is fixed at
// construction; there is no convergence condition. The loop fans a uniform
// body out over a known set of sub-problems (one iteration per social
// platform, or per CEO candidate).
//
// When Parallel is set, iterations run concurrently: their output keys are
// disjoint by construction, State.Set is safe under concurrent writes to
// distinct keys, and all iterations are joined before the loop completes.
type Loop struct {
	Name       string
	Stages     []Runner
	Iterations int
	Parallel   bool
}

// NewLoop builds a loop that runs stages in order, iterations times.
func NewLoop(name string, iterations int, stages ...Runner) *Loop {
	return &Loop{Name: name, Stages: stages, Iterations: iterations}
}

func (l *Loop) run(ctx context.Context, ec execContext) error {
	if l.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < l.Iterations; i++ {
			g.Go(func() error {
				return l.runIteration(gctx, ec, i)
			})
		}
		return g.Wait()
	}
	for i := 0; i < l.Iterations; i++ {
		if err := l.runIteration(ctx, ec, i); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) runIteration(ctx context.Context, ec execContext, iter int) error {
	ec.iter = iter
	for _, stage := range l.Stages {
		if err := stage.run(ctx, ec); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) check(written map[string]bool, _ int) error {
	for i := 0; i < l.Iterations; i++ {
		for _, stage := range l.Stages {
			if err := stage.check(written, i); err != nil {
				return err
			}
		}
	}
	return nil
}

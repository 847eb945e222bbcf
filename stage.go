package enrich

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Runner is a Stage or a composite of stages. The pipeline driver walks a
// tree of Runners: composites enforce ordering, stages do the work.
type Runner interface {
	run(ctx context.Context, ec execContext) error
	// check simulates the key flow at construction time: it verifies that
	// every required input is written by an earlier stage and that no two
	// stages write the same key.
	check(written map[string]bool, iter int) error
}

// execContext carries the per-run collaborators down the runner tree.
type execContext struct {
	state *State
	log   *zap.Logger
	iter  int
}

// KeyFunc derives a stage's output key from the enclosing loop's iteration
// index. Stages outside a loop ignore the index.
type KeyFunc func(iter int) string

// Key names a fixed output key.
func Key(name string) KeyFunc {
	return func(int) string { return name }
}

// IndexedKey names an iteration-scoped output key; format must contain a
// single %d verb.
func IndexedKey(format string) KeyFunc {
	return func(iter int) string { return fmt.Sprintf(format, iter) }
}

// StageFunc computes the value for a stage's output key. iter is the
// enclosing loop's iteration index (0 outside a loop).
type StageFunc func(ctx context.Context, st *State, iter int) (any, error)

// Stage is the atomic unit of the pipeline: it reads its declared input
// keys, performs at most one capability invocation, and writes exactly one
// key. A capability failure never aborts the pipeline; the stage writes
// Fallback instead and the run continues with degraded data.
type Stage struct {
	Name     string
	Inputs   []string // required; must be written by an earlier stage
	Optional []string // read via GetOptional, absent resolves to a default
	Output   KeyFunc
	Fallback any
	Run      StageFunc
}

func (s *Stage) run(ctx context.Context, ec execContext) error {
	key := s.Output(ec.iter)
	value, err := s.Run(ctx, ec.state, ec.iter)
	if err != nil {
		ec.log.Warn("stage degraded to fallback",
			zap.String("stage", s.Name),
			zap.String("key", key),
			zap.Error(err))
		value = s.Fallback
	}
	if err := ec.state.Set(key, value); err != nil {
		return fmt.Errorf("stage %s: %w", s.Name, err)
	}
	ec.log.Debug("stage complete", zap.String("stage", s.Name), zap.String("key", key))
	return nil
}

func (s *Stage) check(written map[string]bool, iter int) error {
	for _, in := range s.Inputs {
		if !written[in] {
			return fmt.Errorf("stage %s: %w", s.Name, &MissingKeyError{Key: in})
		}
	}
	key := s.Output(iter)
	if written[key] {
		return fmt.Errorf("stage %s: %w", s.Name, &DuplicateWriteError{Key: key})
	}
	written[key] = true
	return nil
}

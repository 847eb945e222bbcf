package enrich

import "context"

// Sequence runs its stages strictly in order. A later stage may read any
// key written earlier in the same sequence or in an enclosing one.
type Sequence struct {
	Name   string
	Stages []Runner
}

// NewSequence builds a named sequence of stages.
func NewSequence(name string, stages ...Runner) *Sequence {
	return &Sequence{Name: name, Stages: stages}
}

func (s *Sequence) run(ctx context.Context, ec execContext) error {
	for _, stage := range s.Stages {
		if err := stage.run(ctx, ec); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sequence) check(written map[string]bool, iter int) error {
	for _, stage := range s.Stages {
		if err := stage.check(written, iter); err != nil {
			return err
		}
	}
	return nil
}

package enrich

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
)

func noopStage(name, output string) *Stage {
	return &Stage{
		Name:     name,
		Output:   Key(output),
		Fallback: "",
		Run: func(context.Context, *State, int) (any, error) {
			return "value", nil
		},
	}
}

func TestStageFailSoftWritesFallback(t *testing.T) {
	stage := &Stage{
		Name:     "broken",
		Output:   Key("out"),
		Fallback: "default",
		Run: func(context.Context, *State, int) (any, error) {
			return nil, errors.New("provider exploded")
		},
	}
	st := NewState()
	ec := execContext{state: st, log: zap.NewNop()}
	if err := stage.run(context.Background(), ec); err != nil {
		t.Fatalf("fail-soft stage must not propagate: %v", err)
	}
	v, err := st.Get("out")
	if err != nil {
		t.Fatalf("output key not written: %v", err)
	}
	if v != "default" {
		t.Fatalf("expected fallback, got %v", v)
	}
}

func TestSequenceOrder(t *testing.T) {
	var order []string
	mk := func(name, output string) *Stage {
		return &Stage{
			Name:   name,
			Output: Key(output),
			Run: func(context.Context, *State, int) (any, error) {
				order = append(order, name)
				return name, nil
			},
		}
	}
	seq := NewSequence("s", mk("first", "a"), mk("second", "b"), mk("third", "c"))
	ec := execContext{state: NewState(), log: zap.NewNop()}
	if err := seq.run(context.Background(), ec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("unexpected order: %v", order)
		}
	}
}

func TestSequenceCheckMissingInput(t *testing.T) {
	stage := &Stage{
		Name:   "reader",
		Inputs: []string{"never_written"},
		Output: Key("out"),
		Run:    func(context.Context, *State, int) (any, error) { return nil, nil },
	}
	err := NewSequence("s", stage).check(map[string]bool{}, 0)
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
	if missing.Key != "never_written" {
		t.Fatalf("unexpected key: %q", missing.Key)
	}
}

func TestSequenceCheckDuplicateOutput(t *testing.T) {
	err := NewSequence("s", noopStage("a", "same"), noopStage("b", "same")).check(map[string]bool{}, 0)
	var dup *DuplicateWriteError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateWriteError, got %v", err)
	}
}

func TestLoopIterationScopedKeys(t *testing.T) {
	stage := &Stage{
		Name:   "worker",
		Output: IndexedKey("result_%d"),
		Run: func(_ context.Context, _ *State, iter int) (any, error) {
			return fmt.Sprintf("iteration %d", iter), nil
		},
	}
	loop := NewLoop("l", 3, stage)
	st := NewState()
	if err := loop.run(context.Background(), execContext{state: st, log: zap.NewNop()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		v, err := st.Get(fmt.Sprintf("result_%d", i))
		if err != nil {
			t.Fatalf("iteration %d key not written: %v", i, err)
		}
		if v != fmt.Sprintf("iteration %d", i) {
			t.Fatalf("iteration %d wrote %v", i, v)
		}
	}
}

func TestLoopRunsFixedCount(t *testing.T) {
	count := 0
	stage := &Stage{
		Name:   "counter",
		Output: IndexedKey("n_%d"),
		Run: func(context.Context, *State, int) (any, error) {
			count++
			return count, nil
		},
	}
	loop := NewLoop("l", 5, stage)
	if err := loop.run(context.Background(), execContext{state: NewState(), log: zap.NewNop()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 iterations, got %d", count)
	}
}

func TestLoopParallelJoinsAllIterations(t *testing.T) {
	stage := &Stage{
		Name:   "worker",
		Output: IndexedKey("result_%d"),
		Run: func(_ context.Context, _ *State, iter int) (any, error) {
			return iter, nil
		},
	}
	loop := NewLoop("l", 16, stage)
	loop.Parallel = true
	st := NewState()
	if err := loop.run(context.Background(), execContext{state: st, log: zap.NewNop()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Every iteration must have completed before run returned.
	for i := 0; i < 16; i++ {
		if _, err := st.Get(fmt.Sprintf("result_%d", i)); err != nil {
			t.Fatalf("iteration %d missing: %v", i, err)
		}
	}
}

func TestLoopCheckScopesKeysPerIteration(t *testing.T) {
	// An iteration-scoped output passes validation for any loop length…
	loop := NewLoop("l", 4, &Stage{
		Name:   "ok",
		Output: IndexedKey("out_%d"),
		Run:    func(context.Context, *State, int) (any, error) { return nil, nil },
	})
	if err := loop.check(map[string]bool{}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// …while a fixed output inside a loop collides with itself.
	bad := NewLoop("l", 2, noopStage("bad", "fixed"))
	err := bad.check(map[string]bool{}, 0)
	var dup *DuplicateWriteError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateWriteError, got %v", err)
	}
}

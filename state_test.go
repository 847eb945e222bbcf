package enrich

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestStateSetGet(t *testing.T) {
	st := NewState()
	if err := st.Set("website_url", "https://acme.example"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := st.Get("website_url")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "https://acme.example" {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestStateDuplicateWrite(t *testing.T) {
	st := NewState()
	if err := st.Set("k", "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := st.Set("k", "v2")
	var dup *DuplicateWriteError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateWriteError, got %v", err)
	}
	if dup.Key != "k" {
		t.Fatalf("unexpected key in error: %q", dup.Key)
	}
	// The first write must survive.
	v, _ := st.Get("k")
	if v != "v1" {
		t.Fatalf("duplicate write overwrote value: %v", v)
	}
}

func TestStateMissingKey(t *testing.T) {
	st := NewState()
	_, err := st.Get("absent")
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
}

func TestStateGetOptional(t *testing.T) {
	st := NewState()
	if _, ok := st.GetOptional("absent"); ok {
		t.Fatal("expected absent key")
	}
	if err := st.Set("present", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := st.GetOptional("present")
	if !ok || v != "x" {
		t.Fatalf("unexpected optional read: %v %v", v, ok)
	}
}

func TestStateConcurrentDistinctKeys(t *testing.T) {
	st := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := st.Set(fmt.Sprintf("key_%d", i), i); err != nil {
				t.Errorf("set key_%d: %v", i, err)
			}
		}()
	}
	wg.Wait()
	for i := 0; i < 32; i++ {
		if _, err := st.Get(fmt.Sprintf("key_%d", i)); err != nil {
			t.Fatalf("get key_%d: %v", i, err)
		}
	}
}

func TestStateTypedHelpers(t *testing.T) {
	st := NewState()
	if err := st.Set("names", []string{"Alice Lee", "Bob Kim"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.list("names"); len(got) != 2 {
		t.Fatalf("unexpected list: %v", got)
	}
	if got := st.text("names"); got != "" {
		t.Fatalf("text on a list should be empty, got %q", got)
	}
	if got := st.text("absent"); got != "" {
		t.Fatalf("text on an absent key should be empty, got %q", got)
	}
}

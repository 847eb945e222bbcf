package enrich

import "fmt"

// ProviderError wraps a search provider failure.
type ProviderError struct {
	Query string
	Err   error
}

func (e *ProviderError) Error() string { return fmt.Sprintf("search %q: %v", e.Query, e.Err) }
func (e *ProviderError) Unwrap() error { return e.Err }

// FetchError wraps a page fetch failure.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// InferenceError wraps a model failure or a structured response that does
// not match the shape the caller declared.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string { return fmt.Sprintf("inference: %v", e.Err) }
func (e *InferenceError) Unwrap() error { return e.Err }

// MissingKeyError reports a read of a key that no earlier stage writes.
// It indicates an incorrectly constructed pipeline, not a runtime data error.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string { return fmt.Sprintf("state key %q is not set", e.Key) }

// DuplicateWriteError reports a second write to an already-written key,
// which violates the single-writer-per-key invariant.
type DuplicateWriteError struct {
	Key string
}

func (e *DuplicateWriteError) Error() string {
	return fmt.Sprintf("state key %q is already set", e.Key)
}

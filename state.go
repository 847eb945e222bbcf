package enrich

import "sync"

// State is the shared store threading data between pipeline stages. Each key
// is written by exactly one stage and read by zero or more later stages.
// Values are strings, string lists, or structured records. A State lives for
// a single pipeline run and is discarded afterwards.
type State struct {
	mu      sync.Mutex
	entries map[string]any
}

// NewState creates an empty state store.
func NewState() *State {
	return &State{entries: make(map[string]any)}
}

// Set stores value under key. Writing a key twice returns a
// DuplicateWriteError; distinct keys may be written concurrently.
func (s *State) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; exists {
		return &DuplicateWriteError{Key: key}
	}
	s.entries[key] = value
	return nil
}

// Get returns the value stored under key, or a MissingKeyError if it has
// not been written yet.
func (s *State) Get(key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return v, nil
}

// GetOptional returns the value stored under key and whether it exists.
// Stages that tolerate missing upstream data use this instead of Get.
func (s *State) GetOptional(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// text returns the string stored under key, or "" when the key is absent
// or holds a non-string value.
func (s *State) text(key string) string {
	v, ok := s.GetOptional(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// list returns the string list stored under key, or nil when absent.
func (s *State) list(key string) []string {
	v, ok := s.GetOptional(key)
	if !ok {
		return nil
	}
	items, _ := v.([]string)
	return items
}

package testhelpers

import "sync"

// MemoryFocus is a components.FocusTracker that remembers focus changes.
type MemoryFocus struct {
	mu      sync.Mutex
	current string
	history []string
}

func NewMemoryFocus(initial string) *MemoryFocus {
	return &MemoryFocus{current: initial}
}

func (f *MemoryFocus) Focused() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *MemoryFocus) Focus(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = id
	f.history = append(f.history, id)
}

func (f *MemoryFocus) History() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.history...)
}

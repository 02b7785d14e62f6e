package components

import "sync"

// FocusTracker is whatever owns keyboard focus in the hosting front end.
type FocusTracker interface {
	Focused() string
	Focus(id string)
}

// FocusRegistry lists the actionable controls of a modal in tab order.
type FocusRegistry struct {
	mu       sync.Mutex
	controls []string
}

func NewFocusRegistry(controls ...string) *FocusRegistry {
	return &FocusRegistry{controls: append([]string(nil), controls...)}
}

func (r *FocusRegistry) Register(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.controls {
		if c == id {
			return
		}
	}
	r.controls = append(r.controls, id)
}

// First is the control that receives focus when the modal opens.
func (r *FocusRegistry) First() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.controls) == 0 {
		return "", false
	}
	return r.controls[0], true
}

func (r *FocusRegistry) Controls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.controls...)
}

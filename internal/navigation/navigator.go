package navigation

import (
	"sync"

	"github.com/homeveda/portal-client/internal/utils"
)

// Navigator moves the portal to another page.
type Navigator interface {
	Push(route string)
}

// History is an in-memory Navigator that records every push.
type History struct {
	mu     sync.Mutex
	routes []string
	onPush func(route string)
}

// NewHistory returns an empty history. onPush, when non-nil, observes each push.
func NewHistory(onPush func(route string)) *History {
	return &History{onPush: onPush}
}

func (h *History) Push(route string) {
	h.mu.Lock()
	h.routes = append(h.routes, route)
	cb := h.onPush
	h.mu.Unlock()

	utils.Logger.WithField("route", route).Debug("Navigating")
	if cb != nil {
		cb(route)
	}
}

// Current returns the last pushed route, or "" when nothing was pushed.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.routes) == 0 {
		return ""
	}
	return h.routes[len(h.routes)-1]
}

func (h *History) Routes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.routes))
	copy(out, h.routes)
	return out
}

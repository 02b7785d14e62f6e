package testhelpers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/api"
	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/navigation"
	"github.com/homeveda/portal-client/internal/repositories"
	"github.com/homeveda/portal-client/internal/services"
)

// TestHelper wires the client's collaborators against a fake backend and a
// manual clock.
type TestHelper struct {
	T   *testing.T
	Ctx context.Context

	Backend   *FakeBackend
	Client    *api.Client
	Scheduler *ManualScheduler
	History   *navigation.History
	Session   repositories.SessionRepository
	Notifier  *components.Notifier
	Dialog    *components.ConfirmDialog
	Focus     *MemoryFocus
	Validator services.ValidationService

	AdminAuth *services.AuthContext
	UserAuth  *services.AuthContext

	mu    sync.Mutex
	shown []*components.Notification
}

func NewTestHelper(t *testing.T) *TestHelper {
	h := &TestHelper{
		T:         t,
		Ctx:       context.Background(),
		Backend:   NewFakeBackend(t),
		Scheduler: NewManualScheduler(),
		History:   navigation.NewHistory(nil),
		Session:   repositories.NewMemorySessionRepository(),
		Focus:     NewMemoryFocus("page-body"),
		Validator: services.NewValidationService(),
	}

	client, err := api.NewClient(h.Backend.URL(), 5*time.Second, 0, time.Millisecond)
	require.NoError(t, err)
	h.Client = client

	h.Notifier = components.NewNotifier(h.Scheduler, func(n *components.Notification) {
		h.mu.Lock()
		h.shown = append(h.shown, n)
		h.mu.Unlock()
	})
	h.Dialog = components.NewConfirmDialog(h.Focus)
	h.AdminAuth = services.NewAuthContext(services.RoleAdmin, h.Session)
	h.UserAuth = services.NewAuthContext(services.RoleUser, h.Session)
	return h
}

// LoginAdmin stores an admin token as a prior login would have.
func (h *TestHelper) LoginAdmin(token string) {
	require.NoError(h.T, h.AdminAuth.Persist(h.Ctx, token, "admin@homeveda.in"))
}

// UnconfiguredClient returns a client with no backend URL.
func (h *TestHelper) UnconfiguredClient() *api.Client {
	client, err := api.NewClient("", time.Second, 0, time.Millisecond)
	require.NoError(h.T, err)
	return client
}

// Notifications returns every notification shown so far, oldest first.
func (h *TestHelper) Notifications() []*components.Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*components.Notification(nil), h.shown...)
}

// LastNotification fails the test when nothing was shown.
func (h *TestHelper) LastNotification() *components.Notification {
	shown := h.Notifications()
	require.NotEmpty(h.T, shown, "expected a notification")
	return shown[len(shown)-1]
}

// RequireNotification asserts the latest notification's severity and text.
func (h *TestHelper) RequireNotification(severity components.Severity, message string) {
	h.T.Helper()
	n := h.LastNotification()
	require.Equal(h.T, severity, n.Severity, "notification %q", n.Message)
	require.Equal(h.T, message, n.Message)
}

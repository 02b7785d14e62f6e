package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/metrics"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

var ErrDeleteUnsupported = errors.New("delete_unsupported")

type fetchFunc[T models.Entity] func(ctx context.Context, token string) ([]T, error)

// ListSnapshot is the renderable state of a list view.
type ListSnapshot[T models.Entity] struct {
	Items      []T // after the query and client-side filters
	Total      int // items held before filtering
	Query      string
	Loading    bool
	Error      string
	Generation uint64
}

// listView is the fetch/filter/delete core shared by every list screen.
// Each fetch captures a generation number at dispatch; a result whose
// generation is no longer current is discarded.
type listView[T models.Entity] struct {
	deps        Deps
	auth        *services.AuthContext
	view        string
	loadFailed  string
	remove      func(ctx context.Context, token string, item T) error
	editRoute   func(item T) string
	clientMatch func(item T) bool

	mu         sync.Mutex
	items      []T
	query      string
	loading    bool
	errMsg     string
	generation uint64
	pending    *T
}

func (v *listView[T]) init(deps Deps, auth *services.AuthContext, view, loadFailed string) {
	v.deps = deps.withDefaults()
	v.auth = auth
	v.view = view
	v.loadFailed = loadFailed
}

func (v *listView[T]) log() *logrus.Entry {
	return utils.Logger.WithField("handler", v.view)
}

// load dispatches fetch as the newest generation. It returns
// utils.ErrStaleResponse when a newer load superseded it.
func (v *listView[T]) load(ctx context.Context, fetch fetchFunc[T]) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.loading = true
	v.errMsg = ""
	v.mu.Unlock()

	if !v.deps.Client.Configured() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if gen == v.generation {
			v.loading = false
			v.items = nil
			v.errMsg = constants.MsgBackendNotConfigured
		}
		return utils.ErrBackendNotConfigured
	}

	items, err := fetch(ctx, readToken(ctx, v.auth))

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		metrics.RecordStaleResponse(v.view)
		v.log().WithFields(logrus.Fields{"generation": gen, "current": v.generation}).Debug("Discarding stale list response")
		return utils.ErrStaleResponse
	}
	v.loading = false
	if err != nil {
		v.items = nil
		v.errMsg = utils.RawMessage(err, v.loadFailed)
		v.log().WithError(err).Warn("List fetch failed")
		return err
	}
	v.items = items
	return nil
}

// SetQuery updates the client-side text filter. It never refetches.
func (v *listView[T]) SetQuery(q string) {
	v.mu.Lock()
	v.query = q
	v.mu.Unlock()
}

// Visible returns the held items whose display name contains the query,
// ignoring case, and which pass the view's own client-side filters.
func (v *listView[T]) Visible() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visibleLocked()
}

func (v *listView[T]) visibleLocked() []T {
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if v.query != "" && !utils.ContainsFold(item.DisplayName(), v.query) {
			continue
		}
		if v.clientMatch != nil && !v.clientMatch(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (v *listView[T]) Snapshot() ListSnapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ListSnapshot[T]{
		Items:      v.visibleLocked(),
		Total:      len(v.items),
		Query:      v.query,
		Loading:    v.loading,
		Error:      v.errMsg,
		Generation: v.generation,
	}
}

func (v *listView[T]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// ErrorMessage is the inline error of the last settled fetch.
func (v *listView[T]) ErrorMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Find returns the held item with the given identity key.
func (v *listView[T]) Find(key string) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, item := range v.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// PendingDelete is the entity awaiting confirmation, if any.
func (v *listView[T]) PendingDelete() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pending == nil {
		var zero T
		return zero, false
	}
	return *v.pending, true
}

// RequestDelete asks for confirmation before deleting item. Confirming issues
// exactly one delete call; cancelling issues none.
func (v *listView[T]) RequestDelete(ctx context.Context, item T) error {
	if v.remove == nil {
		return ErrDeleteUnsupported
	}
	if v.deps.Dialog == nil {
		return fmt.Errorf("%s: no confirmation dialog", v.view)
	}

	v.mu.Lock()
	target := item
	v.pending = &target
	v.mu.Unlock()

	name := item.DisplayName()
	err := v.deps.Dialog.Open(components.ConfirmRequest{
		Title:       fmt.Sprintf("Delete %s?", name),
		Description: fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", name),
		OnConfirm: func() {
			v.deleteNow(ctx, target)
			v.clearPending()
		},
		OnCancel: v.clearPending,
	})
	if err != nil {
		v.clearPending()
		return err
	}
	return nil
}

func (v *listView[T]) clearPending() {
	v.mu.Lock()
	v.pending = nil
	v.mu.Unlock()
}

func (v *listView[T]) deleteNow(ctx context.Context, item T) {
	logger := v.log().WithField("key", item.Key())
	if !v.deps.Client.Configured() {
		v.mu.Lock()
		v.errMsg = constants.MsgBackendNotConfigured
		v.mu.Unlock()
		return
	}

	if err := v.remove(ctx, readToken(ctx, v.auth), item); err != nil {
		logger.WithError(err).Warn("Delete failed")
		v.notify(utils.UserMessage(err, constants.MsgDeleteFailed), components.SeverityRed)
		return
	}

	v.mu.Lock()
	for i, it := range v.items {
		if it.Key() == item.Key() {
			v.items = append(v.items[:i:i], v.items[i+1:]...)
			break
		}
	}
	v.mu.Unlock()
	logger.Info("Entity deleted")
	v.notify(constants.MsgDeleted, components.SeverityGreen)
}

func (v *listView[T]) notify(message string, severity components.Severity) {
	if v.deps.Notifier != nil {
		v.deps.Notifier.Show(message, severity)
	}
}

// OpenForEdit navigates to the entity's edit page.
func (v *listView[T]) OpenForEdit(item T) {
	if v.editRoute == nil || v.deps.Navigator == nil {
		return
	}
	v.deps.Navigator.Push(v.editRoute(item))
}

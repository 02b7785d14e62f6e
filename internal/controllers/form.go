package controllers

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/utils"
)

// formState is the submit lifecycle shared by every form view: one submit at
// a time, validation before I/O, a notification for every outcome and an
// optional delayed navigation after success.
type formState struct {
	deps    Deps
	handler string

	mu          sync.Mutex
	submitting  bool
	configError string
	navTimer    utils.Timer
}

func (f *formState) init(deps Deps, handler string) {
	f.deps = deps.withDefaults()
	f.handler = handler
}

func (f *formState) log() *logrus.Entry {
	return utils.Logger.WithField("handler", f.handler)
}

// begin marks the form as submitting. The matching end must be deferred.
func (f *formState) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return utils.ErrSubmitInProgress
	}
	f.submitting = true
	return nil
}

func (f *formState) end() {
	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()
}

// Submitting reports whether a submit is in flight.
func (f *formState) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// ConfigError is the inline configuration message, empty when the backend is
// configured.
func (f *formState) ConfigError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configError
}

// validate runs the draft through the validator and reports the first
// violation as a red notification.
func (f *formState) validate(draft any) error {
	err := f.deps.Validator.Validate(draft)
	if err == nil {
		return nil
	}
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		f.fail(verr.Message)
	} else {
		f.fail(err.Error())
	}
	f.log().WithError(err).Debug("Validation failed")
	return err
}

// ensureConfigured sets or clears the inline configuration error.
func (f *formState) ensureConfigured() error {
	configured := f.deps.Client.Configured()
	f.mu.Lock()
	defer f.mu.Unlock()
	if !configured {
		f.configError = constants.MsgBackendNotConfigured
		f.log().Warn("Submit blocked, backend URL not configured")
		return utils.ErrBackendNotConfigured
	}
	f.configError = ""
	return nil
}

func (f *formState) notify(message string, severity components.Severity) {
	if f.deps.Notifier == nil {
		return
	}
	f.deps.Notifier.Show(message, severity, components.WithDuration(f.deps.NotificationDuration))
}

func (f *formState) succeed(message string) {
	f.notify(message, components.SeverityGreen)
}

func (f *formState) fail(message string) {
	f.notify(message, components.SeverityRed)
}

// after runs fn once delay has elapsed. A later call replaces the pending one.
func (f *formState) after(delay time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.navTimer != nil {
		f.navTimer.Stop()
	}
	f.navTimer = f.deps.Scheduler.AfterFunc(delay, fn)
}

// navigateAfter pushes route once delay has elapsed.
func (f *formState) navigateAfter(delay time.Duration, route string) {
	if f.deps.Navigator == nil {
		return
	}
	f.after(delay, func() { f.deps.Navigator.Push(route) })
}

// Discard cancels a pending delayed action, e.g. when the view is left early.
func (f *formState) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.navTimer != nil {
		f.navTimer.Stop()
		f.navTimer = nil
	}
}

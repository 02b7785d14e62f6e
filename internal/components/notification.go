package components

import (
	"fmt"
	"sync"
	"time"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/utils"
)

// Severity is the notification colour.
type Severity int

const (
	SeverityRed Severity = iota
	SeverityGreen
	SeverityYellow
)

func (s Severity) String() string {
	switch s {
	case SeverityRed:
		return "red"
	case SeverityGreen:
		return "green"
	case SeverityYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseSeverity converts "red", "green" or "yellow" to the enum.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "red":
		return SeverityRed, nil
	case "green":
		return SeverityGreen, nil
	case "yellow":
		return SeverityYellow, nil
	default:
		return -1, fmt.Errorf("invalid severity: %q", s)
	}
}

// Notification is one transient message. It is dismissed at most once,
// whether by its timer or by Close.
type Notification struct {
	Message   string
	Severity  Severity
	AutoClose bool
	Duration  time.Duration

	shownAt time.Time
	sched   utils.Scheduler
	onClose func()
	owner   *Notifier

	mu     sync.Mutex
	timer  utils.Timer
	once   sync.Once
	closed bool
}

// Progress is the remaining fraction of the lifetime, 1 at show time and 0
// once Duration has elapsed. Notifications that do not auto-close stay at 1.
func (n *Notification) Progress() float64 {
	if !n.AutoClose || n.Duration <= 0 {
		return 1
	}
	elapsed := n.sched.Now().Sub(n.shownAt)
	remaining := 1 - float64(elapsed)/float64(n.Duration)
	switch {
	case remaining < 0:
		return 0
	case remaining > 1:
		return 1
	default:
		return remaining
	}
}

// Close dismisses the notification. Repeated calls are no-ops.
func (n *Notification) Close() {
	n.once.Do(func() {
		n.mu.Lock()
		n.closed = true
		if n.timer != nil {
			n.timer.Stop()
		}
		n.mu.Unlock()

		if n.owner != nil {
			n.owner.release(n)
		}
		if n.onClose != nil {
			n.onClose()
		}
	})
}

func (n *Notification) Closed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// NotifyOption customises a single Show call.
type NotifyOption func(*Notification)

func WithAutoClose(autoClose bool) NotifyOption {
	return func(n *Notification) { n.AutoClose = autoClose }
}

func WithDuration(d time.Duration) NotifyOption {
	return func(n *Notification) {
		if d > 0 {
			n.Duration = d
		}
	}
}

func WithOnClose(fn func()) NotifyOption {
	return func(n *Notification) { n.onClose = fn }
}

// Notifier shows one notification at a time. A new Show replaces and closes
// the visible one.
type Notifier struct {
	sched utils.Scheduler
	sink  func(*Notification)

	mu      sync.Mutex
	current *Notification
}

// NewNotifier builds a notifier. sink, when non-nil, receives every shown
// notification (the CLI prints them).
func NewNotifier(sched utils.Scheduler, sink func(*Notification)) *Notifier {
	if sched == nil {
		sched = utils.SystemScheduler{}
	}
	return &Notifier{sched: sched, sink: sink}
}

func (nf *Notifier) Show(message string, severity Severity, opts ...NotifyOption) *Notification {
	n := &Notification{
		Message:   message,
		Severity:  severity,
		AutoClose: true,
		Duration:  constants.DefaultNotificationDuration,
		sched:     nf.sched,
		owner:     nf,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.shownAt = nf.sched.Now()

	nf.mu.Lock()
	previous := nf.current
	nf.current = n
	nf.mu.Unlock()
	if previous != nil {
		previous.Close()
	}

	if n.AutoClose {
		n.mu.Lock()
		n.timer = nf.sched.AfterFunc(n.Duration, n.Close)
		n.mu.Unlock()
	}

	utils.Logger.WithField("severity", severity.String()).Debugf("Notification: %s", message)
	if nf.sink != nil {
		nf.sink(n)
	}
	return n
}

// Current returns the visible notification, or nil.
func (nf *Notifier) Current() *Notification {
	nf.mu.Lock()
	defer nf.mu.Unlock()
	return nf.current
}

func (nf *Notifier) release(n *Notification) {
	nf.mu.Lock()
	defer nf.mu.Unlock()
	if nf.current == n {
		nf.current = nil
	}
}

package components

import (
	"sync"

	"github.com/homeveda/portal-client/internal/utils"
)

const (
	DefaultDialogTitle       = "Are you sure?"
	DefaultDialogDescription = "This action cannot be undone."
	DefaultConfirmText       = "Yes"
	DefaultCancelText        = "No"

	ControlCancel  = "dialog-cancel"
	ControlConfirm = "dialog-confirm"
)

// DialogState is the confirmation dialog lifecycle:
// Closed -> Open -> Confirmed|Cancelled -> Closed.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogConfirmed
	DialogCancelled
)

func (s DialogState) String() string {
	switch s {
	case DialogClosed:
		return "closed"
	case DialogOpen:
		return "open"
	case DialogConfirmed:
		return "confirmed"
	case DialogCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Choice is the outcome of one open cycle.
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceConfirm
)

// ConfirmRequest configures one open cycle. Empty texts take the defaults.
type ConfirmRequest struct {
	Title       string
	Description string
	ConfirmText string
	CancelText  string
	OnConfirm   func()
	OnCancel    func()
	// DisableEscape keeps the dialog open on Escape.
	DisableEscape bool
}

// ConfirmDialog is a modal yes/no prompt. Exactly one of OnConfirm and
// OnCancel runs per open cycle.
type ConfirmDialog struct {
	focus    FocusTracker
	registry *FocusRegistry

	mu            sync.Mutex
	state         DialogState
	req           ConfirmRequest
	previousFocus string
	lastChoice    *Choice
}

// NewConfirmDialog builds a dialog. focus may be nil when there is no UI.
func NewConfirmDialog(focus FocusTracker) *ConfirmDialog {
	return &ConfirmDialog{
		focus:    focus,
		registry: NewFocusRegistry(ControlCancel, ControlConfirm),
		state:    DialogClosed,
	}
}

// Open shows the dialog. It fails with utils.ErrDialogBusy while another
// cycle is in progress.
func (d *ConfirmDialog) Open(req ConfirmRequest) error {
	if req.Title == "" {
		req.Title = DefaultDialogTitle
	}
	if req.Description == "" {
		req.Description = DefaultDialogDescription
	}
	if req.ConfirmText == "" {
		req.ConfirmText = DefaultConfirmText
	}
	if req.CancelText == "" {
		req.CancelText = DefaultCancelText
	}

	d.mu.Lock()
	if d.state != DialogClosed {
		d.mu.Unlock()
		return utils.ErrDialogBusy
	}
	d.state = DialogOpen
	d.req = req
	d.lastChoice = nil
	d.previousFocus = ""
	if d.focus != nil {
		d.previousFocus = d.focus.Focused()
	}
	d.mu.Unlock()

	if d.focus != nil {
		if first, ok := d.registry.First(); ok {
			d.focus.Focus(first)
		}
	}
	return nil
}

// Ask opens the dialog and delivers the outcome on the returned channel.
func (d *ConfirmDialog) Ask(req ConfirmRequest) (<-chan Choice, error) {
	ch := make(chan Choice, 1)
	onConfirm, onCancel := req.OnConfirm, req.OnCancel
	req.OnConfirm = func() {
		if onConfirm != nil {
			onConfirm()
		}
		ch <- ChoiceConfirm
	}
	req.OnCancel = func() {
		if onCancel != nil {
			onCancel()
		}
		ch <- ChoiceCancel
	}
	if err := d.Open(req); err != nil {
		return nil, err
	}
	return ch, nil
}

func (d *ConfirmDialog) Confirm() {
	d.resolve(DialogConfirmed)
}

func (d *ConfirmDialog) Cancel() {
	d.resolve(DialogCancelled)
}

// Escape cancels unless the open request disabled it.
func (d *ConfirmDialog) Escape() {
	d.mu.Lock()
	disabled := d.state == DialogOpen && d.req.DisableEscape
	d.mu.Unlock()
	if disabled {
		return
	}
	d.resolve(DialogCancelled)
}

// BackdropClick cancels.
func (d *ConfirmDialog) BackdropClick() {
	d.resolve(DialogCancelled)
}

func (d *ConfirmDialog) resolve(outcome DialogState) {
	d.mu.Lock()
	if d.state != DialogOpen {
		d.mu.Unlock()
		return
	}
	d.state = outcome
	req := d.req
	d.mu.Unlock()

	if outcome == DialogConfirmed {
		if req.OnConfirm != nil {
			req.OnConfirm()
		}
	} else if req.OnCancel != nil {
		req.OnCancel()
	}

	choice := ChoiceCancel
	if outcome == DialogConfirmed {
		choice = ChoiceConfirm
	}

	d.mu.Lock()
	d.state = DialogClosed
	d.req = ConfirmRequest{}
	d.lastChoice = &choice
	previous := d.previousFocus
	d.previousFocus = ""
	d.mu.Unlock()

	if d.focus != nil && previous != "" {
		d.focus.Focus(previous)
	}
}

func (d *ConfirmDialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Request returns the texts of the open cycle. ok is false when closed.
func (d *ConfirmDialog) Request() (ConfirmRequest, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.req, d.state == DialogOpen
}

// LastChoice is the outcome of the most recent completed cycle.
func (d *ConfirmDialog) LastChoice() (Choice, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastChoice == nil {
		return ChoiceCancel, false
	}
	return *d.lastChoice, true
}

// Controls lists the dialog's actionable controls in tab order.
func (d *ConfirmDialog) Controls() []string {
	return d.registry.Controls()
}

package controllers

import (
	"context"
	"strings"
	"sync"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/utils"
)

// RecoveryDraft holds the forgot-password and reset-password fields.
type RecoveryDraft struct {
	Email           string
	NewPassword     string
	ConfirmPassword string
}

// PasswordRecoveryController backs the forgot-password page and the reset
// page reached from the emailed link.
type PasswordRecoveryController struct {
	formState

	draftMu sync.Mutex
	draft   RecoveryDraft
}

func NewPasswordRecoveryController(deps Deps) *PasswordRecoveryController {
	c := &PasswordRecoveryController{}
	c.formState.init(deps, "password_recovery")
	return c
}

func (c *PasswordRecoveryController) Draft() RecoveryDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.draft
}

func (c *PasswordRecoveryController) Edit(fn func(*RecoveryDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.draft)
}

// RequestReset asks the backend to email a reset link.
func (c *PasswordRecoveryController) RequestReset(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	draft := dtos.ForgotPasswordDraft{Email: strings.TrimSpace(c.Draft().Email)}
	if err := c.validate(draft); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	if err := c.deps.Client.ForgotPassword(ctx, draft.Email); err != nil {
		c.log().WithError(err).Warn("Forgot password request failed")
		c.fail(utils.UserMessage(err, constants.MsgResetLinkFailed))
		return err
	}
	c.log().Info("Password reset link requested")
	c.succeed(constants.MsgResetLinkSent)
	c.Edit(func(d *RecoveryDraft) { d.Email = "" })
	return nil
}

// Reset sets a new password using the token from the reset link.
func (c *PasswordRecoveryController) Reset(ctx context.Context, resetToken string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	d := c.Draft()
	draft := dtos.ResetPasswordDraft{
		Token:           strings.TrimSpace(resetToken),
		NewPassword:     d.NewPassword,
		ConfirmPassword: d.ConfirmPassword,
	}
	if err := c.validate(draft); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	if err := c.deps.Client.ResetPassword(ctx, draft.Token, draft.NewPassword); err != nil {
		c.log().WithError(err).Warn("Password reset failed")
		c.fail(utils.UserMessage(err, constants.MsgPasswordResetFailed))
		return err
	}
	c.log().Info("Password reset")
	c.succeed(constants.MsgPasswordResetDone)
	c.navigateAfter(constants.ResetRedirectDelay, routes.Home)
	return nil
}

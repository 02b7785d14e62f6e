package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/homeveda/portal-client/internal/api"
	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/navigation"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// AssetDownloader saves a remote asset into dir under a name derived from
// the display name.
type AssetDownloader interface {
	Download(ctx context.Context, link, dir, name string) (string, error)
}

// Deps are the collaborators every view controller shares.
type Deps struct {
	Client     *api.Client
	Notifier   *components.Notifier
	Dialog     *components.ConfirmDialog
	Navigator  navigation.Navigator
	Scheduler  utils.Scheduler
	Validator  services.ValidationService
	Downloader AssetDownloader

	// Lifetime of form notifications.
	NotificationDuration time.Duration
	LoginRedirectDelay   time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Scheduler == nil {
		d.Scheduler = utils.SystemScheduler{}
	}
	if d.Validator == nil {
		d.Validator = services.NewValidationService()
	}
	if d.NotificationDuration <= 0 {
		d.NotificationDuration = constants.FormNotificationDuration
	}
	if d.LoginRedirectDelay <= 0 {
		d.LoginRedirectDelay = constants.LoginRedirectDelay
	}
	return d
}

// readToken returns the role's current token. A missing token yields "" and
// the call goes out without an Authorization header.
func readToken(ctx context.Context, auth *services.AuthContext) string {
	if auth == nil {
		return ""
	}
	token, err := auth.Token(ctx)
	if err != nil {
		if !errors.Is(err, utils.ErrNoToken) {
			utils.Logger.WithError(err).Warnf("Failed to read %s token", auth.Role())
		}
		return ""
	}
	return token
}

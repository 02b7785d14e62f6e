package app

import (
	"context"
	"fmt"
	"time"

	"github.com/homeveda/portal-client/internal/api"
	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/config"
	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/navigation"
	"github.com/homeveda/portal-client/internal/repositories"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
	"github.com/homeveda/portal-client/internal/utils/preview"
	"github.com/homeveda/portal-client/internal/utils/storage"
)

const (
	openTimeout    = 5 * time.Second
	retryInitial   = 500 * time.Millisecond
	maxDrainRounds = 16
)

// App owns the client's long-lived collaborators. Controllers are built per
// page from it.
type App struct {
	Config     *config.Config
	Session    repositories.SessionRepository
	AdminAuth  *services.AuthContext
	UserAuth   *services.AuthContext
	Client     *api.Client
	Notifier   *components.Notifier
	Dialog     *components.ConfirmDialog
	History    *navigation.History
	Scheduler  utils.Scheduler
	Validator  services.ValidationService
	Downloader *storage.Downloader
	Previews   *preview.Store
}

type options struct {
	session   repositories.SessionRepository
	scheduler utils.Scheduler
	sink      func(*components.Notification)
	onNav     func(route string)
}

type Option func(*options)

// WithSession replaces the sqlite session store.
func WithSession(repo repositories.SessionRepository) Option {
	return func(o *options) { o.session = repo }
}

func WithScheduler(s utils.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithNotificationSink receives every notification shown.
func WithNotificationSink(fn func(*components.Notification)) Option {
	return func(o *options) { o.sink = fn }
}

// WithNavigationHook observes every navigation.
func WithNavigationHook(fn func(route string)) Option {
	return func(o *options) { o.onNav = fn }
}

func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = utils.SystemScheduler{}
	}

	session := o.session
	if session == nil {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		var err error
		session, err = repositories.NewSQLiteSessionRepository(ctx, cfg.SessionDBPath)
		if err != nil {
			return nil, fmt.Errorf("unable to open session store: %w", err)
		}
		utils.Logger.Infof("Session store opened at %s", cfg.SessionDBPath)
	}

	if err := cfg.Validate(); err != nil {
		utils.Logger.WithError(err).Warn("Backend URL missing; views will report it inline")
	}
	client, err := api.NewClient(cfg.BackendURL, cfg.HTTPTimeout, cfg.MaxRetries, retryInitial)
	if err != nil {
		session.Close()
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Session:   session,
		AdminAuth: services.NewAuthContext(services.RoleAdmin, session),
		UserAuth:  services.NewAuthContext(services.RoleUser, session),
		Client:    client,
		Notifier:  components.NewNotifier(o.scheduler, o.sink),
		Dialog:    components.NewConfirmDialog(nil),
		History:   navigation.NewHistory(o.onNav),
		Scheduler: o.scheduler,
		Validator: services.NewValidationService(),
		Previews:  preview.NewStore(),
	}
	a.Downloader = storage.NewDownloader(context.Background(), storage.DownloaderConfig{
		Bucket:          cfg.AssetBucket,
		Region:          cfg.AssetRegion,
		UseS3:           cfg.LDFlag_DownloadAssetsViaS3,
		AccessKeyID:     cfg.AssetAccessKeyID,
		SecretAccessKey: cfg.AssetSecretAccessKey,
	})
	return a, nil
}

// Deps is the shared controller wiring.
func (a *App) Deps() controllers.Deps {
	return controllers.Deps{
		Client:               a.Client,
		Notifier:             a.Notifier,
		Dialog:               a.Dialog,
		Navigator:            a.History,
		Scheduler:            a.Scheduler,
		Validator:            a.Validator,
		Downloader:           a.Downloader,
		NotificationDuration: a.Config.NotificationDuration(),
		LoginRedirectDelay:   a.Config.LoginRedirectDelay(),
	}
}

// Auth returns the session of a role.
func (a *App) Auth(role services.Role) *services.AuthContext {
	if role == services.RoleAdmin {
		return a.AdminAuth
	}
	return a.UserAuth
}

// ------------------------------------------------------------------
// controllers
// ------------------------------------------------------------------

func (a *App) Login(role services.Role) *controllers.LoginController {
	return controllers.NewLoginController(a.Deps(), a.Auth(role))
}

func (a *App) PasswordRecovery() *controllers.PasswordRecoveryController {
	return controllers.NewPasswordRecoveryController(a.Deps())
}

func (a *App) CatalogList() *controllers.CatalogListController {
	return controllers.NewCatalogListController(a.Deps(), a.AdminAuth)
}

func (a *App) CatalogCreate() *controllers.CatalogFormController {
	return controllers.NewCatalogCreateController(a.Deps(), a.AdminAuth)
}

func (a *App) CatalogUpdate() *controllers.CatalogFormController {
	return controllers.NewCatalogUpdateController(a.Deps(), a.AdminAuth)
}

func (a *App) LeadList() *controllers.LeadListController {
	return controllers.NewLeadListController(a.Deps(), a.AdminAuth)
}

func (a *App) LeadCreate() *controllers.LeadFormController {
	return controllers.NewLeadCreateController(a.Deps(), a.AdminAuth)
}

func (a *App) LeadUpdate() *controllers.LeadFormController {
	return controllers.NewLeadUpdateController(a.Deps(), a.AdminAuth)
}

func (a *App) UserList() *controllers.UserListController {
	return controllers.NewUserListController(a.Deps(), a.AdminAuth)
}

func (a *App) ProjectList(userEmail string) *controllers.ProjectListController {
	return controllers.NewProjectListController(a.Deps(), a.AdminAuth, userEmail)
}

func (a *App) ProjectCreate(userEmail string) *controllers.ProjectFormController {
	return controllers.NewProjectFormController(a.Deps(), a.AdminAuth, a.Previews, userEmail)
}

func (a *App) DesignList(projectID string) *controllers.DesignListController {
	return controllers.NewDesignListController(a.Deps(), a.AdminAuth, projectID)
}

func (a *App) DesignCreate(projectID string) *controllers.DesignFormController {
	return controllers.NewDesignFormController(a.Deps(), a.AdminAuth, projectID)
}

// Settle fires pending timers when the app runs on a manual clock, so delayed
// navigations happen before a one-shot command exits.
func (a *App) Settle() {
	if ms, ok := a.Scheduler.(*utils.ManualScheduler); ok {
		ms.Drain(maxDrainRounds)
	}
}

func (a *App) Close() {
	a.Settle()
	a.Previews.ReleaseAll()
	if a.Session != nil {
		if err := a.Session.Close(); err != nil {
			utils.Logger.WithError(err).Warn("Failed to close session store")
			return
		}
		utils.Logger.Debug("Session store closed.")
	}
}

// NewCLIScheduler is the manual clock used by one-shot commands.
func NewCLIScheduler() *utils.ManualScheduler {
	return utils.NewManualScheduler(time.Now())
}

package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// AuthTab is the visible tab of the login page.
type AuthTab int

const (
	TabLogin AuthTab = iota
	TabSignup
)

func (t AuthTab) String() string {
	switch t {
	case TabLogin:
		return "login"
	case TabSignup:
		return "signup"
	default:
		return "unknown"
	}
}

// ParseAuthTab converts "login" or "signup" to the enum.
func ParseAuthTab(s string) (AuthTab, error) {
	switch s {
	case "login":
		return TabLogin, nil
	case "signup":
		return TabSignup, nil
	default:
		return -1, fmt.Errorf("invalid tab: %q", s)
	}
}

// AccountDraft holds every field of the login page. Email and password are
// shared by both tabs.
type AccountDraft struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Address         string
}

// LoginController backs the customer and admin login/signup pages. The role
// decides the endpoints, the session keys and the home route.
type LoginController struct {
	formState

	auth *services.AuthContext

	draftMu sync.Mutex
	tab     AuthTab
	draft   AccountDraft
}

func NewLoginController(deps Deps, auth *services.AuthContext) *LoginController {
	c := &LoginController{auth: auth}
	c.formState.init(deps, auth.Role().String()+"_login")
	return c
}

func (c *LoginController) Role() services.Role {
	return c.auth.Role()
}

func (c *LoginController) Tab() AuthTab {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.tab
}

// SetTab switches tabs. Entered values are kept.
func (c *LoginController) SetTab(tab AuthTab) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	c.tab = tab
}

func (c *LoginController) Draft() AccountDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.draft
}

func (c *LoginController) Edit(fn func(*AccountDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.draft)
}

// Submit logs in or signs up depending on the active tab.
func (c *LoginController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if c.Tab() == TabSignup {
		return c.signup(ctx)
	}
	return c.login(ctx)
}

func (c *LoginController) login(ctx context.Context) error {
	d := c.Draft()
	draft := dtos.LoginDraft{Email: strings.TrimSpace(d.Email), Password: d.Password}
	if err := c.validate(draft); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	req := dtos.LoginRequest{Email: draft.Email, Password: draft.Password}
	login := c.deps.Client.Login
	if c.Role() == services.RoleAdmin {
		login = c.deps.Client.AdminLogin
	}

	resp, status, err := login(ctx, req)
	logger := c.log().WithField("email", draft.Email)
	if err != nil {
		logger.WithError(err).Warn("Login failed")
		c.fail(utils.UserMessage(err, constants.MsgLoginFailed))
		return err
	}
	if status != http.StatusOK || resp.Token == "" {
		logger.WithField("status", status).Warn("Login returned no token")
		c.fail(constants.MsgLoginFailed)
		return utils.ErrUnexpectedStatus
	}

	if err := c.auth.Persist(ctx, resp.Token, draft.Email); err != nil {
		logger.WithError(err).Error("Failed to persist session")
		c.fail(constants.MsgLoginFailed)
		return err
	}

	logger.Info("Login succeeded")
	message, home := constants.MsgUserLoginSuccess, routes.Home
	if c.Role() == services.RoleAdmin {
		message, home = constants.MsgAdminLoginSuccess, routes.AdminHome
	}
	c.succeed(message)
	c.navigateAfter(c.deps.LoginRedirectDelay, home)
	return nil
}

func (c *LoginController) signup(ctx context.Context) error {
	d := c.Draft()
	draft := dtos.SignupDraft{
		Name:            strings.TrimSpace(d.Name),
		Email:           strings.TrimSpace(d.Email),
		Password:        d.Password,
		ConfirmPassword: d.ConfirmPassword,
		Phone:           strings.TrimSpace(d.Phone),
		Address:         strings.TrimSpace(d.Address),
	}
	check := draft
	if c.Role() == services.RoleUser {
		// customer phone numbers are free-form
		check.Phone = ""
	}
	if err := c.validate(check); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	req := dtos.RegisterRequest{
		Name:     draft.Name,
		Email:    draft.Email,
		Password: draft.Password,
		Phone:    draft.Phone,
		Address:  draft.Address,
	}
	register := c.deps.Client.Register
	if c.Role() == services.RoleAdmin {
		register = c.deps.Client.AdminSignup
	}

	status, err := register(ctx, req)
	logger := c.log().WithField("email", draft.Email)
	if err != nil {
		logger.WithError(err).Warn("Signup failed")
		c.fail(utils.UserMessage(err, constants.MsgSignupFailed))
		return err
	}
	if status != http.StatusCreated {
		logger.WithField("status", status).Warn("Signup returned unexpected status")
		c.fail(constants.MsgSignupFailed)
		return utils.ErrUnexpectedStatus
	}

	logger.Info("Signup succeeded")
	c.succeed(constants.MsgSignupSuccess)
	c.draftMu.Lock()
	c.draft = AccountDraft{}
	c.draftMu.Unlock()
	c.after(constants.SignupSwitchDelay, func() { c.SetTab(TabLogin) })
	return nil
}

// Logout forgets the role's session and returns to its login page.
func (c *LoginController) Logout(ctx context.Context) error {
	if err := c.auth.Clear(ctx); err != nil {
		c.log().WithError(err).Error("Failed to clear session")
		return err
	}
	c.succeed(constants.MsgLoggedOut)
	if c.deps.Navigator != nil {
		page := routes.UserLoginPage
		if c.Role() == services.RoleAdmin {
			page = routes.AdminLoginPage
		}
		c.deps.Navigator.Push(page)
	}
	return nil
}

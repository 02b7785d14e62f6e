package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/testhelpers"
	"github.com/homeveda/portal-client/internal/utils"
)

func TestUserLogin(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/user/login", http.StatusOK, map[string]string{"token": "abc"})

	c := controllers.NewLoginController(depsFor(h), h.UserAuth)
	c.Edit(func(d *controllers.AccountDraft) {
		d.Email = "u@x.com"
		d.Password = "secret"
	})
	require.NoError(t, c.Submit(h.Ctx))

	token, err := h.UserAuth.Token(h.Ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", token)
	require.Equal(t, "u@x.com", h.UserAuth.Email(h.Ctx))
	_, err = h.AdminAuth.Token(h.Ctx)
	require.ErrorIs(t, err, utils.ErrNoToken)

	h.RequireNotification(components.SeverityGreen, "User login successful!")
	require.Empty(t, h.History.Routes(), "navigation waits for the redirect delay")

	h.Scheduler.Advance(1500 * time.Millisecond)
	require.Equal(t, []string{"/"}, h.History.Routes())
}

func TestAdminLogin(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/user/admin/login", http.StatusOK, map[string]string{"token": "admin-jwt"})

	c := controllers.NewLoginController(depsFor(h), h.AdminAuth)
	c.Edit(func(d *controllers.AccountDraft) {
		d.Email = "admin@homeveda.in"
		d.Password = "secret"
	})
	require.NoError(t, c.Submit(h.Ctx))

	token, err := h.AdminAuth.Token(h.Ctx)
	require.NoError(t, err)
	require.Equal(t, "admin-jwt", token)
	_, err = h.UserAuth.Token(h.Ctx)
	require.ErrorIs(t, err, utils.ErrNoToken)

	h.RequireNotification(components.SeverityGreen, "Admin login successful!")
	h.Scheduler.Advance(1500 * time.Millisecond)
	require.Equal(t, "/admin/catelog/display", h.History.Current())
}

func TestLoginFailures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    any
		message string
	}{
		{"ServerMessage", http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}, "Invalid credentials"},
		{"NoMessage", http.StatusInternalServerError, nil, "Login failed. Please check your credentials."},
		{"NoToken", http.StatusOK, map[string]string{"message": "ok"}, "Login failed. Please check your credentials."},
		{"CreatedIsNotLogin", http.StatusCreated, map[string]string{"token": "abc"}, "Login failed. Please check your credentials."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := testhelpers.NewTestHelper(t)
			h.Backend.Respond(http.MethodPost, "/user/login", tc.status, tc.body)

			c := controllers.NewLoginController(depsFor(h), h.UserAuth)
			c.Edit(func(d *controllers.AccountDraft) {
				d.Email = "u@x.com"
				d.Password = "wrong"
			})
			require.Error(t, c.Submit(h.Ctx))
			h.RequireNotification(components.SeverityRed, tc.message)

			_, err := h.UserAuth.Token(h.Ctx)
			require.ErrorIs(t, err, utils.ErrNoToken, "only a 200 with a token logs in")
			h.Scheduler.Advance(time.Minute)
			require.Empty(t, h.History.Routes())
		})
	}
}

func TestLoginRequiresFields(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	c := controllers.NewLoginController(depsFor(h), h.UserAuth)
	c.Edit(func(d *controllers.AccountDraft) { d.Email = "u@x.com" })

	require.Error(t, c.Submit(h.Ctx))
	require.Zero(t, h.Backend.Count())
	h.RequireNotification(components.SeverityRed, "Please fill required fields.")
}

func TestSignup(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/user/register", http.StatusCreated, map[string]string{"message": "registered"})

	c := controllers.NewLoginController(depsFor(h), h.UserAuth)
	c.Edit(func(d *controllers.AccountDraft) {
		d.Email = "new@x.com"
		d.Password = "secret"
	})
	c.SetTab(controllers.TabSignup)
	require.Equal(t, "new@x.com", c.Draft().Email, "switching tabs keeps shared fields")

	c.Edit(func(d *controllers.AccountDraft) {
		d.Name = "Asha"
		d.ConfirmPassword = "secrets"
	})
	require.Error(t, c.Submit(h.Ctx))
	h.RequireNotification(components.SeverityRed, "Passwords do not match.")
	require.Zero(t, h.Backend.Count())

	c.Edit(func(d *controllers.AccountDraft) {
		d.ConfirmPassword = "secret"
		d.Phone = "+91 98450"
	})
	require.NoError(t, c.Submit(h.Ctx), "customer phone numbers are not checked")

	sent := h.Backend.Last()
	require.Equal(t, "Asha", sent.JSON["name"])
	require.Equal(t, "+91 98450", sent.JSON["phone"])

	h.RequireNotification(components.SeverityGreen, "Signup successful! Please login.")
	require.Equal(t, controllers.AccountDraft{}, c.Draft())
	require.Equal(t, controllers.TabSignup, c.Tab())

	h.Scheduler.Advance(1500 * time.Millisecond)
	require.Equal(t, controllers.TabLogin, c.Tab())
	require.Empty(t, h.History.Routes())
}

func TestAdminSignupPhone(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/user/admin", http.StatusCreated, nil)

	c := controllers.NewLoginController(depsFor(h), h.AdminAuth)
	c.SetTab(controllers.TabSignup)
	c.Edit(func(d *controllers.AccountDraft) {
		d.Name = "Admin"
		d.Email = "admin@homeveda.in"
		d.Password = "secret"
		d.ConfirmPassword = "secret"
		d.Phone = "98-450"
	})
	require.Error(t, c.Submit(h.Ctx))
	h.RequireNotification(components.SeverityRed, "Please enter a valid phone number.")

	c.Edit(func(d *controllers.AccountDraft) { d.Phone = "9845012345" })
	require.NoError(t, c.Submit(h.Ctx))
	require.Equal(t, "/user/admin", h.Backend.Last().Path)
}

func TestSignupFailureKeepsDraft(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/user/register", http.StatusOK, nil)

	c := controllers.NewLoginController(depsFor(h), h.UserAuth)
	c.SetTab(controllers.TabSignup)
	c.Edit(func(d *controllers.AccountDraft) {
		d.Name = "Asha"
		d.Email = "asha@x.com"
		d.Password = "secret"
		d.ConfirmPassword = "secret"
	})
	require.ErrorIs(t, c.Submit(h.Ctx), utils.ErrUnexpectedStatus)
	h.RequireNotification(components.SeverityRed, "Signup failed. Please check your details.")
	require.Equal(t, "Asha", c.Draft().Name)
}

func TestLogout(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.LoginAdmin("admin-token")

	c := controllers.NewLoginController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Logout(h.Ctx))

	_, err := h.AdminAuth.Token(h.Ctx)
	require.ErrorIs(t, err, utils.ErrNoToken)
	require.Equal(t, "/admin/login", h.History.Current())
}

func TestParseAuthTab(t *testing.T) {
	tab, err := controllers.ParseAuthTab("signup")
	require.NoError(t, err)
	require.Equal(t, controllers.TabSignup, tab)
	_, err = controllers.ParseAuthTab("register")
	require.Error(t, err)
}

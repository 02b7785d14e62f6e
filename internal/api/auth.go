package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
)

// Login authenticates a customer. The status is returned because only 200
// counts as a successful login.
func (c *Client) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.TokenResponse, int, error) {
	return c.login(ctx, routes.UserLogin, req)
}

// AdminLogin authenticates an administrator.
func (c *Client) AdminLogin(ctx context.Context, req dtos.LoginRequest) (*dtos.TokenResponse, int, error) {
	return c.login(ctx, routes.AdminLogin, req)
}

func (c *Client) login(ctx context.Context, path string, req dtos.LoginRequest) (*dtos.TokenResponse, int, error) {
	var resp dtos.TokenResponse
	status, err := c.doRequest(ctx, call{method: http.MethodPost, path: path, route: path, body: req, out: &resp})
	if err != nil {
		return nil, status, fmt.Errorf("Login error: %w", err)
	}
	return &resp, status, nil
}

// Register creates a customer account. Success is 201.
func (c *Client) Register(ctx context.Context, req dtos.RegisterRequest) (int, error) {
	status, err := c.doRequest(ctx, call{method: http.MethodPost, path: routes.UserRegister, route: routes.UserRegister, body: req})
	if err != nil {
		return status, fmt.Errorf("Register error: %w", err)
	}
	return status, nil
}

// AdminSignup creates an administrator account. Success is 201.
func (c *Client) AdminSignup(ctx context.Context, req dtos.RegisterRequest) (int, error) {
	status, err := c.doRequest(ctx, call{method: http.MethodPost, path: routes.AdminSignup, route: routes.AdminSignup, body: req})
	if err != nil {
		return status, fmt.Errorf("AdminSignup error: %w", err)
	}
	return status, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.doRequest(ctx, call{
		method: http.MethodPost,
		path:   routes.ForgotPassword,
		route:  routes.ForgotPassword,
		body:   dtos.ForgotPasswordRequest{Email: email},
	})
	if err != nil {
		return fmt.Errorf("ForgotPassword error: %w", err)
	}
	return nil
}

// ResetPassword completes a reset with the token from the emailed link.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	_, err := c.doRequest(ctx, call{
		method: http.MethodPost,
		path:   routes.ResetPassword(resetToken),
		route:  routes.ResetPasswordBase + "/:token",
		body:   dtos.ResetPasswordRequest{NewPassword: newPassword},
	})
	if err != nil {
		return fmt.Errorf("ResetPassword error: %w", err)
	}
	return nil
}

// ListUsers returns every registered account.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var raw json.RawMessage
	if _, err := c.doRequest(ctx, call{method: http.MethodGet, path: routes.UsersAll, route: routes.UsersAll, token: token, out: &raw}); err != nil {
		return nil, fmt.Errorf("ListUsers error: %w", err)
	}
	users, err := decodeList[models.User](raw, "users")
	if err != nil {
		return nil, fmt.Errorf("ListUsers error: %w", err)
	}
	return users, nil
}

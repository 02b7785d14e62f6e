package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/repositories"
	"github.com/homeveda/portal-client/internal/utils"
)

// Role scopes a session: admin pages and customer pages keep separate tokens.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole converts "user" or "admin" to the enum.
func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return -1, fmt.Errorf("invalid role: %q", s)
	}
}

func (r Role) tokenKey() string {
	if r == RoleAdmin {
		return constants.SessionKeyAdminToken
	}
	return constants.SessionKeyUserToken
}

func (r Role) emailKey() string {
	if r == RoleAdmin {
		return constants.SessionKeyAdminEmail
	}
	return constants.SessionKeyUserEmail
}

// AuthContext is the single accessor for a role's bearer token. Views read the
// token at the start of every authenticated operation and never cache it.
type AuthContext struct {
	role    Role
	session repositories.SessionRepository
}

func NewAuthContext(role Role, session repositories.SessionRepository) *AuthContext {
	return &AuthContext{role: role, session: session}
}

func (a *AuthContext) Role() Role {
	return a.role
}

// Token returns the stored token, or utils.ErrNoToken when none is stored.
func (a *AuthContext) Token(ctx context.Context) (string, error) {
	token, ok, err := a.session.Get(ctx, a.role.tokenKey())
	if err != nil {
		return "", fmt.Errorf("read %s token: %w", a.role, err)
	}
	if !ok || token == "" {
		return "", utils.ErrNoToken
	}
	return token, nil
}

func (a *AuthContext) Email(ctx context.Context) string {
	email, _, err := a.session.Get(ctx, a.role.emailKey())
	if err != nil {
		utils.Logger.WithError(err).Warnf("Failed to read %s email from session", a.role)
	}
	return email
}

// Persist stores a freshly issued token and the email it was issued for.
func (a *AuthContext) Persist(ctx context.Context, token, email string) error {
	if err := a.session.Set(ctx, a.role.tokenKey(), token); err != nil {
		return fmt.Errorf("persist %s token: %w", a.role, err)
	}
	if err := a.session.Set(ctx, a.role.emailKey(), email); err != nil {
		return fmt.Errorf("persist %s email: %w", a.role, err)
	}
	return nil
}

func (a *AuthContext) Clear(ctx context.Context) error {
	return a.session.Delete(ctx, a.role.tokenKey(), a.role.emailKey())
}

// Expiry reads the exp claim without verifying the signature. Opaque tokens
// and tokens without exp report false. The backend stays the authority on
// validity; this only lets the CLI warn early.
func (a *AuthContext) Expiry(ctx context.Context) (time.Time, bool) {
	token, err := a.Token(ctx)
	if err != nil {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token's exp claim is in the past relative to now.
func (a *AuthContext) Expired(ctx context.Context, now time.Time) bool {
	exp, ok := a.Expiry(ctx)
	return ok && !now.Before(exp)
}

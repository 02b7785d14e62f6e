package main

import (
	"context"
	"fmt"

	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/services"
)

func roleOf(admin bool) services.Role {
	if admin {
		return services.RoleAdmin
	}
	return services.RoleUser
}

func (c *cli) loginCmd(admin bool) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		fs := c.flagSet("login")
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "password (prompted when omitted)")
		if err := parse(fs, args); err != nil {
			return err
		}
		if *password == "" && *email != "" {
			p, err := c.prompt("Password: ")
			if err != nil {
				return err
			}
			*password = p
		}

		lc := c.app.Login(roleOf(admin))
		lc.Edit(func(d *controllers.AccountDraft) {
			d.Email = *email
			d.Password = *password
		})
		err := lc.Submit(ctx)
		c.inlineError(lc.ConfigError())
		return err
	}
}

func (c *cli) signupCmd(admin bool) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		fs := c.flagSet("signup")
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "password")
		confirm := fs.String("confirm", "", "password again")
		phone := fs.String("phone", "", "phone number")
		address := fs.String("address", "", "postal address")
		if err := parse(fs, args); err != nil {
			return err
		}

		lc := c.app.Login(roleOf(admin))
		lc.SetTab(controllers.TabSignup)
		lc.Edit(func(d *controllers.AccountDraft) {
			*d = controllers.AccountDraft{
				Name:            *name,
				Email:           *email,
				Password:        *password,
				ConfirmPassword: *confirm,
				Phone:           *phone,
				Address:         *address,
			}
		})
		err := lc.Submit(ctx)
		c.inlineError(lc.ConfigError())
		return err
	}
}

func (c *cli) logout(ctx context.Context, args []string) error {
	fs := c.flagSet("logout")
	admin := fs.Bool("admin", false, "forget the administrator session instead of the customer one")
	if err := parse(fs, args); err != nil {
		return err
	}
	return c.app.Login(roleOf(*admin)).Logout(ctx)
}

func (c *cli) forgotPassword(ctx context.Context, args []string) error {
	fs := c.flagSet("forgot-password")
	email := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}
	pc := c.app.PasswordRecovery()
	pc.Edit(func(d *controllers.RecoveryDraft) { d.Email = *email })
	err := pc.RequestReset(ctx)
	c.inlineError(pc.ConfigError())
	return err
}

func (c *cli) resetPassword(ctx context.Context, args []string) error {
	fs := c.flagSet("reset-password")
	token := fs.String("token", "", "token from the emailed reset link")
	password := fs.String("password", "", "new password")
	confirm := fs.String("confirm", "", "new password again")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *token == "" {
		fmt.Fprintln(c.out, "reset-password needs -token")
		return errUsage
	}
	pc := c.app.PasswordRecovery()
	pc.Edit(func(d *controllers.RecoveryDraft) {
		d.NewPassword = *password
		d.ConfirmPassword = *confirm
	})
	err := pc.Reset(ctx, *token)
	c.inlineError(pc.ConfigError())
	return err
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/homeveda/portal-client/internal/app"
	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/config"
	"github.com/homeveda/portal-client/internal/utils"
)

// errUsage marks a bad invocation; the usage text has already been printed.
var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(ctx context.Context, args []string) error
}

// cli runs one command against the app and prints to out.
type cli struct {
	app      *app.App
	in       *bufio.Reader
	out      io.Writer
	commands map[string]command
}

func newCLI(a *app.App, in io.Reader, out io.Writer) *cli {
	c := &cli{app: a, in: bufio.NewReader(in), out: out}
	c.commands = map[string]command{
		"login":           {"log in as a customer", c.loginCmd(false)},
		"admin-login":     {"log in as an administrator", c.loginCmd(true)},
		"signup":          {"create a customer account", c.signupCmd(false)},
		"admin-signup":    {"create an administrator account", c.signupCmd(true)},
		"logout":          {"forget the stored session", c.logout},
		"forgot-password": {"email a password reset link", c.forgotPassword},
		"reset-password":  {"set a new password with a reset token", c.resetPassword},
		"catalog":         {"list|add|update|delete catalog items", c.catalog},
		"leads":           {"list|add|update|delete initial leads", c.leads},
		"users":           {"list registered users", c.users},
		"projects":        {"list|add projects of a user", c.projects},
		"designs":         {"list|add|download project designs", c.designs},
		"export":          {"export catalog|leads|users to xlsx", c.export},
	}
	return c
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return errUsage
	}
	cmd, ok := c.commands[args[0]]
	if !ok {
		fmt.Fprintf(c.out, "unknown command %q\n\n", args[0])
		c.usage()
		return errUsage
	}
	return cmd.run(ctx, args[1:])
}

func (c *cli) usage() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.out, "usage: portal <command> [flags]")
	fmt.Fprintln(c.out)
	for _, name := range names {
		fmt.Fprintf(c.out, "  %-16s %s\n", name, c.commands[name].summary)
	}
}

func printNotification(out io.Writer) func(*components.Notification) {
	return func(n *components.Notification) {
		fmt.Fprintf(out, "[%s] %s\n", strings.ToUpper(n.Severity.String()), n.Message)
	}
}

func main() {
	utils.InitLogger(config.Defaults().AppName)
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(cfg,
		app.WithScheduler(app.NewCLIScheduler()),
		app.WithNotificationSink(printNotification(os.Stdout)),
		app.WithNavigationHook(func(route string) {
			utils.Logger.WithField("route", route).Info("Navigated")
		}),
	)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize portal client:", err)
	}

	err = newCLI(application, os.Stdin, os.Stdout).run(ctx, os.Args[1:])
	application.Close()
	stop()
	if err != nil {
		if !errors.Is(err, errUsage) {
			utils.Logger.WithError(err).Debug("Command failed")
		}
		os.Exit(1)
	}
}

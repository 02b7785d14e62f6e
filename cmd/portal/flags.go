package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

// setFlags names the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// subcommand splits "catalog list -q x" into "list" and its flags.
func (c *cli) subcommand(group string, args []string, names ...string) (string, []string, error) {
	if len(args) == 0 {
		fmt.Fprintf(c.out, "usage: portal %s <%s> [flags]\n", group, strings.Join(names, "|"))
		return "", nil, errUsage
	}
	for _, n := range names {
		if args[0] == n {
			return n, args[1:], nil
		}
	}
	fmt.Fprintf(c.out, "unknown %s command %q\n", group, args[0])
	return "", nil, errUsage
}

// prompt reads one line from the input.
func (c *cli) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// answerDialog prints the open confirmation dialog and resolves it from a
// y/n answer. Anything but y or yes cancels.
func (c *cli) answerDialog() error {
	req, ok := c.app.Dialog.Request()
	if !ok {
		return nil
	}
	fmt.Fprintln(c.out, req.Title)
	fmt.Fprintln(c.out, req.Description)
	answer, err := c.prompt(fmt.Sprintf("%s/%s [y/N]: ", req.ConfirmText, req.CancelText))
	if err != nil {
		c.app.Dialog.Cancel()
		return err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		c.app.Dialog.Confirm()
	default:
		c.app.Dialog.Cancel()
	}
	return nil
}

// warnSession logs when the admin session is missing or expired. Requests
// still go out; the backend decides.
func (c *cli) warnSession(ctx context.Context, auth *services.AuthContext) {
	if _, err := auth.Token(ctx); err != nil {
		utils.Logger.Warnf("No %s session stored; run the login command first", auth.Role())
		return
	}
	if auth.Expired(ctx, c.app.Scheduler.Now()) {
		utils.Logger.Warnf("The stored %s session has expired", auth.Role())
	}
}

func loadAttachment(path string) (*dtos.Attachment, error) {
	if path == "" {
		return nil, nil
	}
	return dtos.LoadAttachment(path)
}

// inlineError prints the configuration error a view shows in place.
func (c *cli) inlineError(msg string) {
	if msg != "" {
		fmt.Fprintf(c.out, "[%s] %s\n", strings.ToUpper(components.SeverityRed.String()), msg)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/dtos"
)

func (c *cli) leads(ctx context.Context, args []string) error {
	sub, rest, err := c.subcommand("leads", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	c.warnSession(ctx, c.app.AdminAuth)
	switch sub {
	case "list":
		return c.leadList(ctx, rest)
	case "add":
		return c.leadAdd(ctx, rest)
	case "update":
		return c.leadUpdate(ctx, rest)
	default:
		return c.leadDelete(ctx, rest)
	}
}

func (c *cli) loadLeads(ctx context.Context) (*controllers.LeadListController, error) {
	lc := c.app.LeadList()
	if err := lc.Refresh(ctx); err != nil {
		return lc, c.listError(lc.ErrorMessage(), err)
	}
	return lc, nil
}

func (c *cli) leadList(ctx context.Context, args []string) error {
	fs := c.flagSet("leads list")
	status := fs.String("status", constants.FilterAll, "lead status, or All")
	architect := fs.String("architect", constants.FilterAll, "architect status, or All")
	query := fs.String("q", "", "case-insensitive name filter")
	if err := parse(fs, args); err != nil {
		return err
	}

	lc, err := c.loadLeads(ctx)
	if err != nil {
		return err
	}
	lc.SetLeadStatus(*status)
	lc.SetArchitectStatus(*architect)
	lc.SetQuery(*query)

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCONTACT\tSTATUS\tARCHITECT\tADDRESS")
	for _, card := range lc.Cards(ctx) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			card.ID, card.Name, card.ContactNumber, card.LeadStatus, card.ArchitectStatus, card.Address)
	}
	return tw.Flush()
}

type leadFlags struct {
	name, address, contact, architect, status *string
}

func (c *cli) bindLeadFlags(fs *flag.FlagSet) leadFlags {
	d := dtos.NewLeadDraft()
	return leadFlags{
		name:      fs.String("name", "", "lead name"),
		address:   fs.String("address", "", "site address"),
		contact:   fs.String("contact", "", "contact number"),
		architect: fs.String("architect", d.ArchitectStatus, "architect account status"),
		status:    fs.String("status", d.LeadStatus, "lead status"),
	}
}

func (f leadFlags) apply(d *dtos.LeadDraft, given map[string]bool) {
	if given["name"] {
		d.Name = *f.name
	}
	if given["address"] {
		d.Address = *f.address
	}
	if given["contact"] {
		d.ContactNumber = *f.contact
	}
	if given["architect"] {
		d.ArchitectStatus = *f.architect
	}
	if given["status"] {
		d.LeadStatus = *f.status
	}
}

func (c *cli) leadAdd(ctx context.Context, args []string) error {
	fs := c.flagSet("leads add")
	f := c.bindLeadFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	fc := c.app.LeadCreate()
	fc.Edit(func(d *dtos.LeadDraft) { f.apply(d, setFlags(fs)) })
	err := fc.Submit(ctx)
	c.inlineError(fc.ConfigError())
	return err
}

func (c *cli) leadUpdate(ctx context.Context, args []string) error {
	fs := c.flagSet("leads update")
	id := fs.String("id", "", "lead id")
	f := c.bindLeadFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	fc := c.app.LeadUpdate()
	if err := fc.Load(ctx, *id); err != nil {
		c.inlineError(fc.ConfigError())
		return err
	}
	fc.Edit(func(d *dtos.LeadDraft) { f.apply(d, setFlags(fs)) })
	err := fc.Submit(ctx)
	c.inlineError(fc.ConfigError())
	return err
}

func (c *cli) leadDelete(ctx context.Context, args []string) error {
	fs := c.flagSet("leads delete")
	id := fs.String("id", "", "lead id")
	if err := parse(fs, args); err != nil {
		return err
	}

	lc, err := c.loadLeads(ctx)
	if err != nil {
		return err
	}
	lead, ok := lc.Find(*id)
	if !ok {
		return fmt.Errorf("lead %q not found", *id)
	}
	if err := lc.RequestDelete(ctx, lead); err != nil {
		return err
	}
	return c.answerDialog()
}

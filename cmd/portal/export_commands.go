package main

import (
	"context"
	"fmt"
	"os"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/utils/export"
)

func (c *cli) export(ctx context.Context, args []string) error {
	sub, rest, err := c.subcommand("export", args, "catalog", "leads", "users")
	if err != nil {
		return err
	}
	fs := c.flagSet("export " + sub)
	out := fs.String("out", sub+".xlsx", "output workbook")
	category := fs.String("category", constants.CategoryEconomy, "catalog category (catalog only)")
	if err := parse(fs, rest); err != nil {
		return err
	}
	c.warnSession(ctx, c.app.AdminAuth)

	var sheet export.Sheet
	switch sub {
	case "catalog":
		sheet, err = c.catalogSheet(ctx, *category)
	case "leads":
		sheet, err = c.leadSheet(ctx)
	default:
		sheet, err = c.userSheet(ctx)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(f, sheet); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Exported %d rows to %s\n", len(sheet.Rows), *out)
	return nil
}

func (c *cli) catalogSheet(ctx context.Context, category string) (export.Sheet, error) {
	lc, err := c.loadCatalog(ctx, category, "", "")
	if err != nil {
		return export.Sheet{}, err
	}
	sheet := export.Sheet{
		Name:    "Catalog " + category,
		Headers: []string{"Name", "Category", "Work Type", "Type", "Price", "Description", "Image", "Video"},
	}
	for _, item := range lc.Visible() {
		sheet.Rows = append(sheet.Rows, []any{
			item.Name, item.Category, item.WorkType, item.Type, item.Price, item.Description, item.ImageLink, item.VideoLink,
		})
	}
	return sheet, nil
}

func (c *cli) leadSheet(ctx context.Context) (export.Sheet, error) {
	lc, err := c.loadLeads(ctx)
	if err != nil {
		return export.Sheet{}, err
	}
	sheet := export.Sheet{
		Name:    "Leads",
		Headers: []string{"ID", "Name", "Address", "Contact Number", "Lead Status", "Architect Status"},
	}
	for _, l := range lc.Visible() {
		sheet.Rows = append(sheet.Rows, []any{l.ID, l.Name, l.Address, l.ContactNumber, l.LeadStatus, l.ArchitectStatus})
	}
	return sheet, nil
}

func (c *cli) userSheet(ctx context.Context) (export.Sheet, error) {
	lc := c.app.UserList()
	if err := lc.Refresh(ctx); err != nil {
		return export.Sheet{}, c.listError(lc.ErrorMessage(), err)
	}
	sheet := export.Sheet{
		Name:    "Users",
		Headers: []string{"Name", "Email", "Phone", "Address", "Admin"},
	}
	for _, u := range lc.Visible() {
		sheet.Rows = append(sheet.Rows, []any{u.Name, u.Email, u.Phone, u.Address, u.IsAdmin})
	}
	return sheet, nil
}

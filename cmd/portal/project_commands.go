package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
)

func (c *cli) users(ctx context.Context, args []string) error {
	sub, rest, err := c.subcommand("users", args, "list")
	if err != nil || sub != "list" {
		return err
	}
	fs := c.flagSet("users list")
	query := fs.String("q", "", "case-insensitive name filter")
	if err := parse(fs, rest); err != nil {
		return err
	}
	c.warnSession(ctx, c.app.AdminAuth)

	lc := c.app.UserList()
	if err := lc.Refresh(ctx); err != nil {
		return c.listError(lc.ErrorMessage(), err)
	}
	lc.SetQuery(*query)

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tPHONE\tADMIN")
	for _, card := range lc.Cards() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", card.Name, card.Email, card.Phone, card.Admin)
	}
	return tw.Flush()
}

func (c *cli) projects(ctx context.Context, args []string) error {
	sub, rest, err := c.subcommand("projects", args, "list", "add")
	if err != nil {
		return err
	}
	c.warnSession(ctx, c.app.AdminAuth)
	if sub == "list" {
		return c.projectList(ctx, rest)
	}
	return c.projectAdd(ctx, rest)
}

func (c *cli) projectList(ctx context.Context, args []string) error {
	fs := c.flagSet("projects list")
	email := fs.String("email", "", "customer email")
	if err := parse(fs, args); err != nil {
		return err
	}

	lc := c.app.ProjectList(*email)
	if err := lc.Refresh(ctx); err != nil {
		return c.listError(lc.ErrorMessage(), err)
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tHEAD\tARCHITECT\tCATEGORY")
	for _, card := range lc.Cards() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", card.ID, card.Kind, card.Head, card.Architect, card.Category)
	}
	return tw.Flush()
}

func (c *cli) projectAdd(ctx context.Context, args []string) error {
	fs := c.flagSet("projects add")
	email := fs.String("email", "", "customer email")
	head := fs.String("head", "", "project head")
	architect := fs.String("architect", "", "architect name")
	category := fs.String("category", constants.CategoryEconomy, "Builder, Economy, Standard or VedaX")
	kind := fs.String("kind", "kitchen", "kitchen or wardrobe")
	kitchenType := fs.String("kitchen-type", constants.KitchenTypeLShape, "L-Shape, U-Shape, Parallel or Straight")
	theme := fs.String("theme", constants.DefaultKitchenTheme, "kitchen theme")
	loft := fs.Bool("loft", false, "loft required")
	notes := fs.String("notes", "", "additional requirements")
	var appliances, counters, wardrobeTypes, files multiFlag
	fs.Var(&appliances, "appliance", "kitchen appliance (repeatable)")
	fs.Var(&counters, "counter", "counter requirement (repeatable, replaces the default)")
	fs.Var(&wardrobeTypes, "wardrobe-type", "Hinged or Sliding (repeatable)")
	fs.Var(&files, "file", "layout plan or measurement file (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}

	k, err := models.ParseProjectKind(*kind)
	if err != nil {
		return err
	}

	pc := c.app.ProjectCreate(*email)
	pc.SetKind(k)
	pc.EditProject(func(p *dtos.ProjectDraft) {
		p.ProjectHead = *head
		p.ArchitectName = *architect
		p.Category = *category
	})

	if k == models.ProjectKitchen {
		pc.EditKitchen(func(d *dtos.KitchenDraft) {
			d.KitchenType = *kitchenType
			d.Theme = *theme
			d.LoftRequired = *loft
			d.AdditionalRequirements = *notes
			if len(counters) > 0 {
				d.CounterRequirements = models.NewOrderedSet()
			}
		})
		for _, name := range counters {
			pc.ToggleCounterRequirement(name)
		}
		for _, name := range appliances {
			if _, err := pc.ToggleAppliance(name); err != nil {
				return err
			}
		}
	} else {
		pc.EditWardrobe(func(d *dtos.WardrobeDraft) { d.AdditionalRequirements = *notes })
		for _, name := range wardrobeTypes {
			if _, err := pc.ToggleWardrobeType(name); err != nil {
				return err
			}
		}
	}

	for _, path := range files {
		a, err := dtos.LoadAttachment(path)
		if err != nil {
			return err
		}
		if _, err := pc.StageFile(a); err != nil {
			return err
		}
	}

	err = pc.Submit(ctx)
	c.inlineError(pc.ConfigError())
	return err
}

func (c *cli) designs(ctx context.Context, args []string) error {
	sub, rest, err := c.subcommand("designs", args, "list", "add", "download")
	if err != nil {
		return err
	}
	c.warnSession(ctx, c.app.AdminAuth)
	switch sub {
	case "list":
		return c.designList(ctx, rest)
	case "add":
		return c.designAdd(ctx, rest)
	default:
		return c.designDownload(ctx, rest)
	}
}

func (c *cli) designList(ctx context.Context, args []string) error {
	fs := c.flagSet("designs list")
	project := fs.String("project", "", "project id")
	query := fs.String("q", "", "case-insensitive name filter")
	if err := parse(fs, args); err != nil {
		return err
	}

	lc := c.app.DesignList(*project)
	if err := lc.Refresh(ctx); err != nil {
		return c.listError(lc.ErrorMessage(), err)
	}
	lc.SetQuery(*query)

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tIMAGE\tDESIGN")
	for _, asset := range lc.Visible() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", asset.Key(), asset.DisplayName(), asset.ImageLink, asset.DesignLink)
	}
	return tw.Flush()
}

// parseDesignItem reads "name=Base units,image=base.png,design=base.dwg".
func parseDesignItem(raw string) (name, image, design string, err error) {
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return "", "", "", fmt.Errorf("invalid item %q: want key=value pairs", raw)
		}
		switch strings.TrimSpace(key) {
		case "name":
			name = value
		case "image":
			image = strings.TrimSpace(value)
		case "design":
			design = strings.TrimSpace(value)
		default:
			return "", "", "", fmt.Errorf("invalid item %q: unknown key %q", raw, key)
		}
	}
	return name, image, design, nil
}

func (c *cli) designAdd(ctx context.Context, args []string) error {
	fs := c.flagSet("designs add")
	project := fs.String("project", "", "project id")
	var items multiFlag
	fs.Var(&items, "item", "name=...,image=path,design=path (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}

	dc := c.app.DesignCreate(*project)
	for _, raw := range items {
		name, imagePath, designPath, err := parseDesignItem(raw)
		if err != nil {
			return err
		}
		image, err := loadAttachment(imagePath)
		if err != nil {
			return err
		}
		design, err := loadAttachment(designPath)
		if err != nil {
			return err
		}
		if _, err := dc.AddItem(name, image, design); err != nil {
			return err
		}
	}
	err := dc.Submit(ctx)
	c.inlineError(dc.ConfigError())
	return err
}

func (c *cli) designDownload(ctx context.Context, args []string) error {
	fs := c.flagSet("designs download")
	project := fs.String("project", "", "project id")
	key := fs.String("key", "", "asset key from designs list; all assets when empty")
	dir := fs.String("dir", ".", "target directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}

	lc := c.app.DesignList(*project)
	if err := lc.Refresh(ctx); err != nil {
		return c.listError(lc.ErrorMessage(), err)
	}
	keys := []string{*key}
	if *key == "" {
		keys = keys[:0]
		for _, asset := range lc.Visible() {
			keys = append(keys, asset.Key())
		}
	}
	for _, k := range keys {
		path, err := lc.Download(ctx, k, *dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, path)
	}
	return nil
}

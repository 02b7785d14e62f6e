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

func (c *cli) catalog(ctx context.Context, args []string) error {
	sub, rest, err := c.subcommand("catalog", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	c.warnSession(ctx, c.app.AdminAuth)
	switch sub {
	case "list":
		return c.catalogList(ctx, rest)
	case "add":
		return c.catalogAdd(ctx, rest)
	case "update":
		return c.catalogUpdate(ctx, rest)
	default:
		return c.catalogDelete(ctx, rest)
	}
}

// loadCatalog fetches the catalog with the given filter. Filter changes
// fetch by themselves; an unchanged filter needs an explicit refresh.
func (c *cli) loadCatalog(ctx context.Context, category, itemType, workType string) (*controllers.CatalogListController, error) {
	lc := c.app.CatalogList()
	if category != "" && category != lc.Filter().Category {
		if err := lc.SetCategory(ctx, category); err != nil {
			return lc, c.listError(lc.ErrorMessage(), err)
		}
	}
	if itemType != "" && itemType != lc.Filter().Type {
		if err := lc.SetType(ctx, itemType); err != nil {
			return lc, c.listError(lc.ErrorMessage(), err)
		}
	}
	if workType != "" && workType != lc.Filter().WorkType {
		if err := lc.SetWorkType(ctx, workType); err != nil {
			return lc, c.listError(lc.ErrorMessage(), err)
		}
	}
	if lc.Snapshot().Generation == 0 {
		if err := lc.Refresh(ctx); err != nil {
			return lc, c.listError(lc.ErrorMessage(), err)
		}
	}
	return lc, nil
}

func (c *cli) listError(msg string, err error) error {
	c.inlineError(msg)
	return err
}

func (c *cli) catalogList(ctx context.Context, args []string) error {
	fs := c.flagSet("catalog list")
	category := fs.String("category", constants.CategoryEconomy, "Builder, Economy, Standard or VedaX")
	itemType := fs.String("type", constants.FilterAll, "All, Normal or Premium")
	workType := fs.String("worktype", constants.FilterAll, "work type, or All")
	query := fs.String("q", "", "case-insensitive name filter")
	if err := parse(fs, args); err != nil {
		return err
	}

	lc, err := c.loadCatalog(ctx, *category, *itemType, *workType)
	if err != nil {
		return err
	}
	lc.SetQuery(*query)

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tWORK TYPE\tTYPE\tPRICE")
	for _, card := range lc.Cards(ctx) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", card.Name, card.Category, card.WorkType, card.Type, card.Price)
	}
	return tw.Flush()
}

// catalogFlags binds the editable catalog fields.
type catalogFlags struct {
	name, description, category, workType, itemType, image, video *string
	price                                                         *float64
}

func (c *cli) bindCatalogFlags(name string) (*flag.FlagSet, catalogFlags) {
	fs := c.flagSet(name)
	d := dtos.NewCatalogDraft()
	f := catalogFlags{
		name:        fs.String("name", "", "item name"),
		description: fs.String("description", "", "item description"),
		category:    fs.String("category", d.Category, "Builder, Economy, Standard or VedaX"),
		workType:    fs.String("worktype", d.WorkType, "work type"),
		itemType:    fs.String("type", d.Type, "Normal or Premium"),
		price:       fs.Float64("price", 0, "price in rupees"),
		image:       fs.String("image", "", "path of the image file"),
		video:       fs.String("video", "", "path of the video file"),
	}
	return fs, f
}

// apply copies the flags that were given onto the draft.
func (f catalogFlags) apply(d *dtos.CatalogDraft, given map[string]bool) error {
	if given["description"] {
		d.Description = *f.description
	}
	if given["category"] {
		d.Category = *f.category
	}
	if given["worktype"] {
		d.WorkType = *f.workType
	}
	if given["type"] {
		d.Type = *f.itemType
	}
	if given["price"] {
		d.Price = *f.price
	}
	image, err := loadAttachment(*f.image)
	if err != nil {
		return err
	}
	video, err := loadAttachment(*f.video)
	if err != nil {
		return err
	}
	if image != nil {
		d.Image = image
	}
	if video != nil {
		d.Video = video
	}
	return nil
}

func (c *cli) catalogAdd(ctx context.Context, args []string) error {
	fs, f := c.bindCatalogFlags("catalog add")
	if err := parse(fs, args); err != nil {
		return err
	}

	fc := c.app.CatalogCreate()
	var applyErr error
	fc.Edit(func(d *dtos.CatalogDraft) {
		d.Name = *f.name
		applyErr = f.apply(d, setFlags(fs))
	})
	if applyErr != nil {
		return applyErr
	}
	err := fc.Submit(ctx)
	c.inlineError(fc.ConfigError())
	return err
}

func (c *cli) catalogUpdate(ctx context.Context, args []string) error {
	fs, f := c.bindCatalogFlags("catalog update")
	if err := parse(fs, args); err != nil {
		return err
	}

	fc := c.app.CatalogUpdate()
	if err := fc.Load(ctx, *f.name); err != nil {
		c.inlineError(fc.ConfigError())
		return err
	}
	var applyErr error
	fc.Edit(func(d *dtos.CatalogDraft) { applyErr = f.apply(d, setFlags(fs)) })
	if applyErr != nil {
		return applyErr
	}
	err := fc.Submit(ctx)
	c.inlineError(fc.ConfigError())
	return err
}

func (c *cli) catalogDelete(ctx context.Context, args []string) error {
	fs := c.flagSet("catalog delete")
	name := fs.String("name", "", "item name")
	category := fs.String("category", constants.CategoryEconomy, "category the item is listed under")
	if err := parse(fs, args); err != nil {
		return err
	}

	lc, err := c.loadCatalog(ctx, *category, "", "")
	if err != nil {
		return err
	}
	item, ok := lc.Find(*name)
	if !ok {
		return fmt.Errorf("catalog item %q not found in %s", *name, *category)
	}
	if err := lc.RequestDelete(ctx, item); err != nil {
		return err
	}
	return c.answerDialog()
}

package controllers

import (
	"context"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
)

// CatalogListController backs the admin catalog display. Category, type and
// work type are server-side filters; the name query is client-side.
type CatalogListController struct {
	listView[models.CatalogItem]

	filter dtos.CatalogFilter
}

func NewCatalogListController(deps Deps, auth *services.AuthContext) *CatalogListController {
	c := &CatalogListController{
		filter: dtos.CatalogFilter{
			Category: constants.CategoryEconomy,
			Type:     constants.FilterAll,
			WorkType: constants.FilterAll,
		},
	}
	c.init(deps, auth, "catalog_list", constants.MsgLoadFailed)
	c.remove = func(ctx context.Context, token string, item models.CatalogItem) error {
		return c.deps.Client.DeleteCatalogItem(ctx, token, item.Name)
	}
	c.editRoute = func(item models.CatalogItem) string {
		return routes.WithQuery(routes.AdminCatalogUpdate, "name", item.Name)
	}
	return c
}

// Filter returns the active server-side filter.
func (c *CatalogListController) Filter() dtos.CatalogFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Refresh fetches the catalog for the active filter.
func (c *CatalogListController) Refresh(ctx context.Context) error {
	return c.load(ctx, c.fetcher(c.Filter()))
}

// SetCategory switches category and resets type and work type to All.
func (c *CatalogListController) SetCategory(ctx context.Context, category string) error {
	return c.apply(ctx, func(f *dtos.CatalogFilter) {
		f.Category = category
		f.Type = constants.FilterAll
		f.WorkType = constants.FilterAll
	})
}

// SetType filters by item type; the work-type filter is reset.
func (c *CatalogListController) SetType(ctx context.Context, itemType string) error {
	return c.apply(ctx, func(f *dtos.CatalogFilter) {
		f.Type = itemType
		f.WorkType = constants.FilterAll
	})
}

// SetWorkType filters by work type; the type filter is reset.
func (c *CatalogListController) SetWorkType(ctx context.Context, workType string) error {
	return c.apply(ctx, func(f *dtos.CatalogFilter) {
		f.WorkType = workType
		f.Type = constants.FilterAll
	})
}

// apply changes the filter and refetches once, or does nothing when the
// filter is unchanged.
func (c *CatalogListController) apply(ctx context.Context, change func(*dtos.CatalogFilter)) error {
	c.mu.Lock()
	next := c.filter
	change(&next)
	if next == c.filter {
		c.mu.Unlock()
		return nil
	}
	c.filter = next
	c.mu.Unlock()
	return c.load(ctx, c.fetcher(next))
}

func (c *CatalogListController) fetcher(f dtos.CatalogFilter) fetchFunc[models.CatalogItem] {
	return func(ctx context.Context, token string) ([]models.CatalogItem, error) {
		return c.deps.Client.ListCatalog(ctx, token, f)
	}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
)

// CatalogListPath resolves the listing path for a filter. A work-type filter
// takes precedence over a type filter.
func CatalogListPath(f dtos.CatalogFilter) (path, route string) {
	category := f.Category
	if category == "" {
		category = constants.CategoryEconomy
	}
	switch {
	case isFiltered(f.WorkType):
		return routes.Join(routes.CatalogCategory, category, "workType", f.WorkType),
			routes.CatalogCategory + "/:category/workType/:workType"
	case isFiltered(f.Type):
		return routes.Join(routes.CatalogCategory, category, "type", f.Type),
			routes.CatalogCategory + "/:category/type/:type"
	default:
		return routes.Join(routes.CatalogCategory, category), routes.CatalogCategory + "/:category"
	}
}

func isFiltered(v string) bool {
	return v != "" && v != constants.FilterAll
}

func (c *Client) ListCatalog(ctx context.Context, token string, f dtos.CatalogFilter) ([]models.CatalogItem, error) {
	path, route := CatalogListPath(f)
	var raw json.RawMessage
	if _, err := c.doRequest(ctx, call{method: http.MethodGet, path: path, route: route, token: token, out: &raw}); err != nil {
		return nil, fmt.Errorf("ListCatalog error: %w", err)
	}
	items, err := decodeList[models.CatalogItem](raw, "items")
	if err != nil {
		return nil, fmt.Errorf("ListCatalog error: %w", err)
	}
	return items, nil
}

func (c *Client) GetCatalogItem(ctx context.Context, token, name string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	_, err := c.doRequest(ctx, call{
		method: http.MethodGet,
		path:   routes.CatalogItem(name),
		route:  routes.Catalog + "/:name",
		token:  token,
		out:    &item,
	})
	if err != nil {
		return nil, fmt.Errorf("GetCatalogItem error: %w", err)
	}
	return &item, nil
}

// catalogForm builds the multipart body shared by create and update. The
// video part is only sent for Premium items.
func catalogForm(d dtos.CatalogDraft) *multipartForm {
	form := newMultipartForm().
		Field("name", d.Name).
		Field("description", d.Description).
		Field("category", d.Category).
		Field("workType", d.WorkType).
		Field("price", strconv.FormatFloat(d.Price, 'f', -1, 64)).
		Field("type", d.Type).
		File("image", d.Image)
	if d.Type == constants.ItemTypePremium {
		form.File("video", d.Video)
	}
	return form
}

// CreateCatalogItem uploads a new item. The backend answers 201 on success.
func (c *Client) CreateCatalogItem(ctx context.Context, token string, d dtos.CatalogDraft) (int, error) {
	status, err := c.doRequest(ctx, call{
		method: http.MethodPost,
		path:   routes.Catalog,
		route:  routes.Catalog,
		token:  token,
		form:   catalogForm(d),
	})
	if err != nil {
		return status, fmt.Errorf("CreateCatalogItem error: %w", err)
	}
	return status, nil
}

// UpdateCatalogItem patches the item addressed by name. Without new media the
// body is JSON.
func (c *Client) UpdateCatalogItem(ctx context.Context, token, name string, d dtos.CatalogDraft) error {
	req := call{
		method: http.MethodPatch,
		path:   routes.CatalogItem(name),
		route:  routes.Catalog + "/:name",
		token:  token,
	}
	if form := catalogForm(d); form.HasFiles() {
		req.form = form
	} else {
		req.body = map[string]any{
			"name":        d.Name,
			"description": d.Description,
			"category":    d.Category,
			"workType":    d.WorkType,
			"price":       d.Price,
			"type":        d.Type,
		}
	}
	if _, err := c.doRequest(ctx, req); err != nil {
		return fmt.Errorf("UpdateCatalogItem error: %w", err)
	}
	return nil
}

func (c *Client) DeleteCatalogItem(ctx context.Context, token, name string) error {
	_, err := c.doRequest(ctx, call{
		method: http.MethodDelete,
		path:   routes.CatalogItem(name),
		route:  routes.Catalog + "/:name",
		token:  token,
	})
	if err != nil {
		return fmt.Errorf("DeleteCatalogItem error: %w", err)
	}
	return nil
}

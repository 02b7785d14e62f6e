package controllers

import (
	"context"
	"fmt"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// DesignListController shows the design assets of one project, flattened
// across upload batches.
type DesignListController struct {
	listView[models.DesignAsset]

	projectID string
}

func NewDesignListController(deps Deps, auth *services.AuthContext, projectID string) *DesignListController {
	c := &DesignListController{projectID: projectID}
	c.init(deps, auth, "design_list", constants.MsgLoadFailed)
	return c
}

func (c *DesignListController) ProjectID() string {
	return c.projectID
}

func (c *DesignListController) Refresh(ctx context.Context) error {
	return c.load(ctx, func(ctx context.Context, token string) ([]models.DesignAsset, error) {
		designs, err := c.deps.Client.ListDesigns(ctx, token, c.projectID)
		if err != nil {
			return nil, err
		}
		return models.Flatten(designs), nil
	})
}

// AddDesigns opens the upload form for this project.
func (c *DesignListController) AddDesigns() {
	if c.deps.Navigator != nil {
		c.deps.Navigator.Push(routes.AdminProjectDesignsAdd(c.projectID))
	}
}

// Download saves the asset with key into dir. The design file is preferred
// over the preview image.
func (c *DesignListController) Download(ctx context.Context, key, dir string) (string, error) {
	asset, ok := c.Find(key)
	if !ok {
		return "", fmt.Errorf("design asset %s: %w", key, utils.ErrNotFound)
	}
	if c.deps.Downloader == nil {
		return "", fmt.Errorf("design asset %s: no downloader configured", key)
	}
	link := utils.FirstNonEmpty(asset.DesignLink, asset.ImageLink)
	if link == "" {
		return "", fmt.Errorf("design asset %s has no file", key)
	}
	path, err := c.deps.Downloader.Download(ctx, link, dir, asset.DisplayName())
	if err != nil {
		c.notify(utils.RawMessage(err, constants.MsgLoadFailed), components.SeverityRed)
		return "", err
	}
	return path, nil
}

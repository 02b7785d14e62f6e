package controllers

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// DesignFormController stages design items for a project and uploads them
// as one batch.
type DesignFormController struct {
	formState

	auth      *services.AuthContext
	projectID string

	itemsMu sync.Mutex
	items   []dtos.DesignItemDraft
}

func NewDesignFormController(deps Deps, auth *services.AuthContext, projectID string) *DesignFormController {
	c := &DesignFormController{auth: auth, projectID: strings.TrimSpace(projectID)}
	c.formState.init(deps, "design_create")
	return c
}

// AddItem validates and stages one item. Either file may be nil, not both.
func (c *DesignFormController) AddItem(name string, image, design *dtos.Attachment) (string, error) {
	item := dtos.DesignItemDraft{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Image:  image,
		Design: design,
	}
	if err := c.validate(item); err != nil {
		return "", err
	}
	c.itemsMu.Lock()
	c.items = append(c.items, item)
	c.itemsMu.Unlock()
	return item.ID, nil
}

func (c *DesignFormController) RemoveItem(id string) bool {
	c.itemsMu.Lock()
	defer c.itemsMu.Unlock()
	i := slices.IndexFunc(c.items, func(it dtos.DesignItemDraft) bool { return it.ID == id })
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

func (c *DesignFormController) Items() []dtos.DesignItemDraft {
	c.itemsMu.Lock()
	defer c.itemsMu.Unlock()
	return slices.Clone(c.items)
}

// Submit uploads every staged item.
func (c *DesignFormController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	batch := dtos.DesignBatch{ProjectID: c.projectID, Items: c.Items()}
	if err := c.validate(batch); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	logger := c.log().WithField("project_id", c.projectID)
	if err := c.deps.Client.CreateDesigns(ctx, readToken(ctx, c.auth), batch); err != nil {
		logger.WithError(err).Error("Design upload failed")
		c.fail(utils.RawMessage(err, constants.MsgDesignsAddFailed))
		return err
	}

	logger.WithField("items", len(batch.Items)).Info("Designs uploaded")
	c.succeed(constants.MsgDesignsAdded)
	c.itemsMu.Lock()
	c.items = nil
	c.itemsMu.Unlock()
	c.navigateAfter(constants.DesignRedirectDelay, routes.AdminProjectDesigns(c.projectID))
	return nil
}

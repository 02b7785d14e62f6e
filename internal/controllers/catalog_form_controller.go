package controllers

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// FormMode tells a form whether it creates a new entity or edits one.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeUpdate
)

func (m FormMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// CatalogFormController backs the add-item and update-item pages.
type CatalogFormController struct {
	formState

	auth *services.AuthContext
	mode FormMode

	draftMu      sync.Mutex
	draft        dtos.CatalogDraft
	originalName string
	loaded       bool
}

func NewCatalogCreateController(deps Deps, auth *services.AuthContext) *CatalogFormController {
	c := &CatalogFormController{auth: auth, mode: ModeCreate, draft: dtos.NewCatalogDraft()}
	c.formState.init(deps, "catalog_create")
	return c
}

func NewCatalogUpdateController(deps Deps, auth *services.AuthContext) *CatalogFormController {
	c := &CatalogFormController{auth: auth, mode: ModeUpdate, draft: dtos.NewCatalogDraft()}
	c.formState.init(deps, "catalog_update")
	return c
}

func (c *CatalogFormController) Mode() FormMode {
	return c.mode
}

func (c *CatalogFormController) Draft() dtos.CatalogDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.draft
}

// Edit applies fn to the draft.
func (c *CatalogFormController) Edit(fn func(*dtos.CatalogDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.draft)
}

// OriginalName is the name addressed by an update, as loaded.
func (c *CatalogFormController) OriginalName() string {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.originalName
}

// Loaded reports whether Load seeded the draft.
func (c *CatalogFormController) Loaded() bool {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.loaded
}

// Load prefetches the item being edited and seeds the draft with it.
func (c *CatalogFormController) Load(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		c.fail(constants.MsgCatalogNameMissing)
		return utils.ErrNotFound
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	item, err := c.deps.Client.GetCatalogItem(ctx, readToken(ctx, c.auth), name)
	if err != nil {
		c.log().WithError(err).Warn("Failed to load catalog item")
		c.fail(constants.MsgCatalogLoadFailed)
		return err
	}

	c.draftMu.Lock()
	c.draft = dtos.CatalogDraftFromItem(*item)
	c.originalName = name
	c.loaded = true
	c.draftMu.Unlock()
	return nil
}

// Submit validates the draft and creates or updates the item.
func (c *CatalogFormController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	draft := c.Draft()
	original := c.OriginalName()
	if c.mode == ModeUpdate {
		if original == "" {
			c.fail(constants.MsgCatalogNameMissing)
			return utils.ErrNotFound
		}
		// the addressed item keeps its name
		draft.Name = original
	}
	draft.Name = strings.TrimSpace(draft.Name)

	if err := c.validate(draft); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	token := readToken(ctx, c.auth)
	if c.mode == ModeCreate {
		return c.create(ctx, token, draft)
	}
	return c.update(ctx, token, original, draft)
}

func (c *CatalogFormController) create(ctx context.Context, token string, draft dtos.CatalogDraft) error {
	status, err := c.deps.Client.CreateCatalogItem(ctx, token, draft)
	if err != nil {
		c.log().WithError(err).Error("Catalog create failed")
		c.fail(utils.UserMessage(err, constants.MsgServerError))
		return err
	}
	if status != http.StatusCreated {
		c.log().WithField("status", status).Warn("Catalog create returned unexpected status")
		c.fail(constants.MsgCatalogCreateFailed)
		return utils.ErrUnexpectedStatus
	}

	c.log().WithField("name", draft.Name).Info("Catalog item created")
	c.succeed(constants.MsgCatalogCreated)
	c.draftMu.Lock()
	c.draft = dtos.NewCatalogDraft()
	c.draftMu.Unlock()
	return nil
}

func (c *CatalogFormController) update(ctx context.Context, token, original string, draft dtos.CatalogDraft) error {
	if err := c.deps.Client.UpdateCatalogItem(ctx, token, original, draft); err != nil {
		c.log().WithError(err).Error("Catalog update failed")
		c.fail(utils.UserMessage(err, constants.MsgCatalogUpdateFailed))
		return err
	}
	c.log().WithField("name", original).Info("Catalog item updated")
	c.succeed(constants.MsgCatalogUpdated)
	c.navigateAfter(constants.CatalogRedirectDelay, routes.AdminCatalogDisplay)
	return nil
}

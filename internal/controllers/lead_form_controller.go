package controllers

import (
	"context"
	"strings"
	"sync"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
)

// LeadFormController backs the add-lead and update-lead pages.
type LeadFormController struct {
	formState

	auth *services.AuthContext
	mode FormMode

	draftMu sync.Mutex
	draft   dtos.LeadDraft
	leadID  string
}

func NewLeadCreateController(deps Deps, auth *services.AuthContext) *LeadFormController {
	c := &LeadFormController{auth: auth, mode: ModeCreate, draft: dtos.NewLeadDraft()}
	c.formState.init(deps, "lead_create")
	return c
}

func NewLeadUpdateController(deps Deps, auth *services.AuthContext) *LeadFormController {
	c := &LeadFormController{auth: auth, mode: ModeUpdate, draft: dtos.NewLeadDraft()}
	c.formState.init(deps, "lead_update")
	return c
}

func (c *LeadFormController) Mode() FormMode {
	return c.mode
}

func (c *LeadFormController) Draft() dtos.LeadDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.draft
}

func (c *LeadFormController) Edit(fn func(*dtos.LeadDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.draft)
}

func (c *LeadFormController) LeadID() string {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.leadID
}

// Load fetches the lead being edited.
func (c *LeadFormController) Load(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		c.fail(constants.MsgLeadIDMissing)
		return utils.ErrNotFound
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	lead, err := c.deps.Client.GetLead(ctx, readToken(ctx, c.auth), id)
	if err != nil {
		c.log().WithError(err).Warn("Failed to load lead")
		c.fail(utils.UserMessage(err, constants.MsgLeadLoadFailed))
		return err
	}

	c.draftMu.Lock()
	c.draft = dtos.LeadDraftFromLead(*lead)
	c.leadID = id
	c.draftMu.Unlock()
	return nil
}

// Submit sends the trimmed draft.
func (c *LeadFormController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	draft := c.Draft().Trimmed()
	id := c.LeadID()
	if c.mode == ModeUpdate && id == "" {
		c.fail(constants.MsgLeadIDMissing)
		return utils.ErrNotFound
	}
	if err := c.validate(draft); err != nil {
		return err
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	token := readToken(ctx, c.auth)
	logger := c.log().WithField("lead", draft.Name)

	if c.mode == ModeCreate {
		if err := c.deps.Client.CreateLead(ctx, token, draft.Request()); err != nil {
			logger.WithError(err).Error("Lead create failed")
			c.fail(utils.UserMessage(err, constants.MsgLeadCreateFailed))
			return err
		}
		logger.Info("Lead created")
		c.succeed(constants.MsgLeadCreated)
		c.draftMu.Lock()
		c.draft = dtos.NewLeadDraft()
		c.draftMu.Unlock()
	} else {
		if err := c.deps.Client.UpdateLead(ctx, token, id, draft.Request()); err != nil {
			logger.WithError(err).Error("Lead update failed")
			c.fail(utils.UserMessage(err, constants.MsgLeadUpdateFailed))
			return err
		}
		logger.Info("Lead updated")
		c.succeed(constants.MsgLeadUpdated)
	}

	c.navigateAfter(constants.LeadRedirectDelay, routes.AdminLeadDisplay)
	return nil
}

package controllers

import (
	"context"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
)

// LeadListController fetches every lead once and filters on the client by
// lead status, architect status and name.
type LeadListController struct {
	listView[models.Lead]

	leadStatus      string
	architectStatus string
}

func NewLeadListController(deps Deps, auth *services.AuthContext) *LeadListController {
	c := &LeadListController{
		leadStatus:      constants.FilterAll,
		architectStatus: constants.FilterAll,
	}
	c.init(deps, auth, "lead_list", constants.MsgLeadsLoadFailed)
	c.remove = func(ctx context.Context, token string, lead models.Lead) error {
		return c.deps.Client.DeleteLead(ctx, token, lead.ID)
	}
	c.editRoute = func(lead models.Lead) string {
		return routes.WithQuery(routes.AdminLeadUpdate, "id", lead.ID)
	}
	// called with c.mu held
	c.clientMatch = func(lead models.Lead) bool {
		if c.leadStatus != constants.FilterAll && lead.LeadStatus != c.leadStatus {
			return false
		}
		return c.architectStatus == constants.FilterAll || lead.ArchitectStatus == c.architectStatus
	}
	return c
}

func (c *LeadListController) Refresh(ctx context.Context) error {
	return c.load(ctx, c.deps.Client.ListLeads)
}

func (c *LeadListController) SetLeadStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leadStatus = filterValue(status)
}

func (c *LeadListController) SetArchitectStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.architectStatus = filterValue(status)
}

// Filters returns the lead status and architect status filters.
func (c *LeadListController) Filters() (leadStatus, architectStatus string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leadStatus, c.architectStatus
}

// AddLead opens the lead creation page.
func (c *LeadListController) AddLead() {
	if c.deps.Navigator != nil {
		c.deps.Navigator.Push(routes.AdminLeadAdd)
	}
}

func filterValue(v string) string {
	if v == "" {
		return constants.FilterAll
	}
	return v
}

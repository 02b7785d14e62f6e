package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
)

const leadRoute = routes.InitialLead + "/:id"

func (c *Client) ListLeads(ctx context.Context, token string) ([]models.Lead, error) {
	var raw json.RawMessage
	_, err := c.doRequest(ctx, call{method: http.MethodGet, path: routes.InitialLead, route: routes.InitialLead, token: token, out: &raw})
	if err != nil {
		return nil, fmt.Errorf("ListLeads error: %w", err)
	}
	leads, err := decodeList[models.Lead](raw, "leads")
	if err != nil {
		return nil, fmt.Errorf("ListLeads error: %w", err)
	}
	return leads, nil
}

func (c *Client) GetLead(ctx context.Context, token, id string) (*models.Lead, error) {
	var lead models.Lead
	_, err := c.doRequest(ctx, call{method: http.MethodGet, path: routes.Lead(id), route: leadRoute, token: token, out: &lead})
	if err != nil {
		return nil, fmt.Errorf("GetLead error: %w", err)
	}
	return &lead, nil
}

func (c *Client) CreateLead(ctx context.Context, token string, req dtos.LeadRequest) error {
	_, err := c.doRequest(ctx, call{method: http.MethodPost, path: routes.InitialLead, route: routes.InitialLead, token: token, body: req})
	if err != nil {
		return fmt.Errorf("CreateLead error: %w", err)
	}
	return nil
}

func (c *Client) UpdateLead(ctx context.Context, token, id string, req dtos.LeadRequest) error {
	_, err := c.doRequest(ctx, call{method: http.MethodPatch, path: routes.Lead(id), route: leadRoute, token: token, body: req})
	if err != nil {
		return fmt.Errorf("UpdateLead error: %w", err)
	}
	return nil
}

func (c *Client) DeleteLead(ctx context.Context, token, id string) error {
	_, err := c.doRequest(ctx, call{method: http.MethodDelete, path: routes.Lead(id), route: leadRoute, token: token})
	if err != nil {
		return fmt.Errorf("DeleteLead error: %w", err)
	}
	return nil
}

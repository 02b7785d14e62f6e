package controllers

import (
	"context"
	"strings"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
)

// ProjectListController lists the projects of one customer. The email is a
// server-side filter.
type ProjectListController struct {
	listView[models.Project]

	email string
}

func NewProjectListController(deps Deps, auth *services.AuthContext, userEmail string) *ProjectListController {
	c := &ProjectListController{email: strings.TrimSpace(userEmail)}
	c.init(deps, auth, "project_list", constants.MsgLoadFailed)
	return c
}

func (c *ProjectListController) Email() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.email
}

func (c *ProjectListController) Refresh(ctx context.Context) error {
	return c.load(ctx, c.fetcher(c.Email()))
}

// SetEmail changes the customer and refetches, unless it is unchanged.
func (c *ProjectListController) SetEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	c.mu.Lock()
	if email == c.email {
		c.mu.Unlock()
		return nil
	}
	c.email = email
	c.mu.Unlock()
	return c.load(ctx, c.fetcher(email))
}

func (c *ProjectListController) fetcher(email string) fetchFunc[models.Project] {
	return func(ctx context.Context, token string) ([]models.Project, error) {
		return c.deps.Client.ListProjectsByUser(ctx, token, email)
	}
}

func (c *ProjectListController) OpenDesigns(p models.Project) {
	c.push(routes.AdminProjectDesigns(p.ID))
}

func (c *ProjectListController) OpenQuotation(p models.Project) {
	c.push(routes.AdminProjectQuotation(p.ID))
}

// NewProject opens the creation form for the current customer.
func (c *ProjectListController) NewProject() {
	c.push(routes.WithQuery(routes.AdminProjectAdd, "userEmail", c.Email()))
}

func (c *ProjectListController) push(route string) {
	if c.deps.Navigator != nil {
		c.deps.Navigator.Push(route)
	}
}

package controllers

import (
	"context"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
)

// UserListController lists registered accounts. Users are read-only.
type UserListController struct {
	listView[models.User]
}

func NewUserListController(deps Deps, auth *services.AuthContext) *UserListController {
	c := &UserListController{}
	c.init(deps, auth, "user_list", constants.MsgLoadFailed)
	return c
}

func (c *UserListController) Refresh(ctx context.Context) error {
	return c.load(ctx, c.deps.Client.ListUsers)
}

// OpenProjects navigates to the projects of user.
func (c *UserListController) OpenProjects(user models.User) {
	if c.deps.Navigator != nil {
		c.deps.Navigator.Push(routes.WithQuery(routes.AdminProjects, "userEmail", user.Email))
	}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
)

// ListProjectsByUser returns the projects owned by userEmail.
func (c *Client) ListProjectsByUser(ctx context.Context, token, userEmail string) ([]models.Project, error) {
	var raw json.RawMessage
	_, err := c.doRequest(ctx, call{
		method: http.MethodGet,
		path:   routes.WithQuery(routes.ProjectByUser, "userEmail", userEmail),
		route:  routes.ProjectByUser,
		token:  token,
		out:    &raw,
	})
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByUser error: %w", err)
	}
	projects, err := decodeList[models.Project](raw, "projects")
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByUser error: %w", err)
	}
	return projects, nil
}

// CreateProject sends the project as JSON, or as multipart with the
// configuration serialised into a JSON field when files are attached.
func (c *Client) CreateProject(ctx context.Context, token string, req dtos.CreateProjectRequest) (int, error) {
	cl := call{method: http.MethodPost, path: routes.Project, route: routes.Project, token: token}

	if len(req.Files) == 0 {
		cl.body = req
	} else {
		form := newMultipartForm().
			Field("userEmail", req.UserEmail).
			Field("projectHead", req.ProjectHead).
			Field("architectName", req.ArchitectName).
			Field("category", req.Category)
		if req.Kitchen != nil {
			b, err := json.Marshal(req.Kitchen)
			if err != nil {
				return 0, fmt.Errorf("CreateProject error: %w", err)
			}
			form.Field("kitchen", string(b))
		}
		if req.Wardrobe != nil {
			b, err := json.Marshal(req.Wardrobe)
			if err != nil {
				return 0, fmt.Errorf("CreateProject error: %w", err)
			}
			form.Field("wardrobe", string(b))
		}
		for _, f := range req.Files {
			form.File("files", f)
		}
		cl.form = form
	}

	status, err := c.doRequest(ctx, cl)
	if err != nil {
		return status, fmt.Errorf("CreateProject error: %w", err)
	}
	return status, nil
}

// ListDesigns returns the design batches of a project.
func (c *Client) ListDesigns(ctx context.Context, token, projectID string) ([]models.Design, error) {
	var raw json.RawMessage
	_, err := c.doRequest(ctx, call{
		method: http.MethodGet,
		path:   routes.ProjectDesigns(projectID),
		route:  routes.Designs + "/:projectId",
		token:  token,
		out:    &raw,
	})
	if err != nil {
		return nil, fmt.Errorf("ListDesigns error: %w", err)
	}
	designs, err := decodeList[models.Design](raw, "designs")
	if err != nil {
		return nil, fmt.Errorf("ListDesigns error: %w", err)
	}
	return designs, nil
}

// CreateDesigns uploads a batch of design items for a project.
func (c *Client) CreateDesigns(ctx context.Context, token string, batch dtos.DesignBatch) error {
	form := newMultipartForm().Field("projectId", batch.ProjectID)
	for i, item := range batch.Items {
		prefix := "items[" + strconv.Itoa(i) + "]"
		form.Field(prefix+"[name]", item.Name)
		form.File(prefix+"[image]", item.Image)
		form.File(prefix+"[design]", item.Design)
	}
	_, err := c.doRequest(ctx, call{method: http.MethodPost, path: routes.Designs, route: routes.Designs, token: token, form: form})
	if err != nil {
		return fmt.Errorf("CreateDesigns error: %w", err)
	}
	return nil
}

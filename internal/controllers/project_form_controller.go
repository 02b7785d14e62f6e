package controllers

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/routes"
	"github.com/homeveda/portal-client/internal/services"
	"github.com/homeveda/portal-client/internal/utils"
	"github.com/homeveda/portal-client/internal/utils/preview"
)

// StagedFile is a layout plan or measurement sheet picked for upload.
// Preview is nil for files that are not images.
type StagedFile struct {
	ID         string
	Attachment *dtos.Attachment
	Preview    *preview.Preview
}

// ProjectFormController backs the project creation page. A project is
// either a kitchen or a wardrobe; only the active sub-form is submitted.
type ProjectFormController struct {
	formState

	auth      *services.AuthContext
	previews  *preview.Store
	userEmail string

	draftMu  sync.Mutex
	project  dtos.ProjectDraft
	kind     models.ProjectKind
	kitchen  dtos.KitchenDraft
	wardrobe dtos.WardrobeDraft
	staged   map[models.ProjectKind][]StagedFile
}

func NewProjectFormController(deps Deps, auth *services.AuthContext, previews *preview.Store, userEmail string) *ProjectFormController {
	if previews == nil {
		previews = preview.NewStore()
	}
	c := &ProjectFormController{
		auth:      auth,
		previews:  previews,
		userEmail: strings.TrimSpace(userEmail),
	}
	c.resetLocked()
	c.formState.init(deps, "project_create")
	return c
}

// resetLocked releases every staged preview and restores the empty
// defaults. Called with draftMu held.
func (c *ProjectFormController) resetLocked() {
	for _, files := range c.staged {
		for _, f := range files {
			if f.Preview != nil {
				c.previews.Release(f.Preview.ID)
			}
		}
	}
	c.project = dtos.NewProjectDraft(c.userEmail)
	c.kind = models.ProjectKitchen
	c.kitchen = dtos.NewKitchenDraft()
	c.wardrobe = dtos.WardrobeDraft{}
	c.staged = make(map[models.ProjectKind][]StagedFile)
}

func (c *ProjectFormController) Kind() models.ProjectKind {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.kind
}

func (c *ProjectFormController) SetKind(kind models.ProjectKind) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	c.kind = kind
}

// ToggleKind flips between kitchen and wardrobe and returns the new kind.
func (c *ProjectFormController) ToggleKind() models.ProjectKind {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	if c.kind == models.ProjectKitchen {
		c.kind = models.ProjectWardrobe
	} else {
		c.kind = models.ProjectKitchen
	}
	return c.kind
}

func (c *ProjectFormController) Project() dtos.ProjectDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.project
}

func (c *ProjectFormController) EditProject(fn func(*dtos.ProjectDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.project)
}

// Kitchen returns a copy of the kitchen sub-form.
func (c *ProjectFormController) Kitchen() dtos.KitchenDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	k := c.kitchen
	k.CounterRequirements = models.NewOrderedSet(c.kitchen.CounterRequirements.Values()...)
	k.Appliances = models.NewOrderedSet(c.kitchen.Appliances.Values()...)
	return k
}

func (c *ProjectFormController) EditKitchen(fn func(*dtos.KitchenDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.kitchen)
}

// Wardrobe returns a copy of the wardrobe sub-form.
func (c *ProjectFormController) Wardrobe() dtos.WardrobeDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	w := c.wardrobe
	w.Type = models.NewOrderedSet(c.wardrobe.Type.Values()...)
	return w
}

func (c *ProjectFormController) EditWardrobe(fn func(*dtos.WardrobeDraft)) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	fn(&c.wardrobe)
}

// ToggleAppliance adds or removes a kitchen appliance and reports whether it
// is now selected.
func (c *ProjectFormController) ToggleAppliance(name string) (bool, error) {
	if !slices.Contains(constants.KitchenAppliances, name) {
		return false, fmt.Errorf("%s: %q", constants.MsgApplianceInvalid, name)
	}
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.kitchen.Appliances.Toggle(name), nil
}

// ToggleCounterRequirement adds or removes a counter requirement.
func (c *ProjectFormController) ToggleCounterRequirement(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.kitchen.CounterRequirements.Toggle(name)
}

// ToggleWardrobeType adds or removes Hinged or Sliding.
func (c *ProjectFormController) ToggleWardrobeType(name string) (bool, error) {
	if !slices.Contains(constants.WardrobeTypes, name) {
		return false, fmt.Errorf("%s: %q", constants.MsgWardrobeTypeInvalid, name)
	}
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.wardrobe.Type.Toggle(name), nil
}

// StageFile adds a file to the active sub-form and returns its id. Images
// get a thumbnail preview.
func (c *ProjectFormController) StageFile(a *dtos.Attachment) (string, error) {
	if a == nil || a.Size() == 0 {
		return "", fmt.Errorf("empty file")
	}
	p, err := c.previews.Generate(a)
	if err != nil {
		c.log().WithError(err).Warn("Preview generation failed")
		return "", err
	}
	file := StagedFile{ID: uuid.NewString(), Attachment: a, Preview: p}
	if p != nil {
		file.ID = p.ID
	}

	c.draftMu.Lock()
	c.staged[c.kind] = append(c.staged[c.kind], file)
	c.draftMu.Unlock()
	return file.ID, nil
}

// RemoveFile unstages a file from either sub-form and releases its preview.
func (c *ProjectFormController) RemoveFile(id string) bool {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	for kind, files := range c.staged {
		for i, f := range files {
			if f.ID != id {
				continue
			}
			c.staged[kind] = slices.Delete(files, i, i+1)
			if f.Preview != nil {
				c.previews.Release(f.Preview.ID)
			}
			return true
		}
	}
	return false
}

// StagedFiles lists the active sub-form's files in staging order.
func (c *ProjectFormController) StagedFiles() []StagedFile {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return slices.Clone(c.staged[c.kind])
}

// buildRequest snapshots the active sub-form into a create request. The
// draft itself is left untouched.
func (c *ProjectFormController) buildRequest() (dtos.CreateProjectRequest, dtos.ProjectDraft, *dtos.KitchenDraft) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()

	project := c.project
	project.UserEmail = strings.TrimSpace(project.UserEmail)
	project.ProjectHead = strings.TrimSpace(project.ProjectHead)
	project.ArchitectName = strings.TrimSpace(project.ArchitectName)

	req := dtos.CreateProjectRequest{
		UserEmail:     project.UserEmail,
		ProjectHead:   project.ProjectHead,
		ArchitectName: project.ArchitectName,
		Category:      project.Category,
	}
	for _, f := range c.staged[c.kind] {
		req.Files = append(req.Files, f.Attachment)
	}

	var kitchen *dtos.KitchenDraft
	if c.kind == models.ProjectKitchen {
		k := c.kitchen
		kitchen = &k
		cfg := k.Config()
		req.Kitchen = &cfg
	} else {
		cfg := c.wardrobe.Config()
		req.Wardrobe = &cfg
	}
	return req, project, kitchen
}

// Submit creates the project with the active sub-form only.
func (c *ProjectFormController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	req, project, kitchen := c.buildRequest()
	if err := c.validate(project); err != nil {
		return err
	}
	if kitchen != nil {
		if err := c.validate(*kitchen); err != nil {
			return err
		}
		if !slices.Contains(constants.KitchenThemes, kitchen.Theme) {
			c.fail(constants.MsgKitchenOptions)
			return &utils.ValidationError{Field: "Theme", Tag: "oneof", Message: constants.MsgKitchenOptions}
		}
	}
	if err := c.ensureConfigured(); err != nil {
		return err
	}

	logger := c.log().WithField("user_email", req.UserEmail)
	status, err := c.deps.Client.CreateProject(ctx, readToken(ctx, c.auth), req)
	if err != nil {
		logger.WithError(err).Error("Project create failed")
		c.fail(utils.UserMessage(err, constants.MsgProjectCreateFailed))
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		logger.WithField("status", status).Warn("Project create returned unexpected status")
		c.fail(constants.MsgProjectCreateFailed)
		return utils.ErrUnexpectedStatus
	}

	logger.Info("Project created")
	c.succeed(constants.MsgProjectCreated)

	// The inactive sub-form's files go with the rest of the draft.
	c.draftMu.Lock()
	c.resetLocked()
	c.draftMu.Unlock()

	c.navigateAfter(constants.ProjectRedirectDelay, routes.WithQuery(routes.AdminProjects, "userEmail", req.UserEmail))
	return nil
}

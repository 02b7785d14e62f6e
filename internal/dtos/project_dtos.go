package dtos

import (
	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
)

// ProjectDraft holds the shared project fields. The kitchen or wardrobe part
// lives in the form controller and is attached at submit.
type ProjectDraft struct {
	UserEmail     string `validate:"required,email" msg:"User email is required"`
	ProjectHead   string `validate:"required" msg:"Project head is required"`
	ArchitectName string
	Category      string `validate:"required,oneof=Builder Economy Standard VedaX"`
}

func NewProjectDraft(userEmail string) ProjectDraft {
	return ProjectDraft{UserEmail: userEmail, Category: constants.CategoryEconomy}
}

type KitchenDraft struct {
	KitchenType            string `validate:"required,oneof=L-Shape U-Shape Parallel Straight" msg:"Please choose a kitchen type and theme."`
	CounterRequirements    models.OrderedSet
	Appliances             models.OrderedSet
	LoftRequired           bool
	Theme                  string `validate:"required" msg:"Please choose a kitchen type and theme."`
	AdditionalRequirements string
}

func NewKitchenDraft() KitchenDraft {
	return KitchenDraft{
		KitchenType:         constants.KitchenTypeLShape,
		CounterRequirements: models.NewOrderedSet(constants.DefaultCounterRequirement),
		Theme:               constants.DefaultKitchenTheme,
	}
}

// Config converts the draft to the backend document. Layout plans travel as
// files, so the link list stays empty here.
func (d KitchenDraft) Config() models.KitchenConfig {
	return models.KitchenConfig{
		KitchenType:            d.KitchenType,
		CounterRequirements:    models.NewOrderedSet(d.CounterRequirements.Values()...),
		Appliances:             models.NewOrderedSet(d.Appliances.Values()...),
		LoftRequired:           d.LoftRequired,
		Theme:                  d.Theme,
		AdditionalRequirements: d.AdditionalRequirements,
	}
}

type WardrobeDraft struct {
	Type                   models.OrderedSet
	AdditionalRequirements string
}

func (d WardrobeDraft) Config() models.WardrobeConfig {
	return models.WardrobeConfig{
		Type:                   models.NewOrderedSet(d.Type.Values()...),
		AdditionalRequirements: d.AdditionalRequirements,
	}
}

// CreateProjectRequest is the body of POST /project. Exactly one of Kitchen
// and Wardrobe is set.
type CreateProjectRequest struct {
	UserEmail     string                 `json:"userEmail"`
	ProjectHead   string                 `json:"projectHead"`
	ArchitectName string                 `json:"architectName,omitempty"`
	Category      string                 `json:"category"`
	Kitchen       *models.KitchenConfig  `json:"kitchen,omitempty"`
	Wardrobe      *models.WardrobeConfig `json:"wardrobe,omitempty"`
	Files         []*Attachment          `json:"-"`
}

type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

package dtos

import (
	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
)

// CatalogDraft is the editable state of the catalog create/update form.
// ExistingImage and ExistingVideo hold the links of the item being edited.
type CatalogDraft struct {
	Name          string  `validate:"required" msg:"Please fill name, category, price and type."`
	Category      string  `validate:"required" msg:"Please fill name, category, price and type."`
	Price         float64 `validate:"required,gt=0" msg:"Please fill name, category, price and type."`
	Type          string  `validate:"required,oneof=Normal Premium" msg:"Please fill name, category, price and type."`
	WorkType      string
	Description   string
	Image         *Attachment `msg_normal_media:"Normal items require an image." msg_premium_media:"Premium items require both image and video."`
	Video         *Attachment
	ExistingImage string
	ExistingVideo string
}

// NewCatalogDraft returns the create-form defaults.
func NewCatalogDraft() CatalogDraft {
	return CatalogDraft{
		Category: constants.CategoryBuilder,
		WorkType: constants.WorkTypeWood,
		Type:     constants.ItemTypeNormal,
	}
}

// CatalogDraftFromItem seeds the update form from a fetched item.
func CatalogDraftFromItem(item models.CatalogItem) CatalogDraft {
	return CatalogDraft{
		Name:          item.Name,
		Category:      item.Category,
		Price:         item.Price,
		Type:          item.Type,
		WorkType:      item.WorkType,
		Description:   item.Description,
		ExistingImage: item.ImageLink,
		ExistingVideo: item.VideoLink,
	}
}

func (d CatalogDraft) HasImage() bool {
	return d.Image != nil || d.ExistingImage != ""
}

func (d CatalogDraft) HasVideo() bool {
	return d.Video != nil || d.ExistingVideo != ""
}

// CatalogFilter is the server-side filter of the catalog listing. Empty or
// "All" type/workType means unfiltered.
type CatalogFilter struct {
	Category string
	Type     string
	WorkType string
}

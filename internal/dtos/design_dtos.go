package dtos

import "github.com/homeveda/portal-client/internal/models"

// DesignItemDraft is one staged row of the design upload form. At least one of
// Image and Design must be present.
type DesignItemDraft struct {
	ID     string
	Name   string      `validate:"required" msg:"Item name is required."`
	Image  *Attachment `msg_design_file:"Please select an image file or a design file."`
	Design *Attachment
}

type DesignBatch struct {
	ProjectID string            `validate:"required"`
	Items     []DesignItemDraft `validate:"min=1" msg:"Please add at least one design item."`
}

type DesignsResponse struct {
	Designs []models.Design `json:"designs"`
}

type UsersResponse struct {
	Users []models.User `json:"users"`
}

package dtos

import (
	"strings"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/models"
)

type LeadDraft struct {
	Name            string `validate:"required" msg:"Name is required"`
	Address         string `validate:"required" msg:"Address is required"`
	ContactNumber   string `validate:"required,contact" msg_required:"Contact number is required" msg_contact:"Enter a valid contact number"`
	ArchitectStatus string `validate:"required,oneof='Account Not Created' 'Account Created'" msg:"Please choose a valid architect status."`
	LeadStatus      string `validate:"required,oneof=New Hot Closed 'Follow Up'" msg:"Please choose a valid lead status."`
}

func NewLeadDraft() LeadDraft {
	return LeadDraft{
		ArchitectStatus: constants.ArchitectStatusNotCreated,
		LeadStatus:      constants.LeadStatusNew,
	}
}

func LeadDraftFromLead(l models.Lead) LeadDraft {
	d := LeadDraft{
		Name:            l.Name,
		Address:         l.Address,
		ContactNumber:   l.ContactNumber,
		ArchitectStatus: l.ArchitectStatus,
		LeadStatus:      l.LeadStatus,
	}
	if d.ArchitectStatus == "" {
		d.ArchitectStatus = constants.ArchitectStatusNotCreated
	}
	if d.LeadStatus == "" {
		d.LeadStatus = constants.LeadStatusNew
	}
	return d
}

// Trimmed is the draft as it is validated and sent.
func (d LeadDraft) Trimmed() LeadDraft {
	return LeadDraft{
		Name:            strings.TrimSpace(d.Name),
		Address:         strings.TrimSpace(d.Address),
		ContactNumber:   strings.TrimSpace(d.ContactNumber),
		ArchitectStatus: strings.TrimSpace(d.ArchitectStatus),
		LeadStatus:      strings.TrimSpace(d.LeadStatus),
	}
}

func (d LeadDraft) Request() LeadRequest {
	return LeadRequest{
		Name:            d.Name,
		Address:         d.Address,
		ContactNumber:   d.ContactNumber,
		ArchitectStatus: d.ArchitectStatus,
		LeadStatus:      d.LeadStatus,
	}
}

type LeadRequest struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	ContactNumber   string `json:"contactNumber"`
	ArchitectStatus string `json:"architectStatus"`
	LeadStatus      string `json:"leadStatus"`
}

package controllers

import (
	"context"
	"strconv"
)

// Card view-models: the display fields of one entity plus its actions.

type CatalogCard struct {
	Name      string
	Category  string
	WorkType  string
	Type      string
	Price     string
	ImageLink string
	VideoLink string
	OnEdit    func()
	OnDelete  func() error
}

type LeadCard struct {
	ID              string
	Name            string
	Address         string
	ContactNumber   string
	LeadStatus      string
	ArchitectStatus string
	OnEdit          func()
	OnDelete        func() error
}

type UserCard struct {
	Name           string
	Email          string
	Phone          string
	Admin          bool
	OnOpenProjects func()
}

type ProjectCard struct {
	ID              string
	Head            string
	Architect       string
	Category        string
	Kind            string
	OnOpenDesigns   func()
	OnOpenQuotation func()
}

// FormatPrice renders a price the way the cards show it, e.g. "₹1,200.50".
func FormatPrice(p float64) string {
	whole := int64(p)
	frac := int64((p-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}
	digits := strconv.FormatInt(whole, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	s := "₹" + string(out)
	if frac > 0 {
		s += "." + strconv.FormatInt(100+frac, 10)[1:]
	}
	return s
}

func (c *CatalogListController) Cards(ctx context.Context) []CatalogCard {
	items := c.Visible()
	cards := make([]CatalogCard, 0, len(items))
	for _, item := range items {
		item := item
		cards = append(cards, CatalogCard{
			Name:      item.Name,
			Category:  item.Category,
			WorkType:  item.WorkType,
			Type:      item.Type,
			Price:     FormatPrice(item.Price),
			ImageLink: item.ImageLink,
			VideoLink: item.VideoLink,
			OnEdit:    func() { c.OpenForEdit(item) },
			OnDelete:  func() error { return c.RequestDelete(ctx, item) },
		})
	}
	return cards
}

func (c *LeadListController) Cards(ctx context.Context) []LeadCard {
	leads := c.Visible()
	cards := make([]LeadCard, 0, len(leads))
	for _, lead := range leads {
		lead := lead
		cards = append(cards, LeadCard{
			ID:              lead.ID,
			Name:            lead.Name,
			Address:         lead.Address,
			ContactNumber:   lead.ContactNumber,
			LeadStatus:      lead.LeadStatus,
			ArchitectStatus: lead.ArchitectStatus,
			OnEdit:          func() { c.OpenForEdit(lead) },
			OnDelete:        func() error { return c.RequestDelete(ctx, lead) },
		})
	}
	return cards
}

func (c *UserListController) Cards() []UserCard {
	users := c.Visible()
	cards := make([]UserCard, 0, len(users))
	for _, u := range users {
		u := u
		cards = append(cards, UserCard{
			Name:           u.DisplayName(),
			Email:          u.Email,
			Phone:          u.Phone,
			Admin:          u.IsAdmin,
			OnOpenProjects: func() { c.OpenProjects(u) },
		})
	}
	return cards
}

func (c *ProjectListController) Cards() []ProjectCard {
	projects := c.Visible()
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		p := p
		cards = append(cards, ProjectCard{
			ID:              p.ID,
			Head:            p.ProjectHead,
			Architect:       p.ArchitectName,
			Category:        p.Category,
			Kind:            p.Kind().String(),
			OnOpenDesigns:   func() { c.OpenDesigns(p) },
			OnOpenQuotation: func() { c.OpenQuotation(p) },
		})
	}
	return cards
}

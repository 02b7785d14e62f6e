package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Entity is anything a list view can show, filter by name and remove by key.
type Entity interface {
	Key() string
	DisplayName() string
}

// CatalogItem is a priced product. Name is the identity used in URLs.
type CatalogItem struct {
	ID          string  `json:"_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	WorkType    string  `json:"workType,omitempty"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
	ImageLink   string  `json:"imageLink,omitempty"`
	VideoLink   string  `json:"videoLink,omitempty"`
}

func (c CatalogItem) Key() string         { return c.Name }
func (c CatalogItem) DisplayName() string { return c.Name }

// UnmarshalJSON tolerates prices sent as strings and ids sent as "id".
func (c *CatalogItem) UnmarshalJSON(data []byte) error {
	type alias CatalogItem
	aux := struct {
		*alias
		Price   json.RawMessage `json:"price"`
		PlainID string          `json:"id"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Price = decodeNumber(aux.Price)
	c.ID = firstID(c.ID, aux.PlainID)
	return nil
}

// Lead is a prospective customer. Some backend records use "id", others "_id".
type Lead struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	ContactNumber   string `json:"contactNumber"`
	ArchitectStatus string `json:"architectStatus"`
	LeadStatus      string `json:"leadStatus"`
}

func (l Lead) Key() string         { return l.ID }
func (l Lead) DisplayName() string { return l.Name }

func (l *Lead) UnmarshalJSON(data []byte) error {
	type alias Lead
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.ID = firstID(l.ID, aux.MongoID)
	return nil
}

// User is a registered account as returned by the user listing. Read only.
type User struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

func (u User) Key() string { return u.ID }

func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		PlainID string `json:"id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.ID = firstID(u.ID, aux.PlainID)
	return nil
}

func firstID(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

func decodeNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return 0
}

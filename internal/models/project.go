package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProjectKind selects which configuration a project carries.
type ProjectKind int

const (
	ProjectKitchen ProjectKind = iota
	ProjectWardrobe
)

func (k ProjectKind) String() string {
	switch k {
	case ProjectKitchen:
		return "kitchen"
	case ProjectWardrobe:
		return "wardrobe"
	default:
		return "unknown"
	}
}

// ParseProjectKind converts "kitchen" or "wardrobe" to the enum.
func ParseProjectKind(s string) (ProjectKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kitchen":
		return ProjectKitchen, nil
	case "wardrobe":
		return ProjectWardrobe, nil
	default:
		return -1, fmt.Errorf("invalid project kind: %q", s)
	}
}

// KitchenConfig mirrors the backend's kitchen document. The JSON names,
// including requiremntsOfCounter, are fixed by the backend.
type KitchenConfig struct {
	KitchenType            string     `json:"kitchenType"`
	CounterRequirements    OrderedSet `json:"requiremntsOfCounter"`
	Appliances             OrderedSet `json:"appliances"`
	LoftRequired           bool       `json:"loftRequired"`
	Theme                  string     `json:"theme"`
	LayoutPlan             []string   `json:"layoutPlan,omitempty"`
	AdditionalRequirements string     `json:"additionalRequirements"`
}

type WardrobeConfig struct {
	Type                   OrderedSet `json:"type"`
	Measurements           []string   `json:"measurements,omitempty"`
	AdditionalRequirements string     `json:"additionalRequirements"`
}

// Project belongs to a user by email and holds exactly one configuration.
type Project struct {
	ID            string          `json:"_id,omitempty"`
	UserEmail     string          `json:"userEmail"`
	ProjectHead   string          `json:"projectHead"`
	ArchitectName string          `json:"architectName,omitempty"`
	Category      string          `json:"category"`
	Kitchen       *KitchenConfig  `json:"kitchen,omitempty"`
	Wardrobe      *WardrobeConfig `json:"wardrobe,omitempty"`
	Files         []string        `json:"files,omitempty"`
}

func (p Project) Key() string         { return p.ID }
func (p Project) DisplayName() string { return p.ProjectHead }

// Kind reports the configuration present. Records with neither are treated as kitchen.
func (p Project) Kind() ProjectKind {
	if p.Wardrobe != nil && p.Kitchen == nil {
		return ProjectWardrobe
	}
	return ProjectKitchen
}

// UnmarshalJSON accepts kitchen/wardrobe either as objects or as the JSON
// strings the multipart create path stores verbatim. The id may arrive as
// "_id" or "id".
func (p *Project) UnmarshalJSON(data []byte) error {
	type alias Project
	aux := struct {
		*alias
		Kitchen  json.RawMessage `json:"kitchen"`
		Wardrobe json.RawMessage `json:"wardrobe"`
		PlainID  string          `json:"id"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = firstID(p.ID, aux.PlainID)
	p.Kitchen = nil
	p.Wardrobe = nil
	if cfg := new(KitchenConfig); decodeEmbedded(aux.Kitchen, cfg) {
		p.Kitchen = cfg
	}
	if cfg := new(WardrobeConfig); decodeEmbedded(aux.Wardrobe, cfg) {
		p.Wardrobe = cfg
	}
	return nil
}

func decodeEmbedded(raw json.RawMessage, out any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return false
		}
		raw = json.RawMessage(s)
	}
	return json.Unmarshal(raw, out) == nil
}

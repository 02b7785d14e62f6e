package models

import "strconv"

// Design groups the assets uploaded for a project in one batch.
type Design struct {
	ID        string       `json:"_id,omitempty"`
	ProjectID string       `json:"projectId"`
	Items     []DesignItem `json:"items"`
}

type DesignItem struct {
	Name       string `json:"name"`
	ImageLink  string `json:"imageLink,omitempty"`
	DesignLink string `json:"designLink,omitempty"`
}

// DesignAsset is one design item flattened out of its batch for display.
type DesignAsset struct {
	DesignID string
	Index    int
	DesignItem
}

func (a DesignAsset) Key() string {
	return a.DesignID + "-" + strconv.Itoa(a.Index)
}

func (a DesignAsset) DisplayName() string {
	if a.Name == "" {
		return "Untitled Item"
	}
	return a.Name
}

// Flatten expands batches into individual assets, preserving order.
func Flatten(designs []Design) []DesignAsset {
	var out []DesignAsset
	for _, d := range designs {
		for i, item := range d.Items {
			out = append(out, DesignAsset{DesignID: d.ID, Index: i, DesignItem: item})
		}
	}
	return out
}

package testhelpers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
)

// PNG returns an encoded w x h image with a diagonal gradient.
func (h *TestHelper) PNG(w, hgt int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, hgt))
	for y := 0; y < hgt; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / max(w, 1)), G: uint8(y * 255 / max(hgt, 1)), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(h.T, png.Encode(&buf, img))
	return buf.Bytes()
}

// ImageAttachment is a small PNG upload.
func (h *TestHelper) ImageAttachment(name string) *dtos.Attachment {
	return dtos.NewAttachment(name, "image/png", h.PNG(32, 24))
}

// VideoAttachment is an opaque upload with a video content type.
func (h *TestHelper) VideoAttachment(name string) *dtos.Attachment {
	return dtos.NewAttachment(name, "video/mp4", []byte("\x00\x00\x00\x18ftypmp42"))
}

func SampleCatalogItems() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: "c1", Name: "Oak Shelf", Category: "Economy", WorkType: "Wood Work", Price: 1200, Type: "Normal", ImageLink: "https://cdn.example.com/oak.png"},
		{ID: "c2", Name: "Brass Handle", Category: "Economy", WorkType: "Main Hardware", Price: 350, Type: "Normal"},
		{ID: "c3", Name: "Teak Wardrobe Panel", Category: "Economy", WorkType: "Wood Work", Price: 5400, Type: "Premium"},
	}
}

func SampleLeads() []models.Lead {
	return []models.Lead{
		{ID: "L1", Name: "Asha Rao", Address: "12 MG Road", ContactNumber: "9845012345", ArchitectStatus: "Account Created", LeadStatus: "New"},
		{ID: "L2", Name: "Ravi Kumar", Address: "4 Park Street", ContactNumber: "9000011111", ArchitectStatus: "Account Not Created", LeadStatus: "Hot"},
		{ID: "L3", Name: "Meera Nair", Address: "7 Lake View", ContactNumber: "9123456780", ArchitectStatus: "Account Not Created", LeadStatus: "New"},
	}
}

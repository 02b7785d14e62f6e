package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/testhelpers"
	"github.com/homeveda/portal-client/internal/utils"
)

func TestCatalogCreateRequiresFields(t *testing.T) {
	cases := []struct {
		name    string
		edit    func(h *testhelpers.TestHelper, d *dtos.CatalogDraft)
		message string
	}{
		{"MissingName", func(h *testhelpers.TestHelper, d *dtos.CatalogDraft) {
			d.Price = 1200
			d.Image = h.ImageAttachment("oak.png")
		}, "Please fill name, category, price and type."},
		{"ZeroPrice", func(h *testhelpers.TestHelper, d *dtos.CatalogDraft) {
			d.Name = "Oak Shelf"
			d.Image = h.ImageAttachment("oak.png")
		}, "Please fill name, category, price and type."},
		{"NormalWithoutImage", func(h *testhelpers.TestHelper, d *dtos.CatalogDraft) {
			d.Name = "Oak Shelf"
			d.Price = 1200
		}, "Normal items require an image."},
		{"PremiumWithoutVideo", func(h *testhelpers.TestHelper, d *dtos.CatalogDraft) {
			d.Name = "Teak Panel"
			d.Price = 5400
			d.Type = "Premium"
			d.Image = h.ImageAttachment("teak.png")
		}, "Premium items require both image and video."},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := testhelpers.NewTestHelper(t)
			c := controllers.NewCatalogCreateController(depsFor(h), h.AdminAuth)
			c.Edit(func(d *dtos.CatalogDraft) { tc.edit(h, d) })

			var verr *utils.ValidationError
			require.ErrorAs(t, c.Submit(h.Ctx), &verr)
			require.Zero(t, h.Backend.Count(), "validation happens before any request")
			h.RequireNotification(components.SeverityRed, tc.message)
			require.False(t, c.Submitting())
		})
	}
}

func TestCatalogCreateNormalItem(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.LoginAdmin("admin-token")
	h.Backend.Respond(http.MethodPost, "/catelog", http.StatusCreated, map[string]string{"message": "Item created"})

	c := controllers.NewCatalogCreateController(depsFor(h), h.AdminAuth)
	c.Edit(func(d *dtos.CatalogDraft) {
		d.Name = "Oak Shelf"
		d.Category = "Economy"
		d.Price = 1200
		d.Image = h.ImageAttachment("oak.png")
	})
	require.NoError(t, c.Submit(h.Ctx))

	sent := h.Backend.Last()
	require.True(t, sent.IsMultipart())
	require.Equal(t, "admin-token", sent.Bearer())
	require.Equal(t, "Oak Shelf", sent.FormValue("name"))
	require.Equal(t, "Economy", sent.FormValue("category"))
	require.Equal(t, "1200", sent.FormValue("price"))
	require.Len(t, sent.Files["image"], 1)
	require.Empty(t, sent.Files["video"])

	h.RequireNotification(components.SeverityGreen, "Catalog item created.")
	require.Equal(t, 4*time.Second, h.LastNotification().Duration)
	require.Equal(t, dtos.NewCatalogDraft(), c.Draft(), "draft resets after create")

	h.Scheduler.Advance(5 * time.Second)
	require.Empty(t, h.History.Routes(), "create stays on the page")
}

func TestCatalogCreatePremiumItem(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/catelog", http.StatusCreated, nil)

	c := controllers.NewCatalogCreateController(depsFor(h), h.AdminAuth)
	c.Edit(func(d *dtos.CatalogDraft) {
		d.Name = "Teak Panel"
		d.Price = 5400
		d.Type = "Premium"
		d.Image = h.ImageAttachment("teak.png")
		d.Video = h.VideoAttachment("teak.mp4")
	})
	require.NoError(t, c.Submit(h.Ctx))

	sent := h.Backend.Last()
	require.Len(t, sent.Files["video"], 1)
	require.Equal(t, "video/mp4", sent.Files["video"][0].ContentType)
}

func TestCatalogCreateFailures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    any
		message string
	}{
		{"UnexpectedStatus", http.StatusOK, nil, "Failed to create item."},
		{"ServerMessage", http.StatusBadRequest, map[string]string{"message": "Item already exists"}, "Item already exists"},
		{"NoMessage", http.StatusInternalServerError, nil, "Server error."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := testhelpers.NewTestHelper(t)
			h.Backend.Respond(http.MethodPost, "/catelog", tc.status, tc.body)

			c := controllers.NewCatalogCreateController(depsFor(h), h.AdminAuth)
			c.Edit(func(d *dtos.CatalogDraft) {
				d.Name = "Oak Shelf"
				d.Price = 1200
				d.Image = h.ImageAttachment("oak.png")
			})
			require.Error(t, c.Submit(h.Ctx))
			h.RequireNotification(components.SeverityRed, tc.message)
			require.Equal(t, "Oak Shelf", c.Draft().Name, "draft stays editable after failure")
		})
	}
}

func TestCatalogCreateUnconfigured(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	c := controllers.NewCatalogCreateController(unconfiguredDeps(h), h.AdminAuth)
	c.Edit(func(d *dtos.CatalogDraft) {
		d.Name = "Oak Shelf"
		d.Price = 1200
		d.Image = h.ImageAttachment("oak.png")
	})

	require.ErrorIs(t, c.Submit(h.Ctx), utils.ErrBackendNotConfigured)
	require.Equal(t, "Backend URL not configured", c.ConfigError())
	require.Empty(t, h.Notifications(), "configuration errors are shown inline")
	require.Zero(t, h.Backend.Count())
}

func TestCatalogUpdate(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.LoginAdmin("admin-token")
	oak := testhelpers.SampleCatalogItems()[0]
	h.Backend.Respond(http.MethodGet, "/catelog/{name}", http.StatusOK, oak)
	h.Backend.Respond(http.MethodPatch, "/catelog/{name}", http.StatusOK, map[string]string{"message": "updated"})

	c := controllers.NewCatalogUpdateController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Load(h.Ctx, "Oak Shelf"))
	require.True(t, c.Loaded())
	require.Equal(t, float64(1200), c.Draft().Price)
	require.Equal(t, oak.ImageLink, c.Draft().ExistingImage)

	c.Edit(func(d *dtos.CatalogDraft) {
		d.Name = "Renamed Shelf"
		d.Price = 1350
	})
	require.NoError(t, c.Submit(h.Ctx), "the stored image satisfies the media rule")

	sent := h.Backend.Last()
	require.Equal(t, http.MethodPatch, sent.Method)
	require.Equal(t, "/catelog/Oak Shelf", sent.Path)
	require.Equal(t, "Oak Shelf", sent.JSON["name"], "the addressed item keeps its name")
	require.Equal(t, float64(1350), sent.JSON["price"])

	h.RequireNotification(components.SeverityGreen, "Catalog item updated successfully!")
	require.Equal(t, float64(1350), c.Draft().Price, "draft remains after update")

	h.Scheduler.Advance(1999 * time.Millisecond)
	require.Empty(t, h.History.Current())
	h.Scheduler.Advance(time.Millisecond)
	require.Equal(t, "/admin/catelog/display", h.History.Current())
}

func TestCatalogUpdateLoadFailures(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/catelog/{name}", http.StatusNotFound, nil)

	c := controllers.NewCatalogUpdateController(depsFor(h), h.AdminAuth)
	require.ErrorIs(t, c.Load(h.Ctx, "  "), utils.ErrNotFound)
	h.RequireNotification(components.SeverityRed, "Item name not found")
	require.Zero(t, h.Backend.Count())

	require.ErrorIs(t, c.Load(h.Ctx, "Ghost"), utils.ErrNotFound)
	h.RequireNotification(components.SeverityRed, "Failed to load item details")

	require.Error(t, c.Submit(h.Ctx))
	h.RequireNotification(components.SeverityRed, "Item name not found")
}

func TestCatalogUpdateFailureFallback(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/catelog/{name}", http.StatusOK, testhelpers.SampleCatalogItems()[0])
	h.Backend.Respond(http.MethodPatch, "/catelog/{name}", http.StatusInternalServerError, nil)

	c := controllers.NewCatalogUpdateController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Load(h.Ctx, "Oak Shelf"))
	require.Error(t, c.Submit(h.Ctx))
	h.RequireNotification(components.SeverityRed, "Failed to update item")

	h.Scheduler.Advance(time.Minute)
	require.Empty(t, h.History.Routes())
}

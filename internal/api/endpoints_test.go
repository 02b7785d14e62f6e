package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/api"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/testhelpers"
)

func TestCatalogListPath(t *testing.T) {
	cases := []struct {
		name   string
		filter dtos.CatalogFilter
		path   string
	}{
		{"DefaultCategory", dtos.CatalogFilter{}, "/catelog/category/Economy"},
		{"AllIsUnfiltered", dtos.CatalogFilter{Category: "Standard", Type: "All", WorkType: "All"}, "/catelog/category/Standard"},
		{"Type", dtos.CatalogFilter{Category: "VedaX", Type: "Premium"}, "/catelog/category/VedaX/type/Premium"},
		{"WorkTypeWins", dtos.CatalogFilter{Category: "Builder", Type: "Normal", WorkType: "Wood Work"}, "/catelog/category/Builder/workType/Wood%20Work"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path, _ := api.CatalogListPath(tc.filter)
			require.Equal(t, tc.path, path)
		})
	}
}

func TestListCatalogAcceptsBothShapes(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/catelog/category/Economy", http.StatusOK, testhelpers.SampleCatalogItems())
	h.Backend.Respond(http.MethodGet, "/catelog/category/Standard", http.StatusOK, map[string]any{"items": testhelpers.SampleCatalogItems()[:1]})

	items, err := h.Client.ListCatalog(h.Ctx, "tok", dtos.CatalogFilter{Category: "Economy"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	items, err = h.Client.ListCatalog(h.Ctx, "tok", dtos.CatalogFilter{Category: "Standard"})
	require.NoError(t, err)
	require.Equal(t, "Oak Shelf", items[0].Name)
}

func TestCreateCatalogItemMultipart(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/catelog", http.StatusCreated, map[string]string{"message": "created"})

	draft := dtos.NewCatalogDraft()
	draft.Name = "Oak Shelf"
	draft.Category = "Economy"
	draft.Price = 1200
	draft.Image = h.ImageAttachment("oak.png")
	draft.Video = h.VideoAttachment("ignored.mp4")

	status, err := h.Client.CreateCatalogItem(h.Ctx, "tok", draft)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)

	sent := h.Backend.Last()
	require.True(t, sent.IsMultipart())
	require.Equal(t, "Oak Shelf", sent.FormValue("name"))
	require.Equal(t, "1200", sent.FormValue("price"))
	require.Equal(t, "Normal", sent.FormValue("type"))
	require.Equal(t, "Wood Work", sent.FormValue("workType"))
	require.Len(t, sent.Files["image"], 1)
	require.Equal(t, "image/png", sent.Files["image"][0].ContentType)
	require.Empty(t, sent.Files["video"], "normal items never upload a video")
}

func TestUpdateCatalogItemEncoding(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPatch, "/catelog/{name}", http.StatusOK, nil)

	draft := dtos.CatalogDraftFromItem(testhelpers.SampleCatalogItems()[0])
	draft.Price = 1300
	require.NoError(t, h.Client.UpdateCatalogItem(h.Ctx, "tok", "Oak Shelf", draft))

	sent := h.Backend.Last()
	require.Equal(t, "/catelog/Oak Shelf", sent.Path)
	require.False(t, sent.IsMultipart())
	require.Equal(t, float64(1300), sent.JSON["price"])

	draft.Image = h.ImageAttachment("new-oak.png")
	require.NoError(t, h.Client.UpdateCatalogItem(h.Ctx, "tok", "Oak Shelf", draft))
	require.True(t, h.Backend.Last().IsMultipart())
}

func TestLeadEndpoints(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodPost, "/initiallead", http.StatusCreated, nil)
	h.Backend.Respond(http.MethodPatch, "/initiallead/{id}", http.StatusOK, nil)
	h.Backend.Respond(http.MethodDelete, "/initiallead/{id}", http.StatusOK, nil)

	draft := dtos.LeadDraftFromLead(testhelpers.SampleLeads()[0])
	require.NoError(t, h.Client.CreateLead(h.Ctx, "tok", draft.Request()))
	require.NoError(t, h.Client.UpdateLead(h.Ctx, "tok", "L1", draft.Request()))
	require.NoError(t, h.Client.DeleteLead(h.Ctx, "tok", "L1"))

	reqs := h.Backend.Requests()
	require.Len(t, reqs, 3)
	require.Equal(t, "9845012345", reqs[0].JSON["contactNumber"])
	require.Equal(t, "/initiallead/L1", reqs[1].Path)
	require.Equal(t, http.MethodDelete, reqs[2].Method)
}

func TestCreateProjectEncoding(t *testing.T) {
	kitchen := dtos.NewKitchenDraft().Config()
	req := dtos.CreateProjectRequest{
		UserEmail:   "asha@x.com",
		ProjectHead: "Asha Kitchen",
		Category:    "Economy",
		Kitchen:     &kitchen,
	}

	t.Run("JSONWithoutFiles", func(t *testing.T) {
		h := testhelpers.NewTestHelper(t)
		h.Backend.Respond(http.MethodPost, "/project", http.StatusCreated, nil)

		status, err := h.Client.CreateProject(h.Ctx, "tok", req)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, status)

		sent := h.Backend.Last()
		require.False(t, sent.IsMultipart())
		k, ok := sent.JSON["kitchen"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, []any{"Island"}, k["requiremntsOfCounter"])
		require.NotContains(t, sent.JSON, "wardrobe")
	})

	t.Run("MultipartWithFiles", func(t *testing.T) {
		h := testhelpers.NewTestHelper(t)
		h.Backend.Respond(http.MethodPost, "/project", http.StatusCreated, nil)

		withFiles := req
		withFiles.Files = []*dtos.Attachment{h.ImageAttachment("plan.png"), h.ImageAttachment("plan-2.png")}
		_, err := h.Client.CreateProject(h.Ctx, "tok", withFiles)
		require.NoError(t, err)

		sent := h.Backend.Last()
		require.True(t, sent.IsMultipart())
		require.Len(t, sent.Files["files"], 2)

		var k models.KitchenConfig
		require.NoError(t, json.Unmarshal([]byte(sent.FormValue("kitchen")), &k))
		require.Equal(t, "L-Shape", k.KitchenType)
		require.Empty(t, sent.FormValue("wardrobe"))
	})
}

func TestProjectsAndDesigns(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/project/user", http.StatusOK, map[string]any{
		"projects": []map[string]any{{"_id": "p1", "userEmail": "asha@x.com", "projectHead": "Asha Kitchen"}},
	})
	h.Backend.Respond(http.MethodGet, "/designs/{projectId}", http.StatusOK, map[string]any{
		"designs": []map[string]any{{"_id": "d1", "projectId": "p1", "items": []map[string]string{{"name": "Hall"}}}},
	})
	h.Backend.Respond(http.MethodPost, "/designs", http.StatusCreated, nil)

	projects, err := h.Client.ListProjectsByUser(h.Ctx, "tok", "asha@x.com")
	require.NoError(t, err)
	require.Equal(t, "p1", projects[0].ID)
	require.Equal(t, "userEmail=asha%40x.com", h.Backend.Last().Query)

	designs, err := h.Client.ListDesigns(h.Ctx, "tok", "p1")
	require.NoError(t, err)
	require.Equal(t, "Hall", designs[0].Items[0].Name)

	err = h.Client.CreateDesigns(h.Ctx, "tok", dtos.DesignBatch{
		ProjectID: "p1",
		Items: []dtos.DesignItemDraft{
			{Name: "Hall", Image: h.ImageAttachment("hall.png")},
			{Name: "Kitchen", Design: dtos.NewAttachment("kitchen.dwg", "application/octet-stream", []byte("dwg"))},
		},
	})
	require.NoError(t, err)

	sent := h.Backend.Last()
	require.Equal(t, "p1", sent.FormValue("projectId"))
	require.Equal(t, "Hall", sent.FormValue("items[0][name]"))
	require.Equal(t, "Kitchen", sent.FormValue("items[1][name]"))
	require.Len(t, sent.Files["items[0][image]"], 1)
	require.Len(t, sent.Files["items[1][design]"], 1)
	require.Empty(t, sent.Files["items[1][image]"])
}

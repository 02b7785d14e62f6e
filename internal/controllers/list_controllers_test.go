package controllers_test

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/components"
	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/models"
	"github.com/homeveda/portal-client/internal/testhelpers"
	"github.com/homeveda/portal-client/internal/utils"
)

func names(items []models.CatalogItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestCatalogListFilters(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.LoginAdmin("admin-token")
	items := testhelpers.SampleCatalogItems()
	h.Backend.Respond(http.MethodGet, "/catelog/category/{category}", http.StatusOK, items)
	h.Backend.Respond(http.MethodGet, "/catelog/category/{category}/type/{type}", http.StatusOK, items[2:])
	h.Backend.Respond(http.MethodGet, "/catelog/category/{category}/workType/{workType}", http.StatusOK, items[:2])

	c := controllers.NewCatalogListController(depsFor(h), h.AdminAuth)
	require.Equal(t, "Economy", c.Filter().Category)

	require.NoError(t, c.Refresh(h.Ctx))
	require.Len(t, c.Visible(), 3)
	require.Equal(t, "admin-token", h.Backend.Last().Bearer())

	t.Run("ChangeFetchesOnce", func(t *testing.T) {
		before := h.Backend.Count()
		require.NoError(t, c.SetType(h.Ctx, "Premium"))
		require.Equal(t, before+1, h.Backend.Count())
		require.Equal(t, "/catelog/category/Economy/type/Premium", h.Backend.Last().Path)
		require.Equal(t, []string{"Teak Wardrobe Panel"}, names(c.Visible()))

		require.NoError(t, c.SetType(h.Ctx, "Premium"))
		require.Equal(t, before+1, h.Backend.Count(), "unchanged filter does not refetch")
	})

	t.Run("WorkTypeResetsType", func(t *testing.T) {
		require.NoError(t, c.SetWorkType(h.Ctx, "Wood Work"))
		f := c.Filter()
		require.Equal(t, "All", f.Type)
		require.Equal(t, "Wood Work", f.WorkType)
		require.Equal(t, "/catelog/category/Economy/workType/Wood Work", h.Backend.Last().Path)
	})

	t.Run("CategoryResetsBoth", func(t *testing.T) {
		require.NoError(t, c.SetCategory(h.Ctx, "VedaX"))
		f := c.Filter()
		require.Equal(t, "VedaX", f.Category)
		require.Equal(t, "All", f.Type)
		require.Equal(t, "All", f.WorkType)
		require.Equal(t, "/catelog/category/VedaX", h.Backend.Last().Path)
	})
}

func TestCatalogListQueryIsClientSide(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/catelog/category/{category}", http.StatusOK, testhelpers.SampleCatalogItems())

	c := controllers.NewCatalogListController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Refresh(h.Ctx))
	fetches := h.Backend.Count()

	c.SetQuery("oAK")
	first := names(c.Visible())
	require.Equal(t, []string{"Oak Shelf"}, first)
	require.Equal(t, first, names(c.Visible()), "filtering is idempotent")

	c.SetQuery("HAND")
	require.Equal(t, []string{"Brass Handle"}, names(c.Visible()))

	c.SetQuery("")
	snap := c.Snapshot()
	require.Len(t, snap.Items, 3)
	require.Equal(t, 3, snap.Total)
	require.Equal(t, fetches, h.Backend.Count())
}

func TestCatalogListDiscardsStaleResponses(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	items := testhelpers.SampleCatalogItems()

	started := make(chan struct{})
	release := make(chan struct{})
	h.Backend.Handle(http.MethodGet, "/catelog/category/Economy", func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		testhelpers.WriteJSON(w, http.StatusOK, items[:1])
	})
	h.Backend.Respond(http.MethodGet, "/catelog/category/Standard", http.StatusOK, items[1:])

	c := controllers.NewCatalogListController(depsFor(h), h.AdminAuth)

	slow := make(chan error, 1)
	go func() { slow <- c.Refresh(h.Ctx) }()
	<-started
	require.True(t, c.Loading())

	require.NoError(t, c.SetCategory(h.Ctx, "Standard"))
	require.False(t, c.Loading(), "latest fetch settled")
	require.Equal(t, []string{"Brass Handle", "Teak Wardrobe Panel"}, names(c.Visible()))

	close(release)
	require.ErrorIs(t, <-slow, utils.ErrStaleResponse)

	snap := c.Snapshot()
	require.False(t, snap.Loading)
	require.Empty(t, snap.Error)
	require.Equal(t, []string{"Brass Handle", "Teak Wardrobe Panel"}, names(snap.Items))
}

func TestCatalogListDelete(t *testing.T) {
	setup := func(t *testing.T, deleteStatus int) (*testhelpers.TestHelper, *controllers.CatalogListController) {
		h := testhelpers.NewTestHelper(t)
		h.LoginAdmin("admin-token")
		h.Backend.Respond(http.MethodGet, "/catelog/category/{category}", http.StatusOK, testhelpers.SampleCatalogItems())
		h.Backend.Respond(http.MethodDelete, "/catelog/{name}", deleteStatus, map[string]string{"message": "Item is in use"})
		c := controllers.NewCatalogListController(depsFor(h), h.AdminAuth)
		require.NoError(t, c.Refresh(h.Ctx))
		return h, c
	}
	oak := testhelpers.SampleCatalogItems()[0]

	t.Run("CancelNeverDeletes", func(t *testing.T) {
		h, c := setup(t, http.StatusOK)
		require.NoError(t, c.RequestDelete(h.Ctx, oak))

		req, open := h.Dialog.Request()
		require.True(t, open)
		require.Equal(t, "Delete Oak Shelf?", req.Title)
		require.Equal(t, `Are you sure you want to delete "Oak Shelf"? This action cannot be undone.`, req.Description)
		_, pending := c.PendingDelete()
		require.True(t, pending)

		h.Dialog.Cancel()
		require.Empty(t, h.Backend.RequestsTo(http.MethodDelete, "/catelog/Oak Shelf"))
		require.Len(t, c.Visible(), 3)
		_, pending = c.PendingDelete()
		require.False(t, pending)
	})

	t.Run("ConfirmDeletesExactlyOne", func(t *testing.T) {
		h, c := setup(t, http.StatusOK)
		require.NoError(t, c.RequestDelete(h.Ctx, oak))
		h.Dialog.Confirm()

		deletes := h.Backend.RequestsTo(http.MethodDelete, "/catelog/Oak Shelf")
		require.Len(t, deletes, 1)
		require.Equal(t, "admin-token", deletes[0].Bearer())
		require.Equal(t, []string{"Brass Handle", "Teak Wardrobe Panel"}, names(c.Visible()))
		_, pending := c.PendingDelete()
		require.False(t, pending)
		require.Equal(t, components.SeverityGreen, h.LastNotification().Severity)
	})

	t.Run("FailureKeepsList", func(t *testing.T) {
		h, c := setup(t, http.StatusConflict)
		require.NoError(t, c.RequestDelete(h.Ctx, oak))
		h.Dialog.Confirm()

		require.Len(t, c.Visible(), 3)
		h.RequireNotification(components.SeverityRed, "Item is in use")
	})

	t.Run("DialogBusy", func(t *testing.T) {
		h, c := setup(t, http.StatusOK)
		require.NoError(t, c.RequestDelete(h.Ctx, oak))
		require.ErrorIs(t, c.RequestDelete(h.Ctx, testhelpers.SampleCatalogItems()[1]), utils.ErrDialogBusy)
		h.Dialog.Cancel()
	})
}

func TestCatalogCardsActions(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/catelog/category/{category}", http.StatusOK, testhelpers.SampleCatalogItems())

	c := controllers.NewCatalogListController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Refresh(h.Ctx))

	cards := c.Cards(h.Ctx)
	require.Len(t, cards, 3)
	require.Equal(t, "₹1,200", cards[0].Price)

	cards[0].OnEdit()
	require.Equal(t, "/admin/catelog/updateitem?name=Oak+Shelf", h.History.Current())

	require.NoError(t, cards[1].OnDelete())
	req, open := h.Dialog.Request()
	require.True(t, open)
	require.Equal(t, "Delete Brass Handle?", req.Title)
	h.Dialog.Cancel()
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "₹0", controllers.FormatPrice(0))
	require.Equal(t, "₹350", controllers.FormatPrice(350))
	require.Equal(t, "₹1,200.50", controllers.FormatPrice(1200.5))
	require.Equal(t, "₹1,234,567.05", controllers.FormatPrice(1234567.05))
}

func TestLeadListFailureClearsList(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/initiallead", http.StatusOK, testhelpers.SampleLeads())

	c := controllers.NewLeadListController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Refresh(h.Ctx))
	require.Len(t, c.Visible(), 3)

	h.Backend.Server.Close()
	require.Error(t, c.Refresh(h.Ctx))

	snap := c.Snapshot()
	require.Empty(t, snap.Items, "no stale leads after a failed fetch")
	require.Zero(t, snap.Total)
	require.NotEmpty(t, snap.Error)
	require.False(t, snap.Loading)
}

func TestLeadListServerMessage(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/initiallead", http.StatusInternalServerError, map[string]string{"message": "Database unavailable"})

	c := controllers.NewLeadListController(depsFor(h), h.AdminAuth)
	require.Error(t, c.Refresh(h.Ctx))
	require.Equal(t, "Database unavailable", c.ErrorMessage())
}

func TestLeadListClientFilters(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/initiallead", http.StatusOK, map[string]any{"leads": testhelpers.SampleLeads()})

	c := controllers.NewLeadListController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Refresh(h.Ctx))

	c.SetLeadStatus("New")
	require.Len(t, c.Visible(), 2)

	c.SetArchitectStatus("Account Not Created")
	got := c.Visible()
	require.Len(t, got, 1)
	require.Equal(t, "L3", got[0].ID)

	c.SetQuery("asha")
	require.Empty(t, c.Visible())

	c.SetLeadStatus("")
	c.SetArchitectStatus("All")
	c.SetQuery("")
	require.Len(t, c.Visible(), 3)
	require.Equal(t, 1, h.Backend.Count(), "lead filters never refetch")

	cards := c.Cards(h.Ctx)
	cards[1].OnEdit()
	require.Equal(t, "/admin/initiallead/updatelead?id=L2", h.History.Current())
}

func TestLeadListDelete(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/initiallead", http.StatusOK, testhelpers.SampleLeads())
	h.Backend.Respond(http.MethodDelete, "/initiallead/{id}", http.StatusOK, nil)

	c := controllers.NewLeadListController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Refresh(h.Ctx))

	lead, ok := c.Find("L2")
	require.True(t, ok)
	require.NoError(t, c.RequestDelete(h.Ctx, lead))
	h.Dialog.Confirm()

	require.Len(t, h.Backend.RequestsTo(http.MethodDelete, "/initiallead/L2"), 1)
	_, ok = c.Find("L2")
	require.False(t, ok)
	require.Len(t, c.Visible(), 2)
}

func TestListUnconfiguredBackend(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	c := controllers.NewLeadListController(unconfiguredDeps(h), h.AdminAuth)

	require.ErrorIs(t, c.Refresh(h.Ctx), utils.ErrBackendNotConfigured)
	require.Equal(t, "Backend URL not configured", c.ErrorMessage())
	require.False(t, c.Loading())
	require.Zero(t, h.Backend.Count())
}

func TestUserList(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/user/all", http.StatusOK, map[string]any{"users": []map[string]any{
		{"_id": "u1", "name": "Asha Rao", "email": "asha@x.com"},
		{"_id": "u2", "email": "ravi@x.com", "isAdmin": true},
	}})

	c := controllers.NewUserListController(depsFor(h), h.AdminAuth)
	require.NoError(t, c.Refresh(h.Ctx))

	c.SetQuery("RAVI")
	cards := c.Cards()
	require.Len(t, cards, 1)
	require.Equal(t, "ravi@x.com", cards[0].Name, "users without a name show their email")
	require.True(t, cards[0].Admin)

	cards[0].OnOpenProjects()
	require.Equal(t, "/admin/projects?userEmail=ravi%40x.com", h.History.Current())

	u, _ := c.Find("u1")
	require.ErrorIs(t, c.RequestDelete(h.Ctx, u), controllers.ErrDeleteUnsupported)
}

func TestProjectList(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Handle(http.MethodGet, "/project/user", func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("userEmail")
		testhelpers.WriteJSON(w, http.StatusOK, map[string]any{"projects": []map[string]any{
			{"_id": "p-" + email, "userEmail": email, "projectHead": "Kitchen for " + email, "kitchen": map[string]any{"kitchenType": "L-Shape"}},
			{"_id": "w-" + email, "userEmail": email, "projectHead": "Wardrobe for " + email, "wardrobe": `{"type":["Sliding"]}`},
		}})
	})

	c := controllers.NewProjectListController(depsFor(h), h.AdminAuth, "asha@x.com")
	require.NoError(t, c.Refresh(h.Ctx))
	cards := c.Cards()
	require.Len(t, cards, 2)
	require.Equal(t, "kitchen", cards[0].Kind)
	require.Equal(t, "wardrobe", cards[1].Kind)

	require.NoError(t, c.SetEmail(h.Ctx, "ravi@x.com"))
	require.NoError(t, c.SetEmail(h.Ctx, " ravi@x.com "))
	require.Equal(t, 2, h.Backend.Count())
	require.Equal(t, "p-ravi@x.com", c.Visible()[0].ID)

	c.Cards()[0].OnOpenDesigns()
	require.Equal(t, "/admin/projects/p-ravi@x.com/designs", h.History.Current())
	c.NewProject()
	require.Equal(t, "/admin/projects/add?userEmail=ravi%40x.com", h.History.Current())
}

func TestDesignListFlattensAndDownloads(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	h.Backend.Respond(http.MethodGet, "/designs/{projectId}", http.StatusOK, map[string]any{"designs": []map[string]any{
		{"_id": "d1", "projectId": "p1", "items": []map[string]string{
			{"name": "Hall View", "imageLink": "https://cdn.example.com/hall.png", "designLink": "https://cdn.example.com/hall.dwg"},
			{"name": "", "imageLink": "https://cdn.example.com/misc.png"},
		}},
		{"_id": "d2", "projectId": "p1", "items": []map[string]string{{"name": "Kitchen"}}},
	}})

	dl := &recordingDownloader{}
	deps := depsFor(h)
	deps.Downloader = dl
	c := controllers.NewDesignListController(deps, h.AdminAuth, "p1")
	require.NoError(t, c.Refresh(h.Ctx))

	assets := c.Visible()
	require.Len(t, assets, 3)
	require.Equal(t, "Untitled Item", assets[1].DisplayName())

	dir := t.TempDir()
	path, err := c.Download(h.Ctx, assets[0].Key(), dir)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, []string{"https://cdn.example.com/hall.dwg"}, dl.links)

	_, err = c.Download(h.Ctx, assets[2].Key(), dir)
	require.Error(t, err, "items without files cannot be downloaded")

	_, err = c.Download(h.Ctx, "missing", dir)
	require.ErrorIs(t, err, utils.ErrNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	c.AddDesigns()
	require.Equal(t, "/admin/projects/p1/designs/add", h.History.Current())
}

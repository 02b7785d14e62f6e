package controllers_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/controllers"
	"github.com/homeveda/portal-client/internal/testhelpers"
	"github.com/homeveda/portal-client/internal/utils/storage"
)

func depsFor(h *testhelpers.TestHelper) controllers.Deps {
	return controllers.Deps{
		Client:               h.Client,
		Notifier:             h.Notifier,
		Dialog:               h.Dialog,
		Navigator:            h.History,
		Scheduler:            h.Scheduler,
		Validator:            h.Validator,
		NotificationDuration: constants.FormNotificationDuration,
		LoginRedirectDelay:   constants.LoginRedirectDelay,
	}
}

func unconfiguredDeps(h *testhelpers.TestHelper) controllers.Deps {
	deps := depsFor(h)
	deps.Client = h.UnconfiguredClient()
	return deps
}

// recordingDownloader writes a marker file instead of fetching.
type recordingDownloader struct {
	mu    sync.Mutex
	links []string
}

func (d *recordingDownloader) Download(_ context.Context, link, dir, name string) (string, error) {
	d.mu.Lock()
	d.links = append(d.links, link)
	d.mu.Unlock()
	path := filepath.Join(dir, storage.FileName(name, link))
	return path, os.WriteFile(path, []byte(link), 0o644)
}

package testhelpers

import (
	"time"

	"github.com/homeveda/portal-client/internal/utils"
)

type ManualScheduler = utils.ManualScheduler

// NewManualScheduler starts a manual clock on a fixed Monday morning.
func NewManualScheduler() *ManualScheduler {
	return utils.NewManualScheduler(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
}

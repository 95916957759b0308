package repositories

import (
	"context"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
)

// SettingsRepositoryFacade persists the tracker settings object.
type SettingsRepositoryFacade interface {
	// Load returns the persisted settings merged over defaults. The first
	// load against a missing backing file persists the defaults, so later
	// reads come from storage rather than a hardcoded fallback. A present but
	// unparseable file falls back to defaults instead of failing the session.
	Load(ctx context.Context) (domain.Settings, error)

	// Save persists the full settings object, unknown keys included.
	Save(ctx context.Context, settings domain.Settings) error
}

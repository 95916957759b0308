package services

import (
	"context"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
)

// SettingsSvcFacade manages the persisted tracker settings.
type SettingsSvcFacade interface {
	// GetSettings returns the active settings, persisting defaults on the
	// very first read of a fresh installation.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// UpdateDuplicateCheck switches the duplicate-check mode and persists the
	// full settings object.
	UpdateDuplicateCheck(ctx context.Context, mode domain.DuplicateMode) (domain.Settings, error)
}

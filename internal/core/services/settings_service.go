package services

import (
	"context"
	"fmt"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
)

// SettingsService manages the persisted tracker settings.
type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryFacade
}

// NewSettingsService wires the settings service.
func NewSettingsService(settingsRepo repositories.SettingsRepositoryFacade) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the active settings.
func (s *SettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// UpdateDuplicateCheck switches the duplicate-check mode, keeping any
// uninterpreted settings keys intact.
func (s *SettingsService) UpdateDuplicateCheck(ctx context.Context, mode domain.DuplicateMode) (domain.Settings, error) {
	if !mode.Valid() {
		return domain.Settings{}, fmt.Errorf("unknown duplicate-check mode %q: %w", mode, apperrors.ErrValidation)
	}
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.DuplicateCheck = mode
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

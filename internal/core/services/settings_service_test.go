package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDuplicateCheck(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockRepo)

	// Uninterpreted keys survive a mode switch untouched.
	current := domain.Settings{
		DuplicateCheck: domain.DuplicateModePair,
		Extra:          map[string]json.RawMessage{"theme": json.RawMessage(`"dark"`)},
	}
	mockRepo.On("Load", ctx).Return(current, nil).Once()

	var saved domain.Settings
	mockRepo.On("Save", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		saved = s
		return true
	})).Return(nil).Once()

	updated, err := service.UpdateDuplicateCheck(ctx, domain.DuplicateModeOrderOnly)

	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModeOrderOnly, updated.DuplicateCheck)
	assert.Equal(t, domain.DuplicateModeOrderOnly, saved.DuplicateCheck)
	assert.JSONEq(t, `"dark"`, string(saved.Extra["theme"]))
	mockRepo.AssertExpectations(t)
}

func TestUpdateDuplicateCheck_UnknownMode(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockRepo)

	_, err := service.UpdateDuplicateCheck(ctx, domain.DuplicateMode("fuzzy"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGetSettings(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockRepo)

	mockRepo.On("Load", ctx).Return(domain.Settings{DuplicateCheck: domain.DuplicateModeOrderOnly}, nil).Once()

	settings, err := service.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModeOrderOnly, settings.DuplicateCheck)
}

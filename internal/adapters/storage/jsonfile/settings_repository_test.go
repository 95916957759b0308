package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bjtmarts/transfer_tracker_app/internal/adapters/storage/jsonfile"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FreshFilePersistsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "config.json")
	repo := jsonfile.NewSettingsRepository(path, nil)
	ctx := context.Background()

	settings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModePair, settings.DuplicateCheck)

	// The default must have been written, so a second load reads storage
	// rather than returning a hardcoded fallback.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "pair", raw["duplicateCheck"])

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.DuplicateCheck, again.DuplicateCheck)
}

func TestSaveLoad_RoundTripMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	repo := jsonfile.NewSettingsRepository(path, nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Settings{DuplicateCheck: domain.DuplicateModeOrderOnly}))

	settings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModeOrderOnly, settings.DuplicateCheck)
}

func TestLoad_PreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"duplicateCheck": "order_only", "theme": "dark", "retention": {"days": 90}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := jsonfile.NewSettingsRepository(path, nil)
	ctx := context.Background()

	settings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModeOrderOnly, settings.DuplicateCheck)
	require.Contains(t, settings.Extra, "theme")
	require.Contains(t, settings.Extra, "retention")

	// Unknown keys survive a full save cycle untouched.
	settings.DuplicateCheck = domain.DuplicateModePair
	require.NoError(t, repo.Save(ctx, settings))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `"dark"`, string(raw["theme"]))
	assert.JSONEq(t, `{"days": 90}`, string(raw["retention"]))
	assert.JSONEq(t, `"pair"`, string(raw["duplicateCheck"]))
}

func TestLoad_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := jsonfile.NewSettingsRepository(path, nil)
	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModePair, settings.DuplicateCheck)

	// The corrupt file is left in place, not clobbered.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestLoad_UnknownModeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"duplicateCheck": "both"}`), 0o644))

	repo := jsonfile.NewSettingsRepository(path, nil)
	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DuplicateModePair, settings.DuplicateCheck)
}

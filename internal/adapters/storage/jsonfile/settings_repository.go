package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
)

const duplicateCheckKey = "duplicateCheck"

// SettingsRepository persists the tracker settings as a single JSON object.
// Keys the core does not interpret are carried through save cycles untouched.
type SettingsRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewSettingsRepository creates a repository backed by the JSON file at path.
func NewSettingsRepository(path string, logger *slog.Logger) repositories.SettingsRepositoryFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsRepository{path: path, logger: logger}
}

// Load returns the persisted settings merged over defaults. The first load
// against a missing file persists the defaults so subsequent reads come from
// storage. A present but unparseable file falls back to defaults rather than
// failing the session.
func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defaults := domain.DefaultSettings()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := r.write(defaults); err != nil {
			return domain.Settings{}, err
		}
		return defaults, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("read settings file %s: %w: %w", r.path, apperrors.ErrStorage, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		r.logger.Warn("settings file unparseable, falling back to defaults",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return defaults, nil
	}

	settings := defaults
	if v, ok := raw[duplicateCheckKey]; ok {
		var mode string
		if err := json.Unmarshal(v, &mode); err == nil && domain.DuplicateMode(mode).Valid() {
			settings.DuplicateCheck = domain.DuplicateMode(mode)
		}
		delete(raw, duplicateCheckKey)
	}
	if len(raw) > 0 {
		settings.Extra = raw
	}
	return settings, nil
}

// Save persists the full settings object, unknown keys included.
func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(settings)
}

func (r *SettingsRepository) write(settings domain.Settings) error {
	out := make(map[string]json.RawMessage, len(settings.Extra)+1)
	for k, v := range settings.Extra {
		out[k] = v
	}
	mode, err := json.Marshal(string(settings.DuplicateCheck))
	if err != nil {
		return fmt.Errorf("encode settings: %w: %w", apperrors.ErrFormat, err)
	}
	out[duplicateCheckKey] = mode

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w: %w", apperrors.ErrFormat, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w: %w", apperrors.ErrStorage, err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file %s: %w: %w", r.path, apperrors.ErrStorage, err)
	}
	return nil
}

package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
	"github.com/gocarina/gocsv"
)

// RecordRepository is the flat-file record store: one CSV file, header row in
// fixed schema order, one row per record, all values as display text.
//
// There is no cross-process locking. Two overlapping sessions doing
// load-then-save race at file-replace granularity and the later save wins in
// full; that is the accepted contract at this scale. The mutex below only
// serializes writers within this process.
type RecordRepository struct {
	path string
	mu   sync.Mutex
}

// NewRecordRepository creates a repository backed by the CSV file at path.
func NewRecordRepository(path string) repositories.RecordRepositoryFacade {
	return &RecordRepository{path: path}
}

// Load reads the full collection. A missing file is initialized with the
// schema header and yields an empty collection. Columns are reconciled by
// header name; missing columns default to empty values.
func (r *RecordRepository) Load(ctx context.Context) ([]domain.TransferRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		if err := r.writeAll(nil); err != nil {
			return nil, err
		}
		return []domain.TransferRecord{}, nil
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open tracker file %s: %w: %w", r.path, apperrors.ErrStorage, err)
	}
	defer f.Close()

	records := []domain.TransferRecord{}
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []domain.TransferRecord{}, nil
		}
		return nil, fmt.Errorf("parse tracker file %s: %w: %w", r.path, apperrors.ErrFormat, err)
	}
	return records, nil
}

// Save overwrites the entire backing file with exactly the schema columns, in
// schema order. The write goes through a temp file and a rename so a failed
// save never leaves a partial file behind.
func (r *RecordRepository) Save(ctx context.Context, records []domain.TransferRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeAll(records)
}

// Serialize returns the byte-exact representation Save would write.
func (r *RecordRepository) Serialize(records []domain.TransferRecord) ([]byte, error) {
	if records == nil {
		records = []domain.TransferRecord{}
	}
	data, err := gocsv.MarshalBytes(&records)
	if err != nil {
		return nil, fmt.Errorf("serialize tracker records: %w: %w", apperrors.ErrFormat, err)
	}
	return data, nil
}

func (r *RecordRepository) writeAll(records []domain.TransferRecord) error {
	data, err := r.Serialize(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create tracker directory %s: %w: %w", dir, apperrors.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tracker-*.csv")
	if err != nil {
		return fmt.Errorf("create temp tracker file: %w: %w", apperrors.ErrStorage, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write tracker file: %w: %w", apperrors.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close tracker file: %w: %w", apperrors.ErrStorage, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace tracker file %s: %w: %w", r.path, apperrors.ErrStorage, err)
	}
	return nil
}

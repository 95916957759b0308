package repositories

import (
	"context"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
)

// RecordReader defines read operations over the tracked record collection.
type RecordReader interface {
	// Load reads the full collection from the backing store. A missing store
	// is initialized empty (schema header only) and returns no records. Every
	// returned record has all schema fields present, with absent values
	// coerced to "" / false.
	Load(ctx context.Context) ([]domain.TransferRecord, error)
}

// RecordWriter defines write operations over the tracked record collection.
type RecordWriter interface {
	// Save overwrites the entire backing store with the given collection, in
	// schema column order. This is a full replace, not an upsert; between two
	// overlapping load-then-save sessions the later save wins in full.
	Save(ctx context.Context, records []domain.TransferRecord) error
}

// RecordSerializer produces the byte-exact flat representation of a
// collection, identical to what Save writes. Used by CSV export and by the
// remote sync push.
type RecordSerializer interface {
	Serialize(records []domain.TransferRecord) ([]byte, error)
}

// RecordRepositoryFacade combines all record store interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
	RecordSerializer
}

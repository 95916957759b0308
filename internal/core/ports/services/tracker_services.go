package services

import (
	"context"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
)

// TrackerReaderSvc defines read-only operations over the record collection.
type TrackerReaderSvc interface {
	// ListRecords loads one snapshot of the collection and applies the filter
	// criteria to it. Never mutates storage.
	ListRecords(ctx context.Context, crit domain.FilterCriteria) ([]domain.TransferRecord, error)

	// ExportCSV returns the byte-exact flat representation of the collection.
	ExportCSV(ctx context.Context) ([]byte, error)

	// PreviewNewEntryEmail renders a scenario template without persisting.
	PreviewNewEntryEmail(req dto.EmailPreviewRequest) dto.EmailPreview

	// CompletionEmailPreview renders the completion email for the most
	// recently created record matching the order number.
	CompletionEmailPreview(ctx context.Context, orderNumber string) (*dto.EmailPreview, error)
}

// TrackerWriterSvc defines mutating operations over the record collection.
type TrackerWriterSvc interface {
	// CreateRecord validates the candidate, checks it against the active
	// duplicate policy, appends it and persists. The auto-email side action
	// is best effort: a delivery failure is reported in the result, the
	// record is still persisted, and emailSentAt stays empty for a retry.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, actingUser string) (*dto.CreateRecordResult, error)

	// ReplaceAll overwrites the whole collection from a bulk inline edit,
	// re-stamping audit fields. It performs no per-field validation and no
	// duplicate re-check.
	ReplaceAll(ctx context.Context, records []domain.TransferRecord, actingUser string) ([]domain.TransferRecord, error)

	// SendCompletionEmail sends the completion email for the last matching
	// record and, on delivery success, stamps that record's emailSentAt.
	// Previously set markers on other records are never cleared.
	SendCompletionEmail(ctx context.Context, orderNumber string, actingUser string) (*dto.CompletionEmailResult, error)
}

// TrackerSvcFacade combines all tracker service interfaces.
type TrackerSvcFacade interface {
	TrackerReaderSvc
	TrackerWriterSvc
}

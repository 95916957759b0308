package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
)

// MailRouting holds the configured recipient lists for the two notification
// flows: credit-note requests go to Accounts, completion notices go back to
// the eCommerce team.
type MailRouting struct {
	AccountsTo  []string
	AccountsCc  []string
	ECommerceTo []string
}

// TrackerService orchestrates the record collection: new-entry submission
// with duplicate checking, filtered listing, bulk inline-edit saves, the
// completion-email flow and CSV export.
type TrackerService struct {
	recordRepo   repositories.RecordRepositoryFacade
	settingsRepo repositories.SettingsRepositoryFacade
	mailer       repositories.Mailer
	routing      MailRouting
}

// NewTrackerService wires the tracker service.
func NewTrackerService(
	recordRepo repositories.RecordRepositoryFacade,
	settingsRepo repositories.SettingsRepositoryFacade,
	mailer repositories.Mailer,
	routing MailRouting,
) *TrackerService {
	return &TrackerService{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		mailer:       mailer,
		routing:      routing,
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ListRecords loads one snapshot of the collection and filters it.
func (s *TrackerService) ListRecords(ctx context.Context, crit domain.FilterCriteria) ([]domain.TransferRecord, error) {
	records, err := s.recordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return domain.Filter(records, crit), nil
}

// ExportCSV returns the byte-exact flat representation of the collection.
func (s *TrackerService) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.recordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return s.recordRepo.Serialize(records)
}

// PreviewNewEntryEmail renders a scenario template without persisting.
func (s *TrackerService) PreviewNewEntryEmail(req dto.EmailPreviewRequest) dto.EmailPreview {
	subject, body := BuildScenarioEmail(req.Template, ScenarioEmailData{
		Greeting:    req.Greeting,
		Amount:      req.Amount,
		Store:       req.Store,
		Reason:      req.Reason,
		OrderNumber: req.OrderNumber,
	})
	return dto.EmailPreview{Subject: subject, Body: body}
}

// CreateRecord validates the candidate, runs the active duplicate policy
// against the current collection, appends and persists. The auto-email is a
// best-effort side action: a delivery failure is reported in the result while
// the record is still persisted with emailSentAt left empty for a retry.
func (s *TrackerService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, actingUser string) (*dto.CreateRecordResult, error) {
	orderNumber := strings.TrimSpace(req.OrderNumber)
	if orderNumber == "" {
		return nil, fmt.Errorf("order number is required: %w", apperrors.ErrValidation)
	}

	records, err := s.recordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// The email text is rendered once here and captured on the record as an
	// immutable snapshot; it is never regenerated from the template later.
	subject, body := BuildScenarioEmail(req.Template, ScenarioEmailData{
		Greeting:    req.Greeting,
		Amount:      req.Amount,
		Store:       firstNonEmpty(req.FitmentStore, req.IncorrectStore),
		Reason:      req.Reason,
		OrderNumber: orderNumber,
	})

	status := req.Status
	if status == "" {
		status = string(domain.StatusFlagged)
	}

	now := nowStamp()
	candidate := domain.TransferRecord{
		RequestDate:        req.RequestDate,
		OrderNumber:        orderNumber,
		IncorrectStore:     strings.TrimSpace(req.IncorrectStore),
		FitmentStore:       strings.TrimSpace(req.FitmentStore),
		Status:             status,
		FinanceUpdatedDate: req.FinanceUpdatedDate,
		Amount:             strings.TrimSpace(req.Amount),
		AmountType:         req.AmountType,
		RequestedBy:        req.RequestedBy,
		Reason:             req.Reason,
		EmailSubject:       subject,
		EmailBody:          body,
		LastModifiedBy:     actingUser,
		LastModifiedAt:     now,
	}

	if domain.IsDuplicate(candidate, records, settings.DuplicateCheck) {
		return nil, fmt.Errorf("order %q with request date %q is already tracked: %w",
			candidate.OrderNumber, candidate.RequestDate, apperrors.ErrDuplicate)
	}

	result := &dto.CreateRecordResult{}
	if req.AutoEmail && req.RequestedBy == string(domain.RequestedByECommerce) {
		to := s.routing.AccountsTo
		if req.ToOverride != "" {
			to = splitRecipients(req.ToOverride)
		}
		sendErr := s.mailer.Send(ctx, repositories.EmailMessage{
			To:      to,
			Cc:      s.routing.AccountsCc,
			Subject: subject,
			Body:    body,
		})
		if sendErr != nil {
			result.EmailMessage = sendErr.Error()
		} else {
			candidate.EmailSentAt = nowStamp()
			result.EmailSent = true
			result.EmailMessage = "Auto-email sent to Accounts."
		}
	}

	records = append(records, candidate)
	if err := s.recordRepo.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save records: %w", err)
	}

	result.Record = candidate
	return result, nil
}

// ReplaceAll overwrites the whole collection from a bulk inline edit. Audit
// fields are re-stamped; nothing else is validated. Bulk edits can introduce
// empty order numbers or duplicate pairs; that matches the legacy inline-edit
// grid and is deliberate.
func (s *TrackerService) ReplaceAll(ctx context.Context, records []domain.TransferRecord, actingUser string) ([]domain.TransferRecord, error) {
	now := nowStamp()
	for i := range records {
		records[i].LastModifiedBy = actingUser
		records[i].LastModifiedAt = now
	}
	if err := s.recordRepo.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save records: %w", err)
	}
	return records, nil
}

// CompletionEmailPreview renders the completion email for the most recently
// created record matching the order number.
func (s *TrackerService) CompletionEmailPreview(ctx context.Context, orderNumber string) (*dto.EmailPreview, error) {
	records, err := s.recordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	idx := lastIndexByOrder(records, orderNumber)
	if idx < 0 {
		return nil, fmt.Errorf("no record for order %q: %w", orderNumber, apperrors.ErrNotFound)
	}
	subject, body := BuildCompletionEmail(records[idx])
	return &dto.EmailPreview{Subject: subject, Body: body}, nil
}

// SendCompletionEmail sends the completion notice for the last matching
// record and, only on delivery success, stamps that record's emailSentAt and
// persists. Markers already set on other records are never touched, so the
// sent-at evidence is append-only across the collection.
func (s *TrackerService) SendCompletionEmail(ctx context.Context, orderNumber string, actingUser string) (*dto.CompletionEmailResult, error) {
	records, err := s.recordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	idx := lastIndexByOrder(records, orderNumber)
	if idx < 0 {
		return nil, fmt.Errorf("no record for order %q: %w", orderNumber, apperrors.ErrNotFound)
	}

	subject, body := BuildCompletionEmail(records[idx])
	to := s.routing.ECommerceTo
	if len(to) == 0 {
		to = s.routing.AccountsTo
	}

	if err := s.mailer.Send(ctx, repositories.EmailMessage{To: to, Subject: subject, Body: body}); err != nil {
		// Delivery failed: leave emailSentAt unset so the flow can be retried.
		return nil, err
	}

	now := nowStamp()
	records[idx].EmailSentAt = now
	records[idx].LastModifiedBy = actingUser
	records[idx].LastModifiedAt = now
	if err := s.recordRepo.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save records: %w", err)
	}

	return &dto.CompletionEmailResult{Subject: subject, Body: body, To: to, SentAt: now}, nil
}

func lastIndexByOrder(records []domain.TransferRecord, orderNumber string) int {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].OrderNumber == orderNumber {
			return i
		}
	}
	return -1
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitRecipients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

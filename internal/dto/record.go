package dto

import (
	"time"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
)

// CreateRecordRequest defines the data needed to log a new transfer request.
// Only the order number is mandatory; everything else may be blank if not
// applicable. Dates are normalized at this boundary to YYYY-MM-DD so the
// duplicate policy can compare them literally.
type CreateRecordRequest struct {
	RequestDate        string `json:"requestDate" binding:"omitempty,datetime=2006-01-02"`
	OrderNumber        string `json:"orderNumber" binding:"required,max=50"`
	IncorrectStore     string `json:"incorrectStore"`
	FitmentStore       string `json:"fitmentStore"`
	Status             string `json:"status" binding:"omitempty,oneof=Flagged In-Progress Completed"`
	FinanceUpdatedDate string `json:"financeUpdatedDate" binding:"omitempty,datetime=2006-01-02"`
	Amount             string `json:"amount"`
	AmountType         string `json:"amountType" binding:"omitempty,oneof='To be Paid' 'Refunded' 'Partially Refunded'"`
	RequestedBy        string `json:"requestedBy" binding:"omitempty,oneof=eComm Accounts Store Other"`
	Reason             string `json:"reason"`

	// Email template controls. The rendered subject/body are captured on the
	// record as an immutable snapshot at creation time.
	Template   string `json:"template" binding:"omitempty,oneof=Standard 'Scenario 2' 'Scenario 3' 'Scenario 4'"`
	Greeting   string `json:"greeting"`
	AutoEmail  bool   `json:"autoEmail"`
	ToOverride string `json:"toOverride"`
}

// RecordResponse is the API representation of a tracked transfer request.
type RecordResponse struct {
	RequestDate        string `json:"requestDate"`
	OrderNumber        string `json:"orderNumber"`
	IncorrectStore     string `json:"incorrectStore"`
	FitmentStore       string `json:"fitmentStore"`
	Status             string `json:"status"`
	FinanceUpdatedDate string `json:"financeUpdatedDate"`
	Amount             string `json:"amount"`
	AmountType         string `json:"amountType"`
	RequestedBy        string `json:"requestedBy"`
	Reason             string `json:"reason"`
	EmailSubject       string `json:"emailSubject"`
	EmailBody          string `json:"emailBody"`
	EmailSentAt        string `json:"emailSentAt"`
	Archived           bool   `json:"archived"`
	LastModifiedBy     string `json:"lastModifiedBy"`
	LastModifiedAt     string `json:"lastModifiedAt"`
}

// ToRecordResponse converts a domain.TransferRecord to its API representation.
func ToRecordResponse(r domain.TransferRecord) RecordResponse {
	return RecordResponse{
		RequestDate:        r.RequestDate,
		OrderNumber:        r.OrderNumber,
		IncorrectStore:     r.IncorrectStore,
		FitmentStore:       r.FitmentStore,
		Status:             r.Status,
		FinanceUpdatedDate: r.FinanceUpdatedDate,
		Amount:             r.Amount,
		AmountType:         r.AmountType,
		RequestedBy:        r.RequestedBy,
		Reason:             r.Reason,
		EmailSubject:       r.EmailSubject,
		EmailBody:          r.EmailBody,
		EmailSentAt:        r.EmailSentAt,
		Archived:           bool(r.Archived),
		LastModifiedBy:     r.LastModifiedBy,
		LastModifiedAt:     r.LastModifiedAt,
	}
}

// ToListRecordResponse converts a slice of records.
func ToListRecordResponse(records []domain.TransferRecord) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i, r := range records {
		res[i] = ToRecordResponse(r)
	}
	return res
}

// RecordPayload is one row of a bulk inline-edit save. Bulk edits overwrite
// the whole collection and are deliberately not re-validated: no required
// order number, no duplicate re-check. That matches the inline-edit grid of
// the legacy tool and is pinned by tests as documented behavior.
type RecordPayload struct {
	RequestDate        string `json:"requestDate"`
	OrderNumber        string `json:"orderNumber"`
	IncorrectStore     string `json:"incorrectStore"`
	FitmentStore       string `json:"fitmentStore"`
	Status             string `json:"status"`
	FinanceUpdatedDate string `json:"financeUpdatedDate"`
	Amount             string `json:"amount"`
	AmountType         string `json:"amountType"`
	RequestedBy        string `json:"requestedBy"`
	Reason             string `json:"reason"`
	EmailSubject       string `json:"emailSubject"`
	EmailBody          string `json:"emailBody"`
	EmailSentAt        string `json:"emailSentAt"`
	Archived           bool   `json:"archived"`
}

// BulkSaveRequest carries the full edited collection.
type BulkSaveRequest struct {
	Records []RecordPayload `json:"records" binding:"required"`
}

// ToDomainRecord converts an edited payload row to a domain record. Audit
// fields are stamped by the service, not taken from the payload.
func (p RecordPayload) ToDomainRecord() domain.TransferRecord {
	return domain.TransferRecord{
		RequestDate:        p.RequestDate,
		OrderNumber:        p.OrderNumber,
		IncorrectStore:     p.IncorrectStore,
		FitmentStore:       p.FitmentStore,
		Status:             p.Status,
		FinanceUpdatedDate: p.FinanceUpdatedDate,
		Amount:             p.Amount,
		AmountType:         p.AmountType,
		RequestedBy:        p.RequestedBy,
		Reason:             p.Reason,
		EmailSubject:       p.EmailSubject,
		EmailBody:          p.EmailBody,
		EmailSentAt:        p.EmailSentAt,
		Archived:           domain.ArchivedFlag(p.Archived),
	}
}

// ListRecordsQuery binds the filter query parameters.
type ListRecordsQuery struct {
	Statuses       []string `form:"status"`
	IncorrectStore string   `form:"incorrectStore"`
	FitmentStore   string   `form:"fitmentStore"`
	DateFrom       string   `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo         string   `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Query          string   `form:"q"`
	ShowArchived   bool     `form:"showArchived"`
}

// ToCriteria converts the bound query to domain filter criteria. The date
// range only becomes active when both ends parse.
func (q ListRecordsQuery) ToCriteria() domain.FilterCriteria {
	crit := domain.FilterCriteria{
		ShowArchived:           q.ShowArchived,
		Statuses:               q.Statuses,
		IncorrectStoreContains: q.IncorrectStore,
		FitmentStoreContains:   q.FitmentStore,
		Query:                  q.Query,
	}
	if q.DateFrom != "" && q.DateTo != "" {
		if from, err := time.Parse("2006-01-02", q.DateFrom); err == nil {
			if to, err := time.Parse("2006-01-02", q.DateTo); err == nil {
				crit.DateFrom = from
				crit.DateTo = to
			}
		}
	}
	return crit
}

// CreateRecordResult is the outcome of logging a new request, including the
// best-effort auto-email side action.
type CreateRecordResult struct {
	Record       domain.TransferRecord
	EmailSent    bool
	EmailMessage string
}

// CreateRecordResponse is the API representation of a create outcome.
type CreateRecordResponse struct {
	Record       RecordResponse `json:"record"`
	EmailSent    bool           `json:"emailSent"`
	EmailMessage string         `json:"emailMessage,omitempty"`
}

// ToCreateRecordResponse converts the service result to its API representation.
func ToCreateRecordResponse(res *CreateRecordResult) CreateRecordResponse {
	return CreateRecordResponse{
		Record:       ToRecordResponse(res.Record),
		EmailSent:    res.EmailSent,
		EmailMessage: res.EmailMessage,
	}
}

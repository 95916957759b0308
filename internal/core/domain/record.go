package domain

import "strings"

// Status is the progress state of a transfer request.
type Status string

const (
	StatusFlagged    Status = "Flagged"
	StatusInProgress Status = "In-Progress"
	StatusCompleted  Status = "Completed"
)

// StatusOptions lists the valid progress states in display order.
var StatusOptions = []Status{StatusFlagged, StatusInProgress, StatusCompleted}

// AmountType qualifies the free-form amount. Empty means not applicable.
type AmountType string

const (
	AmountTypeNone              AmountType = ""
	AmountTypeToBePaid          AmountType = "To be Paid"
	AmountTypeRefunded          AmountType = "Refunded"
	AmountTypePartiallyRefunded AmountType = "Partially Refunded"
)

// RequestedBy identifies which team raised the request.
type RequestedBy string

const (
	RequestedByECommerce RequestedBy = "eComm"
	RequestedByAccounts  RequestedBy = "Accounts"
	RequestedByStore     RequestedBy = "Store"
	RequestedByOther     RequestedBy = "Other"
)

// ArchivedFlag is the soft-delete marker. The legacy tracker file stores it as
// free text, so parsing is deliberately permissive: "true", "1", "yes" and "y"
// (any case) mean archived, anything else, including empty, means live.
type ArchivedFlag bool

var archivedTokens = map[string]bool{"true": true, "1": true, "yes": true, "y": true}

// ParseArchived interprets a stored archived value.
func ParseArchived(s string) bool {
	return archivedTokens[strings.ToLower(strings.TrimSpace(s))]
}

// UnmarshalCSV implements the gocsv field decoder.
func (a *ArchivedFlag) UnmarshalCSV(s string) error {
	*a = ArchivedFlag(ParseArchived(s))
	return nil
}

// MarshalCSV implements the gocsv field encoder. Live records serialize to the
// empty string, matching the legacy file where the column is mostly blank.
func (a ArchivedFlag) MarshalCSV() (string, error) {
	if a {
		return "true", nil
	}
	return "", nil
}

// TransferRecord is one tracked inter-store transfer request. All values are
// stored as display text; dates, amounts and enums are not coerced at the
// storage layer. The csv tags are the legacy column headers and the struct
// field order is the fixed schema order of the backing file.
type TransferRecord struct {
	RequestDate        string       `csv:"Date of eComm Request" json:"requestDate"`
	OrderNumber        string       `csv:"Order Number" json:"orderNumber"`
	IncorrectStore     string       `csv:"In-Correct" json:"incorrectStore"`
	FitmentStore       string       `csv:"Store - Fitment Completed" json:"fitmentStore"`
	Status             string       `csv:"Status" json:"status"`
	FinanceUpdatedDate string       `csv:"Date Finance Updated" json:"financeUpdatedDate"`
	Amount             string       `csv:"Amount" json:"amount"`
	AmountType         string       `csv:"Amount Type" json:"amountType"`
	RequestedBy        string       `csv:"Requested By" json:"requestedBy"`
	Reason             string       `csv:"Reason" json:"reason"`
	EmailSubject       string       `csv:"Email Subject" json:"emailSubject"`
	EmailBody          string       `csv:"Email Body" json:"emailBody"`
	EmailSentAt        string       `csv:"Email Sent At" json:"emailSentAt"`
	Archived           ArchivedFlag `csv:"Archived" json:"archived"`
	LastModifiedBy     string       `csv:"Last Modified By" json:"lastModifiedBy"`
	LastModifiedAt     string       `csv:"Last Modified At" json:"lastModifiedAt"`
}

// DisplayValues returns every field as its display string, in schema order.
// This is the value set the free-text search runs over, and it mirrors what a
// row of the backing file looks like.
func (r TransferRecord) DisplayValues() []string {
	archived, _ := r.Archived.MarshalCSV()
	return []string{
		r.RequestDate,
		r.OrderNumber,
		r.IncorrectStore,
		r.FitmentStore,
		r.Status,
		r.FinanceUpdatedDate,
		r.Amount,
		r.AmountType,
		r.RequestedBy,
		r.Reason,
		r.EmailSubject,
		r.EmailBody,
		r.EmailSentAt,
		archived,
		r.LastModifiedBy,
		r.LastModifiedAt,
	}
}

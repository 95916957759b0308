package dto

// EmailPreviewRequest renders a scenario template without touching storage.
type EmailPreviewRequest struct {
	Template    string `json:"template" binding:"omitempty,oneof=Standard 'Scenario 2' 'Scenario 3' 'Scenario 4'"`
	Greeting    string `json:"greeting"`
	Amount      string `json:"amount"`
	Store       string `json:"store"`
	Reason      string `json:"reason"`
	OrderNumber string `json:"orderNumber"`
}

// EmailPreview is rendered email text.
type EmailPreview struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// CompletionEmailResult is the outcome of the completion-email flow.
type CompletionEmailResult struct {
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	To      []string `json:"to"`
	SentAt  string   `json:"sentAt"`
}

package services

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
)

// CreditNoteSubject is the fixed subject line of the credit-note request
// emails sent to Accounts.
const CreditNoteSubject = "Collect Money from the Store | Credit Note"

// ScenarioEmailData feeds the credit-note templates. Empty fields render as
// angle-bracket placeholders so previews stay readable on a half-filled form.
type ScenarioEmailData struct {
	Greeting    string
	Amount      string
	Store       string
	Reason      string
	OrderNumber string
}

func (d ScenarioEmailData) withPlaceholders() ScenarioEmailData {
	if d.Greeting == "" {
		d.Greeting = "Hi Accounts Team,"
	}
	if d.Amount == "" {
		d.Amount = "<amount>"
	}
	if d.Store == "" {
		d.Store = "<store>"
	}
	if d.Reason == "" {
		d.Reason = "<reason>"
	}
	if d.OrderNumber == "" {
		d.OrderNumber = "<order>"
	}
	return d
}

var scenarioTemplates = map[string]*template.Template{
	"Standard": template.Must(template.New("standard").Parse(
		`{{.Greeting}}

Collect Money from the Store | Credit Note

Can you please create a credit note of {{.Amount}} from {{.Store}}
Reason: {{.Reason}} Order #{{.OrderNumber}}`)),

	"Scenario 2": template.Must(template.New("scenario2").Parse(
		`{{.Greeting}}

Collect Money from the Store | Credit Note

Can you please create a credit note of {{.Amount}} from {{.Store}}. Attached is the receipt.
Reason: {{.Reason}}`)),

	"Scenario 3": template.Must(template.New("scenario3").Parse(
		`{{.Greeting}}

Collect Money from the Store | Credit Note

Can you please create a credit note of {{.Amount}} from {{.Store}}
Reason: {{.Reason}}`)),

	"Scenario 4": template.Must(template.New("scenario4").Parse(
		`{{.Greeting}}

A partial refund of {{.Amount}} has been issued to the customer.
Please note that Accounts will process the remittance of the original order amount once this job is completed. Since the adjusted order value has changed, the difference of {{.Amount}} will need to be recovered from your store.

Collect Money from the Store | Credit Note

Can you please create a credit note of {{.Amount}} from {{.Store}}
Reason: {{.Reason}}`)),
}

// BuildScenarioEmail renders the credit-note email for the given template
// name. Unknown names fall back to the Standard wording.
func BuildScenarioEmail(templateName string, data ScenarioEmailData) (subject, body string) {
	t, ok := scenarioTemplates[templateName]
	if !ok {
		t = scenarioTemplates["Standard"]
	}
	var b strings.Builder
	if err := t.Execute(&b, data.withPlaceholders()); err != nil {
		return CreditNoteSubject, ""
	}
	return CreditNoteSubject, b.String()
}

var completionTemplate = template.Must(template.New("completion").Parse(
	`Hi eCommerce Team,

The inter-store transfer for Order #{{.OrderNumber}} has been completed.

Status: {{.Status}}
Amount: {{.AmountLine}}
In-Correct: {{.IncorrectStore}}
Store - Fitment Completed: {{.FitmentStore}}
Date Finance Updated: {{.FinanceUpdatedDate}}

Regards,
Accounts Team`))

// BuildCompletionEmail renders the Accounts-to-eCommerce completion email
// for an existing record.
func BuildCompletionEmail(r domain.TransferRecord) (subject, body string) {
	amountLine := r.Amount
	if r.AmountType != "" {
		amountLine = fmt.Sprintf("%s (%s)", r.Amount, r.AmountType)
	}
	data := struct {
		OrderNumber        string
		Status             string
		AmountLine         string
		IncorrectStore     string
		FitmentStore       string
		FinanceUpdatedDate string
	}{r.OrderNumber, r.Status, amountLine, r.IncorrectStore, r.FitmentStore, r.FinanceUpdatedDate}

	subject = fmt.Sprintf("Completed: Inter-Store Transfer for Order %s", r.OrderNumber)
	var b strings.Builder
	if err := completionTemplate.Execute(&b, data); err != nil {
		return subject, ""
	}
	return subject, b.String()
}

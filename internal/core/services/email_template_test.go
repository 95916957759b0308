package services_test

import (
	"testing"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestBuildScenarioEmail(t *testing.T) {
	data := services.ScenarioEmailData{
		Greeting:    "Hi Accounts Team,",
		Amount:      "$120.00",
		Store:       "Bob Jane T-Marts Penrith",
		Reason:      "Fitment done at a different store",
		OrderNumber: "BJ1001",
	}

	testCases := []struct {
		name         string
		template     string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:     "standard includes reason and order number",
			template: "Standard",
			wantContains: []string{
				"credit note of $120.00 from Bob Jane T-Marts Penrith",
				"Reason: Fitment done at a different store Order #BJ1001",
			},
		},
		{
			name:     "scenario 2 mentions attached receipt and drops order number",
			template: "Scenario 2",
			wantContains: []string{
				"Attached is the receipt.",
				"Reason: Fitment done at a different store",
			},
			wantAbsent: []string{"BJ1001"},
		},
		{
			name:         "scenario 3 drops order number",
			template:     "Scenario 3",
			wantContains: []string{"credit note of $120.00"},
			wantAbsent:   []string{"BJ1001", "Attached is the receipt."},
		},
		{
			name:     "scenario 4 leads with the partial refund preamble",
			template: "Scenario 4",
			wantContains: []string{
				"A partial refund of $120.00 has been issued to the customer.",
				"will need to be recovered from your store",
			},
		},
		{
			name:         "unknown template falls back to standard",
			template:     "Scenario 99",
			wantContains: []string{"Reason: Fitment done at a different store Order #BJ1001"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			subject, body := services.BuildScenarioEmail(tc.template, data)
			assert.Equal(t, services.CreditNoteSubject, subject)
			for _, want := range tc.wantContains {
				assert.Contains(t, body, want)
			}
			for _, absent := range tc.wantAbsent {
				assert.NotContains(t, body, absent)
			}
		})
	}
}

func TestBuildScenarioEmail_PlaceholdersForEmptyFields(t *testing.T) {
	_, body := services.BuildScenarioEmail("Standard", services.ScenarioEmailData{})

	assert.Contains(t, body, "Hi Accounts Team,")
	assert.Contains(t, body, "credit note of <amount> from <store>")
	assert.Contains(t, body, "Reason: <reason> Order #<order>")
}

func TestBuildCompletionEmail(t *testing.T) {
	r := domain.TransferRecord{
		OrderNumber:        "BJ1001",
		Status:             "Completed",
		Amount:             "$120.00",
		AmountType:         "Refunded",
		IncorrectStore:     "Penrith",
		FitmentStore:       "Blacktown",
		FinanceUpdatedDate: "2024-02-01",
	}

	subject, body := services.BuildCompletionEmail(r)

	assert.Equal(t, "Completed: Inter-Store Transfer for Order BJ1001", subject)
	assert.Contains(t, body, "Hi eCommerce Team,")
	assert.Contains(t, body, "Order #BJ1001 has been completed")
	assert.Contains(t, body, "Amount: $120.00 (Refunded)")
	assert.Contains(t, body, "Store - Fitment Completed: Blacktown")
}

func TestBuildCompletionEmail_NoAmountType(t *testing.T) {
	r := domain.TransferRecord{OrderNumber: "BJ1001", Amount: "$50.00"}

	_, body := services.BuildCompletionEmail(r)

	assert.Contains(t, body, "Amount: $50.00\n")
	assert.NotContains(t, body, "(")
}

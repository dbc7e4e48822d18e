package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"adbooks/internal/core/domain"
	"adbooks/internal/core/port/mocks"
)

// TestOutstandingNoData reports nil when an org had neither campaigns
// nor an executed spend query; the spend query itself must be skipped.
func TestOutstandingNoData(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerRepository(t)

	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1"}, mock.Anything).
		Return(nil, nil)
	// no ledger.Spend expectation: a call would fail the test

	calc := NewOutstandingBudgetCalculator(NewBudgetAggregator(campaigns), ledger)
	result, err := calc.OutstandingBudget(context.Background(), []string{"o-1"})
	if err != nil {
		t.Fatalf("OutstandingBudget error: %v", err)
	}
	if result["o-1"] != nil {
		t.Fatalf("expected nil for no data, got %s", result["o-1"])
	}
}

// TestOutstandingZeroIsNotNull distinguishes a defined zero from nil: a
// zero-budget campaign with zero spend yields 0.
func TestOutstandingZeroIsNotNull(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerRepository(t)

	zero := decimal.Zero
	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1"}, mock.Anything).
		Return([]domain.Campaign{
			{ID: "cam-1", OrgID: "o-1", Status: domain.CampaignActive, Pricing: domain.Pricing{Budget: &zero}},
		}, nil)
	ledger.EXPECT().
		Spend(mock.Anything, []string{"o-1"}, []string{"cam-1"}).
		Return(map[string]decimal.Decimal{}, nil)

	calc := NewOutstandingBudgetCalculator(NewBudgetAggregator(campaigns), ledger)
	result, err := calc.OutstandingBudget(context.Background(), []string{"o-1"})
	if err != nil {
		t.Fatalf("OutstandingBudget error: %v", err)
	}
	if result["o-1"] == nil {
		t.Fatalf("expected defined zero, got nil")
	}
	if !result["o-1"].IsZero() {
		t.Fatalf("expected 0, got %s", result["o-1"])
	}
}

// TestOutstandingBudgetMinusSpend computes budget minus spend per org
// and treats a missing spend side as zero.
func TestOutstandingBudgetMinusSpend(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerRepository(t)

	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1", "o-2"}, mock.Anything).
		Return([]domain.Campaign{
			{ID: "cam-1", OrgID: "o-1", Status: domain.CampaignActive, Pricing: domain.Pricing{Budget: decPtr("1000")}},
			{ID: "cam-2", OrgID: "o-2", Status: domain.CampaignActive, Pricing: domain.Pricing{Budget: decPtr("200")}},
		}, nil)
	ledger.EXPECT().
		Spend(mock.Anything, []string{"o-1", "o-2"}, []string{"cam-1", "cam-2"}).
		Return(map[string]decimal.Decimal{"o-1": dec("300.56")}, nil)

	calc := NewOutstandingBudgetCalculator(NewBudgetAggregator(campaigns), ledger)
	result, err := calc.OutstandingBudget(context.Background(), []string{"o-1", "o-2"})
	if err != nil {
		t.Fatalf("OutstandingBudget error: %v", err)
	}
	if got := result["o-1"]; got == nil || !got.Equal(dec("699.44")) {
		t.Fatalf("expected 699.44, got %s", got)
	}
	if got := result["o-2"]; got == nil || !got.Equal(dec("200")) {
		t.Fatalf("expected 200 with missing spend treated as zero, got %s", got)
	}
}

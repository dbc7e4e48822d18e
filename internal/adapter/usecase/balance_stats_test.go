package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"adbooks/internal/core/domain"
	"adbooks/internal/core/port"
	"adbooks/internal/core/port/mocks"
)

func newBalanceStats(t *testing.T) (*BalanceStatsService, *mocks.MockLedgerRepository, *mocks.MockCampaignRepository, *mocks.MockDirectory) {
	ledger := mocks.NewMockLedgerRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	dir := mocks.NewMockDirectory(t)
	outstanding := NewOutstandingBudgetCalculator(NewBudgetAggregator(campaigns), ledger)
	return NewBalanceStatsService(ledger, outstanding, dir), ledger, campaigns, dir
}

// TestBalanceSingleOrg merges the ledger report with the outstanding
// budget for one org: +1000 credit, 300 and 50 debits against a 1000
// budget campaign.
func TestBalanceSingleOrg(t *testing.T) {
	svc, ledger, campaigns, dir := newBalanceStats(t)
	requester := domain.Requester{OrgID: "o-1", Scope: domain.ScopeOwn}

	dir.EXPECT().
		FetchOrgs(mock.Anything, requester, []string{"o-1"}).
		Return([]domain.Org{{ID: "o-1"}}, nil)
	ledger.EXPECT().
		BalanceAndSpend(mock.Anything, []string{"o-1"}).
		Return(map[string]domain.BalanceReport{
			"o-1": {Balance: dec("650"), TotalSpend: dec("350")},
		}, nil)
	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1"}, mock.Anything).
		Return([]domain.Campaign{
			{ID: "cam-1", OrgID: "o-1", Status: domain.CampaignActive, Pricing: domain.Pricing{Budget: decPtr("1000")}},
		}, nil)
	ledger.EXPECT().
		Spend(mock.Anything, []string{"o-1"}, []string{"cam-1"}).
		Return(map[string]decimal.Decimal{"o-1": dec("350")}, nil)

	stat, err := svc.Balance(context.Background(), requester, "")
	if err != nil {
		t.Fatalf("Balance error: %v", err)
	}
	if !stat.Balance.Equal(dec("650")) {
		t.Fatalf("expected balance 650, got %s", stat.Balance)
	}
	if !stat.TotalSpend.Equal(dec("350")) {
		t.Fatalf("expected totalSpend 350, got %s", stat.TotalSpend)
	}
	if !stat.OutstandingBudget.Equal(dec("650")) {
		t.Fatalf("expected outstandingBudget 650, got %s", stat.OutstandingBudget)
	}
}

// TestBalanceOrgNotFound maps zero visible orgs to the not-found error.
func TestBalanceOrgNotFound(t *testing.T) {
	svc, _, _, dir := newBalanceStats(t)
	requester := domain.Requester{OrgID: "o-1", Scope: domain.ScopeOwn}

	dir.EXPECT().
		FetchOrgs(mock.Anything, requester, []string{"o-9"}).
		Return(nil, nil)

	_, err := svc.Balance(context.Background(), requester, "o-9")
	if !errors.Is(err, port.ErrOrgNotFound) {
		t.Fatalf("expected ErrOrgNotFound, got %v", err)
	}
}

// TestBalanceMissingOrg is a validation failure when neither the query
// nor the requester supplies an org id.
func TestBalanceMissingOrg(t *testing.T) {
	svc, _, _, _ := newBalanceStats(t)

	_, err := svc.Balance(context.Background(), domain.Requester{Scope: domain.ScopeOwn}, "")
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// TestBalancesPartialResolution keeps unresolvable orgs as nil entries
// without failing the rest of the request.
func TestBalancesPartialResolution(t *testing.T) {
	svc, ledger, campaigns, dir := newBalanceStats(t)
	requester := domain.Requester{OrgID: "o-1", Scope: domain.ScopeAll}

	dir.EXPECT().
		FetchOrgs(mock.Anything, requester, []string{"o-1", "o-2"}).
		Return([]domain.Org{{ID: "o-1"}}, nil)
	ledger.EXPECT().
		BalanceAndSpend(mock.Anything, []string{"o-1"}).
		Return(map[string]domain.BalanceReport{
			"o-1": {Balance: dec("120.50"), TotalSpend: dec("10")},
		}, nil)
	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1"}, mock.Anything).
		Return(nil, nil)

	result, err := svc.Balances(context.Background(), requester, []string{"o-1", "o-2"})
	if err != nil {
		t.Fatalf("Balances error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected entries for both requested orgs, got %d", len(result))
	}
	if result["o-2"] != nil {
		t.Fatalf("expected nil for unresolved org")
	}
	if result["o-1"] == nil || !result["o-1"].Balance.Equal(dec("120.50")) {
		t.Fatalf("unexpected stats for o-1: %+v", result["o-1"])
	}
	// outstanding defaults to zero when the org has no campaigns
	if !result["o-1"].OutstandingBudget.IsZero() {
		t.Fatalf("expected zero outstanding, got %s", result["o-1"].OutstandingBudget)
	}
}

// TestBalancesDefaultsToOwnOrg uses the requester's org when no ids are
// given.
func TestBalancesDefaultsToOwnOrg(t *testing.T) {
	svc, ledger, campaigns, dir := newBalanceStats(t)
	requester := domain.Requester{OrgID: "o-1", Scope: domain.ScopeOwn}

	dir.EXPECT().
		FetchOrgs(mock.Anything, requester, []string{"o-1"}).
		Return([]domain.Org{{ID: "o-1"}}, nil)
	ledger.EXPECT().
		BalanceAndSpend(mock.Anything, []string{"o-1"}).
		Return(nil, nil)
	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1"}, mock.Anything).
		Return(nil, nil)

	result, err := svc.Balances(context.Background(), requester, nil)
	if err != nil {
		t.Fatalf("Balances error: %v", err)
	}
	stat := result["o-1"]
	if stat == nil {
		t.Fatalf("expected entry for own org")
	}
	// the org resolved but has no ledger rows and no campaigns: zeros
	if !stat.Balance.IsZero() || !stat.TotalSpend.IsZero() || !stat.OutstandingBudget.IsZero() {
		t.Fatalf("expected zero defaults, got %+v", stat)
	}
}

// TestBalancesUpstreamFailure aborts the whole request when the ledger
// read fails.
func TestBalancesUpstreamFailure(t *testing.T) {
	svc, ledger, campaigns, dir := newBalanceStats(t)
	requester := domain.Requester{OrgID: "o-1", Scope: domain.ScopeOwn}

	dir.EXPECT().
		FetchOrgs(mock.Anything, requester, []string{"o-1"}).
		Return([]domain.Org{{ID: "o-1"}}, nil)
	ledger.EXPECT().
		BalanceAndSpend(mock.Anything, []string{"o-1"}).
		Return(nil, errors.New("connection reset"))
	// the concurrent budget read may or may not run before cancellation
	campaigns.EXPECT().
		FindBudgetable(mock.Anything, []string{"o-1"}, mock.Anything).
		Return(nil, nil).
		Maybe()

	_, err := svc.Balances(context.Background(), requester, []string{"o-1"})
	if err == nil {
		t.Fatalf("expected upstream error")
	}
}

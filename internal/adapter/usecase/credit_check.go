package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"adbooks/internal/core/domain"
	"adbooks/internal/core/port"
)

// minDeposit is the floor for a requested deposit, even when the deficit
// is smaller than one currency unit.
var minDeposit = decimal.NewFromInt(1)

// CreditCheckService decides whether a proposed campaign budget can be
// funded by the org's balance. The decision is advisory: nothing is
// locked between these reads and the caller's subsequent write, so a
// concurrent transaction or campaign edit can invalidate the decision
// immediately after it is returned.
type CreditCheckService struct {
	ledger    port.LedgerRepository
	budget    *BudgetAggregator
	directory port.Directory
}

// NewCreditCheckService wires the service.
func NewCreditCheckService(ledger port.LedgerRepository, budget *BudgetAggregator, directory port.Directory) *CreditCheckService {
	return &CreditCheckService{ledger: ledger, budget: budget, directory: directory}
}

// Check computes the org's deficit if the campaign's budget became
// proposedBudget (falling back to the committed budget when nil) and
// approves when the deficit is zero or negative. The campaign itself is
// excluded from the aggregate budget because its value enters the sum
// explicitly, but its historical spend still counts.
func (s *CreditCheckService) Check(ctx context.Context, requester domain.Requester, orgID, campaignID string, proposedBudget *decimal.Decimal) (domain.CreditDecision, error) {
	var decision domain.CreditDecision

	if orgID == "" {
		return decision, fmt.Errorf("%w: missing org id", port.ErrValidation)
	}
	if campaignID == "" {
		return decision, fmt.Errorf("%w: missing campaign id", port.ErrValidation)
	}

	campaign, err := s.directory.FetchCampaign(ctx, requester, campaignID)
	if err != nil {
		return decision, fmt.Errorf("resolve campaign: %w", err)
	}
	if campaign == nil {
		return decision, fmt.Errorf("%w: campaign %s not found", port.ErrValidation, campaignID)
	}
	if campaign.OrgID != orgID {
		return decision, fmt.Errorf("%w: campaign %s does not belong to org %s", port.ErrValidation, campaignID, orgID)
	}

	var (
		reports map[string]domain.BalanceReport
		summary BudgetSummary
	)
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		reports, err = s.ledger.BalanceAndSpend(grpCtx, []string{orgID})
		return err
	})
	grp.Go(func() error {
		var err error
		summary, err = s.budget.TotalBudget(grpCtx, []string{orgID}, []string{campaignID})
		return err
	})
	if err = grp.Wait(); err != nil {
		return decision, err
	}

	// re-include the checked campaign so its past spend counts
	campaignIDs := append(summary.CampaignIDs(), campaignID)
	spendByOrg, err := s.ledger.Spend(ctx, []string{orgID}, campaignIDs)
	if err != nil {
		return decision, err
	}

	campaignBudget := decimal.Zero
	switch {
	case proposedBudget != nil:
		campaignBudget = *proposedBudget
	case campaign.Pricing.Budget != nil:
		campaignBudget = *campaign.Pricing.Budget
	}

	outstanding := summary.PerOrg[orgID].Add(campaignBudget).Sub(spendByOrg[orgID])
	deficit := outstanding.Sub(reports[orgID].Balance).Round(2)
	if deficit.IsPositive() {
		decision.DepositAmount = decimal.Max(deficit, minDeposit)
		return decision, nil
	}
	decision.Approved = true
	return decision, nil
}

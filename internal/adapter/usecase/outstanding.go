package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"adbooks/internal/core/port"
)

// OutstandingBudgetCalculator combines the budget aggregate with the
// matching ledger spend into a per-org outstanding-budget figure.
type OutstandingBudgetCalculator struct {
	budget *BudgetAggregator
	ledger port.LedgerRepository
}

// NewOutstandingBudgetCalculator wires the calculator.
func NewOutstandingBudgetCalculator(budget *BudgetAggregator, ledger port.LedgerRepository) *OutstandingBudgetCalculator {
	return &OutstandingBudgetCalculator{budget: budget, ledger: ledger}
}

// OutstandingBudget returns budget minus spend per org. A nil entry
// means the org had neither campaigns nor an executed spend query, which
// is "no data" rather than zero. When only one side is present the
// missing side counts as zero.
func (c *OutstandingBudgetCalculator) OutstandingBudget(ctx context.Context, orgIDs []string) (map[string]*decimal.Decimal, error) {
	summary, err := c.budget.TotalBudget(ctx, orgIDs, nil)
	if err != nil {
		return nil, err
	}

	spend := make(map[string]decimal.Decimal)
	if campaignIDs := summary.CampaignIDs(); len(campaignIDs) > 0 {
		// no campaigns means no possible spend against them, skip the query
		spend, err = c.ledger.Spend(ctx, orgIDs, campaignIDs)
		if err != nil {
			return nil, err
		}
	}

	result := make(map[string]*decimal.Decimal, len(orgIDs))
	for _, org := range orgIDs {
		budget, hasBudget := summary.PerOrg[org]
		spent, hasSpend := spend[org]
		if !hasBudget && !hasSpend {
			result[org] = nil
			continue
		}
		outstanding := budget.Sub(spent).Round(2)
		result[org] = &outstanding
	}
	return result, nil
}

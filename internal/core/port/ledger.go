package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adbooks/internal/core/domain"
)

// LedgerRepository is the outbound port for the append-only transaction
// ledger. Both operations are pure reads; implementations must never
// mutate ledger rows. Query failures are terminal for the caller, no
// retries are attempted anywhere in this service.
type LedgerRepository interface {
	// BalanceAndSpend groups ledger rows by (org, sign) and sums the
	// amounts. Orgs with no rows at all are absent from the result;
	// callers supply their own zero defaults.
	BalanceAndSpend(ctx context.Context, orgIDs []string) (map[string]domain.BalanceReport, error)

	// Spend sums debit amounts restricted to the given campaign id set,
	// grouped by org. An empty org or campaign id set must short-circuit
	// to an empty result without issuing a query.
	Spend(ctx context.Context, orgIDs, campaignIDs []string) (map[string]decimal.Decimal, error)
}

package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"adbooks/internal/core/domain"
)

// ErrValidation marks bad input: missing identifiers or a campaign that
// does not belong to the stated org. Maps to HTTP 400.
var ErrValidation = errors.New("validation failed")

// ErrOrgNotFound is returned by a single-org balance query when the org
// does not exist or is not visible to the requester. Maps to HTTP 404.
var ErrOrgNotFound = errors.New("org not found")

// BalanceStats is the primary port for the balance read path. Results
// are advisory: the ledger and the campaign store are read without
// cross-store isolation, so a concurrent write may be half-visible.
type BalanceStats interface {
	// Balance computes the stats for a single org. An empty orgID
	// defaults to the requester's own org.
	Balance(ctx context.Context, requester domain.Requester, orgID string) (domain.OrgBalance, error)

	// Balances computes stats for several orgs at once. Orgs that do not
	// resolve under the requester's scope come back as nil map entries;
	// they never fail the rest of the request.
	Balances(ctx context.Context, requester domain.Requester, orgIDs []string) (map[string]*domain.OrgBalance, error)
}

// CreditCheck is the primary port for the credit decision path. The
// decision is advisory: nothing is locked between the reads and whatever
// the caller does next.
type CreditCheck interface {
	// Check decides whether a proposed budget for the campaign can be
	// funded by the org. A nil proposedBudget falls back to the
	// campaign's committed budget.
	Check(ctx context.Context, requester domain.Requester, orgID, campaignID string, proposedBudget *decimal.Decimal) (domain.CreditDecision, error)
}

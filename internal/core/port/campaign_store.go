package port

import (
	"context"

	"adbooks/internal/core/domain"
)

// CampaignRepository is the outbound port for the campaign document
// store. The store is owned by the campaign service; this side only
// reads, and must tolerate documents changing between sequential reads.
type CampaignRepository interface {
	// FindBudgetable returns campaigns for the given orgs whose status is
	// active, paused or pending, excluding the given campaign ids.
	FindBudgetable(ctx context.Context, orgIDs, excludeCampaignIDs []string) ([]domain.Campaign, error)

	// FindUpdateRequests returns the pending update requests with the
	// given ids. An empty id set must short-circuit without a query.
	FindUpdateRequests(ctx context.Context, ids []string) ([]domain.CampaignUpdateRequest, error)
}

package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"adbooks/internal/core/domain"
	"adbooks/internal/core/port"
)

// BudgetAggregator computes each org's committed-or-pending campaign
// budget by overlaying in-flight update requests on the stored values.
type BudgetAggregator struct {
	campaigns port.CampaignRepository
}

// NewBudgetAggregator creates an aggregator over the campaign store.
func NewBudgetAggregator(campaigns port.CampaignRepository) *BudgetAggregator {
	return &BudgetAggregator{campaigns: campaigns}
}

// BudgetSummary is the result of a TotalBudget call. Campaigns is the
// raw list behind PerOrg so callers can derive the campaign-id set for a
// matching spend query without a second budget query.
type BudgetSummary struct {
	PerOrg    map[string]decimal.Decimal
	Campaigns []domain.Campaign
}

// CampaignIDs returns the ids of the campaigns behind the summary.
func (s BudgetSummary) CampaignIDs() []string {
	ids := make([]string, 0, len(s.Campaigns))
	for _, c := range s.Campaigns {
		ids = append(ids, c.ID)
	}
	return ids
}

// TotalBudget sums the effective budget of every active, paused or
// pending campaign per org, excluding the given campaign ids. The
// effective budget is max(committed, pending update); only an update
// request currently referenced by its campaign is honored, stale records
// are ignored. Orgs without matching campaigns are absent from PerOrg;
// "no campaigns" is a defined zero for callers, distinct from "no data".
func (a *BudgetAggregator) TotalBudget(ctx context.Context, orgIDs, excludeCampaignIDs []string) (BudgetSummary, error) {
	summary := BudgetSummary{PerOrg: make(map[string]decimal.Decimal)}

	campaigns, err := a.campaigns.FindBudgetable(ctx, orgIDs, excludeCampaignIDs)
	if err != nil {
		return summary, err
	}
	summary.Campaigns = campaigns
	if len(campaigns) == 0 {
		return summary, nil
	}

	updates, err := a.pendingUpdates(ctx, campaigns)
	if err != nil {
		return summary, err
	}

	for _, c := range campaigns {
		var update *domain.CampaignUpdateRequest
		if c.UpdateRequestID != nil {
			update = updates[*c.UpdateRequestID]
		}
		summary.PerOrg[c.OrgID] = summary.PerOrg[c.OrgID].Add(c.EffectiveBudget(update))
	}
	return summary, nil
}

// pendingUpdates fetches the update requests referenced by the given
// campaigns, keyed by update-request id. No query is issued when no
// campaign carries a reference.
func (a *BudgetAggregator) pendingUpdates(ctx context.Context, campaigns []domain.Campaign) (map[string]*domain.CampaignUpdateRequest, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, c := range campaigns {
		if c.UpdateRequestID == nil {
			continue
		}
		if _, ok := seen[*c.UpdateRequestID]; ok {
			continue
		}
		seen[*c.UpdateRequestID] = struct{}{}
		ids = append(ids, *c.UpdateRequestID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	records, err := a.campaigns.FindUpdateRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	updates := make(map[string]*domain.CampaignUpdateRequest, len(records))
	for i := range records {
		updates[records[i].ID] = &records[i]
	}
	return updates, nil
}

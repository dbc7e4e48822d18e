package domain

import "github.com/shopspring/decimal"

// Campaign statuses. Only active, paused and pending campaigns count
// towards an org's budget exposure.
const (
	CampaignActive  = "active"
	CampaignPaused  = "paused"
	CampaignPending = "pending"
	CampaignDeleted = "deleted"
)

// Campaign is a read-only view of a campaign owned by the campaign
// service. Budgets may be absent for campaigns that were created without
// pricing.
type Campaign struct {
	ID              string
	OrgID           string
	Status          string
	Pricing         Pricing
	UpdateRequestID *string
}

// Pricing holds a campaign's monetary limits. Nil means the field was
// never set, which is distinct from an explicit zero.
type Pricing struct {
	Budget     *decimal.Decimal
	DailyLimit *decimal.Decimal
}

// CampaignUpdateRequest is a pending, not-yet-applied edit to a
// campaign. NewBudget is nil when the edit does not touch the budget.
type CampaignUpdateRequest struct {
	ID         string
	CampaignID string
	NewBudget  *decimal.Decimal
}

// EffectiveBudget returns the exposure a campaign contributes to its
// org's total: the larger of the committed budget and a pending update's
// proposed budget. A pending increase counts before approval; a pending
// decrease never lowers the floor below the committed value.
func (c Campaign) EffectiveBudget(update *CampaignUpdateRequest) decimal.Decimal {
	committed := decimal.Zero
	if c.Pricing.Budget != nil {
		committed = *c.Pricing.Budget
	}
	if update == nil || update.NewBudget == nil {
		return committed
	}
	return decimal.Max(committed, *update.NewBudget)
}

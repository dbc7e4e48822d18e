package mongo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adbooks/internal/core/domain"
)

// Collection names owned by the campaign service.
const (
	campaignsCollection      = "campaigns"
	updateRequestsCollection = "campaign_update_requests"
)

// CampaignRepository implements port.CampaignRepository against the
// campaign service's MongoDB database. All reads use explicit
// projections; this service never writes to these collections.
type CampaignRepository struct {
	db *mongo.Database
}

// NewCampaignRepository returns a repository reading from db.
func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{db: db}
}

type pricingDoc struct {
	Budget     *float64 `bson:"budget,omitempty"`
	DailyLimit *float64 `bson:"daily_limit,omitempty"`
}

type campaignDoc struct {
	ID              string     `bson:"_id"`
	OrgID           string     `bson:"org_id"`
	Status          string     `bson:"status"`
	Pricing         pricingDoc `bson:"pricing"`
	UpdateRequestID *string    `bson:"update_request_id,omitempty"`
}

type updateRequestDoc struct {
	ID         string `bson:"_id"`
	CampaignID string `bson:"campaign_id"`
	Data       struct {
		Pricing pricingDoc `bson:"pricing"`
	} `bson:"data"`
}

// FindBudgetable returns the orgs' campaigns in a budget-relevant status,
// minus the excluded ids.
func (r *CampaignRepository) FindBudgetable(ctx context.Context, orgIDs, excludeCampaignIDs []string) ([]domain.Campaign, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"org_id": bson.M{"$in": orgIDs},
		"status": bson.M{"$in": []string{domain.CampaignActive, domain.CampaignPaused, domain.CampaignPending}},
	}
	if len(excludeCampaignIDs) > 0 {
		filter["_id"] = bson.M{"$nin": excludeCampaignIDs}
	}
	projection := bson.M{
		"org_id":            1,
		"status":            1,
		"pricing":           1,
		"update_request_id": 1,
	}

	cur, err := r.db.Collection(campaignsCollection).Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("campaign query: %w", err)
	}
	var docs []campaignDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("campaign decode: %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(docs))
	for _, doc := range docs {
		campaigns = append(campaigns, domain.Campaign{
			ID:     doc.ID,
			OrgID:  doc.OrgID,
			Status: doc.Status,
			Pricing: domain.Pricing{
				Budget:     toDecimal(doc.Pricing.Budget),
				DailyLimit: toDecimal(doc.Pricing.DailyLimit),
			},
			UpdateRequestID: doc.UpdateRequestID,
		})
	}
	return campaigns, nil
}

// FindUpdateRequests returns the pending edits with the given ids.
func (r *CampaignRepository) FindUpdateRequests(ctx context.Context, ids []string) ([]domain.CampaignUpdateRequest, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	projection := bson.M{"campaign_id": 1, "data.pricing.budget": 1}

	cur, err := r.db.Collection(updateRequestsCollection).Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("update request query: %w", err)
	}
	var docs []updateRequestDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("update request decode: %w", err)
	}

	updates := make([]domain.CampaignUpdateRequest, 0, len(docs))
	for _, doc := range docs {
		updates = append(updates, domain.CampaignUpdateRequest{
			ID:         doc.ID,
			CampaignID: doc.CampaignID,
			NewBudget:  toDecimal(doc.Data.Pricing.Budget),
		})
	}
	return updates, nil
}

func toDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seed inserts demo data: signed ledger transactions into Postgres and
// campaigns with a pending budget update into the Mongo campaign store.
// Inserts are idempotent so repeated startups with seeding enabled do
// not multiply the data.
func Seed(ctx context.Context, pool *pgxpool.Pool, mdb *mongo.Database) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 3; i++ {
		orgID := fmt.Sprintf("org-%d", i)

		// one topup credit per org
		topup := 1000 + r.Intn(4000)
		_, err := pool.Exec(ctx, `INSERT INTO transactions
    (id, org_id, campaign_id, amount, sign, transaction_ts)
VALUES ($1,$2,NULL,$3,1,now()) ON CONFLICT DO NOTHING`,
			fmt.Sprintf("seed-topup-%s", orgID), orgID, topup)
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			campaignID := fmt.Sprintf("cam-%d-%d", i, j)
			budget := float64(100 * (1 + r.Intn(10)))

			campaign := bson.M{
				"_id":    campaignID,
				"org_id": orgID,
				"status": []string{"active", "paused", "pending"}[r.Intn(3)],
				"pricing": bson.M{
					"budget":      budget,
					"daily_limit": budget / 10,
				},
			}
			// one campaign per org carries a pending budget increase
			if j == 1 {
				updateID := "upd-" + campaignID
				campaign["update_request_id"] = updateID
				_, err = mdb.Collection("campaign_update_requests").ReplaceOne(ctx,
					bson.M{"_id": updateID},
					bson.M{
						"_id":         updateID,
						"campaign_id": campaignID,
						"data":        bson.M{"pricing": bson.M{"budget": budget * 1.5}},
					},
					options.Replace().SetUpsert(true))
				if err != nil {
					return err
				}
			}
			_, err = mdb.Collection("campaigns").ReplaceOne(ctx,
				bson.M{"_id": campaignID}, campaign, options.Replace().SetUpsert(true))
			if err != nil {
				return err
			}

			// some spend against each campaign
			spend := 10 + r.Intn(90)
			_, err = pool.Exec(ctx, `INSERT INTO transactions
    (id, org_id, campaign_id, amount, sign, transaction_ts)
VALUES ($1,$2,$3,$4,-1,now()) ON CONFLICT DO NOTHING`,
				fmt.Sprintf("seed-spend-%s", campaignID), orgID, campaignID, spend)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adbooks/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Sums are computed in SQL grouped by (org, sign); amounts
// travel as text to avoid lossy float conversion of NUMERIC columns.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

type signedSum struct {
	OrgID  string
	Sign   int
	Amount decimal.Decimal
}

// BalanceAndSpend returns the signed balance and the debit-side total
// per org. Orgs without ledger rows are absent from the map.
func (r *LedgerRepository) BalanceAndSpend(ctx context.Context, orgIDs []string) (map[string]domain.BalanceReport, error) {
	reports := make(map[string]domain.BalanceReport)
	if len(orgIDs) == 0 {
		return reports, nil
	}

	rows, err := r.pool.Query(ctx, `
        SELECT org_id, sign, SUM(amount)::text
        FROM transactions
        WHERE org_id = ANY($1)
        GROUP BY org_id, sign`, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("ledger balance query: %w", err)
	}

	sums, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (signedSum, error) {
		var (
			s   signedSum
			raw string
		)
		if err := row.Scan(&s.OrgID, &s.Sign, &raw); err != nil {
			return s, err
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return s, err
		}
		s.Amount = amount
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger balance scan: %w", err)
	}

	for _, s := range sums {
		rep := reports[s.OrgID]
		rep.Balance = rep.Balance.Add(s.Amount.Mul(decimal.NewFromInt(int64(s.Sign))))
		if s.Sign == domain.SignDebit {
			rep.TotalSpend = s.Amount.Abs()
		}
		reports[s.OrgID] = rep
	}
	for org, rep := range reports {
		rep.Balance = rep.Balance.Round(2)
		rep.TotalSpend = rep.TotalSpend.Round(2)
		reports[org] = rep
	}
	return reports, nil
}

// Spend returns per-org debit totals restricted to the given campaigns.
// Empty id sets short-circuit without a round-trip.
func (r *LedgerRepository) Spend(ctx context.Context, orgIDs, campaignIDs []string) (map[string]decimal.Decimal, error) {
	spend := make(map[string]decimal.Decimal)
	if len(orgIDs) == 0 || len(campaignIDs) == 0 {
		return spend, nil
	}

	rows, err := r.pool.Query(ctx, `
        SELECT org_id, SUM(amount)::text
        FROM transactions
        WHERE org_id = ANY($1)
          AND campaign_id = ANY($2)
          AND sign = $3
        GROUP BY org_id`, orgIDs, campaignIDs, domain.SignDebit)
	if err != nil {
		return nil, fmt.Errorf("ledger spend query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			org string
			raw string
		)
		if err = rows.Scan(&org, &raw); err != nil {
			return nil, fmt.Errorf("ledger spend scan: %w", err)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("ledger spend amount: %w", err)
		}
		spend[org] = amount.Abs().Round(2)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger spend rows: %w", err)
	}
	return spend, nil
}

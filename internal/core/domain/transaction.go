package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction sign values. A credit increases an org's balance, a debit
// records spend against it.
const (
	SignCredit = 1
	SignDebit  = -1
)

// Transaction is a single append-only ledger entry. Amount is a
// non-negative magnitude; Sign carries the direction. Rows are never
// mutated after creation and the ledger is the source of truth for
// balance and spend.
type Transaction struct {
	ID            string
	OrgID         string
	CampaignID    *string
	Amount        decimal.Decimal
	Sign          int
	TransactionTS time.Time
	CreatedAt     time.Time
}

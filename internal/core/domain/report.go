package domain

import "github.com/shopspring/decimal"

// BalanceReport is an org's ledger summary. Balance is the signed sum of
// all transactions; TotalSpend is the magnitude of the debit side only.
type BalanceReport struct {
	Balance    decimal.Decimal
	TotalSpend decimal.Decimal
}

// OrgBalance is the merged per-org figure returned by the balance
// endpoints. Missing underlying data has already been defaulted to zero
// by the time this struct exists.
type OrgBalance struct {
	Balance           decimal.Decimal
	TotalSpend        decimal.Decimal
	OutstandingBudget decimal.Decimal
}

// CreditDecision is the outcome of a credit check. DepositAmount is only
// meaningful when Approved is false; it is the minimum payment needed to
// clear the deficit, floored at one currency unit.
type CreditDecision struct {
	Approved      bool
	DepositAmount decimal.Decimal
}

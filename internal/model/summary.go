package model

import "github.com/shopspring/decimal"

// Summary is the derived income/expense/balance triple. It is never
// persisted; it is recomputed on demand from the live transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

package models

import (
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
)

// Income is the single monthly income figure.
//
// Only the latest value is kept, there is no history.
type Income struct {
	Amount decimal.Decimal `json:"amount" example:"2500"`   // Income for the month
	Month  string          `json:"month" example:"2024-03"` // Month in which the amount was last set, YYYY-MM
}

// IncomeEditable holds the fields of the income a client can set.
type IncomeEditable struct {
	Amount types.Optional[decimal.Decimal] `json:"amount" swaggertype:"number" example:"2500"`
}

// DefaultIncome returns the income used when none has been stored yet.
func DefaultIncome(now time.Time) Income {
	return Income{
		Amount: decimal.Zero,
		Month:  types.MonthOf(now).String(),
	}
}

package models

import (
	"fmt"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable holds all fields of an expense that can be set by a client.
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"42.17"`                // Amount spent. Negative values are accepted
	Category    string          `json:"category" example:"Groceries"`          // Free-form category label
	Date        string          `json:"date" example:"2024-03-14"`             // Date in YYYY-MM-DD format
	Description string          `json:"description" example:"Weekly shopping"` // Free-form description
}

// Expense is a single recorded expense.
type Expense struct {
	ID string `json:"id" example:"0b7d5bd9-49c2-4b1a-9c42-3f4d7b2a6e31"` // Assigned on creation, never changes
	ExpenseEditable
}

// ExpensePatch is a partial update for an expense.
//
// Only fields that are set are applied.
type ExpensePatch struct {
	Amount      types.Optional[decimal.Decimal] `json:"amount" swaggertype:"number" example:"42.17"`
	Category    types.Optional[string]          `json:"category" swaggertype:"string" example:"Groceries"`
	Date        types.Optional[string]          `json:"date" swaggertype:"string" example:"2024-03-14"`
	Description types.Optional[string]          `json:"description" swaggertype:"string" example:"Weekly shopping"`
}

// Apply returns e with all set fields of the patch applied.
func (p ExpensePatch) Apply(e Expense) Expense {
	if v, ok := p.Amount.Get(); ok {
		e.Amount = v
	}

	if v, ok := p.Category.Get(); ok {
		e.Category = v
	}

	if v, ok := p.Date.Get(); ok {
		e.Date = v
	}

	if v, ok := p.Description.Get(); ok {
		e.Description = v
	}

	return e
}

// Editable converts the patch into a full set of editable fields.
//
// All fields must be set, otherwise ErrFieldMissing is returned.
func (p ExpensePatch) Editable() (ExpenseEditable, error) {
	missing := []struct {
		name string
		set  bool
	}{
		{"amount", p.Amount.Set},
		{"category", p.Category.Set},
		{"date", p.Date.Set},
		{"description", p.Description.Set},
	}

	for _, f := range missing {
		if !f.set {
			return ExpenseEditable{}, fmt.Errorf("%w: %s", ErrFieldMissing, f.name)
		}
	}

	return ExpenseEditable{
		Amount:      p.Amount.Value,
		Category:    p.Category.Value,
		Date:        p.Date.Value,
		Description: p.Description.Value,
	}, nil
}

// InDateRange reports whether the expense date lies within the bounds.
//
// Bounds are compared lexically, an empty bound is not checked.
func (e Expense) InDateRange(start, end string) bool {
	if start != "" && e.Date < start {
		return false
	}

	if end != "" && e.Date > end {
		return false
	}

	return true
}

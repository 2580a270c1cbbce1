package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Report is the summary of a single month.
type Report struct {
	Month                 string          `json:"month" example:"2024-03"`                        // The month the report is for, YYYY-MM
	Currency              Currency        `json:"currency"`                                       // Currency amounts are reported in
	TotalIncome           decimal.Decimal `json:"total_income" example:"2500"`                    // Income amount as currently stored
	TotalExpenses         decimal.Decimal `json:"total_expenses" example:"1312.4"`                // Sum of all expenses in the month
	Savings               decimal.Decimal `json:"savings" example:"1187.6"`                       // Income minus expenses, can be negative
	ExpenseCategories     CategoryTotals  `json:"expense_categories" swaggertype:"object,number"` // Sum of expenses per category
	InvestmentSuggestions []string        `json:"investment_suggestions"`                         // Advice based on the savings
	Expenses              []Expense       `json:"expenses"`                                       // All expenses in the month
}

// CategoryTotals sums amounts per category.
//
// Categories keep the order in which they were first added, also
// when marshalled to JSON.
type CategoryTotals struct {
	order  []string
	totals map[string]decimal.Decimal
}

// Add adds amount to the total of category.
func (c *CategoryTotals) Add(category string, amount decimal.Decimal) {
	if c.totals == nil {
		c.totals = make(map[string]decimal.Decimal)
	}

	total, ok := c.totals[category]
	if !ok {
		c.order = append(c.order, category)
	}
	c.totals[category] = total.Add(amount)
}

// Get returns the total for a category.
func (c CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	total, ok := c.totals[category]
	return total, ok
}

// Categories returns all categories in first-seen order.
func (c CategoryTotals) Categories() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of categories.
func (c CategoryTotals) Len() int {
	return len(c.order)
}

// MarshalJSON implements the json.Marshaler interface.
func (c CategoryTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, category := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(c.totals[category])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Key order is read from the token stream so that a marshalled
// value decodes back into the same order.
func (c *CategoryTotals) UnmarshalJSON(data []byte) error {
	*c = CategoryTotals{}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		category, _ := t.(string)

		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return err
		}
		c.Add(category, amount)
	}

	return nil
}

package models

import (
	"fmt"

	"golang.org/x/text/currency"
)

// Currency describes the currency amounts are denominated in.
type Currency struct {
	Code   string `json:"code" example:"EUR"`
	Symbol string `json:"symbol" example:"€"`
}

// ParseCurrency returns the Currency for an ISO 4217 code.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	return Currency{
		Code:   unit.String(),
		Symbol: fmt.Sprintf("%s", currency.Symbol(unit)),
	}, nil
}

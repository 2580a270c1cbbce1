// Package models holds the resources of the expense tracker and the
// rules that apply to them independent of how they are stored.
package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts are JSON numbers on disk and on the wire
	decimal.MarshalJSONWithoutQuotes = true
}

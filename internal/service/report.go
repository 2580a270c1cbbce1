package service

import (
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
)

// Investment suggestions, keyed by how much was saved in the month.
var (
	suggestionsHighSavings = []string{
		"Consider investing in a diversified index fund",
		"Look into high-yield savings accounts for emergency fund",
	}
	suggestionsMediumSavings = []string{
		"Start building an emergency fund",
		"Consider low-risk investment options",
	}
	suggestionsLowSavings = []string{
		"Focus on building emergency savings first",
	}
	suggestionsNoSavings = []string{
		"Review your expenses to increase savings",
		"Consider budgeting tools to track spending",
	}

	highSavingsThreshold   = decimal.NewFromInt(1000)
	mediumSavingsThreshold = decimal.NewFromInt(500)
)

// ReportService derives the monthly report.
type ReportService struct {
	expenses ExpenseStore
	income   IncomeStore
	currency models.Currency
	now      func() time.Time
}

// NewReportService returns a ReportService. If now is nil, time.Now is used.
func NewReportService(expenses ExpenseStore, income IncomeStore, currency models.Currency, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}

	return ReportService{
		expenses: expenses,
		income:   income,
		currency: currency,
		now:      now,
	}
}

// Monthly returns the report for the current month.
//
// The income is used as stored, even if it was last set in another month.
func (s ReportService) Monthly() models.Report {
	month := types.MonthOf(s.now())
	income := s.income.LoadIncome()

	monthly := []models.Expense{}
	total := decimal.Zero
	var categories models.CategoryTotals

	for _, e := range s.expenses.LoadExpenses() {
		if !month.ContainsDate(e.Date) {
			continue
		}

		monthly = append(monthly, e)
		total = total.Add(e.Amount)
		categories.Add(e.Category, e.Amount)
	}

	savings := income.Amount.Sub(total)

	return models.Report{
		Month:                 month.String(),
		Currency:              s.currency,
		TotalIncome:           income.Amount,
		TotalExpenses:         total,
		Savings:               savings,
		ExpenseCategories:     categories,
		InvestmentSuggestions: Suggestions(savings),
		Expenses:              monthly,
	}
}

// Suggestions returns the investment suggestions for the amount saved.
func Suggestions(savings decimal.Decimal) []string {
	var s []string
	switch {
	case savings.GreaterThanOrEqual(highSavingsThreshold):
		s = suggestionsHighSavings
	case savings.GreaterThanOrEqual(mediumSavingsThreshold):
		s = suggestionsMediumSavings
	case savings.IsPositive():
		s = suggestionsLowSavings
	default:
		s = suggestionsNoSavings
	}

	return append([]string(nil), s...)
}

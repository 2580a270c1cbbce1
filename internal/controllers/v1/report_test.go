package v1_test

import (
	"net/http"

	"github.com/envelope-zero/tracker/test"
	"github.com/shopspring/decimal"
)

// reportResponse mirrors the report, with the categories decoded
// into a plain map.
type reportResponse struct {
	Month    string `json:"month"`
	Currency struct {
		Code   string `json:"code"`
		Symbol string `json:"symbol"`
	} `json:"currency"`
	TotalIncome           decimal.Decimal            `json:"total_income"`
	TotalExpenses         decimal.Decimal            `json:"total_expenses"`
	Savings               decimal.Decimal            `json:"savings"`
	ExpenseCategories     map[string]decimal.Decimal `json:"expense_categories"`
	InvestmentSuggestions []string                   `json:"investment_suggestions"`
	Expenses              []struct {
		ID string `json:"id"`
	} `json:"expenses"`
}

func (suite *TestSuiteStandard) getReport() reportResponse {
	r := suite.request(http.MethodGet, "/report/monthly", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var report reportResponse
	test.DecodeResponse(suite.T(), r, &report)
	return report
}

func (suite *TestSuiteStandard) setIncome(amount float64) {
	r := suite.request(http.MethodPut, "/income", map[string]any{"amount": amount})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestReportEmpty() {
	r := suite.request(http.MethodGet, "/report/monthly", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	suite.Assert().JSONEq(`{
		"month": "2024-03",
		"currency": {"code": "EUR", "symbol": "€"},
		"total_income": 0,
		"total_expenses": 0,
		"savings": 0,
		"expense_categories": {},
		"investment_suggestions": [
			"Review your expenses to increase savings",
			"Consider budgeting tools to track spending"
		],
		"expenses": []
	}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestReportMonthly() {
	suite.setIncome(2500)

	a := suite.createTestExpense(expense(100.10, "Groceries", "2024-03-01"))
	suite.createTestExpense(expense(900, "Rent", "2024-02-28"))
	b := suite.createTestExpense(expense(45.5, "Transport", "2024-03-10"))
	c := suite.createTestExpense(expense(20.40, "Groceries", "2024-03-31"))
	suite.createTestExpense(expense(10, "Groceries", "2024-04-01"))

	report := suite.getReport()

	suite.Assert().Equal("2024-03", report.Month)
	suite.Assert().True(decimal.NewFromInt(2500).Equal(report.TotalIncome))
	suite.Assert().True(decimal.RequireFromString("166").Equal(report.TotalExpenses), "Total is %s", report.TotalExpenses)
	suite.Assert().True(decimal.RequireFromString("2334").Equal(report.Savings), "Savings are %s", report.Savings)
	suite.Assert().True(report.Savings.Equal(report.TotalIncome.Sub(report.TotalExpenses)))

	suite.Require().Len(report.ExpenseCategories, 2)
	suite.Assert().True(decimal.RequireFromString("120.5").Equal(report.ExpenseCategories["Groceries"]))
	suite.Assert().True(decimal.RequireFromString("45.5").Equal(report.ExpenseCategories["Transport"]))

	suite.Assert().Equal([]string{
		"Consider investing in a diversified index fund",
		"Look into high-yield savings accounts for emergency fund",
	}, report.InvestmentSuggestions)

	suite.Require().Len(report.Expenses, 3)
	suite.Assert().Equal([]string{a.ID, b.ID, c.ID}, []string{report.Expenses[0].ID, report.Expenses[1].ID, report.Expenses[2].ID})
}

func (suite *TestSuiteStandard) TestReportCategoryOrder() {
	suite.createTestExpense(expense(1, "Zoo", "2024-03-01"))
	suite.createTestExpense(expense(1, "Apples", "2024-03-02"))
	suite.createTestExpense(expense(1, "Zoo", "2024-03-03"))

	r := suite.request(http.MethodGet, "/report/monthly", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	body := r.Body.String()
	suite.Assert().Contains(body, `"expense_categories":{"Zoo":2,"Apples":1}`)
}

func (suite *TestSuiteStandard) TestReportSuggestions() {
	tests := []struct {
		name     string
		income   float64
		expected []string
	}{
		{"1500", 1500, []string{"Consider investing in a diversified index fund", "Look into high-yield savings accounts for emergency fund"}},
		{"700", 700, []string{"Start building an emergency fund", "Consider low-risk investment options"}},
		{"200", 200, []string{"Focus on building emergency savings first"}},
		{"-50", -50, []string{"Review your expenses to increase savings", "Consider budgeting tools to track spending"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.setIncome(tt.income)
			suite.Assert().Equal(tt.expected, suite.getReport().InvestmentSuggestions)
		})
	}
}

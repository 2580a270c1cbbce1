package v1_test

import (
	"net/http"
	"os"
	"path/filepath"

	v1 "github.com/envelope-zero/tracker/internal/controllers/v1"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) listExpenses(query string) []models.Expense {
	r := suite.request(http.MethodGet, "/expenses"+query, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var list []models.Expense
	test.DecodeResponse(suite.T(), r, &list)
	return list
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	e := suite.createTestExpense(expense(12.34, "Groceries", "2024-03-02"))

	suite.Assert().NotEmpty(e.ID)
	suite.Assert().True(decimal.RequireFromString("12.34").Equal(e.Amount), "Amount is %s", e.Amount)
	suite.Assert().Equal("Groceries", e.Category)
	suite.Assert().Equal("2024-03-02", e.Date)
	suite.Assert().Equal("Groceries on 2024-03-02", e.Description)

	list := suite.listExpenses("")
	suite.Require().Len(list, 1)
	suite.Assert().Equal(e.ID, list[0].ID)
	suite.Assert().True(e.Amount.Equal(list[0].Amount))
}

func (suite *TestSuiteStandard) TestExpensesCreateUniqueIDs() {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		e := suite.createTestExpense(expense(1, "Coffee", "2024-03-01"))
		suite.Assert().NotEmpty(e.ID)
		suite.Assert().False(seen[e.ID], "ID %s was assigned twice", e.ID)
		seen[e.ID] = true
	}

	list := suite.listExpenses("")
	suite.Assert().Len(list, 10)
	for _, e := range list {
		suite.Assert().True(seen[e.ID])
	}
}

func (suite *TestSuiteStandard) TestExpensesCreateNegativeAmount() {
	e := suite.createTestExpense(expense(-20, "Refund", "2024-03-05"))
	suite.Assert().True(decimal.NewFromInt(-20).Equal(e.Amount))
}

func (suite *TestSuiteStandard) TestExpensesCreateIgnoresID() {
	body := expense(3, "Snacks", "2024-03-05")
	body["id"] = "chosen-by-client"

	e := suite.createTestExpense(body)
	suite.Assert().NotEqual("chosen-by-client", e.ID)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	missing := expense(5, "Books", "2024-03-10")
	delete(missing, "date")

	nullField := expense(5, "Books", "2024-03-10")
	nullField["category"] = nil

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{"amount": 5,`},
		{"Wrong type", `{"amount": 5, "category": 7, "date": "2024-03-10", "description": "x"}`},
		{"Amount not a number", `{"amount": "five", "category": "Books", "date": "2024-03-10", "description": "x"}`},
		{"Missing field", missing},
		{"Null field", nullField},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
		})
	}

	suite.Assert().Empty(suite.listExpenses(""), "Failed creations must not store anything")
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	e := suite.createTestExpense(expense(7.5, "Lunch", "2024-03-11"))

	r := suite.request(http.MethodGet, "/expenses/"+e.ID, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var got models.Expense
	test.DecodeResponse(suite.T(), r, &got)
	suite.Assert().Equal(e.ID, got.ID)
	suite.Assert().Equal(e.Description, got.Description)
}

func (suite *TestSuiteStandard) TestExpensesNotFound() {
	tests := []struct {
		method string
		body   any
	}{
		{http.MethodGet, nil},
		{http.MethodPut, map[string]any{"amount": 5}},
		{http.MethodPatch, map[string]any{"amount": 5}},
		{http.MethodDelete, nil},
		{http.MethodOptions, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.method, func() {
			r := suite.request(tt.method, "/expenses/does-not-exist", tt.body)
			test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(suite.T(), r, &response)
			suite.Assert().Equal(models.ErrResourceNotFound.Error(), response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdateNotFoundLeavesFileUntouched() {
	suite.createTestExpense(expense(1, "A", "2024-03-01"))

	path := filepath.Join(suite.dir, "expenses.json")
	before, err := os.ReadFile(path)
	suite.Require().Nil(err)

	r := suite.request(http.MethodPut, "/expenses/unknown", map[string]any{"category": "B"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	after, err := os.ReadFile(path)
	suite.Require().Nil(err)
	suite.Assert().Equal(string(before), string(after))
}

func (suite *TestSuiteStandard) TestExpensesUpdatePartial() {
	e := suite.createTestExpense(expense(10, "Transport", "2024-03-04"))

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		suite.Run(method, func() {
			r := suite.request(method, "/expenses/"+e.ID, map[string]any{
				"description": "Train ticket via " + method,
				"category":    nil,
			})
			test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

			var updated models.Expense
			test.DecodeResponse(suite.T(), r, &updated)

			suite.Assert().Equal(e.ID, updated.ID)
			suite.Assert().Equal("Train ticket via "+method, updated.Description)
			suite.Assert().Equal("Transport", updated.Category, "null values must not change the field")
			suite.Assert().Equal("2024-03-04", updated.Date)
			suite.Assert().True(decimal.NewFromInt(10).Equal(updated.Amount))
		})
	}

	list := suite.listExpenses("")
	suite.Require().Len(list, 1)
	suite.Assert().Equal("Train ticket via "+http.MethodPatch, list[0].Description)
}

func (suite *TestSuiteStandard) TestExpensesUpdateAllFields() {
	e := suite.createTestExpense(expense(10, "Transport", "2024-03-04"))

	r := suite.request(http.MethodPut, "/expenses/"+e.ID, expense(99.99, "Travel", "2024-02-28"))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), r, &updated)
	suite.Assert().True(decimal.RequireFromString("99.99").Equal(updated.Amount))
	suite.Assert().Equal("Travel", updated.Category)
	suite.Assert().Equal("2024-02-28", updated.Date)
}

func (suite *TestSuiteStandard) TestExpensesUpdateBrokenBody() {
	e := suite.createTestExpense(expense(10, "Transport", "2024-03-04"))

	r := suite.request(http.MethodPut, "/expenses/"+e.ID, `{"amount": [1]}`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	a := suite.createTestExpense(expense(1, "A", "2024-03-01"))
	b := suite.createTestExpense(expense(2, "B", "2024-03-02"))

	r := suite.request(http.MethodDelete, "/expenses/"+a.ID, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response v1.DeleteResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal("Expense deleted successfully", response.Message)

	list := suite.listExpenses("")
	suite.Require().Len(list, 1)
	suite.Assert().Equal(b.ID, list[0].ID)

	r = suite.request(http.MethodDelete, "/expenses/"+a.ID, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesListDateRange() {
	dates := []string{"2024-02-29", "2024-03-01", "2024-03-15", "2024-03-31", "2024-04-01", "2024-3-5"}
	for _, d := range dates {
		suite.createTestExpense(expense(1, "Any", d))
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"No filter", "", dates},
		{"Both bounds", "?start_date=2024-03-01&end_date=2024-03-31", []string{"2024-03-01", "2024-03-15", "2024-03-31"}},
		{"Start only", "?start_date=2024-03-31", []string{"2024-03-31", "2024-04-01", "2024-3-5"}},
		{"End only", "?end_date=2024-03-01", []string{"2024-02-29", "2024-03-01"}},
		{"Empty values", "?start_date=&end_date=", dates},
		{"Start after end", "?start_date=2024-04-01&end_date=2024-03-01", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got := []string{}
			for _, e := range suite.listExpenses(tt.query) {
				got = append(got, e.Date)
			}
			suite.Assert().Equal(tt.expected, got)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesListCategory() {
	suite.createTestExpense(expense(1, "Groceries", "2024-03-01"))
	suite.createTestExpense(expense(1, "Gas", "2024-03-02"))
	suite.createTestExpense(expense(1, "Rent", "2024-03-03"))

	tests := []struct {
		query    string
		expected []string
	}{
		{"?category=Rent", []string{"Rent"}},
		{"?category=G*", []string{"Groceries", "Gas"}},
		{"?category=*e*", []string{"Groceries", "Rent"}},
		{"?category=Food", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			got := []string{}
			for _, e := range suite.listExpenses(tt.query) {
				got = append(got, e.Category)
			}
			suite.Assert().Equal(tt.expected, got)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesListEmpty() {
	r := suite.request(http.MethodGet, "/expenses", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq("[]", r.Body.String())
}

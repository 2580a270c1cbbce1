package v1_test

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) getIncome() models.Income {
	r := suite.request(http.MethodGet, "/income", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var income models.Income
	test.DecodeResponse(suite.T(), r, &income)
	return income
}

func (suite *TestSuiteStandard) TestIncomeDefault() {
	income := suite.getIncome()

	suite.Assert().True(income.Amount.IsZero())
	suite.Assert().Equal("2024-03", income.Month)
}

func (suite *TestSuiteStandard) TestIncomeSet() {
	r := suite.request(http.MethodPut, "/income", map[string]any{"amount": 2500})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{"amount": 2500, "month": "2024-03"}`, r.Body.String())

	income := suite.getIncome()
	suite.Assert().True(decimal.NewFromInt(2500).Equal(income.Amount))
	suite.Assert().Equal("2024-03", income.Month)
}

func (suite *TestSuiteStandard) TestIncomeSetStampsCurrentMonth() {
	// An income stored in another month is moved to the current month
	err := os.WriteFile(filepath.Join(suite.dir, "income.json"), []byte(`{"amount": 100, "month": "2023-11"}`), 0o600)
	suite.Require().Nil(err)
	suite.Assert().Equal("2023-11", suite.getIncome().Month)

	r := suite.request(http.MethodPut, "/income", map[string]any{"amount": -50.5})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	income := suite.getIncome()
	suite.Assert().True(decimal.RequireFromString("-50.5").Equal(income.Amount))
	suite.Assert().Equal("2024-03", income.Month)
}

func (suite *TestSuiteStandard) TestIncomeSetFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Missing amount", map[string]any{"month": "2024-01"}},
		{"Null amount", map[string]any{"amount": nil}},
		{"Amount not a number", `{"amount": "lots"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPut, "/income", tt.body)
			test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
		})
	}

	suite.Assert().True(suite.getIncome().Amount.IsZero(), "Failed updates must not change the income")
}

func (suite *TestSuiteStandard) TestIncomeCorruptedFile() {
	err := os.WriteFile(filepath.Join(suite.dir, "income.json"), []byte(`{"amount": `), 0o600)
	suite.Require().Nil(err)

	income := suite.getIncome()
	suite.Assert().True(income.Amount.IsZero())
	suite.Assert().Equal("2024-03", income.Month)
}

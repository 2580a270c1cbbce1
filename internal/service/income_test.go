package service_test

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeDefault() {
	income := suite.income.Get()

	suite.Assert().True(income.Amount.IsZero())
	suite.Assert().Equal("2024-03", income.Month)
}

func (suite *TestSuiteStandard) TestIncomeSet() {
	suite.Require().Nil(suite.store.SaveIncome(models.Income{Amount: decimal.NewFromInt(10), Month: "2023-01"}))

	income, err := suite.income.Set(decimal.NewFromInt(2500))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(2500).Equal(income.Amount))
	suite.Assert().Equal("2024-03", income.Month, "month must be stamped with the current month")

	stored := suite.income.Get()
	suite.Assert().True(decimal.NewFromInt(2500).Equal(stored.Amount))
	suite.Assert().Equal("2024-03", stored.Month)
}

func (suite *TestSuiteStandard) TestIncomeSetNegative() {
	income, err := suite.income.Set(decimal.NewFromInt(-100))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(-100).Equal(income.Amount))
}

// Package service implements the operations on expenses, the income and
// the monthly report on top of the store.
package service

import (
	"github.com/envelope-zero/tracker/internal/models"
)

// ExpenseStore loads and updates the expense collection.
type ExpenseStore interface {
	LoadExpenses() []models.Expense
	UpdateExpenses(fn func([]models.Expense) ([]models.Expense, error)) error
}

// IncomeStore loads and updates the income record.
type IncomeStore interface {
	LoadIncome() models.Income
	UpdateIncome(fn func(models.Income) (models.Income, error)) error
}

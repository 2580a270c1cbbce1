package service

import (
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
)

// IncomeService reads and replaces the income record.
type IncomeService struct {
	store IncomeStore
	now   func() time.Time
}

// NewIncomeService returns an IncomeService. If now is nil, time.Now is used.
func NewIncomeService(store IncomeStore, now func() time.Time) IncomeService {
	if now == nil {
		now = time.Now
	}

	return IncomeService{
		store: store,
		now:   now,
	}
}

// Get returns the income as stored.
func (s IncomeService) Get() models.Income {
	return s.store.LoadIncome()
}

// Set replaces the income amount and stamps it with the current month.
func (s IncomeService) Set(amount decimal.Decimal) (models.Income, error) {
	var updated models.Income

	err := s.store.UpdateIncome(func(income models.Income) (models.Income, error) {
		income.Amount = amount
		income.Month = types.MonthOf(s.now()).String()
		updated = income
		return income, nil
	})
	if err != nil {
		return models.Income{}, err
	}

	return updated, nil
}

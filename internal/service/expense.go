package service

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// ExpenseFilter restricts the expenses returned by List.
//
// Empty fields do not filter.
type ExpenseFilter struct {
	StartDate string // Lexically smallest date to include
	EndDate   string // Lexically largest date to include
	Category  string // Glob pattern the category must match
}

// ExpenseService creates, updates, deletes and lists expenses.
type ExpenseService struct {
	store ExpenseStore
	newID uuid.Generator
}

// NewExpenseService returns an ExpenseService. If newID is nil,
// random UUIDs are used as IDs.
func NewExpenseService(store ExpenseStore, newID uuid.Generator) ExpenseService {
	if newID == nil {
		newID = uuid.NewString
	}

	return ExpenseService{
		store: store,
		newID: newID,
	}
}

func byID(id string) func(models.Expense) bool {
	return func(e models.Expense) bool {
		return e.ID == id
	}
}

// Create stores a new expense and returns it with its assigned ID.
func (s ExpenseService) Create(editable models.ExpenseEditable) (models.Expense, error) {
	var created models.Expense

	err := s.store.UpdateExpenses(func(expenses []models.Expense) ([]models.Expense, error) {
		id := s.newID()
		for id == "" || slices.ContainsFunc(expenses, byID(id)) {
			id = s.newID()
		}

		created = models.Expense{
			ID:              id,
			ExpenseEditable: editable,
		}
		return append(expenses, created), nil
	})
	if err != nil {
		return models.Expense{}, err
	}

	return created, nil
}

// Get returns the first expense with the ID.
func (s ExpenseService) Get(id string) (models.Expense, error) {
	expenses := s.store.LoadExpenses()

	i := slices.IndexFunc(expenses, byID(id))
	if i == -1 {
		return models.Expense{}, models.ErrResourceNotFound
	}

	return expenses[i], nil
}

// Update applies the patch to the first expense with the ID.
func (s ExpenseService) Update(id string, patch models.ExpensePatch) (models.Expense, error) {
	var updated models.Expense

	err := s.store.UpdateExpenses(func(expenses []models.Expense) ([]models.Expense, error) {
		i := slices.IndexFunc(expenses, byID(id))
		if i == -1 {
			return nil, models.ErrResourceNotFound
		}

		expenses[i] = patch.Apply(expenses[i])
		updated = expenses[i]
		return expenses, nil
	})
	if err != nil {
		return models.Expense{}, err
	}

	return updated, nil
}

// Delete removes the first expense with the ID.
func (s ExpenseService) Delete(id string) error {
	return s.store.UpdateExpenses(func(expenses []models.Expense) ([]models.Expense, error) {
		i := slices.IndexFunc(expenses, byID(id))
		if i == -1 {
			return nil, models.ErrResourceNotFound
		}

		return slices.Delete(expenses, i, i+1), nil
	})
}

// List returns all expenses matching the filter in stored order.
//
// Dates are compared as strings. This only gives calendar order for
// zero padded YYYY-MM-DD dates.
func (s ExpenseService) List(filter ExpenseFilter) []models.Expense {
	expenses := s.store.LoadExpenses()
	if filter == (ExpenseFilter{}) {
		return expenses
	}

	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.InDateRange(filter.StartDate, filter.EndDate) {
			continue
		}

		if filter.Category != "" && !glob.Glob(filter.Category, e.Category) {
			continue
		}

		filtered = append(filtered, e)
	}

	return filtered
}

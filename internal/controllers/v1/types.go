package v1

import "github.com/envelope-zero/tracker/internal/service"

type URIID struct {
	ID string `uri:"id" binding:"required"` // The ID of the expense
}

type ExpenseQueryFilter struct {
	StartDate string `form:"start_date" example:"2024-03-01"` // Only expenses on or after this date. Compared as text
	EndDate   string `form:"end_date" example:"2024-03-31"`   // Only expenses on or before this date. Compared as text
	Category  string `form:"category" example:"Groc*"`        // Glob pattern the category must match
}

type DeleteResponse struct {
	Message string `json:"message" example:"Expense deleted successfully"`
}

func (f ExpenseQueryFilter) model() service.ExpenseFilter {
	return service.ExpenseFilter{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Category:  f.Category,
	}
}

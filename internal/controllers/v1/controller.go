// Package v1 implements the HTTP handlers for expenses, income and the monthly report.
package v1

import (
	"github.com/envelope-zero/tracker/internal/service"
	"github.com/gin-gonic/gin"
)

// Controller holds the services the handlers operate on.
type Controller struct {
	Expenses service.ExpenseService
	Income   service.IncomeService
	Report   service.ReportService
}

// RegisterRoutes registers all expense, income and report routes
// with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterIncomeRoutes(r.Group("/income"))
	co.RegisterReportRoutes(r.Group("/report"))
}

package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PUT("/:id", co.UpdateExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	if _, err := co.Expenses.Get(uri.ID); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense. All fields are required
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Expense
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var patch models.ExpensePatch
	if err := httputil.BindData(c, &patch); err != nil {
		abort(c, err)
		return
	}

	editable, err := patch.Editable()
	if err != nil {
		abort(c, err)
		return
	}

	expense, err := co.Expenses.Create(editable)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		List expenses
// @Description	Returns all expenses in the order they were created, optionally filtered.
// @Description	Dates are compared as text, use zero padded YYYY-MM-DD dates.
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		models.Expense
// @Failure		400	{object}	httpError
// @Param			start_date	query	string	false	"Only expenses on or after this date"
// @Param			end_date	query	string	false	"Only expenses on or before this date"
// @Param			category	query	string	false	"Glob pattern the category must match"
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, co.Expenses.List(filter.model()))
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	expense, err := co.Expenses.Get(uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Update expense
// @Description	Updates an expense. Only values to be updated need to be specified, null values are ignored.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Expense
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string				true	"ID of the expense"
// @Param			expense	body		models.ExpensePatch	true	"Expense"
// @Router			/expenses/{id} [put]
// @Router			/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	var patch models.ExpensePatch
	if err := httputil.BindData(c, &patch); err != nil {
		abort(c, err)
		return
	}

	expense, err := co.Expenses.Update(uri.ID, patch)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	DeleteResponse
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	if err := co.Expenses.Delete(uri.ID); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Expense deleted successfully",
	})
}

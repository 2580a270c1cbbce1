package v1

import (
	"fmt"
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterIncomeRoutes registers the routes for the income with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsIncome)
	r.GET("", co.GetIncome)
	r.PUT("", co.SetIncome)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/income [options]
func (co Controller) OptionsIncome(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get income
// @Description	Returns the income as last set
// @Tags			Income
// @Produce		json
// @Success		200	{object}	models.Income
// @Router			/income [get]
func (co Controller) GetIncome(c *gin.Context) {
	c.JSON(http.StatusOK, co.Income.Get())
}

// @Summary		Set income
// @Description	Replaces the income amount. The month is always set to the current month.
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Income
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			income	body		models.IncomeEditable	true	"Income"
// @Router			/income [put]
func (co Controller) SetIncome(c *gin.Context) {
	var editable models.IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	amount, ok := editable.Amount.Get()
	if !ok {
		abort(c, fmt.Errorf("%w: amount", models.ErrFieldMissing))
		return
	}

	income, err := co.Income.Set(amount)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

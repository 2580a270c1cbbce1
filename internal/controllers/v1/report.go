package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", co.OptionsMonthlyReport)
	r.GET("/monthly", co.GetMonthlyReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/report/monthly [options]
func (co Controller) OptionsMonthlyReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Returns totals, a breakdown by category and savings suggestions for the current month.
// @Description	The income is used as last set, even if that was in another month.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	models.Report
// @Router			/report/monthly [get]
func (co Controller) GetMonthlyReport(c *gin.Context) {
	c.JSON(http.StatusOK, co.Report.Monthly())
}

package healthz

import (
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Checker reports whether a dependency of the backend is usable.
type Checker interface {
	Healthy() error
}

type Response struct {
	Error string `json:"error" example:"stat data: no such file or directory"` // The error that makes the backend unhealthy
}

func RegisterRoutes(r *gin.RouterGroup, checker Checker) {
	r.OPTIONS("", Options)
	r.GET("", Get(checker))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler for the health check.
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(checker Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := checker.Healthy()
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("healthz")
			c.JSON(http.StatusInternalServerError, Response{
				Error: err.Error(),
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

package v1

import (
	"net/http"

	"github.com/fundflow/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterCacheRoutes registers the routes for the period cache with
// the RouterGroup that is passed.
func (co Controller) RegisterCacheRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCache)
	r.DELETE("", co.DeleteCache)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cache
// @Success		204
// @Router			/v1/cache [options]
func OptionsCache(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Clear cache
// @Description	Drops the cached current periods of all users
// @Tags			Cache
// @Success		204
// @Router			/v1/cache [delete]
func (co Controller) DeleteCache(c *gin.Context) {
	co.Periods.ClearCache()
	log.Info().Str("request-id", requestid.Get(c)).Msg("period cache cleared")

	c.Status(http.StatusNoContent)
}

// Package v1 implements the v1 HTTP API.
package v1

import (
	"net/http"

	"github.com/fundflow/backend/internal/budget"
	"github.com/fundflow/backend/internal/httputil"
	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/periods"
	"github.com/fundflow/backend/internal/preferences"
	"github.com/gin-gonic/gin"
)

// Controller holds the services the handlers use.
type Controller struct {
	Preferences *preferences.Service
	Periods     *periods.Service
	Aggregator  *budget.Aggregator
	Planner     *budget.Planner
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterPreferenceRoutes(r.Group("/preferences"))
	co.RegisterPeriodRoutes(r.Group("/periods"))
	co.RegisterSummaryRoutes(r.Group("/summaries"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterCacheRoutes(r.Group("/cache"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Preferences string `json:"preferences" example:"https://example.com/api/v1/preferences"` // URL of the Preferences endpoint
	Periods     string `json:"periods" example:"https://example.com/api/v1/periods"`         // URL of the Period list endpoint
	Summaries   string `json:"summaries" example:"https://example.com/api/v1/summaries"`     // URL of the Summary endpoint
	Budgets     string `json:"budgets" example:"https://example.com/api/v1/budgets"`         // URL of the Budget endpoint
	Cache       string `json:"cache" example:"https://example.com/api/v1/cache"`             // URL of the Cache endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Preferences: url + "/v1/preferences",
			Periods:     url + "/v1/periods",
			Summaries:   url + "/v1/summaries",
			Budgets:     url + "/v1/budgets",
			Cache:       url + "/v1/cache",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

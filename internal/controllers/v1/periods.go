package v1

import (
	"net/http"

	"github.com/fundflow/backend/internal/httputil"
	"github.com/fundflow/backend/internal/period"
	"github.com/gin-gonic/gin"
)

type PeriodResponse struct {
	Data  *period.Descriptor `json:"data"`                                                      // The current period
	Error *string            `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

type PeriodListResponse struct {
	Data  []period.Descriptor `json:"data"`                                                      // All periods, most recent first
	Error *string             `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

// RegisterPeriodRoutes registers the routes for periods with
// the RouterGroup that is passed.
func (co Controller) RegisterPeriodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPeriods)
	r.GET("", co.GetPeriods)

	r.OPTIONS("/current", OptionsPeriods)
	r.GET("/current", co.GetCurrentPeriod)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Router			/v1/periods [options]
// @Router			/v1/periods/current [options]
func OptionsPeriods(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get current period
// @Description	Returns the budget period that contains today, following the preferences of the user
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Failure		500		{object}	PeriodResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/periods/current [get]
func (co Controller) GetCurrentPeriod(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{Error: &s})
		return
	}

	d, err := co.Periods.Current(c.Request.Context(), user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PeriodResponse{Data: &d})
}

// @Summary		Get periods
// @Description	Returns all budget periods from the first transaction of the user until today, most recent first. Users without transactions get the current period only.
// @Tags			Periods
// @Produce		json
// @Success		200		{object}	PeriodListResponse
// @Failure		400		{object}	PeriodListResponse
// @Failure		500		{object}	PeriodListResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/periods [get]
func (co Controller) GetPeriods(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodListResponse{Error: &s})
		return
	}

	list, err := co.Periods.List(c.Request.Context(), user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PeriodListResponse{Data: list})
}

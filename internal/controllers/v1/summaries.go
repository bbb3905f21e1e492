package v1

import (
	"net/http"

	"github.com/fundflow/backend/internal/budget"
	"github.com/fundflow/backend/internal/httputil"
	"github.com/fundflow/backend/internal/period"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SummaryResponse struct {
	Data  *budget.Summary `json:"data"`                                                      // Budget against spend for the period
	Error *string         `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummaries)
	r.GET("", co.GetSummary)

	r.OPTIONS("/legacy", OptionsSummaries)
	r.GET("/legacy", co.GetLegacySummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/summaries [options]
// @Router			/v1/summaries/legacy [options]
func OptionsSummaries(c *gin.Context) {
	httputil.OptionsGet(c)
}

// requestedRange returns the range from the query string or, if there is
// none, the current period of the user.
func (co Controller) requestedRange(c *gin.Context, user uuid.UUID) (period.DateRange, error) {
	r, ok, err := dateRange(c)
	if err != nil || ok {
		return r, err
	}

	return co.Periods.CurrentRange(c.Request.Context(), user)
}

// @Summary		Get summary
// @Description	Compares the budgets of a period with the paid expenses in it. Without start and end, the current period of the user is used.
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			start	query		string	false	"First day of the period, YYYY-MM-DD"
// @Param			end		query		string	false	"Last day of the period, YYYY-MM-DD"
// @Router			/v1/summaries [get]
func (co Controller) GetSummary(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	r, err := co.requestedRange(c, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	summary, err := co.Aggregator.Summary(c.Request.Context(), user, r)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Get legacy summary
// @Description	Compares the budget amounts set on subcategories with the paid expenses of the current calendar month
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/summaries/legacy [get]
func (co Controller) GetLegacySummary(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	summary, err := co.Aggregator.LegacySummary(c.Request.Context(), user, co.Periods.Today())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

package v1

import (
	"net/http"

	"github.com/fundflow/backend/internal/budget"
	"github.com/fundflow/backend/internal/httputil"
	"github.com/fundflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`                                                             // The budget
	Error *string        `json:"error" example:"the budgeted amount must not be negative"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`                                                      // Budgets of the period with their recorded actual amounts
	Error *string         `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgets)
	r.PUT("", co.SetBudget)

	r.OPTIONS("/snapshot", OptionsBudgetSnapshot)
	r.POST("/snapshot", co.CreateBudgetSnapshot)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/snapshot [options]
func OptionsBudgetSnapshot(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Set budget
// @Description	Sets the budget of a subcategory for a period. An existing budget for the same subcategory and period is updated.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		budget.SetBudgetInput	true	"Budget"
// @Router			/v1/budgets [put]
func (co Controller) SetBudget(c *gin.Context) {
	var in budget.SetBudgetInput
	err := httputil.BindData(c, &in)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	if in.UserID == uuid.Nil {
		s := errUserNotSet.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	b, err := co.Planner.SetBudget(c.Request.Context(), in)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &b})
}

// @Summary		Create budget snapshot
// @Description	Records the spend of every budgeted subcategory in the actual amount of its budget. Without start and end, the current period of the user is used.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			start	query		string	false	"First day of the period, YYYY-MM-DD"
// @Param			end		query		string	false	"Last day of the period, YYYY-MM-DD"
// @Router			/v1/budgets/snapshot [post]
func (co Controller) CreateBudgetSnapshot(c *gin.Context) {
	user, err := userID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	r, err := co.requestedRange(c, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	budgets, err := co.Planner.Snapshot(c.Request.Context(), user, r)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

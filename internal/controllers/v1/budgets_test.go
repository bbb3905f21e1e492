package v1_test

import (
	"net/http"

	v1 "github.com/fundflow/backend/internal/controllers/v1"
	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestSetBudget() {
	user := uuid.New()
	c := suite.createCategories(user)

	body := map[string]any{
		"userId":        user,
		"subcategoryId": c.groceries.ID,
		"periodStart":   "2025-07-25",
		"periodEnd":     "2025-08-24",
		"amount":        "400",
	}

	r := suite.request(http.MethodPut, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	id := response.Data.ID
	suite.Assert().Equal(models.PeriodTypeCustom, response.Data.PeriodType)
	suite.Assert().Equal("Groceries", response.Data.CategoryName)
	suite.Assert().Equal(c.living.ID, *response.Data.MainCategoryID)

	// A second PUT for the same period updates the budget
	body["amount"] = "450"
	r = suite.request(http.MethodPut, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(id, response.Data.ID)
	suite.Assert().Equal("450", response.Data.BudgetedAmount.String())
}

func (suite *TestSuiteStandard) TestSetBudgetErrors() {
	user := uuid.New()
	c := suite.createCategories(user)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		err    string
	}{
		{
			"Negative",
			map[string]any{"userId": user, "subcategoryId": c.groceries.ID, "periodStart": "2025-08-01", "periodEnd": "2025-08-31", "amount": "-1"},
			http.StatusBadRequest,
			"the budgeted amount must not be negative",
		},
		{
			"Inverted range",
			map[string]any{"userId": user, "subcategoryId": c.groceries.ID, "periodStart": "2025-08-31", "periodEnd": "2025-08-01", "amount": "1"},
			http.StatusBadRequest,
			"the start of a period must not be after its end",
		},
		{
			"Unknown subcategory",
			map[string]any{"userId": user, "subcategoryId": uuid.New(), "periodStart": "2025-08-01", "periodEnd": "2025-08-31", "amount": "1"},
			http.StatusNotFound,
			"there is no",
		},
		{
			"Other user",
			map[string]any{"userId": uuid.New(), "subcategoryId": c.groceries.ID, "periodStart": "2025-08-01", "periodEnd": "2025-08-31", "amount": "1"},
			http.StatusNotFound,
			"there is no",
		},
		{
			"Unknown period type",
			map[string]any{"userId": user, "subcategoryId": c.groceries.ID, "periodStart": "2025-08-01", "periodEnd": "2025-08-07", "periodType": "weekly", "amount": "1"},
			http.StatusBadRequest,
			"the period type must be 'monthly' or 'custom'",
		},
		{
			"Missing user",
			map[string]any{"subcategoryId": c.groceries.ID, "periodStart": "2025-08-01", "periodEnd": "2025-08-31", "amount": "1"},
			http.StatusBadRequest,
			"the user query parameter must be set",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPut, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), tt.status, &r)

			var response v1.BudgetResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Nil(response.Data)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetSnapshot() {
	user, c := suite.setupSpend()

	r := suite.request(http.MethodPost, "http://example.com/v1/budgets/snapshot?start=2025-08-01&end=2025-08-31&user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(c.groceries.ID, *response.Data[0].SubcategoryID)
	suite.Assert().Equal("125", response.Data[0].ActualAmount.String())

	var stored models.Budget
	suite.Require().Nil(models.DB.First(&stored, "id = ?", response.Data[0].ID).Error)
	suite.Assert().Equal("125", stored.ActualAmount.String())
}

func (suite *TestSuiteStandard) TestBudgetSnapshotCurrentPeriod() {
	user, _ := suite.setupSpend()

	r := suite.request(http.MethodPost, "http://example.com/v1/budgets/snapshot?user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("125", response.Data[0].ActualAmount.String())
}

func (suite *TestSuiteStandard) TestBudgetSnapshotErrors() {
	r := suite.request(http.MethodPost, "http://example.com/v1/budgets/snapshot", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = suite.request(http.MethodPost, "http://example.com/v1/budgets/snapshot?start=2025-08-01&user="+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	suite.CloseDB()
	r = suite.request(http.MethodPost, "http://example.com/v1/budgets/snapshot?user="+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}

package v1_test

import (
	"net/http"

	"github.com/fundflow/backend/internal/budget"
	v1 "github.com/fundflow/backend/internal/controllers/v1"
	"github.com/fundflow/backend/internal/types"
	"github.com/fundflow/backend/test"
	"github.com/google/uuid"
)

// setupSpend creates categories with a budget of 100 for August 2025 and
// spend of 125 on groceries plus a transfer that is not counted.
func (suite *TestSuiteStandard) setupSpend() (uuid.UUID, categories) {
	user := uuid.New()
	c := suite.createCategories(user)

	r := suite.request(http.MethodPut, "http://example.com/v1/budgets", map[string]any{
		"userId":        user,
		"subcategoryId": c.groceries.ID,
		"periodStart":   "2025-08-01",
		"periodEnd":     "2025-08-31",
		"amount":        "100",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	suite.spend(user, c.groceries.ID, types.NewDate(2025, 8, 3), 100)
	suite.spend(user, c.groceries.ID, types.NewDate(2025, 8, 5), 25)
	suite.spend(user, c.transfer.ID, types.NewDate(2025, 8, 5), 500)
	suite.spend(user, c.groceries.ID, types.NewDate(2025, 9, 1), 1000)

	return user, c
}

func (suite *TestSuiteStandard) assertAugustSummary(s budget.Summary, c categories) {
	suite.Assert().Equal("2025-08-01", s.Period.Start.String())
	suite.Assert().Equal("2025-08-31", s.Period.End.String())
	suite.Assert().Equal("100", s.TotalBudget.String())
	suite.Assert().Equal("125", s.TotalSpent.String())

	suite.Require().Len(s.Categories, 1)
	groceries := s.Categories[0]
	suite.Assert().Equal(c.groceries.ID, groceries.ID)
	suite.Assert().Equal("-25", groceries.Remaining.String())
	suite.Assert().Equal("125", groceries.Percentage.String())

	suite.Require().Len(s.MainCategories, 1)
	suite.Assert().Equal("Living", s.MainCategories[0].Name)
	suite.Assert().Equal([]uuid.UUID{c.groceries.ID}, s.MainCategories[0].Subcategories)
}

func (suite *TestSuiteStandard) TestSummary() {
	user, c := suite.setupSpend()

	r := suite.request(http.MethodGet, "http://example.com/v1/summaries?start=2025-08-01&end=2025-08-31&user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.assertAugustSummary(*response.Data, c)
}

func (suite *TestSuiteStandard) TestSummaryCurrentPeriod() {
	user, c := suite.setupSpend()

	r := suite.request(http.MethodGet, "http://example.com/v1/summaries?user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.assertAugustSummary(*response.Data, c)
}

func (suite *TestSuiteStandard) TestSummaryInvalidQuery() {
	user := uuid.New().String()

	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Only start", "start=2025-08-01", "start and end must either both be set or both be omitted"},
		{"Only end", "end=2025-08-31", "start and end must either both be set or both be omitted"},
		{"Inverted", "start=2025-08-31&end=2025-08-01", "the start of a period must not be after its end"},
		{"Broken date", "start=2025-13-01&end=2025-08-01", "the query string contains unparseable data"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "http://example.com/v1/summaries?user="+user+"&"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

			var response v1.SummaryResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestLegacySummary() {
	user, c := suite.setupSpend()

	r := suite.request(http.MethodGet, "http://example.com/v1/summaries/legacy?user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	s := response.Data
	suite.Assert().Equal("2025-08-01", s.Period.Start.String())
	suite.Assert().Equal("2025-08-31", s.Period.End.String())

	// The monthly amount of the subcategory is used, not the period budget
	suite.Assert().Equal("200", s.TotalBudget.String())
	suite.Assert().Equal("125", s.TotalSpent.String())
	suite.Require().Len(s.Categories, 1)
	suite.Assert().Equal(c.groceries.ID, s.Categories[0].ID)
	suite.Assert().Equal("62.5", s.Categories[0].Percentage.String())
}

func (suite *TestSuiteStandard) TestSummaryDatabaseError() {
	suite.CloseDB()

	for _, path := range []string{"/v1/summaries", "/v1/summaries/legacy"} {
		r := suite.request(http.MethodGet, "http://example.com"+path+"?start=2025-08-01&end=2025-08-31&user="+uuid.New().String(), nil)
		test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
	}
}

package v1_test

import (
	"net/http"

	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestDeleteCache() {
	user := uuid.New()

	r := suite.request(http.MethodGet, "http://example.com/v1/periods/current?user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	// Change the preferences behind the service's back
	suite.Require().Nil(models.DB.Exec(
		"UPDATE preferences SET custom_period_enabled = ?, start_day = ?, end_day = ? WHERE user_id = ?",
		true, 25, 24, user,
	).Error)

	r = suite.request(http.MethodGet, "http://example.com/v1/periods/current?user="+user.String(), nil)
	suite.Assert().Contains(r.Body.String(), `"start":"2025-08-01"`, "cached period was not returned")

	r = suite.request(http.MethodDelete, "http://example.com/v1/cache", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(http.MethodGet, "http://example.com/v1/periods/current?user="+user.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Contains(r.Body.String(), `"start":"2025-07-25"`)
}

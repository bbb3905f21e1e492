package v1

import (
	"github.com/fundflow/backend/internal/httputil"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	ff_uuid "github.com/fundflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueryUser struct {
	User ff_uuid.UUID `form:"user" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the user
}

// userID binds the user from the query string.
func userID(c *gin.Context) (uuid.UUID, error) {
	var q QueryUser
	if err := httputil.BindQuery(c, &q); err != nil {
		return uuid.Nil, err
	}

	if q.User == ff_uuid.Nil {
		return uuid.Nil, errUserNotSet
	}

	return q.User.UUID, nil
}

type QueryRange struct {
	Start types.Date `form:"start" swaggertype:"string" example:"2025-07-25"` // First day of the period, YYYY-MM-DD
	End   types.Date `form:"end" swaggertype:"string" example:"2025-08-24"`   // Last day of the period, YYYY-MM-DD
}

// dateRange binds start and end from the query string. If neither is set,
// ok is false.
func dateRange(c *gin.Context) (r period.DateRange, ok bool, err error) {
	var q QueryRange
	if err := httputil.BindQuery(c, &q); err != nil {
		return period.DateRange{}, false, err
	}

	if q.Start.IsZero() && q.End.IsZero() {
		return period.DateRange{}, false, nil
	}

	if q.Start.IsZero() || q.End.IsZero() {
		return period.DateRange{}, false, errRangeIncomplete
	}

	r, err = period.NewDateRange(q.Start, q.End)
	return r, err == nil, err
}

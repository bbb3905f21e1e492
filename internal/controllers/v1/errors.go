package v1

import (
	"errors"

	"github.com/fundflow/backend/internal/httperror"
)

var status = httperror.Status

var (
	errUserNotSet      = errors.New("the user query parameter must be set")
	errRangeIncomplete = errors.New("start and end must either both be set or both be omitted")
)

// Package uuid wraps github.com/google/uuid so that IDs can be bound
// from query strings and URIs by gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// From wraps a google/uuid UUID.
func From(u google_uuid.UUID) UUID {
	return UUID{u}
}

// UnmarshalParam implements gin's binding.BindUnmarshaler with the
// parsing rules of https://pkg.go.dev/github.com/google/uuid#Parse.
//
// The empty string parses to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}

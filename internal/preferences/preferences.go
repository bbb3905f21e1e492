// Package preferences loads and updates the period configuration of users.
package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/period"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store reads and writes preferences.
type Store interface {
	Preferences(ctx context.Context, userID uuid.UUID) (models.Preferences, error)
	CreatePreferences(ctx context.Context, p *models.Preferences) error
	SavePreferences(ctx context.Context, p *models.Preferences) error
}

// Invalidator drops values cached for a user.
type Invalidator interface {
	Delete(userID uuid.UUID)
}

// Patch contains the fields to change. nil fields are left as they are.
type Patch struct {
	CustomPeriodEnabled *bool `json:"customPeriodEnabled" example:"true"`
	StartDay            *int  `json:"startDay" example:"25"`
	EndDay              *int  `json:"endDay" example:"24"`
}

// Service manages preferences.
type Service struct {
	store       Store
	invalidator Invalidator
}

// NewService returns a Service. invalidator is called for every user whose
// preferences change.
func NewService(store Store, invalidator Invalidator) *Service {
	return &Service{
		store:       store,
		invalidator: invalidator,
	}
}

// Get returns the preferences of the user. If the user has none yet, the
// defaults are stored and returned.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (models.Preferences, error) {
	p, err := s.store.Preferences(ctx, userID)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Preferences{}, err
	}

	p = models.DefaultPreferences(userID)
	err = s.store.CreatePreferences(ctx, &p)

	// Another request created them in the meantime
	if errors.Is(err, models.ErrPreferencesExist) {
		return s.store.Preferences(ctx, userID)
	}

	if err != nil {
		return models.Preferences{}, err
	}

	log.Debug().Str("user", userID.String()).Msg("created default preferences")
	return p, nil
}

// Config returns the period configuration of the user.
func (s *Service) Config(ctx context.Context, userID uuid.UUID) (period.Config, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return period.Config{}, err
	}

	return p.Config(), nil
}

// Update applies the patch to the preferences of the user.
//
// Days outside of [1, 31] are rejected and nothing is written. On success,
// values cached for the user are dropped before Update returns.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, patch Patch) (models.Preferences, error) {
	if patch.StartDay != nil && !period.ValidDay(*patch.StartDay) {
		return models.Preferences{}, fmt.Errorf("%w: startDay is %d", period.ErrInvalidDay, *patch.StartDay)
	}

	if patch.EndDay != nil && !period.ValidDay(*patch.EndDay) {
		return models.Preferences{}, fmt.Errorf("%w: endDay is %d", period.ErrInvalidDay, *patch.EndDay)
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return models.Preferences{}, err
	}

	if patch.CustomPeriodEnabled != nil {
		p.CustomPeriodEnabled = *patch.CustomPeriodEnabled
	}

	if patch.StartDay != nil {
		p.StartDay = *patch.StartDay
	}

	if patch.EndDay != nil {
		p.EndDay = *patch.EndDay
	}

	err = s.store.SavePreferences(ctx, &p)
	if err != nil {
		return models.Preferences{}, err
	}

	if s.invalidator != nil {
		s.invalidator.Delete(userID)
	}

	log.Debug().Str("user", userID.String()).Interface("config", p.Config()).Msg("updated preferences")
	return p, nil
}

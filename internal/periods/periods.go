// Package periods answers which period is current for a user and which
// periods they have history in.
package periods

import (
	"context"
	"time"

	"github.com/fundflow/backend/internal/cache"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
)

// Preferences provides the period configuration of users.
type Preferences interface {
	Config(ctx context.Context, userID uuid.UUID) (period.Config, error)
}

// History provides the date of the first activity of users.
type History interface {
	EarliestTransactionDate(ctx context.Context, userID uuid.UUID) (*types.Date, error)
}

// Entry is the cached current period of a user.
type Entry struct {
	Day        types.Date // The day the period was resolved for
	Descriptor period.Descriptor
}

// Cache holds the current period per user.
type Cache = cache.TTL[uuid.UUID, Entry]

// NewCache returns an empty Cache.
func NewCache(ttl time.Duration, clock cache.Clock) *Cache {
	return cache.New[uuid.UUID, Entry]("current_period", ttl, clock)
}

// Service resolves periods for users.
type Service struct {
	preferences Preferences
	history     History
	cache       *Cache
	clock       cache.Clock
	location    *time.Location
}

// NewService returns a Service. The current day is determined with clock
// in location.
func NewService(preferences Preferences, history History, c *Cache, clock cache.Clock, location *time.Location) *Service {
	if clock == nil {
		clock = cache.SystemClock
	}

	if location == nil {
		location = time.UTC
	}

	return &Service{
		preferences: preferences,
		history:     history,
		cache:       c,
		clock:       clock,
		location:    location,
	}
}

// Today returns the current date.
func (s *Service) Today() types.Date {
	return types.DateOf(s.clock().In(s.location))
}

// Current returns the period that is active today for the user.
//
// Results are cached per user. A cached period is only used on the day it
// was resolved for.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (period.Descriptor, error) {
	today := s.Today()

	if e, ok := s.cache.Get(userID); ok && e.Day.Equal(today) {
		return e.Descriptor, nil
	}

	// Taken before reading the preferences so that an update in between
	// keeps the result out of the cache
	version := s.cache.Version(userID)

	cfg, err := s.preferences.Config(ctx, userID)
	if err != nil {
		return period.Descriptor{}, err
	}

	d := period.NewDescriptor(period.Resolve(today, cfg))
	s.cache.SetIfUnchanged(userID, Entry{Day: today, Descriptor: d}, version)

	return d, nil
}

// CurrentRange returns the range of the current period.
func (s *Service) CurrentRange(ctx context.Context, userID uuid.UUID) (period.DateRange, error) {
	d, err := s.Current(ctx, userID)
	return d.DateRange, err
}

// CurrentDescription returns the label of the current period.
func (s *Service) CurrentDescription(ctx context.Context, userID uuid.UUID) (string, error) {
	d, err := s.Current(ctx, userID)
	return d.Label, err
}

// List returns all periods from the first transaction of the user until
// today, most recent first. Without transactions, only the current period
// is returned.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]period.Descriptor, error) {
	earliest, err := s.history.EarliestTransactionDate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.preferences.Config(ctx, userID)
	if err != nil {
		return nil, err
	}

	periods := period.Enumerate(earliest, s.Today(), cfg)
	if len(periods) > 0 {
		return periods, nil
	}

	current, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	return []period.Descriptor{current}, nil
}

// ClearCache drops the cached periods of all users.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

package main

import (
	"github.com/fundflow/backend/internal/budget"
	"github.com/fundflow/backend/internal/cache"
	"github.com/fundflow/backend/internal/config"
	v1 "github.com/fundflow/backend/internal/controllers/v1"
	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/periods"
	"github.com/fundflow/backend/internal/preferences"
	"github.com/fundflow/backend/internal/store"
)

// newController builds the services on top of the connected database.
func newController(cfg config.Config, clock cache.Clock) (v1.Controller, error) {
	location, err := cfg.Location()
	if err != nil {
		return v1.Controller{}, err
	}

	ids, err := cfg.TransferIDs()
	if err != nil {
		return v1.Controller{}, err
	}

	s := store.New(models.DB)
	c := periods.NewCache(cfg.CacheTTL, clock)
	prefs := preferences.NewService(s, c)
	aggregator := budget.NewAggregator(s, budget.NewExclusions(ids, cfg.TransferCategoryPatterns))

	return v1.Controller{
		Preferences: prefs,
		Periods:     periods.NewService(prefs, s, c, clock, location),
		Aggregator:  aggregator,
		Planner:     budget.NewPlanner(s, aggregator),
	}, nil
}

package models

import (
	"github.com/fundflow/backend/internal/period"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preferences holds the period configuration of a user.
type Preferences struct {
	UserID uuid.UUID `json:"userId" gorm:"primaryKey" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the user the preferences belong to
	Timestamps
	CustomPeriodEnabled bool `json:"customPeriodEnabled" example:"true"` // Use the start and end day instead of calendar months
	StartDay            int  `json:"startDay" example:"25"`              // Day of the month on which a period starts
	EndDay              int  `json:"endDay" example:"24"`                // Day of the month on which a period ends
}

func (Preferences) TableName() string {
	return "preferences"
}

// DefaultPreferences returns the preferences a user starts with.
func DefaultPreferences(userID uuid.UUID) Preferences {
	cfg := period.DefaultConfig()

	return Preferences{
		UserID:              userID,
		CustomPeriodEnabled: cfg.CustomPeriodEnabled,
		StartDay:            cfg.StartDay,
		EndDay:              cfg.EndDay,
	}
}

// Config returns the period configuration.
func (p Preferences) Config() period.Config {
	return period.Config{
		CustomPeriodEnabled: p.CustomPeriodEnabled,
		StartDay:            p.StartDay,
		EndDay:              p.EndDay,
	}
}

func (p *Preferences) AfterFind(_ *gorm.DB) error {
	p.utc()
	return nil
}

// BeforeSave refuses days outside of [1, 31].
func (p *Preferences) BeforeSave(_ *gorm.DB) error {
	return p.Config().Validate()
}

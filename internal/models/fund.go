package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fund is a place money is kept in, e.g. a bank account or a wallet.
type Fund struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:fund_user_name" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Name   string    `json:"name" gorm:"uniqueIndex:fund_user_name" example:"Checking"`
	Note   string    `json:"note" example:"Main account at the local bank"`
}

func (f *Fund) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Note = strings.TrimSpace(f.Note)
	return nil
}

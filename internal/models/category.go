package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryType is the direction of money a category is used for.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Well known categories for money moved between the funds of a user.
// Transactions in these never count as income or expense.
var (
	TransferInCategoryID  = uuid.MustParse("6e0c5a9e-2f43-4b8e-9d2a-7c1f0b3e8a01")
	TransferOutCategoryID = uuid.MustParse("6e0c5a9e-2f43-4b8e-9d2a-7c1f0b3e8a02")

	TransferCategoryIDs = []uuid.UUID{TransferInCategoryID, TransferOutCategoryID}
)

// MainCategory is the top level of the category hierarchy.
type MainCategory struct {
	DefaultModel
	UserID uuid.UUID    `json:"userId" gorm:"uniqueIndex:main_category_user_name" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Type   CategoryType `json:"type" gorm:"index" example:"expense"`
	Name   string       `json:"name" gorm:"uniqueIndex:main_category_user_name" example:"Living"`
	Active bool         `json:"active" example:"true"`
}

func (m *MainCategory) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)

	if !m.Type.Valid() {
		return ErrInvalidCategoryType
	}

	return nil
}

// Subcategory belongs to a main category and inherits its type.
type Subcategory struct {
	DefaultModel
	UserID         uuid.UUID       `json:"userId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	MainCategoryID uuid.UUID       `json:"mainCategoryId" gorm:"uniqueIndex:subcategory_main_category_name" example:"d0c7e0a5-1ca4-4e0b-8c6a-c8d4d2b3e4f5"`
	MainCategory   MainCategory    `json:"-"`
	Name           string          `json:"name" gorm:"uniqueIndex:subcategory_main_category_name" example:"Groceries"`
	Active         bool            `json:"active" example:"true"`
	BudgetAmount   decimal.Decimal `json:"budgetAmount" gorm:"type:DECIMAL(20,8)" example:"400"` // Monthly budget used by the legacy summary
}

func (s *Subcategory) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}

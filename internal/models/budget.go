package models

import (
	"strings"

	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PeriodType tells if a budget was set for a calendar month or a custom period.
type PeriodType string

const (
	PeriodTypeMonthly PeriodType = "monthly"
	PeriodTypeCustom  PeriodType = "custom"
)

func (t PeriodType) Valid() bool {
	return t == PeriodTypeMonthly || t == PeriodTypeCustom
}

// Budget is the amount planned for a subcategory in one period.
type Budget struct {
	DefaultModel
	UserID         uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_subcategory_period" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	SubcategoryID  *uuid.UUID      `json:"subcategoryId" gorm:"uniqueIndex:budget_subcategory_period" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	PeriodStart    types.Date      `json:"periodStart" gorm:"uniqueIndex:budget_subcategory_period" swaggertype:"string" example:"2025-07-25"`
	PeriodEnd      types.Date      `json:"periodEnd" gorm:"uniqueIndex:budget_subcategory_period" swaggertype:"string" example:"2025-08-24"`
	PeriodType     PeriodType      `json:"periodType" example:"custom"`
	MainCategoryID *uuid.UUID      `json:"mainCategoryId" example:"d0c7e0a5-1ca4-4e0b-8c6a-c8d4d2b3e4f5"`
	CategoryName   string          `json:"categoryName" example:"Groceries"`
	CategoryType   CategoryType    `json:"categoryType" gorm:"index" example:"expense"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount" gorm:"type:DECIMAL(20,8)" example:"400"`
	ActualAmount   decimal.Decimal `json:"actualAmount" gorm:"type:DECIMAL(20,8)" example:"389.17"` // Spent amount recorded by the last snapshot
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.CategoryName = strings.TrimSpace(b.CategoryName)

	if !b.CategoryType.Valid() {
		return ErrInvalidCategoryType
	}

	if !b.PeriodType.Valid() {
		return ErrInvalidPeriodType
	}

	return nil
}

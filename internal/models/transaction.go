package models

import (
	"strings"

	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionStatusPaid   TransactionStatus = "paid"
	TransactionStatusUnpaid TransactionStatus = "unpaid"
)

// Transaction is money coming in or going out.
//
// CategoryID is either a subcategory or a main category. It is not a
// foreign key since transfers use well known IDs without a category row.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID         `json:"userId" gorm:"index:transaction_user_date" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	FundID     *uuid.UUID        `json:"fundId" example:"0a3c7f6d-0e93-4f4b-9f27-5b4f4ad1f0a3"`
	CategoryID uuid.UUID         `json:"categoryId" gorm:"index" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	Type       CategoryType      `json:"type" example:"expense"`
	Amount     decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Date       types.Date        `json:"date" gorm:"index:transaction_user_date" swaggertype:"string" example:"2025-08-03"`
	Status     TransactionStatus `json:"status" example:"paid"`
	Note       string            `json:"note" example:"Weekly shopping"`
}

// BeforeSave
//   - trims whitespace from the note
//   - ensures that type and status are set to valid values
//   - refuses negative amounts
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if !t.Type.Valid() {
		return ErrInvalidCategoryType
	}

	if t.Status != TransactionStatusPaid && t.Status != TransactionStatusUnpaid {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	return nil
}

package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrPreferencesExist          = errors.New("preferences for this user already exist")
	ErrFundNameNotUnique         = errors.New("the fund name must be unique for the user")
	ErrMainCategoryNameNotUnique = errors.New("the main category name must be unique for the user")
	ErrSubcategoryNameNotUnique  = errors.New("the subcategory name must be unique for the main category")
	ErrBudgetNotUnique           = errors.New("there already is a budget for this subcategory and period")
)

var (
	ErrInvalidCategoryType       = errors.New("the category type must be 'income' or 'expense'")
	ErrInvalidTransactionStatus  = errors.New("the transaction status must be 'paid' or 'unpaid'")
	ErrInvalidPeriodType         = errors.New("the period type must be 'monthly' or 'custom'")
	ErrTransactionAmountNegative = errors.New("the transaction amount must not be negative")
)

// Package store implements the queries and commands of the services on
// top of gorm.
package store

import (
	"context"
	"errors"

	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store reads and writes models in a gorm database.
type Store struct {
	db *gorm.DB
}

// New returns a Store using db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Preferences returns the preferences of a user.
func (s *Store) Preferences(ctx context.Context, userID uuid.UUID) (models.Preferences, error) {
	var p models.Preferences
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	return p, err
}

// CreatePreferences inserts new preferences.
func (s *Store) CreatePreferences(ctx context.Context, p *models.Preferences) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// SavePreferences updates all fields of existing preferences.
func (s *Store) SavePreferences(ctx context.Context, p *models.Preferences) error {
	return s.db.WithContext(ctx).Model(p).Select("CustomPeriodEnabled", "StartDay", "EndDay").Updates(p).Error
}

// EarliestTransactionDate returns the date of the oldest transaction of
// the user, or nil if there is none.
func (s *Store) EarliestTransactionDate(ctx context.Context, userID uuid.UUID) (*types.Date, error) {
	var t models.Transaction
	err := s.db.WithContext(ctx).
		Select("date").
		Where("user_id = ?", userID).
		Order("date").
		Take(&t).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &t.Date, nil
}

// ActiveSubcategories returns all active subcategories of the user.
func (s *Store) ActiveSubcategories(ctx context.Context, userID uuid.UUID) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("name, id").
		Find(&subcategories).Error

	return subcategories, err
}

// ActiveMainCategories returns all active main categories of the user
// with the given type.
func (s *Store) ActiveMainCategories(ctx context.Context, userID uuid.UUID, t models.CategoryType) ([]models.MainCategory, error) {
	var mainCategories []models.MainCategory
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND active = ?", userID, t, true).
		Order("name, id").
		Find(&mainCategories).Error

	return mainCategories, err
}

// Budgets returns the budgets of the user for exactly the period r.
func (s *Store) Budgets(ctx context.Context, userID uuid.UUID, r period.DateRange, t models.CategoryType) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND period_start = ? AND period_end = ? AND category_type = ?", userID, r.Start, r.End, t).
		Order("category_name, id").
		Find(&budgets).Error

	return budgets, err
}

// Transactions returns the transactions of the user with the given type
// and status that are dated within r.
func (s *Store) Transactions(ctx context.Context, userID uuid.UUID, t models.CategoryType, status models.TransactionStatus, r period.DateRange) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND status = ?", userID, t, status).
		Where("date >= ? AND date <= ?", r.Start, r.End).
		Order("date, id").
		Find(&transactions).Error

	return transactions, err
}

// Subcategory returns a subcategory of the user together with its main
// category.
func (s *Store) Subcategory(ctx context.Context, userID, id uuid.UUID) (models.Subcategory, error) {
	var subcategory models.Subcategory
	err := s.db.WithContext(ctx).
		Preload("MainCategory").
		Where("user_id = ?", userID).
		First(&subcategory, "id = ?", id).Error

	return subcategory, err
}

// UpsertBudget creates the budget or, if there already is one for the
// same user, subcategory and period, updates it. b is updated to the
// stored row.
func (s *Store) UpsertBudget(ctx context.Context, b *models.Budget) error {
	db := s.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "subcategory_id"}, {Name: "period_start"}, {Name: "period_end"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"period_type",
			"main_category_id",
			"category_name",
			"category_type",
			"budgeted_amount",
			"updated_at",
		}),
	}).Create(b).Error
	if err != nil {
		return err
	}

	// On conflict, b still carries the ID generated for the insert
	var stored models.Budget
	err = db.
		Where("user_id = ? AND subcategory_id = ? AND period_start = ? AND period_end = ?", b.UserID, b.SubcategoryID, b.PeriodStart, b.PeriodEnd).
		First(&stored).Error
	if err != nil {
		return err
	}

	*b = stored
	return nil
}

// SetActualAmount records the spent amount of a budget.
func (s *Store) SetActualAmount(ctx context.Context, budgetID uuid.UUID, amount decimal.Decimal) error {
	// Hooks would validate the empty model instead of the stored row
	return s.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Budget{}).
		Where("id = ?", budgetID).
		Update("actual_amount", amount).Error
}

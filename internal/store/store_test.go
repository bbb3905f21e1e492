package store_test

import (
	"context"

	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createMainCategory(m models.MainCategory) models.MainCategory {
	if m.Type == "" {
		m.Type = models.CategoryTypeExpense
	}
	suite.Require().Nil(models.DB.Create(&m).Error)
	return m
}

func (suite *TestSuiteStandard) createSubcategory(s models.Subcategory) models.Subcategory {
	suite.Require().Nil(models.DB.Create(&s).Error)
	return s
}

func (suite *TestSuiteStandard) createTransaction(t models.Transaction) models.Transaction {
	if t.Type == "" {
		t.Type = models.CategoryTypeExpense
	}
	if t.Status == "" {
		t.Status = models.TransactionStatusPaid
	}
	suite.Require().Nil(models.DB.Create(&t).Error)
	return t
}

func (suite *TestSuiteStandard) TestPreferences() {
	ctx := context.Background()
	userID := uuid.New()

	_, err := suite.store.Preferences(ctx, userID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	p := models.DefaultPreferences(userID)
	suite.Require().Nil(suite.store.CreatePreferences(ctx, &p))

	p.CustomPeriodEnabled = true
	p.StartDay = 25
	p.EndDay = 24
	suite.Require().Nil(suite.store.SavePreferences(ctx, &p))

	read, err := suite.store.Preferences(ctx, userID)
	suite.Require().Nil(err)
	suite.Assert().Equal(period.Config{CustomPeriodEnabled: true, StartDay: 25, EndDay: 24}, read.Config())

	// Disabling must be written even though false is the zero value
	read.CustomPeriodEnabled = false
	suite.Require().Nil(suite.store.SavePreferences(ctx, &read))

	read, err = suite.store.Preferences(ctx, userID)
	suite.Require().Nil(err)
	suite.Assert().False(read.CustomPeriodEnabled)
}

func (suite *TestSuiteStandard) TestEarliestTransactionDate() {
	ctx := context.Background()
	userID := uuid.New()

	earliest, err := suite.store.EarliestTransactionDate(ctx, userID)
	suite.Require().Nil(err)
	suite.Assert().Nil(earliest)

	suite.createTransaction(models.Transaction{UserID: userID, CategoryID: uuid.New(), Date: types.NewDate(2025, 3, 4)})
	suite.createTransaction(models.Transaction{UserID: userID, CategoryID: uuid.New(), Date: types.NewDate(2024, 12, 30)})
	suite.createTransaction(models.Transaction{UserID: uuid.New(), CategoryID: uuid.New(), Date: types.NewDate(2020, 1, 1)})

	earliest, err = suite.store.EarliestTransactionDate(ctx, userID)
	suite.Require().Nil(err)
	suite.Require().NotNil(earliest)
	suite.Assert().Equal("2024-12-30", earliest.String())
}

func (suite *TestSuiteStandard) TestActiveCategories() {
	ctx := context.Background()
	userID := uuid.New()

	living := suite.createMainCategory(models.MainCategory{UserID: userID, Name: "Living", Active: true})
	_ = suite.createMainCategory(models.MainCategory{UserID: userID, Name: "Old", Active: false})
	_ = suite.createMainCategory(models.MainCategory{UserID: userID, Name: "Salary", Type: models.CategoryTypeIncome, Active: true})
	_ = suite.createMainCategory(models.MainCategory{UserID: uuid.New(), Name: "Living", Active: true})

	suite.createSubcategory(models.Subcategory{UserID: userID, MainCategoryID: living.ID, Name: "Rent", Active: true})
	suite.createSubcategory(models.Subcategory{UserID: userID, MainCategoryID: living.ID, Name: "Groceries", Active: true})
	suite.createSubcategory(models.Subcategory{UserID: userID, MainCategoryID: living.ID, Name: "Phone", Active: false})

	mainCategories, err := suite.store.ActiveMainCategories(ctx, userID, models.CategoryTypeExpense)
	suite.Require().Nil(err)
	suite.Require().Len(mainCategories, 1)
	suite.Assert().Equal(living.ID, mainCategories[0].ID)

	subcategories, err := suite.store.ActiveSubcategories(ctx, userID)
	suite.Require().Nil(err)
	suite.Require().Len(subcategories, 2)
	suite.Assert().Equal("Groceries", subcategories[0].Name)
	suite.Assert().Equal("Rent", subcategories[1].Name)
}

func (suite *TestSuiteStandard) TestTransactionsInRange() {
	ctx := context.Background()
	userID := uuid.New()
	category := uuid.New()

	for _, d := range []types.Date{
		types.NewDate(2025, 7, 24),
		types.NewDate(2025, 7, 25),
		types.NewDate(2025, 8, 10),
		types.NewDate(2025, 8, 24),
		types.NewDate(2025, 8, 25),
	} {
		suite.createTransaction(models.Transaction{UserID: userID, CategoryID: category, Date: d, Amount: decimal.NewFromInt(1)})
	}
	suite.createTransaction(models.Transaction{UserID: userID, CategoryID: category, Date: types.NewDate(2025, 8, 1), Status: models.TransactionStatusUnpaid})
	suite.createTransaction(models.Transaction{UserID: userID, CategoryID: category, Date: types.NewDate(2025, 8, 1), Type: models.CategoryTypeIncome})

	r := period.DateRange{Start: types.NewDate(2025, 7, 25), End: types.NewDate(2025, 8, 24)}
	transactions, err := suite.store.Transactions(ctx, userID, models.CategoryTypeExpense, models.TransactionStatusPaid, r)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 3)
	suite.Assert().Equal("2025-07-25", transactions[0].Date.String())
	suite.Assert().Equal("2025-08-24", transactions[2].Date.String())
}

func (suite *TestSuiteStandard) TestUpsertBudget() {
	ctx := context.Background()
	userID := uuid.New()
	subcategoryID := uuid.New()
	r := period.DateRange{Start: types.NewDate(2025, 7, 25), End: types.NewDate(2025, 8, 24)}

	b := models.Budget{
		UserID:         userID,
		SubcategoryID:  &subcategoryID,
		PeriodStart:    r.Start,
		PeriodEnd:      r.End,
		PeriodType:     models.PeriodTypeCustom,
		CategoryName:   "Groceries",
		CategoryType:   models.CategoryTypeExpense,
		BudgetedAmount: decimal.NewFromInt(400),
	}
	suite.Require().Nil(suite.store.UpsertBudget(ctx, &b))
	id := b.ID

	update := b
	update.ID = uuid.Nil
	update.BudgetedAmount = decimal.NewFromInt(500)
	suite.Require().Nil(suite.store.UpsertBudget(ctx, &update))

	suite.Assert().Equal(id, update.ID, "upsert created a second budget")
	suite.Assert().True(decimal.NewFromInt(500).Equal(update.BudgetedAmount))

	budgets, err := suite.store.Budgets(ctx, userID, r, models.CategoryTypeExpense)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)

	suite.Require().Nil(suite.store.SetActualAmount(ctx, id, decimal.NewFromInt(123)))
	budgets, err = suite.store.Budgets(ctx, userID, r, models.CategoryTypeExpense)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(123).Equal(budgets[0].ActualAmount))
	suite.Assert().True(decimal.NewFromInt(500).Equal(budgets[0].BudgetedAmount))
}

func (suite *TestSuiteStandard) TestSubcategoryOfOtherUser() {
	ctx := context.Background()
	userID := uuid.New()

	living := suite.createMainCategory(models.MainCategory{UserID: userID, Name: "Living", Active: true})
	rent := suite.createSubcategory(models.Subcategory{UserID: userID, MainCategoryID: living.ID, Name: "Rent", Active: true})

	s, err := suite.store.Subcategory(ctx, userID, rent.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Living", s.MainCategory.Name)

	_, err = suite.store.Subcategory(ctx, uuid.New(), rent.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	ctx := context.Background()
	suite.CloseDB()

	_, err := suite.store.ActiveSubcategories(ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.EarliestTransactionDate(ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

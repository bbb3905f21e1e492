package budget_test

import (
	"context"

	"github.com/fundflow/backend/internal/budget"
	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categories struct {
	userID    uuid.UUID
	living    models.MainCategory
	groceries models.Subcategory
	rent      models.Subcategory
	transfer  models.Subcategory
}

func (suite *TestSuiteStandard) createCategories() categories {
	c := categories{userID: uuid.New()}

	c.living = models.MainCategory{UserID: c.userID, Name: "Living", Type: models.CategoryTypeExpense, Active: true}
	suite.Require().Nil(models.DB.Create(&c.living).Error)

	for _, s := range []*models.Subcategory{&c.groceries, &c.rent, &c.transfer} {
		s.UserID = c.userID
		s.MainCategoryID = c.living.ID
		s.Active = true
	}
	c.groceries.Name = "Groceries"
	c.rent.Name = "Rent"
	c.transfer.Name = "Transfer to savings"

	for _, s := range []*models.Subcategory{&c.groceries, &c.rent, &c.transfer} {
		suite.Require().Nil(models.DB.Create(s).Error)
	}

	return c
}

func (suite *TestSuiteStandard) spend(userID, categoryID uuid.UUID, date types.Date, amount int64) {
	suite.Require().Nil(models.DB.Create(&models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Type:       models.CategoryTypeExpense,
		Status:     models.TransactionStatusPaid,
		Date:       date,
		Amount:     decimal.NewFromInt(amount),
	}).Error)
}

func (suite *TestSuiteStandard) TestSetBudget() {
	c := suite.createCategories()

	b, err := suite.planner.SetBudget(context.Background(), budget.SetBudgetInput{
		UserID:        c.userID,
		SubcategoryID: c.groceries.ID,
		PeriodStart:   types.NewDate(2025, 7, 25),
		PeriodEnd:     types.NewDate(2025, 8, 24),
		Amount:        decimal.NewFromInt(400),
	})
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, b.ID)
	suite.Assert().Equal(models.PeriodTypeCustom, b.PeriodType)
	suite.Assert().Equal("Groceries", b.CategoryName)
	suite.Assert().Equal(models.CategoryTypeExpense, b.CategoryType)
	suite.Require().NotNil(b.MainCategoryID)
	suite.Assert().Equal(c.living.ID, *b.MainCategoryID)

	// Setting it again updates the same budget
	again, err := suite.planner.SetBudget(context.Background(), budget.SetBudgetInput{
		UserID:        c.userID,
		SubcategoryID: c.groceries.ID,
		PeriodStart:   types.NewDate(2025, 7, 25),
		PeriodEnd:     types.NewDate(2025, 8, 24),
		Amount:        decimal.NewFromInt(450),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(b.ID, again.ID)
	suite.Assert().True(decimal.NewFromInt(450).Equal(again.BudgetedAmount))
}

func (suite *TestSuiteStandard) TestSetBudgetCalendarMonth() {
	c := suite.createCategories()

	b, err := suite.planner.SetBudget(context.Background(), budget.SetBudgetInput{
		UserID:        c.userID,
		SubcategoryID: c.rent.ID,
		PeriodStart:   types.NewDate(2025, 2, 1),
		PeriodEnd:     types.NewDate(2025, 2, 28),
		Amount:        decimal.NewFromInt(900),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.PeriodTypeMonthly, b.PeriodType)
}

func (suite *TestSuiteStandard) TestSetBudgetErrors() {
	c := suite.createCategories()
	valid := budget.SetBudgetInput{
		UserID:        c.userID,
		SubcategoryID: c.groceries.ID,
		PeriodStart:   types.NewDate(2025, 7, 25),
		PeriodEnd:     types.NewDate(2025, 8, 24),
		Amount:        decimal.NewFromInt(400),
	}

	in := valid
	in.Amount = decimal.NewFromInt(-1)
	_, err := suite.planner.SetBudget(context.Background(), in)
	suite.Assert().ErrorIs(err, budget.ErrNegativeBudget)

	in = valid
	in.PeriodStart, in.PeriodEnd = in.PeriodEnd, in.PeriodStart
	_, err = suite.planner.SetBudget(context.Background(), in)
	suite.Assert().ErrorIs(err, period.ErrInvalidRange)

	in = valid
	in.UserID = uuid.New()
	_, err = suite.planner.SetBudget(context.Background(), in)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	in = valid
	in.SubcategoryID = uuid.New()
	_, err = suite.planner.SetBudget(context.Background(), in)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	in = valid
	in.PeriodType = "weekly"
	_, err = suite.planner.SetBudget(context.Background(), in)
	suite.Assert().ErrorIs(err, models.ErrInvalidPeriodType)
}

func (suite *TestSuiteStandard) TestSnapshot() {
	c := suite.createCategories()
	ctx := context.Background()
	r := period.DateRange{Start: types.NewDate(2025, 7, 25), End: types.NewDate(2025, 8, 24)}

	for _, s := range []models.Subcategory{c.groceries, c.rent} {
		_, err := suite.planner.SetBudget(ctx, budget.SetBudgetInput{
			UserID:        c.userID,
			SubcategoryID: s.ID,
			PeriodStart:   r.Start,
			PeriodEnd:     r.End,
			Amount:        decimal.NewFromInt(1_000_000),
		})
		suite.Require().Nil(err)
	}

	suite.spend(c.userID, c.groceries.ID, types.NewDate(2025, 7, 25), 1_000_000)
	suite.spend(c.userID, c.groceries.ID, types.NewDate(2025, 8, 24), 250_000)
	suite.spend(c.userID, c.groceries.ID, types.NewDate(2025, 8, 25), 99)
	suite.spend(c.userID, c.transfer.ID, types.NewDate(2025, 8, 1), 5_000)

	budgets, err := suite.planner.Snapshot(ctx, c.userID, r)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)

	actual := make(map[string]string, len(budgets))
	for _, b := range budgets {
		actual[b.CategoryName] = b.ActualAmount.String()
	}
	suite.Assert().Equal(map[string]string{"Groceries": "1250000", "Rent": "0"}, actual)

	stored, err := suite.store.Budgets(ctx, c.userID, r, models.CategoryTypeExpense)
	suite.Require().Nil(err)
	for _, b := range stored {
		suite.Assert().Equal(actual[b.CategoryName], b.ActualAmount.String(), "snapshot of %s was not stored", b.CategoryName)
	}

	// The summary of the period shows the same spend
	s, err := budget.NewAggregator(suite.store, budget.NewExclusions(nil, []string{"transfer*"})).Summary(ctx, c.userID, r)
	suite.Require().Nil(err)
	suite.Assert().Equal("1250000", s.TotalSpent.String())
	suite.Assert().Equal("2000000", s.TotalBudget.String())
}

func (suite *TestSuiteStandard) TestSnapshotInvalidRange() {
	_, err := suite.planner.Snapshot(context.Background(), uuid.New(), period.DateRange{
		Start: types.NewDate(2025, 8, 2),
		End:   types.NewDate(2025, 8, 1),
	})
	suite.Assert().ErrorIs(err, period.ErrInvalidRange)
}

func (suite *TestSuiteStandard) TestSnapshotDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.planner.Snapshot(context.Background(), uuid.New(), period.DateRange{
		Start: types.NewDate(2025, 8, 1),
		End:   types.NewDate(2025, 8, 31),
	})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

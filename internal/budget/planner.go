package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrNegativeBudget = errors.New("the budgeted amount must not be negative")

// Store reads and writes budgets.
type Store interface {
	Subcategory(ctx context.Context, userID, id uuid.UUID) (models.Subcategory, error)
	Budgets(ctx context.Context, userID uuid.UUID, r period.DateRange, t models.CategoryType) ([]models.Budget, error)
	UpsertBudget(ctx context.Context, b *models.Budget) error
	SetActualAmount(ctx context.Context, budgetID uuid.UUID, amount decimal.Decimal) error
}

// Planner sets budgets and records snapshots of actual spend.
type Planner struct {
	store      Store
	aggregator *Aggregator
}

// NewPlanner returns a Planner. Snapshots use aggregator to compute spend.
func NewPlanner(store Store, aggregator *Aggregator) *Planner {
	return &Planner{
		store:      store,
		aggregator: aggregator,
	}
}

// SetBudgetInput describes the budget for one subcategory and period.
type SetBudgetInput struct {
	UserID        uuid.UUID         `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	SubcategoryID uuid.UUID         `json:"subcategoryId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	PeriodStart   types.Date        `json:"periodStart" swaggertype:"string" example:"2025-07-25"`
	PeriodEnd     types.Date        `json:"periodEnd" swaggertype:"string" example:"2025-08-24"`
	PeriodType    models.PeriodType `json:"periodType" example:"custom"` // Derived from the period if empty
	Amount        decimal.Decimal   `json:"amount" example:"400"`
}

// SetBudget creates the budget for the subcategory and period or updates
// the existing one.
func (p *Planner) SetBudget(ctx context.Context, in SetBudgetInput) (models.Budget, error) {
	if in.Amount.IsNegative() {
		return models.Budget{}, ErrNegativeBudget
	}

	r, err := period.NewDateRange(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return models.Budget{}, err
	}

	subcategory, err := p.store.Subcategory(ctx, in.UserID, in.SubcategoryID)
	if err != nil {
		return models.Budget{}, err
	}

	periodType := in.PeriodType
	if periodType != "" && !periodType.Valid() {
		return models.Budget{}, models.ErrInvalidPeriodType
	}

	if periodType == "" {
		periodType = models.PeriodTypeCustom
		if r.IsCalendarMonth() {
			periodType = models.PeriodTypeMonthly
		}
	}

	b := models.Budget{
		UserID:         in.UserID,
		SubcategoryID:  &subcategory.ID,
		PeriodStart:    r.Start,
		PeriodEnd:      r.End,
		PeriodType:     periodType,
		MainCategoryID: &subcategory.MainCategoryID,
		CategoryName:   subcategory.Name,
		CategoryType:   subcategory.MainCategory.Type,
		BudgetedAmount: in.Amount,
	}

	err = p.store.UpsertBudget(ctx, &b)
	if err != nil {
		return models.Budget{}, err
	}

	return b, nil
}

// Snapshot records the spend of every subcategory in the actual amount of
// its budget for the period r. Subcategories without a budget for the
// period are not recorded.
func (p *Planner) Snapshot(ctx context.Context, userID uuid.UUID, r period.DateRange) ([]models.Budget, error) {
	if r.Start.After(r.End) {
		return nil, fmt.Errorf("%w: %s", period.ErrInvalidRange, r)
	}

	summary, err := p.aggregator.Summary(ctx, userID, r)
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(summary.Categories))
	for _, c := range summary.Categories {
		spent[c.ID] = c.Spent
	}

	budgets, err := p.store.Budgets(ctx, userID, r, models.CategoryTypeExpense)
	if err != nil {
		return nil, err
	}

	for i, b := range budgets {
		if b.SubcategoryID == nil {
			continue
		}

		amount := spent[*b.SubcategoryID]
		err := p.store.SetActualAmount(ctx, b.ID, amount)
		if err != nil {
			return nil, err
		}
		budgets[i].ActualAmount = amount
	}

	log.Debug().Str("user", userID.String()).Str("period", r.String()).Int("budgets", len(budgets)).Msg("recorded budget snapshot")
	return budgets, nil
}

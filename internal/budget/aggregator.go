// Package budget compares budgets with actual spend and manages budgets
// per period.
package budget

import (
	"context"
	"fmt"

	"github.com/fundflow/backend/internal/models"
	"github.com/fundflow/backend/internal/period"
	"github.com/fundflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Source provides the data that summaries are computed from.
type Source interface {
	ActiveSubcategories(ctx context.Context, userID uuid.UUID) ([]models.Subcategory, error)
	ActiveMainCategories(ctx context.Context, userID uuid.UUID, t models.CategoryType) ([]models.MainCategory, error)
	Budgets(ctx context.Context, userID uuid.UUID, r period.DateRange, t models.CategoryType) ([]models.Budget, error)
	Transactions(ctx context.Context, userID uuid.UUID, t models.CategoryType, status models.TransactionStatus, r period.DateRange) ([]models.Transaction, error)
}

// Aggregator computes budget summaries. It never writes.
type Aggregator struct {
	source     Source
	exclusions Exclusions
}

// NewAggregator returns an Aggregator reading from source.
func NewAggregator(source Source, exclusions Exclusions) *Aggregator {
	return &Aggregator{
		source:     source,
		exclusions: exclusions,
	}
}

// data is everything a summary is computed from.
type data struct {
	subcategories  []models.Subcategory
	mainCategories []models.MainCategory
	budgets        []models.Budget
	transactions   []models.Transaction
}

// fetch loads all data for a summary concurrently. If any query fails,
// the others are cancelled and the error is returned.
func (a *Aggregator) fetch(ctx context.Context, userID uuid.UUID, r period.DateRange, withBudgets bool) (data, error) {
	var d data
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.subcategories, err = a.source.ActiveSubcategories(ctx, userID)
		return
	})

	g.Go(func() (err error) {
		d.mainCategories, err = a.source.ActiveMainCategories(ctx, userID, models.CategoryTypeExpense)
		return
	})

	if withBudgets {
		g.Go(func() (err error) {
			d.budgets, err = a.source.Budgets(ctx, userID, r, models.CategoryTypeExpense)
			return
		})
	}

	g.Go(func() (err error) {
		d.transactions, err = a.source.Transactions(ctx, userID, models.CategoryTypeExpense, models.TransactionStatusPaid, r)
		return
	})

	if err := g.Wait(); err != nil {
		return data{}, fmt.Errorf("could not load data for period %s: %w", r, err)
	}

	return d, nil
}

// Summary compares the budgets of the period r with the paid expenses
// dated within it.
//
// Every active subcategory of an active expense main category is part of
// the summary, even without budget or spend. Transfers are left out.
func (a *Aggregator) Summary(ctx context.Context, userID uuid.UUID, r period.DateRange) (Summary, error) {
	d, err := a.fetch(ctx, userID, r, true)
	if err != nil {
		return Summary{}, err
	}

	budgeted := make(map[uuid.UUID]decimal.Decimal, len(d.budgets))
	for _, b := range d.budgets {
		if b.SubcategoryID == nil {
			continue
		}
		budgeted[*b.SubcategoryID] = budgeted[*b.SubcategoryID].Add(b.BudgetedAmount)
	}

	return a.summarise(r, d, func(s models.Subcategory) decimal.Decimal {
		return budgeted[s.ID]
	}), nil
}

// LegacySummary is the summary for the calendar month containing today
// with the budget amounts set directly on the subcategories. Budgets set
// per period are not used.
func (a *Aggregator) LegacySummary(ctx context.Context, userID uuid.UUID, today types.Date) (Summary, error) {
	r := period.Resolve(today, period.DefaultConfig())

	d, err := a.fetch(ctx, userID, r, false)
	if err != nil {
		return Summary{}, err
	}

	return a.summarise(r, d, func(s models.Subcategory) decimal.Decimal {
		return s.BudgetAmount
	}), nil
}

func (a *Aggregator) summarise(r period.DateRange, d data, budgetOf func(models.Subcategory) decimal.Decimal) Summary {
	excluded := a.exclusions.resolve(d.subcategories, d.mainCategories)

	spent := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range d.transactions {
		if _, ok := excluded[t.CategoryID]; ok {
			continue
		}
		spent[t.CategoryID] = spent[t.CategoryID].Add(t.Amount)
	}

	mainCategories := slices.Clone(d.mainCategories)
	slices.SortFunc(mainCategories, func(a, b models.MainCategory) int {
		return compareNameID(a.Name, b.Name, a.ID, b.ID)
	})

	subcategories := slices.Clone(d.subcategories)
	slices.SortFunc(subcategories, func(a, b models.Subcategory) int {
		return compareNameID(a.Name, b.Name, a.ID, b.ID)
	})

	included := make(map[uuid.UUID]bool, len(mainCategories))
	for _, m := range mainCategories {
		_, isExcluded := excluded[m.ID]
		included[m.ID] = !isExcluded
	}

	summary := Summary{
		Period:         r,
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		Categories:     []CategorySummary{},
		MainCategories: []MainCategorySummary{},
	}

	children := make(map[uuid.UUID][]CategorySummary, len(mainCategories))
	for _, s := range subcategories {
		if _, ok := excluded[s.ID]; ok || !included[s.MainCategoryID] {
			continue
		}

		c := newCategorySummary(s, budgetOf(s), spent[s.ID])
		summary.Categories = append(summary.Categories, c)
		children[s.MainCategoryID] = append(children[s.MainCategoryID], c)

		summary.TotalBudget = summary.TotalBudget.Add(c.BudgetAmount)
		summary.TotalSpent = summary.TotalSpent.Add(c.Spent)
	}

	for _, m := range mainCategories {
		if !included[m.ID] {
			continue
		}
		summary.MainCategories = append(summary.MainCategories, newMainCategorySummary(m, children[m.ID]))
	}

	return summary
}

func newCategorySummary(s models.Subcategory, budget, spent decimal.Decimal) CategorySummary {
	return CategorySummary{
		ID:             s.ID,
		MainCategoryID: s.MainCategoryID,
		Name:           s.Name,
		BudgetAmount:   budget,
		Spent:          spent,
		Remaining:      budget.Sub(spent),
		Percentage:     Percentage(spent, budget),
	}
}

func newMainCategorySummary(m models.MainCategory, children []CategorySummary) MainCategorySummary {
	budget, spent := decimal.Zero, decimal.Zero
	ids := make([]uuid.UUID, 0, len(children))

	for _, c := range children {
		budget = budget.Add(c.BudgetAmount)
		spent = spent.Add(c.Spent)
		ids = append(ids, c.ID)
	}

	return MainCategorySummary{
		ID:            m.ID,
		Name:          m.Name,
		BudgetAmount:  budget,
		Spent:         spent,
		Remaining:     budget.Sub(spent),
		Percentage:    Percentage(spent, budget),
		Subcategories: ids,
	}
}

func compareNameID(aName, bName string, aID, bID uuid.UUID) int {
	if aName < bName {
		return -1
	}
	if aName > bName {
		return 1
	}
	return slices.Compare(aID[:], bID[:])
}

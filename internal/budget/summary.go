package budget

import (
	"github.com/fundflow/backend/internal/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategorySummary is budget against spend of one subcategory.
type CategorySummary struct {
	ID             uuid.UUID       `json:"id" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	MainCategoryID uuid.UUID       `json:"mainCategoryId" example:"d0c7e0a5-1ca4-4e0b-8c6a-c8d4d2b3e4f5"`
	Name           string          `json:"name" example:"Groceries"`
	BudgetAmount   decimal.Decimal `json:"budgetAmount" example:"1000000"`
	Spent          decimal.Decimal `json:"spent" example:"1250000"`
	Remaining      decimal.Decimal `json:"remaining" example:"-250000"`
	Percentage     decimal.Decimal `json:"percentage" example:"125"` // Spent as percentage of the budget
}

// MainCategorySummary is the sum of the summaries of all subcategories
// of a main category.
type MainCategorySummary struct {
	ID            uuid.UUID       `json:"id" example:"d0c7e0a5-1ca4-4e0b-8c6a-c8d4d2b3e4f5"`
	Name          string          `json:"name" example:"Living"`
	BudgetAmount  decimal.Decimal `json:"budgetAmount" example:"1500000"`
	Spent         decimal.Decimal `json:"spent" example:"1250000"`
	Remaining     decimal.Decimal `json:"remaining" example:"250000"`
	Percentage    decimal.Decimal `json:"percentage" example:"83.33"`
	Subcategories []uuid.UUID     `json:"subcategories"` // IDs of the subcategories included in the sums
}

// Summary is budget against spend of a user in one period.
type Summary struct {
	Period         period.DateRange      `json:"period"`
	TotalBudget    decimal.Decimal       `json:"totalBudget" example:"1500000"`
	TotalSpent     decimal.Decimal       `json:"totalSpent" example:"1250000"`
	Categories     []CategorySummary     `json:"categories"`
	MainCategories []MainCategorySummary `json:"mainCategories"`
}

// Percentage returns spent as percentage of budget, rounded to two
// decimal places.
//
// With a zero budget, it is 0 without spend and 100 with any spend.
func Percentage(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		if spent.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}

	return spent.Div(budget).Mul(hundred).Round(2)
}

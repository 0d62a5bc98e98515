package renderer

import (
	"fmt"

	"github.com/etnz/travelbuddy"
)

// CategoryRow is one category line of the budget breakdown.
type CategoryRow struct {
	Name  string
	Icon  string
	Color string
	Spent string
}

// ExpenseRow is one expense line of the budget report.
type ExpenseRow struct {
	ID          string
	Date        string
	Category    string
	Icon        string
	Description string
	Amount      string
}

// BudgetView is the budget page data for rendering.
type BudgetView struct {
	Budget     string
	Spent      string
	Remaining  string
	Progress   string
	NearLimit  bool
	OverLimit  bool
	Categories []CategoryRow
	Expenses   []ExpenseRow
}

// NewBudgetView shapes a ledger for rendering. Amounts are formatted in the
// given currency.
func NewBudgetView(l *travelbuddy.BudgetLedger, currency string) *BudgetView {
	v := &BudgetView{
		Budget:    travelbuddy.FormatAmount(l.Budget(), currency),
		Spent:     travelbuddy.FormatAmount(l.TotalSpent(), currency),
		Remaining: travelbuddy.FormatAmount(l.Remaining(), currency),
		Progress:  fmt.Sprintf("%s%%", l.ProgressPercent().Round(1)),
		NearLimit: l.IsNearLimit(),
		OverLimit: l.IsOverLimit(),
	}
	totals := l.CategoryTotals()
	for _, name := range l.Categories() {
		spent, ok := totals[name]
		if !ok {
			continue
		}
		v.Categories = append(v.Categories, CategoryRow{
			Name:  name,
			Icon:  travelbuddy.IconFor(name).String(),
			Color: l.CategoryColor(name),
			Spent: travelbuddy.FormatAmount(spent, currency),
		})
	}
	for _, e := range l.Expenses() {
		v.Expenses = append(v.Expenses, ExpenseRow{
			ID:          e.ID,
			Date:        e.Date.String(),
			Category:    e.Category,
			Icon:        travelbuddy.IconFor(e.Category).String(),
			Description: e.Description,
			Amount:      travelbuddy.FormatAmount(e.Amount, currency),
		})
	}
	return v
}

// RenderBudget renders the budget page to a markdown string.
func RenderBudget(l *travelbuddy.BudgetLedger, currency string) string {
	partials := map[string]string{
		"budget_summary":    "budget_summary.md",
		"budget_categories": "budget_categories.md",
		"budget_expenses":   "budget_expenses.md",
	}
	return renderTemplate("budget", "budget.md", partials, NewBudgetView(l, currency))
}

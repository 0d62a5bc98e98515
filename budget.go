package travelbuddy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCategories is the category set of a fresh ledger. Users may append
// to it; there is no removal.
var DefaultCategories = []string{"Flights", "Accommodation", "Activities", "Food"}

// Expense is one spent amount of the budget ledger.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

// budgetDoc is the persisted shape of the ledger, one JSON document under
// the budget key.
type budgetDoc struct {
	Budget     decimal.Decimal `json:"budget"`
	Expenses   []Expense       `json:"expenses"`
	Categories []string        `json:"categories"`
}

// BudgetLedger tracks a trip budget: the total budget, the categorized
// expenses (newest first) and the category set. All derived figures (total
// spent, remaining, progress) are computed on demand and never persisted.
type BudgetLedger struct {
	store      Store
	budget     decimal.Decimal
	expenses   []Expense
	categories []string
}

// NewBudgetLedger loads the ledger from the store. A missing or unreadable
// document yields a zero budget, no expenses and the default categories.
func NewBudgetLedger(store Store) *BudgetLedger {
	l := &BudgetLedger{store: store}
	var doc budgetDoc
	if ok, err := l.store.Load(KeyBudget, &doc); ok && err == nil {
		l.budget = doc.Budget
		l.expenses = doc.Expenses
		l.categories = doc.Categories
	}
	if len(l.categories) == 0 {
		l.categories = slices.Clone(DefaultCategories)
	}
	return l
}

func (l *BudgetLedger) persist() error {
	doc := budgetDoc{Budget: l.budget, Expenses: l.expenses, Categories: l.categories}
	if err := l.store.Save(KeyBudget, doc); err != nil {
		return fmt.Errorf("could not persist budget: %w", err)
	}
	return nil
}

// Budget returns the total budget.
func (l *BudgetLedger) Budget() decimal.Decimal { return l.budget }

// Expenses returns the expenses, newest first.
func (l *BudgetLedger) Expenses() []Expense { return slices.Clone(l.expenses) }

// Categories returns the category set in insertion order.
func (l *BudgetLedger) Categories() []string { return slices.Clone(l.categories) }

// SetBudget overwrites the total budget and persists. A negative budget is
// rejected.
func (l *BudgetLedger) SetBudget(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("budget cannot be negative: %s", amount)
	}
	l.budget = amount
	return l.persist()
}

// AddExpense validates the input, stamps a new unique id, prepends the
// expense and persists. A non-positive amount, an empty description or a
// zero date leaves the ledger untouched and returns an error; the UI treats
// that as a disabled action, not a failure to report.
func (l *BudgetLedger) AddExpense(category string, amount decimal.Decimal, description string, on Date) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("expense amount must be positive: %s", amount)
	}
	if strings.TrimSpace(description) == "" {
		return Expense{}, fmt.Errorf("expense description is required")
	}
	if on.IsZero() {
		return Expense{}, fmt.Errorf("expense date is required")
	}
	e := Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        on,
	}
	l.expenses = append([]Expense{e}, l.expenses...)
	if err := l.persist(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// DeleteExpense removes the expense with the given id. Deleting an unknown
// id is a successful no-op.
func (l *BudgetLedger) DeleteExpense(id string) error {
	kept := slices.DeleteFunc(slices.Clone(l.expenses), func(e Expense) bool { return e.ID == id })
	if len(kept) == len(l.expenses) {
		return nil
	}
	l.expenses = kept
	return l.persist()
}

// AddCategory trims the name and appends it to the category set. If the name
// is already present (case-sensitive exact match) the existing entry is
// selected instead of duplicated. It returns the selected category name.
func (l *BudgetLedger) AddCategory(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("category name is required")
	}
	if slices.Contains(l.categories, name) {
		return name, nil
	}
	l.categories = append(l.categories, name)
	if err := l.persist(); err != nil {
		return "", err
	}
	return name, nil
}

// TotalSpent is the sum of all expense amounts.
func (l *BudgetLedger) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Remaining is the budget minus the total spent. It goes negative when the
// ledger is over budget.
func (l *BudgetLedger) Remaining() decimal.Decimal {
	return l.budget.Sub(l.TotalSpent())
}

// ProgressPercent is the spent share of the budget, in percent. It is 0 when
// the budget is zero or negative, guarding the division.
func (l *BudgetLedger) ProgressPercent() decimal.Decimal {
	if !l.budget.IsPositive() {
		return decimal.Zero
	}
	return l.TotalSpent().Div(l.budget).Mul(decimal.NewFromInt(100))
}

var (
	nearLimit = decimal.NewFromInt(90)
	overLimit = decimal.NewFromInt(100)
)

// IsOverLimit reports whether the progress exceeds 100%.
func (l *BudgetLedger) IsOverLimit() bool {
	return l.ProgressPercent().GreaterThan(overLimit)
}

// IsNearLimit reports whether the progress is between 90% and 100%
// inclusive. Over the limit takes precedence over near it.
func (l *BudgetLedger) IsNearLimit() bool {
	p := l.ProgressPercent()
	return p.GreaterThanOrEqual(nearLimit) && p.LessThanOrEqual(overLimit)
}

// CategoryTotals sums the expenses grouped by their category field. Every
// key of the result appears in at least one expense, including stale
// categories no longer in the category set.
func (l *BudgetLedger) CategoryTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range l.expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

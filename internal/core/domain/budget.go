package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence of a budget window.
type BudgetPeriod string

const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Budget caps spending for one category over a period. The spent amount is
// never stored; it is recomputed from transactions on every read so the budget
// cannot drift from the transaction log.
type Budget struct {
	BudgetID       string          `json:"budgetID"`
	UserID         string          `json:"userID"`
	CategoryID     string          `json:"categoryID"`
	Amount         decimal.Decimal `json:"amount"`
	Period         BudgetPeriod    `json:"period"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	Rollover       bool            `json:"rollover"`
	AlertThreshold int             `json:"alertThreshold"` // percentage
	AlertsEnabled  bool            `json:"alertsEnabled"`
	AuditFields
}

// BudgetProgress is the derived read-side view of a budget.
type BudgetProgress struct {
	Budget            Budget          `json:"budget"`
	Spent             decimal.Decimal `json:"spent"`
	Remaining         decimal.Decimal `json:"remaining"`
	Percentage        decimal.Decimal `json:"percentage"`
	IsOverBudget      bool            `json:"isOverBudget"`
	DaysRemaining     int             `json:"daysRemaining"`
	DailyBudget       decimal.Decimal `json:"dailyBudget"`
	ProjectedSpending decimal.Decimal `json:"projectedSpending"`
}

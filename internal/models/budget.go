package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod defines the recurrence window of a budget.
type BudgetPeriod string

const (
	Weekly  BudgetPeriod = "weekly"
	Monthly BudgetPeriod = "monthly"
	Yearly  BudgetPeriod = "yearly"
)

// Budget represents a spending budget row for a category.
type Budget struct {
	BudgetID       string          `db:"budget_id"`
	UserID         string          `db:"user_id"`
	CategoryID     string          `db:"category_id"`
	Amount         decimal.Decimal `db:"amount"`
	Period         BudgetPeriod    `db:"period"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        *time.Time      `db:"end_date"`
	Rollover       bool            `db:"rollover"`
	AlertThreshold int             `db:"alert_threshold"`
	AlertsEnabled  bool            `db:"alerts_enabled"`
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType defines the direction of a goal.
type GoalType string

const (
	Savings GoalType = "savings"
	Debt    GoalType = "debt"
)

// GoalStatus defines the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalCancelled GoalStatus = "cancelled"
)

// Goal represents a savings or debt goal row.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Type          GoalType        `db:"goal_type"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`
	AccountID     *string         `db:"account_id"`
	Color         string          `db:"color"`
	Icon          string          `db:"icon"`
	Status        GoalStatus      `db:"status"`
	AuditFields
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType distinguishes saving up from paying down.
type GoalType string

const (
	GoalSavings GoalType = "savings"
	GoalDebt    GoalType = "debt"
)

// GoalStatus is the lifecycle state of a goal. The goal service moves goals
// between active and completed; cancelled is set only by an explicit user
// action and is terminal for the contribution engine.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Goal tracks progress towards a target amount. CurrentAmount is denormalized
// state kept in lockstep with goal-contribution/goal-withdrawal transactions
// by the goal service.
type Goal struct {
	GoalID        string          `json:"goalID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Type          GoalType        `json:"type"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	AccountID     *string         `json:"accountID,omitempty"`
	Color         string          `json:"color"`
	Icon          string          `json:"icon"`
	Status        GoalStatus      `json:"status"`
	AuditFields
}

// GoalProgress is the derived read-side view of a goal.
type GoalProgress struct {
	Goal                        Goal             `json:"goal"`
	Percentage                  decimal.Decimal  `json:"percentage"`
	Remaining                   decimal.Decimal  `json:"remaining"`
	DaysUntilDeadline           *int             `json:"daysUntilDeadline,omitempty"`
	RequiredMonthlyContribution *decimal.Decimal `json:"requiredMonthlyContribution,omitempty"`
	IsOnTrack                   bool             `json:"isOnTrack"`
}

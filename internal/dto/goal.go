package dto

import (
	"time"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal.
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required"`
	Type          domain.GoalType  `json:"type" binding:"required,oneof=savings debt"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time       `json:"deadline"`
	AccountID     *string          `json:"accountID"`
	Color         string           `json:"color"`
	Icon          string           `json:"icon"`
}

// UpdateGoalRequest defines the data allowed for updating a goal. Patching
// CurrentAmount here bypasses the contribution engine; it is the documented
// escape hatch for manual corrections.
type UpdateGoalRequest struct {
	Name          *string            `json:"name"`
	TargetAmount  *decimal.Decimal   `json:"targetAmount"`
	CurrentAmount *decimal.Decimal   `json:"currentAmount"`
	Deadline      *time.Time         `json:"deadline"`
	AccountID     *string            `json:"accountID"`
	Color         *string            `json:"color"`
	Icon          *string            `json:"icon"`
	Status        *domain.GoalStatus `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}

// GoalContributionRequest defines the data for contributing to or
// withdrawing from a goal.
type GoalContributionRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	AccountID string          `json:"accountID" binding:"required"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string            `json:"goalID"`
	UserID        string            `json:"userID"`
	Name          string            `json:"name"`
	Type          domain.GoalType   `json:"type"`
	TargetAmount  decimal.Decimal   `json:"targetAmount"`
	CurrentAmount decimal.Decimal   `json:"currentAmount"`
	Deadline      *time.Time        `json:"deadline,omitempty"`
	AccountID     *string           `json:"accountID,omitempty"`
	Color         string            `json:"color"`
	Icon          string            `json:"icon"`
	Status        domain.GoalStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// GoalContributionResponse pairs the updated goal with the audit transaction
// the contribution produced.
type GoalContributionResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToGoalResponse converts a domain.Goal to its response DTO.
func ToGoalResponse(goal *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        goal.GoalID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Type:          goal.Type,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      goal.Deadline,
		AccountID:     goal.AccountID,
		Color:         goal.Color,
		Icon:          goal.Icon,
		Status:        goal.Status,
		CreatedAt:     goal.CreatedAt,
		LastUpdatedAt: goal.LastUpdatedAt,
	}
}

// ToGoalResponses converts a slice of domain goals.
func ToGoalResponses(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}

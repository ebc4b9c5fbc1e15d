package dto

import (
	"time"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	CategoryID     string              `json:"categoryID" binding:"required"`
	Amount         decimal.Decimal     `json:"amount" binding:"required"`
	Period         domain.BudgetPeriod `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate      time.Time           `json:"startDate" binding:"required"`
	EndDate        *time.Time          `json:"endDate"`
	Rollover       bool                `json:"rollover"`
	AlertThreshold *int                `json:"alertThreshold"`
	AlertsEnabled  *bool               `json:"alertsEnabled"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	CategoryID     *string              `json:"categoryID"`
	Amount         *decimal.Decimal     `json:"amount"`
	Period         *domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate      *time.Time           `json:"startDate"`
	EndDate        *time.Time           `json:"endDate"`
	Rollover       *bool                `json:"rollover"`
	AlertThreshold *int                 `json:"alertThreshold"`
	AlertsEnabled  *bool                `json:"alertsEnabled"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID       string              `json:"budgetID"`
	UserID         string              `json:"userID"`
	CategoryID     string              `json:"categoryID"`
	Amount         decimal.Decimal     `json:"amount"`
	Period         domain.BudgetPeriod `json:"period"`
	StartDate      time.Time           `json:"startDate"`
	EndDate        *time.Time          `json:"endDate,omitempty"`
	Rollover       bool                `json:"rollover"`
	AlertThreshold int                 `json:"alertThreshold"`
	AlertsEnabled  bool                `json:"alertsEnabled"`
	CreatedAt      time.Time           `json:"createdAt"`
	LastUpdatedAt  time.Time           `json:"lastUpdatedAt"`
}

// BudgetProgressResponse is the derived read-side view of a budget.
type BudgetProgressResponse struct {
	Budget            BudgetResponse  `json:"budget"`
	Spent             decimal.Decimal `json:"spent"`
	Remaining         decimal.Decimal `json:"remaining"`
	Percentage        decimal.Decimal `json:"percentage"`
	IsOverBudget      bool            `json:"isOverBudget"`
	DaysRemaining     int             `json:"daysRemaining"`
	DailyBudget       decimal.Decimal `json:"dailyBudget"`
	ProjectedSpending decimal.Decimal `json:"projectedSpending"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:       budget.BudgetID,
		UserID:         budget.UserID,
		CategoryID:     budget.CategoryID,
		Amount:         budget.Amount,
		Period:         budget.Period,
		StartDate:      budget.StartDate,
		EndDate:        budget.EndDate,
		Rollover:       budget.Rollover,
		AlertThreshold: budget.AlertThreshold,
		AlertsEnabled:  budget.AlertsEnabled,
		CreatedAt:      budget.CreatedAt,
		LastUpdatedAt:  budget.LastUpdatedAt,
	}
}

// ToBudgetResponses converts a slice of domain budgets.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}

// ToBudgetProgressResponse converts a domain.BudgetProgress to its response
// DTO.
func ToBudgetProgressResponse(p *domain.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		Budget:            ToBudgetResponse(&p.Budget),
		Spent:             p.Spent,
		Remaining:         p.Remaining,
		Percentage:        p.Percentage,
		IsOverBudget:      p.IsOverBudget,
		DaysRemaining:     p.DaysRemaining,
		DailyBudget:       p.DailyBudget,
		ProjectedSpending: p.ProjectedSpending,
	}
}

// ToBudgetProgressResponses converts a slice of progress views.
func ToBudgetProgressResponses(ps []domain.BudgetProgress) []BudgetProgressResponse {
	res := make([]BudgetProgressResponse, len(ps))
	for i := range ps {
		res[i] = ToBudgetProgressResponse(&ps[i])
	}
	return res
}

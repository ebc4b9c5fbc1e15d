package services

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/dto"
)

// BudgetSvcFacade manages budgets and derives their progress. Progress is
// recomputed from the transaction log on every call; no spent figure is ever
// stored.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID string, budgetID string) error

	// GetBudgetProgress derives spent/remaining/projection for one budget.
	GetBudgetProgress(ctx context.Context, userID string, budgetID string) (*domain.BudgetProgress, error)

	// ListBudgetProgress derives progress for all of the user's budgets.
	ListBudgetProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error)
}

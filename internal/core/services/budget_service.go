package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/dto"
	"github.com/afkcodes/kakeibo/internal/middleware"
	"github.com/afkcodes/kakeibo/internal/utils/accounting"
)

const defaultAlertThreshold = 80

// budgetService manages budgets and derives their progress from the
// transaction log on demand. No spent figure is ever stored.
type budgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryWithTx
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryWithTx) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Ensure budgetService implements the portssvc.BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget creates a new budget. Implements portssvc.BudgetSvcFacade
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	alertThreshold := defaultAlertThreshold
	if req.AlertThreshold != nil {
		alertThreshold = *req.AlertThreshold
	}
	alertsEnabled := true
	if req.AlertsEnabled != nil {
		alertsEnabled = *req.AlertsEnabled
	}

	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		UserID:         userID,
		CategoryID:     req.CategoryID,
		Amount:         req.Amount,
		Period:         req.Period,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Rollover:       req.Rollover,
		AlertThreshold: alertThreshold,
		AlertsEnabled:  alertsEnabled,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		logger.Error("Failed to save budget", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	logger.Info("Budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// GetBudgetByID retrieves a budget owned by the user. Implements
// portssvc.BudgetSvcFacade
func (s *budgetService) GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find budget by ID", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	if budget.UserID != userID {
		return nil, fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
	}
	return budget, nil
}

// ListBudgets retrieves all budgets owned by the user. Implements
// portssvc.BudgetSvcFacade
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// UpdateBudget replaces the mutable fields of a budget. Implements
// portssvc.BudgetSvcFacade
func (s *budgetService) UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budget, err := s.GetBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		budget.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		if req.Amount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: budget amount must not be negative", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		budget.Period = *req.Period
	}
	if req.StartDate != nil {
		budget.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		budget.EndDate = req.EndDate
	}
	if req.Rollover != nil {
		budget.Rollover = *req.Rollover
	}
	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}
	if req.AlertsEnabled != nil {
		budget.AlertsEnabled = *req.AlertsEnabled
	}
	budget.LastUpdatedAt = time.Now().UTC()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		logger.Error("Failed to update budget", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	logger.Info("Budget updated", slog.String("budget_id", budgetID))
	return budget, nil
}

// DeleteBudget removes a budget. Implements portssvc.BudgetSvcFacade
func (s *budgetService) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetBudgetByID(ctx, userID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		logger.Error("Failed to delete budget", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	return nil
}

// GetBudgetProgress derives spent/remaining/projection for one budget.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) GetBudgetProgress(ctx context.Context, userID string, budgetID string) (*domain.BudgetProgress, error) {
	budget, err := s.GetBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	return s.progressFor(ctx, userID, *budget)
}

// ListBudgetProgress derives progress for all of the user's budgets.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) ListBudgetProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error) {
	budgets, err := s.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := make([]domain.BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		p, err := s.progressFor(ctx, userID, budget)
		if err != nil {
			return nil, err
		}
		progress = append(progress, *p)
	}
	return progress, nil
}

func (s *budgetService) progressFor(ctx context.Context, userID string, budget domain.Budget) (*domain.BudgetProgress, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.ledgerRepo.FindTransactionsByCategory(ctx, userID, budget.CategoryID)
	if err != nil {
		logger.Error("Failed to load transactions for budget progress", slog.String("error", err.Error()), slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to load transactions for budget %s: %w", budget.BudgetID, err)
	}

	progress := accounting.ComputeBudgetProgress(budget, txns, time.Now().UTC())
	return &progress, nil
}

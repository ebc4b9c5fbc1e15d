package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/middleware"
	"github.com/afkcodes/kakeibo/internal/utils/accounting"
)

// reportingService derives read-only aggregates. Every figure is recomputed
// from current state on each call.
type reportingService struct {
	accountRepo portsrepo.AccountRepositoryWithTx
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	goalRepo    portsrepo.GoalRepositoryWithTx
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepositoryWithTx, ledgerRepo portsrepo.LedgerRepositoryWithTx, goalRepo portsrepo.GoalRepositoryWithTx) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		goalRepo:    goalRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetAccountStats sums positive balances into assets and negative balances
// into liabilities. Implements portssvc.ReportingSvcFacade
func (s *reportingService) GetAccountStats(ctx context.Context, userID string) (*domain.AccountStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list accounts for stats", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	stats := domain.AccountStats{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		AccountCount:     len(accounts),
	}
	for _, acc := range accounts {
		if acc.Balance.GreaterThan(decimal.Zero) {
			stats.TotalAssets = stats.TotalAssets.Add(acc.Balance)
		} else if acc.Balance.LessThan(decimal.Zero) {
			stats.TotalLiabilities = stats.TotalLiabilities.Add(acc.Balance.Abs())
		}
	}
	stats.NetWorth = stats.TotalAssets.Sub(stats.TotalLiabilities)

	return &stats, nil
}

// GetTransactionStats aggregates income and expenses for the current
// calendar month. Implements portssvc.ReportingSvcFacade
func (s *reportingService) GetTransactionStats(ctx context.Context, userID string) (*domain.TransactionStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	txns, err := s.ledgerRepo.FindTransactionsByDateRange(ctx, userID, monthStart, monthEnd)
	if err != nil {
		logger.Error("Failed to load transactions for stats", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	stats := domain.TransactionStats{
		MonthlyIncome:    decimal.Zero,
		MonthlyExpenses:  decimal.Zero,
		TransactionCount: len(txns),
	}
	for _, txn := range txns {
		switch txn.Type {
		case domain.TransactionIncome:
			stats.MonthlyIncome = stats.MonthlyIncome.Add(txn.Amount.Abs())
		case domain.TransactionExpense:
			stats.MonthlyExpenses = stats.MonthlyExpenses.Add(txn.Amount.Abs())
		}
	}
	stats.Savings = stats.MonthlyIncome.Sub(stats.MonthlyExpenses)

	return &stats, nil
}

// GetGoalProgress projects progress for all of the user's goals. Implements
// portssvc.ReportingSvcFacade
func (s *reportingService) GetGoalProgress(ctx context.Context, userID string) ([]domain.GoalProgress, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list goals for progress", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	progress := make([]domain.GoalProgress, len(goals))
	for i, goal := range goals {
		progress[i] = accounting.ComputeGoalProgress(goal, now)
	}
	return progress, nil
}

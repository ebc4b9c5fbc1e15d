package services

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
)

// ReportingSvcFacade derives read-only aggregates. Everything here is a pure
// recompute over current state; nothing is cached or incrementally
// maintained.
type ReportingSvcFacade interface {
	// GetAccountStats sums positive balances into assets and negative
	// balances into liabilities.
	GetAccountStats(ctx context.Context, userID string) (*domain.AccountStats, error)

	// GetTransactionStats aggregates income/expenses for the current calendar
	// month.
	GetTransactionStats(ctx context.Context, userID string) (*domain.TransactionStats, error)

	// GetGoalProgress projects progress for all of the user's goals.
	GetGoalProgress(ctx context.Context, userID string) ([]domain.GoalProgress, error)
}

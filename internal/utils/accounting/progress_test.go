package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/utils/accounting"
)

func TestComputeBudgetProgress_Basic(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	budget := domain.Budget{
		BudgetID:   "bud-1",
		CategoryID: "cat-1",
		Amount:     decimal.NewFromInt(300),
		Period:     domain.BudgetMonthly,
		StartDate:  start,
		EndDate:    &end,
	}
	txns := []domain.Transaction{
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(100), Date: start.AddDate(0, 0, 5)},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(50), Date: start.AddDate(0, 0, 10)},
		// Income in the same category never counts towards spent.
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(500), Date: start.AddDate(0, 0, 7)},
		// Outside the window.
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(999), Date: start.AddDate(0, -1, 0)},
	}

	p := accounting.ComputeBudgetProgress(budget, txns, now)

	assert.True(t, p.Spent.Equal(decimal.NewFromInt(150)))
	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(150)))
	assert.True(t, p.Percentage.Equal(decimal.NewFromInt(50)))
	assert.False(t, p.IsOverBudget)
	assert.Equal(t, 15, p.DaysRemaining)
	assert.True(t, p.DailyBudget.Equal(decimal.NewFromInt(10)))
	// 150 spent over 15 of 30 days projects to 300 for the full window.
	assert.True(t, p.ProjectedSpending.Equal(decimal.NewFromInt(300)))
}

func TestComputeBudgetProgress_OverBudget(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	budget := domain.Budget{
		Amount:    decimal.NewFromInt(100),
		StartDate: start,
	}
	txns := []domain.Transaction{
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(140), Date: start.AddDate(0, 0, 2)},
	}

	p := accounting.ComputeBudgetProgress(budget, txns, now)

	assert.True(t, p.IsOverBudget)
	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(-40)))
	assert.True(t, p.Percentage.Equal(decimal.NewFromInt(140)))
}

func TestComputeBudgetProgress_ZeroAmount(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	budget := domain.Budget{
		Amount:    decimal.Zero,
		StartDate: start,
	}
	txns := []domain.Transaction{
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(25), Date: start.AddDate(0, 0, 1)},
	}

	p := accounting.ComputeBudgetProgress(budget, txns, now)

	// No division blow-up; percentage reports zero while the raw figures
	// still show the overspend.
	assert.True(t, p.Percentage.IsZero())
	assert.True(t, p.IsOverBudget)
	assert.True(t, p.Spent.Equal(decimal.NewFromInt(25)))
}

func TestComputeBudgetProgress_NoTransactions(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	budget := domain.Budget{
		Amount:    decimal.NewFromInt(200),
		StartDate: start,
	}

	p := accounting.ComputeBudgetProgress(budget, nil, now)

	assert.True(t, p.Spent.IsZero())
	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(200)))
	assert.False(t, p.IsOverBudget)
}

func TestComputeGoalProgress_NoDeadline(t *testing.T) {
	goal := domain.Goal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(250),
	}

	p := accounting.ComputeGoalProgress(goal, time.Now().UTC())

	assert.True(t, p.Percentage.Equal(decimal.NewFromInt(25)))
	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(750)))
	assert.Nil(t, p.DaysUntilDeadline)
	assert.Nil(t, p.RequiredMonthlyContribution)
	assert.True(t, p.IsOnTrack)
}

func TestComputeGoalProgress_WithDeadline(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	goal := domain.Goal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(500),
		Deadline:      &deadline,
		AuditFields:   domain.AuditFields{CreatedAt: created},
	}

	p := accounting.ComputeGoalProgress(goal, now)

	require.NotNil(t, p.DaysUntilDeadline)
	assert.Equal(t, 91, *p.DaysUntilDeadline)
	require.NotNil(t, p.RequiredMonthlyContribution)
	// Halfway through the window with half the target saved is on track.
	assert.True(t, p.IsOnTrack)
}

func TestComputeGoalProgress_BehindSchedule(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	goal := domain.Goal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(100),
		Deadline:      &deadline,
		AuditFields:   domain.AuditFields{CreatedAt: created},
	}

	p := accounting.ComputeGoalProgress(goal, now)

	assert.False(t, p.IsOnTrack)
}

func TestComputeGoalProgress_ZeroTarget(t *testing.T) {
	goal := domain.Goal{
		TargetAmount:  decimal.Zero,
		CurrentAmount: decimal.NewFromInt(10),
	}

	p := accounting.ComputeGoalProgress(goal, time.Now().UTC())

	assert.True(t, p.Percentage.IsZero())
}

package accounting

import (
	"math"
	"time"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// daysBetween returns the number of days from 'from' to 'to', rounded up,
// never negative.
func daysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// ComputeBudgetProgress derives the read-side view of a budget from the
// transactions in its category. It is a pure recompute: nothing is cached and
// no stored spent field exists to drift. Only expense transactions dated
// within [startDate, endDate-or-now] count towards spent.
//
// A zero budget amount yields a percentage of zero rather than a division
// blow-up; over-budget detection still works off the raw spent figure.
func ComputeBudgetProgress(budget domain.Budget, transactions []domain.Transaction, now time.Time) domain.BudgetProgress {
	periodStart := budget.StartDate
	periodEnd := now
	if budget.EndDate != nil {
		periodEnd = *budget.EndDate
	}

	spent := decimal.Zero
	for _, txn := range transactions {
		if txn.Type != domain.TransactionExpense {
			continue
		}
		if txn.Date.Before(periodStart) || txn.Date.After(periodEnd) {
			continue
		}
		spent = spent.Add(txn.Amount.Abs())
	}

	remaining := budget.Amount.Sub(spent)

	percentage := decimal.Zero
	if !budget.Amount.IsZero() {
		percentage = spent.Div(budget.Amount).Mul(hundred)
	}

	daysRemaining := daysBetween(now, periodEnd)
	totalDays := daysBetween(periodStart, periodEnd)
	daysPassed := totalDays - daysRemaining

	dailyBudget := decimal.Zero
	if daysRemaining > 0 {
		dailyBudget = remaining.Div(decimal.NewFromInt(int64(daysRemaining)))
	}

	projectedSpending := spent
	if daysPassed > 0 {
		projectedSpending = spent.Div(decimal.NewFromInt(int64(daysPassed))).Mul(decimal.NewFromInt(int64(totalDays)))
	}

	return domain.BudgetProgress{
		Budget:            budget,
		Spent:             spent,
		Remaining:         remaining,
		Percentage:        percentage,
		IsOverBudget:      spent.GreaterThan(budget.Amount),
		DaysRemaining:     daysRemaining,
		DailyBudget:       dailyBudget,
		ProjectedSpending: projectedSpending,
	}
}

// ComputeGoalProgress derives the read-side view of a goal. When a deadline is
// set, the goal is considered on track while actual progress stays within 90%
// of the progress a straight line from creation to deadline would expect.
func ComputeGoalProgress(goal domain.Goal, now time.Time) domain.GoalProgress {
	percentage := decimal.Zero
	if !goal.TargetAmount.IsZero() {
		percentage = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	}
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)

	progress := domain.GoalProgress{
		Goal:       goal,
		Percentage: percentage,
		Remaining:  remaining,
		IsOnTrack:  true,
	}

	if goal.Deadline == nil {
		return progress
	}

	daysUntilDeadline := daysBetween(now, *goal.Deadline)
	progress.DaysUntilDeadline = &daysUntilDeadline

	monthsRemaining := decimal.NewFromInt(int64(daysUntilDeadline)).Div(decimal.NewFromInt(30))
	if monthsRemaining.IsPositive() {
		required := remaining.Div(monthsRemaining)
		progress.RequiredMonthlyContribution = &required
	}

	totalDays := daysBetween(goal.CreatedAt, *goal.Deadline)
	daysPassed := totalDays - daysUntilDeadline
	expected := decimal.Zero
	if daysPassed > 0 && totalDays > 0 {
		expected = decimal.NewFromInt(int64(daysPassed)).Div(decimal.NewFromInt(int64(totalDays))).Mul(hundred)
	}
	progress.IsOnTrack = percentage.GreaterThanOrEqual(expected.Mul(decimal.NewFromFloat(0.9)))

	return progress
}

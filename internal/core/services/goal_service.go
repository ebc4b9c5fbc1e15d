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
)

var (
	ErrGoalCancelled       = errors.New("goal is cancelled")
	ErrInsufficientFunds   = errors.New("account has insufficient funds")
	ErrWithdrawExceedsGoal = errors.New("cannot withdraw more than current goal amount")
)

// goalService couples an account balance change, a goal progress change and
// an audit transaction into one atomic unit for contributions and
// withdrawals, alongside plain goal CRUD.
type goalService struct {
	goalRepo    portsrepo.GoalRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryWithTx
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepositoryWithTx, accountRepo portsrepo.AccountRepositoryWithTx, ledgerRepo portsrepo.LedgerRepositoryWithTx) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Ensure goalService implements the portssvc.GoalSvcFacade interface
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal creates a new goal. Implements portssvc.GoalSvcFacade
func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	current := decimal.Zero
	if req.CurrentAmount != nil {
		current = req.CurrentAmount.Abs()
	}

	status := domain.GoalStatusActive
	if current.GreaterThanOrEqual(req.TargetAmount) {
		status = domain.GoalStatusCompleted
	}

	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Type:          req.Type,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: current,
		Deadline:      req.Deadline,
		AccountID:     req.AccountID,
		Color:         req.Color,
		Icon:          req.Icon,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		logger.Error("Failed to save goal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	logger.Info("Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

// GetGoalByID retrieves a goal owned by the user. Implements
// portssvc.GoalSvcFacade
func (s *goalService) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find goal by ID", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if goal.UserID != userID {
		return nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	return goal, nil
}

// ListGoals retrieves all goals owned by the user. Implements
// portssvc.GoalSvcFacade
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list goals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal replaces the mutable fields of a goal. A manual currentAmount
// patch recomputes the status against the target. Implements
// portssvc.GoalSvcFacade
func (s *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = req.CurrentAmount.Abs()
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.AccountID != nil {
		goal.AccountID = req.AccountID
	}
	if req.Color != nil {
		goal.Color = *req.Color
	}
	if req.Icon != nil {
		goal.Icon = *req.Icon
	}

	if req.Status != nil {
		goal.Status = *req.Status
	} else if goal.Status != domain.GoalStatusCancelled {
		// Keep the completed/active split in sync with the amounts
		if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
			goal.Status = domain.GoalStatusCompleted
		} else {
			goal.Status = domain.GoalStatusActive
		}
	}

	goal.LastUpdatedAt = time.Now().UTC()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		logger.Error("Failed to update goal", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	logger.Info("Goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

// DeleteGoal removes a goal. Transactions produced by past contributions are
// left in place as history. Implements portssvc.GoalSvcFacade
func (s *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetGoalByID(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		logger.Error("Failed to delete goal", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	logger.Info("Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// ContributeToGoal moves money from an account into a goal's tracked
// progress. Implements portssvc.GoalSvcFacade
func (s *goalService) ContributeToGoal(ctx context.Context, userID string, goalID string, req dto.GoalContributionRequest) (*domain.Goal, *domain.Transaction, error) {
	return s.moveGoalFunds(ctx, userID, goalID, req, false)
}

// WithdrawFromGoal moves money back from a goal into an account. Implements
// portssvc.GoalSvcFacade
func (s *goalService) WithdrawFromGoal(ctx context.Context, userID string, goalID string, req dto.GoalContributionRequest) (*domain.Goal, *domain.Transaction, error) {
	return s.moveGoalFunds(ctx, userID, goalID, req, true)
}

// moveGoalFunds is the shared contribute/withdraw path: lock goal and
// account, adjust both, insert the audit transaction and commit as one unit.
func (s *goalService) moveGoalFunds(ctx context.Context, userID string, goalID string, req dto.GoalContributionRequest, withdraw bool) (*domain.Goal, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := req.Amount.Abs()
	if amount.IsZero() {
		return nil, nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()

	tx, err := s.goalRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for goal funds move", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.goalRepo.Rollback(ctx, tx)

	goal, err := s.goalRepo.FindGoalByIDForUpdate(ctx, tx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock goal", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		}
		return nil, nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if goal.UserID != userID {
		return nil, nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	if goal.Status == domain.GoalStatusCancelled {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrGoalCancelled)
	}

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{req.AccountID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock account %s: %w", req.AccountID, err)
	}
	account, found := accounts[req.AccountID]
	if !found || account.UserID != userID {
		return nil, nil, fmt.Errorf("account %s: %w", req.AccountID, apperrors.ErrNotFound)
	}
	if !account.IsActive {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountInactive)
	}

	var (
		txnType     domain.TransactionType
		description string
		tags        []string
		delta       decimal.Decimal
	)
	if withdraw {
		if amount.GreaterThan(goal.CurrentAmount) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrWithdrawExceedsGoal)
		}
		txnType = domain.TransactionGoalWithdrawal
		description = fmt.Sprintf("Savings: %s", goal.Name)
		tags = []string{"savings", "goal", "withdrawal"}
		delta = amount
		goal.CurrentAmount = goal.CurrentAmount.Sub(amount)
	} else {
		if account.Balance.LessThan(amount) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInsufficientFunds)
		}
		txnType = domain.TransactionGoalContribution
		description = fmt.Sprintf("Savings: %s", goal.Name)
		tags = []string{"savings", "goal"}
		delta = amount.Neg()
		goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	}

	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = domain.GoalStatusCompleted
	} else {
		goal.Status = domain.GoalStatusActive
	}
	goal.LastUpdatedAt = now

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		Amount:        amount,
		Type:          txnType,
		Description:   description,
		Date:          now,
		Tags:          tags,
		GoalID:        &goal.GoalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ledgerRepo.InsertTransactionInTx(ctx, tx, txn); err != nil {
		logger.Error("Failed to insert goal transaction", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return nil, nil, fmt.Errorf("failed to insert goal transaction: %w", err)
	}

	balanceChanges := map[string]decimal.Decimal{req.AccountID: delta}
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		logger.Error("Failed to apply goal balance change", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return nil, nil, fmt.Errorf("failed to apply balance change: %w", err)
	}

	if err := s.goalRepo.UpdateGoalProgressInTx(ctx, tx, *goal); err != nil {
		logger.Error("Failed to update goal progress", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return nil, nil, fmt.Errorf("failed to update goal progress: %w", err)
	}

	if err := s.goalRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit goal funds move", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("Goal funds moved", slog.String("goal_id", goalID), slog.String("type", string(txnType)), slog.String("amount", amount.String()))
	return goal, &txn, nil
}

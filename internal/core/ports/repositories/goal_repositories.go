package repositories

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// GoalReader defines read operations for goal data.
type GoalReader interface {
	// FindGoalByID retrieves a specific goal.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoalsByUser retrieves all goals owned by a user.
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data. CurrentAmount updates
// outside a contribution are the documented escape hatch, not the normal
// path.
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal replaces the mutable fields of a goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalTransactionSupport defines the operations the goal contribution engine
// performs inside a store transaction.
type GoalTransactionSupport interface {
	// FindGoalByIDForUpdate selects a goal and locks its row within tx. Fails
	// with ErrNotFound if absent.
	FindGoalByIDForUpdate(ctx context.Context, tx pgx.Tx, goalID string) (*domain.Goal, error)

	// UpdateGoalProgressInTx persists a goal's currentAmount/status change
	// within tx.
	UpdateGoalProgressInTx(ctx context.Context, tx pgx.Tx, goal domain.Goal) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
	GoalTransactionSupport
}

// GoalRepositoryWithTx extends GoalRepositoryFacade with transaction
// capabilities.
type GoalRepositoryWithTx interface {
	GoalRepositoryFacade
	TransactionManager
}

package services

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/dto"
)

// GoalSvcFacade is the goal contribution engine plus goal CRUD. Contribution
// and withdrawal couple an account balance change, a goal progress change and
// an audit transaction into one atomic unit.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID string, goalID string) error

	// ContributeToGoal moves money from an account into a goal's tracked
	// progress, completing the goal when the target is reached.
	ContributeToGoal(ctx context.Context, userID string, goalID string, req dto.GoalContributionRequest) (*domain.Goal, *domain.Transaction, error)

	// WithdrawFromGoal moves money back from a goal into an account,
	// reverting a completed goal to active when it drops below target.
	WithdrawFromGoal(ctx context.Context, userID string, goalID string, req dto.GoalContributionRequest) (*domain.Goal, *domain.Transaction, error)
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
	"github.com/afkcodes/kakeibo/internal/models"
	"github.com/afkcodes/kakeibo/internal/utils/mapping"
)

const goalColumns = `goal_id, user_id, name, goal_type, target_amount, current_amount, deadline, account_id, color, icon, status, created_at, last_updated_at`

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryWithTx {
	return &PgxGoalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxGoalRepository implements portsrepo.GoalRepositoryWithTx
var _ portsrepo.GoalRepositoryWithTx = (*PgxGoalRepository)(nil)

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Deadline,
		&m.AccountID,
		&m.Color,
		&m.Icon,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	goal := mapping.ToDomainGoal(m)
	return &goal, nil
}

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.Type,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.AccountID,
		m.Color,
		m.Icon,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`

	goal, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	return goal, nil
}

// ListGoalsByUser retrieves all goals owned by a user.
func (r *PgxGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

// UpdateGoal replaces the mutable fields of a goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		UPDATE goals
		SET name = $2, goal_type = $3, target_amount = $4, current_amount = $5,
			deadline = $6, account_id = $7, color = $8, icon = $9, status = $10,
			last_updated_at = $11
		WHERE goal_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.Name,
		m.Type,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.AccountID,
		m.Color,
		m.Icon,
		m.Status,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", m.GoalID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteGoal removes a goal row.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1;`

	ct, err := r.Pool.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	return nil
}

// FindGoalByIDForUpdate retrieves a goal and locks its row for update. Must
// be called within a transaction.
func (r *PgxGoalRepository) FindGoalByIDForUpdate(ctx context.Context, tx pgx.Tx, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1 FOR UPDATE;`

	goal, err := scanGoal(tx.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock goal %s: %w", goalID, err)
	}
	return goal, nil
}

// UpdateGoalProgressInTx persists a goal's currentAmount/status change within
// a transaction.
func (r *PgxGoalRepository) UpdateGoalProgressInTx(ctx context.Context, tx pgx.Tx, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		UPDATE goals
		SET current_amount = $2, status = $3, last_updated_at = $4
		WHERE goal_id = $1;
	`
	ct, err := tx.Exec(ctx, query,
		m.GoalID,
		m.CurrentAmount,
		m.Status,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal progress for %s: %w", m.GoalID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", m.GoalID, apperrors.ErrNotFound)
	}
	return nil
}

package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(pool),
		LedgerRepo:   newPgxLedgerRepository(pool),
		GoalRepo:     newPgxGoalRepository(pool),
		BudgetRepo:   newPgxBudgetRepository(pool),
		CategoryRepo: newPgxCategoryRepository(pool),
		UserRepo:     newPgxUserRepository(pool),
	}
}

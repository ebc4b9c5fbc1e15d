package repositories

import (
	"context"
	"time"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a filtered, paginated list of a user's
	// transactions, newest first.
	ListTransactionsByUser(ctx context.Context, userID string, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error)

	// FindTransactionsByCategory retrieves all of a user's transactions in a
	// category; the budget progress calculator scans these per call.
	FindTransactionsByCategory(ctx context.Context, userID, categoryID string) ([]domain.Transaction, error)

	// FindTransactionsByDateRange retrieves all of a user's transactions dated
	// within [from, to].
	FindTransactionsByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionTxSupport defines the row-level operations the ledger and goal
// engines perform inside a store transaction.
type TransactionTxSupport interface {
	// FindTransactionByIDForUpdate selects a transaction and locks its row
	// within tx. Fails with ErrNotFound if absent.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// InsertTransactionInTx inserts a new transaction row within tx.
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// UpdateTransactionInTx replaces the mutable fields of a transaction row
	// within tx.
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// DeleteTransactionInTx removes a transaction row within tx.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error
}

// LedgerRepositoryFacade combines all transaction-related repository
// interfaces.
type LedgerRepositoryFacade interface {
	TransactionReader
	TransactionTxSupport
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction
// capabilities.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}

package services

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/dto"
)

// LedgerSvcFacade is the ledger mutation engine: it owns every write to
// transaction rows and the compensating account balance updates that keep
// "balance == net effect of all surviving transactions" true.
type LedgerSvcFacade interface {
	// CreateTransaction inserts a transaction and applies its balance
	// effect(s) atomically.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update: the old effect is reversed
	// and the merged transaction's effect applied, all in one store
	// transaction.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction reverses a transaction's effect and removes it.
	// Deleting a missing transaction is a no-op.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error

	// GetTransactionByID retrieves a single transaction owned by the user.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated list of the user's
	// transactions.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

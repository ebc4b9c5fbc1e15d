package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/dto"
	"github.com/afkcodes/kakeibo/internal/middleware"
	"github.com/afkcodes/kakeibo/internal/utils/accounting"
)

var (
	// ErrAccountNotFound wraps apperrors.ErrNotFound so handlers map it to 404.
	ErrAccountNotFound   = fmt.Errorf("account not found: %w", apperrors.ErrNotFound)
	ErrAccountInactive   = errors.New("account is inactive")
	ErrGoalLinkedManaged = errors.New("goal-linked transactions are managed through the goal engine")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ledgerService is the single write path for transactions. Every mutation
// reverses and/or applies balance effects on the touched accounts inside one
// store transaction, which keeps each account balance equal to the net
// effect of its surviving transactions.
type ledgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryWithTx
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryWithTx, accountRepo portsrepo.AccountRepositoryWithTx) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// lockAndVerifyAccounts locks every account in balanceChanges and checks
// that each one exists, belongs to the user and is active.
func (s *ledgerService) lockAndVerifyAccounts(ctx context.Context, tx pgx.Tx, userID string, balanceChanges map[string]decimal.Decimal) (map[string]domain.Account, error) {
	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, err
	}

	for _, id := range accountIDs {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if acc.UserID != userID {
			// Obscure existence of other users' accounts
			return nil, fmt.Errorf("%w: ID %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountInactive)
		}
	}
	return accounts, nil
}

// CreateTransaction inserts a transaction and applies its balance effect(s)
// atomically. Implements portssvc.LedgerSvcFacade
func (s *ledgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must be non-zero", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		Amount:        req.Amount.Abs(),
		Type:          req.Type,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Date:          req.Date,
		Tags:          req.Tags,
		ToAccountID:   req.ToAccountID,
		IsEssential:   req.IsEssential,
		IsRecurring:   req.IsRecurring,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	effects, err := accounting.TransactionEffects(txn)
	if err != nil {
		return nil, err
	}
	balanceChanges := make(map[string]decimal.Decimal)
	accounting.AccumulateEffects(balanceChanges, effects)

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for ledger create", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.ledgerRepo.Rollback(ctx, tx)

	if _, err := s.lockAndVerifyAccounts(ctx, tx, userID, balanceChanges); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.InsertTransactionInTx(ctx, tx, txn); err != nil {
		logger.Error("Failed to insert transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		logger.Error("Failed to apply balance changes", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to apply balance changes: %w", err)
	}

	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit ledger create", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)))
	return &txn, nil
}

// UpdateTransaction applies a partial update. The old stored effect is
// reversed and the merged transaction's effect applied in the same store
// transaction, even when old and new touch the same accounts; the two passes
// keep the code path uniform whether or not the accounts changed.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount != nil && req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must be non-zero", apperrors.ErrValidation)
	}

	now := time.Now().UTC()

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for ledger update", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.ledgerRepo.Rollback(ctx, tx)

	old, err := s.ledgerRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load transaction for update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if old.UserID != userID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	if old.GoalID != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrGoalLinkedManaged)
	}

	merged := accounting.ResolveMergedTransaction(*old, req.ToTransactionPatch(), now)

	reversal, err := accounting.ReversalEffects(*old)
	if err != nil {
		return nil, err
	}
	forward, err := accounting.TransactionEffects(merged)
	if err != nil {
		return nil, err
	}

	balanceChanges := make(map[string]decimal.Decimal)
	accounting.AccumulateEffects(balanceChanges, reversal)
	accounting.AccumulateEffects(balanceChanges, forward)

	if _, err := s.lockAndVerifyAccounts(ctx, tx, userID, balanceChanges); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.UpdateTransactionInTx(ctx, tx, merged); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		logger.Error("Failed to apply balance changes", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to apply balance changes: %w", err)
	}

	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit ledger update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return &merged, nil
}

// DeleteTransaction reverses a transaction's effect and removes it. A
// missing transaction is a no-op so deletes stay idempotent.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for ledger delete", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.ledgerRepo.Rollback(ctx, tx)

	old, err := s.ledgerRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("Delete of missing transaction treated as no-op", slog.String("transaction_id", transactionID))
			return nil
		}
		logger.Error("Failed to load transaction for delete", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if old.UserID != userID {
		// A foreign transaction looks missing to this user
		logger.Info("Delete of another user's transaction treated as no-op", slog.String("transaction_id", transactionID))
		return nil
	}

	reversal, err := accounting.ReversalEffects(*old)
	if err != nil {
		return err
	}
	balanceChanges := make(map[string]decimal.Decimal)
	accounting.AccumulateEffects(balanceChanges, reversal)

	if _, err := s.lockAndVerifyAccounts(ctx, tx, userID, balanceChanges); err != nil {
		return err
	}

	if err := s.ledgerRepo.DeleteTransactionInTx(ctx, tx, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		logger.Error("Failed to apply balance changes", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to apply balance changes: %w", err)
	}

	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit ledger delete", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetTransactionByID retrieves a single transaction owned by the user.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.UserID != userID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

// ListTransactions retrieves a filtered, paginated list of the user's
// transactions. Implements portssvc.LedgerSvcFacade
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	txns, err := s.ledgerRepo.ListTransactionsByUser(ctx, userID, params.ToFilter(), limit, offset)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

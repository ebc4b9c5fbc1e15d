package accounting

import (
	"fmt"
	"time"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Effect is the signed balance delta a transaction applies to one account.
// Effects are derived from the transaction type and the stored positive
// magnitude; the stored amount itself never carries a sign.
type Effect struct {
	AccountID string
	Delta     decimal.Decimal
}

// TransactionEffects derives the balance effect(s) of a transaction:
//
//	expense           source -|amount|
//	income            source +|amount|
//	transfer          source -|amount|, destination +|amount|
//	goal-contribution source -|amount|
//	goal-withdrawal   source +|amount|
//
// A transfer without a destination account fails with ErrValidation.
func TransactionEffects(txn domain.Transaction) ([]Effect, error) {
	amount := txn.Amount.Abs()

	switch txn.Type {
	case domain.TransactionExpense, domain.TransactionGoalContribution:
		return []Effect{{AccountID: txn.AccountID, Delta: amount.Neg()}}, nil
	case domain.TransactionIncome, domain.TransactionGoalWithdrawal:
		return []Effect{{AccountID: txn.AccountID, Delta: amount}}, nil
	case domain.TransactionTransfer:
		if txn.ToAccountID == nil || *txn.ToAccountID == "" {
			return nil, fmt.Errorf("%w: transfer requires a destination account", apperrors.ErrValidation)
		}
		return []Effect{
			{AccountID: txn.AccountID, Delta: amount.Neg()},
			{AccountID: *txn.ToAccountID, Delta: amount},
		}, nil
	default:
		return nil, fmt.Errorf("unknown transaction type '%s' for transaction %s", txn.Type, txn.TransactionID)
	}
}

// ReversalEffects derives the negated effects of a transaction's current
// state. Applying them undoes the transaction's prior impact exactly; the
// ledger service uses this during update and delete.
func ReversalEffects(txn domain.Transaction) ([]Effect, error) {
	effects, err := TransactionEffects(txn)
	if err != nil {
		return nil, err
	}
	reversed := make([]Effect, len(effects))
	for i, e := range effects {
		reversed[i] = Effect{AccountID: e.AccountID, Delta: e.Delta.Neg()}
	}
	return reversed, nil
}

// AccumulateEffects folds effects into a per-account delta map. Effects for
// the same account sum; an account whose deltas cancel to zero stays in the
// map so the caller still verifies the account exists.
func AccumulateEffects(changes map[string]decimal.Decimal, effects []Effect) {
	for _, e := range effects {
		changes[e.AccountID] = changes[e.AccountID].Add(e.Delta)
	}
}

// ResolveMergedTransaction merges a partial update onto an existing
// transaction: every nil patch field keeps the old value. Identity and audit
// creation fields are never patched; LastUpdatedAt is refreshed to now.
func ResolveMergedTransaction(old domain.Transaction, patch domain.TransactionPatch, now time.Time) domain.Transaction {
	merged := old

	if patch.AccountID != nil {
		merged.AccountID = *patch.AccountID
	}
	if patch.Amount != nil {
		merged.Amount = patch.Amount.Abs()
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.CategoryID != nil {
		merged.CategoryID = *patch.CategoryID
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	if patch.Tags != nil {
		merged.Tags = *patch.Tags
	}
	if patch.ToAccountID != nil {
		merged.ToAccountID = patch.ToAccountID
	}
	if patch.IsEssential != nil {
		merged.IsEssential = *patch.IsEssential
	}
	if patch.IsRecurring != nil {
		merged.IsRecurring = *patch.IsRecurring
	}

	merged.LastUpdatedAt = now
	return merged
}

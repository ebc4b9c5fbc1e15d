package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/utils/accounting"
)

func TestTransactionEffects_Expense(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(50),
		Type:          domain.TransactionExpense,
	}

	effects, err := accounting.TransactionEffects(txn)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.Equal(t, "acc-1", effects[0].AccountID)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-50)))
}

func TestTransactionEffects_Income(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(50),
		Type:          domain.TransactionIncome,
	}

	effects, err := accounting.TransactionEffects(txn)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(50)))
}

func TestTransactionEffects_NegativeAmountNormalized(t *testing.T) {
	// The sign of the stored amount never decides direction; the type does.
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(-50),
		Type:          domain.TransactionExpense,
	}

	effects, err := accounting.TransactionEffects(txn)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-50)))
}

func TestTransactionEffects_TransferZeroSum(t *testing.T) {
	dest := "acc-2"
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(75),
		Type:          domain.TransactionTransfer,
		ToAccountID:   &dest,
	}

	effects, err := accounting.TransactionEffects(txn)
	require.NoError(t, err)
	require.Len(t, effects, 2)
	assert.Equal(t, "acc-1", effects[0].AccountID)
	assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-75)))
	assert.Equal(t, "acc-2", effects[1].AccountID)
	assert.True(t, effects[1].Delta.Equal(decimal.NewFromInt(75)))

	// A transfer never creates or destroys money across accounts.
	sum := effects[0].Delta.Add(effects[1].Delta)
	assert.True(t, sum.IsZero())
}

func TestTransactionEffects_TransferWithoutDestination(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(75),
		Type:          domain.TransactionTransfer,
	}

	_, err := accounting.TransactionEffects(txn)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransactionEffects_GoalTypes(t *testing.T) {
	contribution := domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(20),
		Type:      domain.TransactionGoalContribution,
	}
	withdrawal := domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(20),
		Type:      domain.TransactionGoalWithdrawal,
	}

	ce, err := accounting.TransactionEffects(contribution)
	require.NoError(t, err)
	assert.True(t, ce[0].Delta.Equal(decimal.NewFromInt(-20)))

	we, err := accounting.TransactionEffects(withdrawal)
	require.NoError(t, err)
	assert.True(t, we[0].Delta.Equal(decimal.NewFromInt(20)))
}

func TestTransactionEffects_UnknownType(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(10),
		Type:          domain.TransactionType("bogus"),
	}

	_, err := accounting.TransactionEffects(txn)
	assert.Error(t, err)
}

func TestReversalEffects_UndoesTransaction(t *testing.T) {
	dest := "acc-2"
	txn := domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(30),
		Type:          domain.TransactionTransfer,
		ToAccountID:   &dest,
	}

	forward, err := accounting.TransactionEffects(txn)
	require.NoError(t, err)
	reversal, err := accounting.ReversalEffects(txn)
	require.NoError(t, err)
	require.Len(t, reversal, len(forward))

	// Applying forward then reversal must cancel out per account.
	changes := make(map[string]decimal.Decimal)
	accounting.AccumulateEffects(changes, forward)
	accounting.AccumulateEffects(changes, reversal)
	for accountID, delta := range changes {
		assert.True(t, delta.IsZero(), "residual delta on %s", accountID)
	}
}

func TestAccumulateEffects_SameAccountSums(t *testing.T) {
	changes := make(map[string]decimal.Decimal)
	accounting.AccumulateEffects(changes, []accounting.Effect{
		{AccountID: "acc-1", Delta: decimal.NewFromInt(-50)},
		{AccountID: "acc-1", Delta: decimal.NewFromInt(30)},
	})

	require.Len(t, changes, 1)
	assert.True(t, changes["acc-1"].Equal(decimal.NewFromInt(-20)))
}

func TestAccumulateEffects_ZeroNetKeepsAccount(t *testing.T) {
	// An amount-only update on the same account nets to zero but the account
	// must stay in the map so it is still locked and verified.
	changes := make(map[string]decimal.Decimal)
	accounting.AccumulateEffects(changes, []accounting.Effect{
		{AccountID: "acc-1", Delta: decimal.NewFromInt(-50)},
		{AccountID: "acc-1", Delta: decimal.NewFromInt(50)},
	})

	require.Len(t, changes, 1)
	assert.True(t, changes["acc-1"].IsZero())
}

func TestResolveMergedTransaction_NilFieldsKeepOldValues(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	old := domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(40),
		Type:          domain.TransactionExpense,
		CategoryID:    "cat-1",
		Description:   "groceries",
		Date:          created,
		Tags:          []string{"food"},
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			LastUpdatedAt: created,
		},
	}

	merged := accounting.ResolveMergedTransaction(old, domain.TransactionPatch{}, now)

	assert.Equal(t, old.TransactionID, merged.TransactionID)
	assert.Equal(t, old.UserID, merged.UserID)
	assert.Equal(t, old.AccountID, merged.AccountID)
	assert.True(t, merged.Amount.Equal(old.Amount))
	assert.Equal(t, old.Type, merged.Type)
	assert.Equal(t, old.Description, merged.Description)
	assert.Equal(t, old.CreatedAt, merged.CreatedAt)
	assert.Equal(t, now, merged.LastUpdatedAt)
}

func TestResolveMergedTransaction_PatchOverridesAndNormalizes(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	old := domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(40),
		Type:          domain.TransactionExpense,
	}

	newAmount := decimal.NewFromInt(-90)
	newType := domain.TransactionIncome
	newAccount := "acc-2"
	patch := domain.TransactionPatch{
		AccountID: &newAccount,
		Amount:    &newAmount,
		Type:      &newType,
	}

	merged := accounting.ResolveMergedTransaction(old, patch, now)

	assert.Equal(t, "acc-2", merged.AccountID)
	assert.Equal(t, domain.TransactionIncome, merged.Type)
	// Patched amounts are stored as positive magnitudes.
	assert.True(t, merged.Amount.Equal(decimal.NewFromInt(90)))
	// Identity never changes on update.
	assert.Equal(t, "txn-1", merged.TransactionID)
	assert.Equal(t, "user-1", merged.UserID)
}

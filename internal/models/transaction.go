package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines how a transaction affects account balances.
type TransactionType string

const (
	Expense          TransactionType = "expense"
	Income           TransactionType = "income"
	Transfer         TransactionType = "transfer"
	GoalContribution TransactionType = "goal-contribution"
	GoalWithdrawal   TransactionType = "goal-withdrawal"
)

// Transaction represents a ledger transaction row. Amount is stored as a
// positive magnitude; the type carries the sign.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          TransactionType `db:"transaction_type"`
	CategoryID    string          `db:"category_id"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"transaction_date"`
	Tags          []string        `db:"tags"`
	ToAccountID   *string         `db:"to_account_id"`
	GoalID        *string         `db:"goal_id"`
	IsEssential   bool            `db:"is_essential"`
	IsRecurring   bool            `db:"is_recurring"`
	Synced        bool            `db:"synced"`
	AuditFields
}
